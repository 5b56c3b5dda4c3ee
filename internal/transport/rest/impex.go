package rest

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/thaivocab-backend/internal/service/impex"
)

// maxImportBody bounds import uploads to 10 MiB.
const maxImportBody = 10 << 20

// impexService defines the minimal interface needed by ImpexHandler.
type impexService interface {
	Export(ctx context.Context) ([]byte, error)
	Import(ctx context.Context, data []byte) (impex.ImportReport, error)
}

// ImpexHandler serves library export and import endpoints.
type ImpexHandler struct {
	svc impexService
	log *slog.Logger
}

// NewImpexHandler creates an ImpexHandler.
func NewImpexHandler(svc impexService, logger *slog.Logger) *ImpexHandler {
	return &ImpexHandler{svc: svc, log: logger.With("handler", "impex")}
}

type importResponse struct {
	FoldersCreated int      `json:"foldersCreated"`
	CardsImported  int      `json:"cardsImported"`
	CardsSkipped   int      `json:"cardsSkipped"`
	Skipped        []string `json:"skipped,omitempty"`
}

// Export handles GET /api/export. The response is the export document itself.
func (h *ImpexHandler) Export(w http.ResponseWriter, r *http.Request) {
	data, err := h.svc.Export(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="thaivocab-export.json"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data) //nolint:errcheck
}

// Import handles POST /api/import with an export document as the body.
func (h *ImpexHandler) Import(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxImportBody+1))
	if err != nil {
		writeError(w, http.StatusBadRequest, "read request body")
		return
	}
	if len(data) > maxImportBody {
		writeError(w, http.StatusRequestEntityTooLarge, "import document too large")
		return
	}

	report, err := h.svc.Import(r.Context(), data)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, importResponse{
		FoldersCreated: report.FoldersCreated,
		CardsImported:  report.CardsImported,
		CardsSkipped:   report.CardsSkipped,
		Skipped:        report.Skipped,
	})
}
