package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/thaivocab-backend/internal/domain"
	"github.com/heartmarshall/thaivocab-backend/internal/service/vocab"
)

// vocabService defines the minimal interface needed by VocabHandler.
type vocabService interface {
	CreateFolder(ctx context.Context, input vocab.CreateFolderInput) (domain.Folder, error)
	GetFolder(ctx context.Context, folderID uuid.UUID) (domain.Folder, error)
	ListFolders(ctx context.Context) ([]domain.Folder, error)
	RenameFolder(ctx context.Context, input vocab.RenameFolderInput) error
	DeleteFolder(ctx context.Context, folderID uuid.UUID) error

	CreateCard(ctx context.Context, input vocab.CreateCardInput) (domain.Flashcard, error)
	GetCard(ctx context.Context, cardID uuid.UUID) (domain.Flashcard, error)
	ListCards(ctx context.Context, input vocab.ListCardsInput) ([]domain.Flashcard, error)
	UpdateCard(ctx context.Context, input vocab.UpdateCardInput) (domain.Flashcard, error)
	DeleteCard(ctx context.Context, cardID uuid.UUID) error
}

// VocabHandler serves folder and flashcard REST endpoints.
type VocabHandler struct {
	svc vocabService
	log *slog.Logger
}

// NewVocabHandler creates a VocabHandler.
func NewVocabHandler(svc vocabService, logger *slog.Logger) *VocabHandler {
	return &VocabHandler{svc: svc, log: logger.With("handler", "vocab")}
}

type folderResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CardCount int       `json:"cardCount"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type cardResponse struct {
	ID              string    `json:"id"`
	FolderID        string    `json:"folderId"`
	FrontText       string    `json:"frontText"`
	BackText        string    `json:"backText"`
	Transliteration *string   `json:"transliteration,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type folderRequest struct {
	Name string `json:"name"`
}

type createCardRequest struct {
	FolderID        string  `json:"folderId"`
	FrontText       string  `json:"frontText"`
	BackText        string  `json:"backText"`
	Transliteration *string `json:"transliteration"`
}

type updateCardRequest struct {
	FrontText       *string `json:"frontText"`
	BackText        *string `json:"backText"`
	Transliteration *string `json:"transliteration"`
}

// ---------------------------------------------------------------------------
// Folder endpoints
// ---------------------------------------------------------------------------

// CreateFolder handles POST /api/folders.
func (h *VocabHandler) CreateFolder(w http.ResponseWriter, r *http.Request) {
	var req folderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	folder, err := h.svc.CreateFolder(r.Context(), vocab.CreateFolderInput{Name: req.Name})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toFolderResponse(folder))
}

// ListFolders handles GET /api/folders.
func (h *VocabHandler) ListFolders(w http.ResponseWriter, r *http.Request) {
	folders, err := h.svc.ListFolders(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]folderResponse, 0, len(folders))
	for _, f := range folders {
		resp = append(resp, toFolderResponse(f))
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetFolder handles GET /api/folders/{id}.
func (h *VocabHandler) GetFolder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	folder, err := h.svc.GetFolder(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toFolderResponse(folder))
}

// RenameFolder handles PUT /api/folders/{id}.
func (h *VocabHandler) RenameFolder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req folderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.svc.RenameFolder(r.Context(), vocab.RenameFolderInput{FolderID: id, Name: req.Name})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// DeleteFolder handles DELETE /api/folders/{id}.
func (h *VocabHandler) DeleteFolder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteFolder(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ---------------------------------------------------------------------------
// Card endpoints
// ---------------------------------------------------------------------------

// CreateCard handles POST /api/cards.
func (h *VocabHandler) CreateCard(w http.ResponseWriter, r *http.Request) {
	var req createCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	folderID, err := uuid.Parse(req.FolderID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid folderId")
		return
	}

	card, err := h.svc.CreateCard(r.Context(), vocab.CreateCardInput{
		FolderID:        folderID,
		FrontText:       req.FrontText,
		BackText:        req.BackText,
		Transliteration: req.Transliteration,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCardResponse(card))
}

// ListCards handles GET /api/cards?folderId=&search=&limit=&offset=.
func (h *VocabHandler) ListCards(w http.ResponseWriter, r *http.Request) {
	input := vocab.ListCardsInput{
		Search: r.URL.Query().Get("search"),
		Limit:  queryInt(r, "limit"),
		Offset: queryInt(r, "offset"),
	}

	if raw := r.URL.Query().Get("folderId"); raw != "" {
		folderID, err := uuid.Parse(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid folderId")
			return
		}
		input.FolderID = &folderID
	}

	cards, err := h.svc.ListCards(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]cardResponse, 0, len(cards))
	for _, c := range cards {
		resp = append(resp, toCardResponse(c))
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetCard handles GET /api/cards/{id}.
func (h *VocabHandler) GetCard(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	card, err := h.svc.GetCard(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCardResponse(card))
}

// UpdateCard handles PATCH /api/cards/{id}.
func (h *VocabHandler) UpdateCard(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req updateCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	card, err := h.svc.UpdateCard(r.Context(), vocab.UpdateCardInput{
		CardID:          id,
		FrontText:       req.FrontText,
		BackText:        req.BackText,
		Transliteration: req.Transliteration,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCardResponse(card))
}

// DeleteCard handles DELETE /api/cards/{id}.
func (h *VocabHandler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteCard(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// pathUUID parses a UUID path segment, writing a 400 on failure.
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// queryInt parses an integer query parameter; missing or malformed is 0.
func queryInt(r *http.Request, name string) int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return 0
	}
	return v
}

func toFolderResponse(f domain.Folder) folderResponse {
	return folderResponse{
		ID:        f.ID.String(),
		Name:      f.Name,
		CardCount: f.CardCount,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

func toCardResponse(c domain.Flashcard) cardResponse {
	return cardResponse{
		ID:              c.ID.String(),
		FolderID:        c.FolderID.String(),
		FrontText:       c.FrontText,
		BackText:        c.BackText,
		Transliteration: c.Transliteration,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}
