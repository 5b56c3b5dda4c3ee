package rest

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/thaivocab-backend/internal/domain"
	"github.com/heartmarshall/thaivocab-backend/internal/pipeline"
)

// translationPipeline defines the minimal interface needed by TranslateHandler.
type translationPipeline interface {
	Submit(query string) bool
	Snapshot() pipeline.Snapshot
}

// TranslateHandler serves the progressive translation endpoints.
type TranslateHandler struct {
	pipe   translationPipeline
	events *Broadcaster
	log    *slog.Logger
}

// NewTranslateHandler creates a TranslateHandler. events may be nil, in which
// case the SSE endpoint reports 501.
func NewTranslateHandler(pipe translationPipeline, events *Broadcaster, logger *slog.Logger) *TranslateHandler {
	return &TranslateHandler{
		pipe:   pipe,
		events: events,
		log:    logger.With("handler", "translate"),
	}
}

type translateRequest struct {
	Query string `json:"query"`
}

type submitResponse struct {
	Accepted bool             `json:"accepted"`
	Snapshot snapshotResponse `json:"snapshot"`
}

type snapshotResponse struct {
	State  string          `json:"state"`
	Result *resultResponse `json:"result,omitempty"`
}

type resultResponse struct {
	OriginalText    string            `json:"originalText"`
	TranslatedText  string            `json:"translatedText"`
	Transliteration string            `json:"transliteration"`
	Segments        []segmentResponse `json:"segments,omitempty"`
	ExampleThai     string            `json:"exampleThai,omitempty"`
	ExampleEnglish  string            `json:"exampleEnglish,omitempty"`
}

type segmentResponse struct {
	Text            string   `json:"text"`
	Transliteration string   `json:"transliteration"`
	Gloss           string   `json:"gloss"`
	PartOfSpeech    string   `json:"partOfSpeech"`
	// Synonyms is null until enrichment ran for this segment; an empty
	// array means enrichment found nothing.
	Synonyms []string `json:"synonyms"`
}

// Translate handles POST /api/translate. Submitting supersedes any in-flight
// query; an empty query is rejected without touching pipeline state.
func (h *TranslateHandler) Translate(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	accepted := h.pipe.Submit(req.Query)
	status := http.StatusAccepted
	if !accepted {
		status = http.StatusBadRequest
	}

	writeJSON(w, status, submitResponse{
		Accepted: accepted,
		Snapshot: toSnapshotResponse(h.pipe.Snapshot()),
	})
}

// GetSnapshot handles GET /api/translate. It returns the current pipeline
// state and, when present, the result.
func (h *TranslateHandler) GetSnapshot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toSnapshotResponse(h.pipe.Snapshot()))
}

// Events handles GET /api/translate/events: a Server-Sent Events stream of
// snapshots. The current snapshot is sent immediately so late subscribers
// start from the live state.
func (h *TranslateHandler) Events(w http.ResponseWriter, r *http.Request) {
	if h.events == nil {
		writeError(w, http.StatusNotImplemented, "event stream disabled")
		return
	}
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	snaps, cancel := h.events.Subscribe()
	defer cancel()

	if err := writeEvent(w, h.pipe.Snapshot()); err != nil {
		return
	}
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case snap := <-snaps:
			if err := writeEvent(w, snap); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}

func writeEvent(w http.ResponseWriter, snap pipeline.Snapshot) error {
	data, err := json.Marshal(toSnapshotResponse(snap))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: snapshot\ndata: %s\n\n", data)
	return err
}

func toSnapshotResponse(snap pipeline.Snapshot) snapshotResponse {
	resp := snapshotResponse{State: string(snap.State)}
	if snap.Result != nil {
		resp.Result = toResultResponse(snap.Result)
	}
	return resp
}

func toResultResponse(result *domain.TranslationResult) *resultResponse {
	resp := &resultResponse{
		OriginalText:    result.OriginalText,
		TranslatedText:  result.TranslatedText,
		Transliteration: result.Transliteration,
		ExampleThai:     result.ExampleThai,
		ExampleEnglish:  result.ExampleEnglish,
	}
	for _, seg := range result.Segments {
		resp.Segments = append(resp.Segments, segmentResponse{
			Text:            seg.Text,
			Transliteration: seg.Transliteration,
			Gloss:           seg.Gloss,
			PartOfSpeech:    string(seg.PartOfSpeech),
			Synonyms:        seg.Synonyms,
		})
	}
	return resp
}
