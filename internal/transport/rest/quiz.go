package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/thaivocab-backend/internal/service/quiz"
)

// quizService defines the minimal interface needed by QuizHandler.
type quizService interface {
	Generate(ctx context.Context, input quiz.GenerateInput) (quiz.Quiz, error)
}

// QuizHandler serves quiz REST endpoints.
type QuizHandler struct {
	svc quizService
	log *slog.Logger
}

// NewQuizHandler creates a QuizHandler.
func NewQuizHandler(svc quizService, logger *slog.Logger) *QuizHandler {
	return &QuizHandler{svc: svc, log: logger.With("handler", "quiz")}
}

type generateQuizRequest struct {
	FolderID      string `json:"folderId"`
	QuestionCount int    `json:"questionCount"`
}

type quizResponse struct {
	FolderID  string             `json:"folderId"`
	Questions []questionResponse `json:"questions"`
}

type questionResponse struct {
	CardID          string   `json:"cardId"`
	Prompt          string   `json:"prompt"`
	Transliteration *string  `json:"transliteration,omitempty"`
	Choices         []string `json:"choices"`
	AnswerIndex     int      `json:"answerIndex"`
}

// Generate handles POST /api/quiz.
func (h *QuizHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	folderID, err := uuid.Parse(req.FolderID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid folderId")
		return
	}

	result, err := h.svc.Generate(r.Context(), quiz.GenerateInput{
		FolderID:      folderID,
		QuestionCount: req.QuestionCount,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := quizResponse{
		FolderID:  result.FolderID.String(),
		Questions: make([]questionResponse, 0, len(result.Questions)),
	}
	for _, q := range result.Questions {
		resp.Questions = append(resp.Questions, questionResponse{
			CardID:          q.CardID.String(),
			Prompt:          q.Prompt,
			Transliteration: q.Transliteration,
			Choices:         q.Choices,
			AnswerIndex:     q.AnswerIndex,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}
