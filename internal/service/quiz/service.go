// Package quiz builds multiple-choice quizzes from the cards in a folder.
package quiz

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/thaivocab-backend/internal/adapter/postgres/flashcard"
	"github.com/heartmarshall/thaivocab-backend/internal/config"
	"github.com/heartmarshall/thaivocab-backend/internal/domain"
)

type folderRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Folder, error)
}

type cardRepo interface {
	List(ctx context.Context, filter flashcard.ListFilter) ([]domain.Flashcard, error)
}

// Service generates quizzes.
type Service struct {
	folders folderRepo
	cards   cardRepo
	cfg     config.QuizConfig
	seedFn  func() int64
	log     *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithSeedFn overrides the RNG seed source. Used by tests for determinism.
func WithSeedFn(fn func() int64) Option {
	return func(s *Service) {
		s.seedFn = fn
	}
}

// NewService creates a new Quiz service.
func NewService(
	log *slog.Logger,
	folders folderRepo,
	cards cardRepo,
	cfg config.QuizConfig,
	opts ...Option,
) *Service {
	s := &Service{
		folders: folders,
		cards:   cards,
		cfg:     cfg,
		seedFn:  func() int64 { return time.Now().UnixNano() },
		log:     log.With("service", "quiz"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
