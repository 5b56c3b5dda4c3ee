// Package impex implements JSON export and import of the whole card library.
package impex

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/thaivocab-backend/internal/adapter/postgres/flashcard"
	"github.com/heartmarshall/thaivocab-backend/internal/config"
	"github.com/heartmarshall/thaivocab-backend/internal/domain"
)

type folderRepo interface {
	ListAll(ctx context.Context) ([]domain.Folder, error)
	Create(ctx context.Context, name string) (domain.Folder, error)
}

type cardRepo interface {
	List(ctx context.Context, filter flashcard.ListFilter) ([]domain.Flashcard, error)
	GetByNormalizedFront(ctx context.Context, folderID uuid.UUID, frontNormalized string) (domain.Flashcard, error)
	Create(ctx context.Context, card domain.Flashcard) (domain.Flashcard, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides export and import operations.
type Service struct {
	folders folderRepo
	cards   cardRepo
	tx      txManager
	cfg     config.VocabConfig
	log     *slog.Logger
}

// NewService creates a new Impex service.
func NewService(
	log *slog.Logger,
	folders folderRepo,
	cards cardRepo,
	tx txManager,
	cfg config.VocabConfig,
) *Service {
	return &Service{
		folders: folders,
		cards:   cards,
		tx:      tx,
		cfg:     cfg,
		log:     log.With("service", "impex"),
	}
}
