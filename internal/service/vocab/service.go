// Package vocab implements folder and flashcard management.
package vocab

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/thaivocab-backend/internal/adapter/postgres/flashcard"
	"github.com/heartmarshall/thaivocab-backend/internal/config"
	"github.com/heartmarshall/thaivocab-backend/internal/domain"
)

type folderRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Folder, error)
	ListAll(ctx context.Context) ([]domain.Folder, error)
	Create(ctx context.Context, name string) (domain.Folder, error)
	Rename(ctx context.Context, id uuid.UUID, name string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type cardRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Flashcard, error)
	GetByNormalizedFront(ctx context.Context, folderID uuid.UUID, frontNormalized string) (domain.Flashcard, error)
	List(ctx context.Context, filter flashcard.ListFilter) ([]domain.Flashcard, error)
	CountByFolder(ctx context.Context, folderID uuid.UUID) (int, error)
	Create(ctx context.Context, card domain.Flashcard) (domain.Flashcard, error)
	Update(ctx context.Context, card domain.Flashcard) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides folder and flashcard management operations.
type Service struct {
	folders folderRepo
	cards   cardRepo
	tx      txManager
	cfg     config.VocabConfig
	log     *slog.Logger
}

// NewService creates a new Vocab service.
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
		log:     log.With("service", "vocab"),
	}
}
