package vocab

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/thaivocab-backend/internal/config"
	"github.com/heartmarshall/thaivocab-backend/internal/domain"
)

func testConfig() config.VocabConfig {
	return config.VocabConfig{
		MaxCardsPerFolder: 10,
		MaxFolders:        3,
		ImportChunkSize:   2,
		ExportMaxCards:    100,
	}
}

func newTestService(folders *folderRepoMock, cards *cardRepoMock, tx *txManagerMock) *Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(logger, folders, cards, tx, testConfig())
}

func TestCreateFolder_Success(t *testing.T) {
	t.Parallel()

	folderID := uuid.New()
	folders := &folderRepoMock{
		ListAllFunc: func(ctx context.Context) ([]domain.Folder, error) {
			return []domain.Folder{}, nil
		},
		CreateFunc: func(ctx context.Context, name string) (domain.Folder, error) {
			return domain.Folder{ID: folderID, Name: name, CreatedAt: time.Now()}, nil
		},
	}

	svc := newTestService(folders, &cardRepoMock{}, passthroughTx())
	folder, err := svc.CreateFolder(context.Background(), CreateFolderInput{Name: "  Food  "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if folder.ID != folderID {
		t.Errorf("ID: got %s, want %s", folder.ID, folderID)
	}
	if folder.Name != "Food" {
		t.Errorf("name not trimmed: %q", folder.Name)
	}
}

func TestCreateFolder_EmptyName(t *testing.T) {
	t.Parallel()

	svc := newTestService(&folderRepoMock{}, &cardRepoMock{}, passthroughTx())
	_, err := svc.CreateFolder(context.Background(), CreateFolderInput{Name: "   "})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestCreateFolder_LimitReached(t *testing.T) {
	t.Parallel()

	folders := &folderRepoMock{
		ListAllFunc: func(ctx context.Context) ([]domain.Folder, error) {
			return make([]domain.Folder, 3), nil
		},
	}

	svc := newTestService(folders, &cardRepoMock{}, passthroughTx())
	_, err := svc.CreateFolder(context.Background(), CreateFolderInput{Name: "Overflow"})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
	if folders.createCalls != 0 {
		t.Errorf("Create called %d times past the limit", folders.createCalls)
	}
}

func TestCreateFolder_DuplicateName(t *testing.T) {
	t.Parallel()

	folders := &folderRepoMock{
		ListAllFunc: func(ctx context.Context) ([]domain.Folder, error) {
			return []domain.Folder{}, nil
		},
		CreateFunc: func(ctx context.Context, name string) (domain.Folder, error) {
			return domain.Folder{}, domain.ErrAlreadyExists
		},
	}

	svc := newTestService(folders, &cardRepoMock{}, passthroughTx())
	_, err := svc.CreateFolder(context.Background(), CreateFolderInput{Name: "Food"})
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Errorf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestRenameFolder_Success(t *testing.T) {
	t.Parallel()

	folderID := uuid.New()
	var gotName string
	folders := &folderRepoMock{
		RenameFunc: func(ctx context.Context, id uuid.UUID, name string) error {
			gotName = name
			return nil
		},
	}

	svc := newTestService(folders, &cardRepoMock{}, passthroughTx())
	err := svc.RenameFolder(context.Background(), RenameFolderInput{FolderID: folderID, Name: " Animals "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotName != "Animals" {
		t.Errorf("name not trimmed: %q", gotName)
	}
}

func TestRenameFolder_NotFound(t *testing.T) {
	t.Parallel()

	folders := &folderRepoMock{
		RenameFunc: func(ctx context.Context, id uuid.UUID, name string) error {
			return domain.ErrNotFound
		},
	}

	svc := newTestService(folders, &cardRepoMock{}, passthroughTx())
	err := svc.RenameFolder(context.Background(), RenameFolderInput{FolderID: uuid.New(), Name: "X"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteFolder_ZeroID(t *testing.T) {
	t.Parallel()

	svc := newTestService(&folderRepoMock{}, &cardRepoMock{}, passthroughTx())
	err := svc.DeleteFolder(context.Background(), uuid.Nil)
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestGetFolder_PassesThrough(t *testing.T) {
	t.Parallel()

	folderID := uuid.New()
	folders := &folderRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (domain.Folder, error) {
			return domain.Folder{ID: id, Name: "Food", CardCount: 7}, nil
		},
	}

	svc := newTestService(folders, &cardRepoMock{}, passthroughTx())
	folder, err := svc.GetFolder(context.Background(), folderID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if folder.CardCount != 7 {
		t.Errorf("CardCount: got %d, want 7", folder.CardCount)
	}
}
