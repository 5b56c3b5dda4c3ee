package vocab

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/thaivocab-backend/internal/adapter/postgres/flashcard"
	"github.com/heartmarshall/thaivocab-backend/internal/domain"
)

type folderRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (domain.Folder, error)
	ListAllFunc func(ctx context.Context) ([]domain.Folder, error)
	CreateFunc  func(ctx context.Context, name string) (domain.Folder, error)
	RenameFunc  func(ctx context.Context, id uuid.UUID, name string) error
	DeleteFunc  func(ctx context.Context, id uuid.UUID) error

	createCalls int
}

func (m *folderRepoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.Folder, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *folderRepoMock) ListAll(ctx context.Context) ([]domain.Folder, error) {
	return m.ListAllFunc(ctx)
}

func (m *folderRepoMock) Create(ctx context.Context, name string) (domain.Folder, error) {
	m.createCalls++
	return m.CreateFunc(ctx, name)
}

func (m *folderRepoMock) Rename(ctx context.Context, id uuid.UUID, name string) error {
	return m.RenameFunc(ctx, id, name)
}

func (m *folderRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	return m.DeleteFunc(ctx, id)
}

type cardRepoMock struct {
	GetByIDFunc              func(ctx context.Context, id uuid.UUID) (domain.Flashcard, error)
	GetByNormalizedFrontFunc func(ctx context.Context, folderID uuid.UUID, frontNormalized string) (domain.Flashcard, error)
	ListFunc                 func(ctx context.Context, filter flashcard.ListFilter) ([]domain.Flashcard, error)
	CountByFolderFunc        func(ctx context.Context, folderID uuid.UUID) (int, error)
	CreateFunc               func(ctx context.Context, card domain.Flashcard) (domain.Flashcard, error)
	UpdateFunc               func(ctx context.Context, card domain.Flashcard) error
	DeleteFunc               func(ctx context.Context, id uuid.UUID) error

	createCalls int
	updateCalls int
}

func (m *cardRepoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.Flashcard, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *cardRepoMock) GetByNormalizedFront(ctx context.Context, folderID uuid.UUID, frontNormalized string) (domain.Flashcard, error) {
	return m.GetByNormalizedFrontFunc(ctx, folderID, frontNormalized)
}

func (m *cardRepoMock) List(ctx context.Context, filter flashcard.ListFilter) ([]domain.Flashcard, error) {
	return m.ListFunc(ctx, filter)
}

func (m *cardRepoMock) CountByFolder(ctx context.Context, folderID uuid.UUID) (int, error) {
	return m.CountByFolderFunc(ctx, folderID)
}

func (m *cardRepoMock) Create(ctx context.Context, card domain.Flashcard) (domain.Flashcard, error) {
	m.createCalls++
	return m.CreateFunc(ctx, card)
}

func (m *cardRepoMock) Update(ctx context.Context, card domain.Flashcard) error {
	m.updateCalls++
	return m.UpdateFunc(ctx, card)
}

func (m *cardRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	return m.DeleteFunc(ctx, id)
}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.RunInTxFunc(ctx, fn)
}

// passthroughTx returns a txManagerMock that simply calls the function with
// the same context.
func passthroughTx() *txManagerMock {
	return &txManagerMock{
		RunInTxFunc: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	}
}
