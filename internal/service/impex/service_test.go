package impex

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/heartmarshall/thaivocab-backend/internal/adapter/postgres/flashcard"
	"github.com/heartmarshall/thaivocab-backend/internal/config"
	"github.com/heartmarshall/thaivocab-backend/internal/domain"
)

type folderRepoMock struct {
	ListAllFunc func(ctx context.Context) ([]domain.Folder, error)
	CreateFunc  func(ctx context.Context, name string) (domain.Folder, error)
}

func (m *folderRepoMock) ListAll(ctx context.Context) ([]domain.Folder, error) {
	return m.ListAllFunc(ctx)
}

func (m *folderRepoMock) Create(ctx context.Context, name string) (domain.Folder, error) {
	return m.CreateFunc(ctx, name)
}

type cardRepoMock struct {
	ListFunc                 func(ctx context.Context, filter flashcard.ListFilter) ([]domain.Flashcard, error)
	GetByNormalizedFrontFunc func(ctx context.Context, folderID uuid.UUID, frontNormalized string) (domain.Flashcard, error)
	CreateFunc               func(ctx context.Context, card domain.Flashcard) (domain.Flashcard, error)
}

func (m *cardRepoMock) List(ctx context.Context, filter flashcard.ListFilter) ([]domain.Flashcard, error) {
	return m.ListFunc(ctx, filter)
}

func (m *cardRepoMock) GetByNormalizedFront(ctx context.Context, folderID uuid.UUID, frontNormalized string) (domain.Flashcard, error) {
	return m.GetByNormalizedFrontFunc(ctx, folderID, frontNormalized)
}

func (m *cardRepoMock) Create(ctx context.Context, card domain.Flashcard) (domain.Flashcard, error) {
	return m.CreateFunc(ctx, card)
}

type txManagerMock struct {
	calls int
}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

func newTestService(folders *folderRepoMock, cards *cardRepoMock, tx *txManagerMock) *Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := config.VocabConfig{
		MaxCardsPerFolder: 100,
		MaxFolders:        10,
		ImportChunkSize:   2,
		ExportMaxCards:    5,
	}
	return NewService(logger, folders, cards, tx, cfg)
}

func TestExport_GroupsCardsByFolder(t *testing.T) {
	t.Parallel()

	f1 := domain.Folder{ID: uuid.New(), Name: "Food"}
	f2 := domain.Folder{ID: uuid.New(), Name: "Animals"}
	translit := "gin"

	folders := &folderRepoMock{
		ListAllFunc: func(ctx context.Context) ([]domain.Folder, error) {
			return []domain.Folder{f1, f2}, nil
		},
	}
	cards := &cardRepoMock{
		ListFunc: func(ctx context.Context, filter flashcard.ListFilter) ([]domain.Flashcard, error) {
			return []domain.Flashcard{
				{FolderID: f1.ID, FrontText: "กิน", BackText: "eat", Transliteration: &translit},
				{FolderID: f1.ID, FrontText: "ข้าว", BackText: "rice"},
			}, nil
		},
	}

	svc := newTestService(folders, cards, &txManagerMock{})
	data, err := svc.Export(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var doc ExportDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("unmarshal export: %v", err)
	}
	if doc.Version != documentVersion {
		t.Errorf("version: got %d, want %d", doc.Version, documentVersion)
	}
	if len(doc.Folders) != 2 {
		t.Fatalf("folders: got %d, want 2", len(doc.Folders))
	}
	if len(doc.Folders[0].Cards) != 2 {
		t.Errorf("Food cards: got %d, want 2", len(doc.Folders[0].Cards))
	}
	if doc.Folders[0].Cards[0].Transliteration == nil {
		t.Error("transliteration dropped in export")
	}
	if doc.Folders[1].Cards == nil || len(doc.Folders[1].Cards) != 0 {
		t.Errorf("empty folder must export an empty card list, got %v", doc.Folders[1].Cards)
	}
}

func TestExport_TooManyCards(t *testing.T) {
	t.Parallel()

	folders := &folderRepoMock{
		ListAllFunc: func(ctx context.Context) ([]domain.Folder, error) {
			return []domain.Folder{}, nil
		},
	}
	cards := &cardRepoMock{
		ListFunc: func(ctx context.Context, filter flashcard.ListFilter) ([]domain.Flashcard, error) {
			return make([]domain.Flashcard, 6), nil
		},
	}

	svc := newTestService(folders, cards, &txManagerMock{})
	_, err := svc.Export(context.Background())
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func exportJSON(t *testing.T, doc ExportDocument) []byte {
	t.Helper()
	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return data
}

func TestImport_CreatesFoldersAndCards(t *testing.T) {
	t.Parallel()

	var createdCards []domain.Flashcard
	folders := &folderRepoMock{
		ListAllFunc: func(ctx context.Context) ([]domain.Folder, error) {
			return []domain.Folder{}, nil
		},
		CreateFunc: func(ctx context.Context, name string) (domain.Folder, error) {
			return domain.Folder{ID: uuid.New(), Name: name}, nil
		},
	}
	cards := &cardRepoMock{
		GetByNormalizedFrontFunc: func(ctx context.Context, folderID uuid.UUID, front string) (domain.Flashcard, error) {
			return domain.Flashcard{}, domain.ErrNotFound
		},
		CreateFunc: func(ctx context.Context, card domain.Flashcard) (domain.Flashcard, error) {
			createdCards = append(createdCards, card)
			return card, nil
		},
	}
	tx := &txManagerMock{}

	svc := newTestService(folders, cards, tx)
	data := exportJSON(t, ExportDocument{
		Version: documentVersion,
		Folders: []ExportFolder{
			{Name: "Food", Cards: []ExportCard{
				{FrontText: "กิน", BackText: "eat"},
				{FrontText: "ข้าว", BackText: "rice"},
				{FrontText: "น้ำ", BackText: "water"},
			}},
		},
	})

	report, err := svc.Import(context.Background(), data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.FoldersCreated != 1 {
		t.Errorf("FoldersCreated: got %d, want 1", report.FoldersCreated)
	}
	if report.CardsImported != 3 {
		t.Errorf("CardsImported: got %d, want 3", report.CardsImported)
	}
	if len(createdCards) != 3 {
		t.Errorf("created cards: got %d, want 3", len(createdCards))
	}
	// chunk size 2 → 3 cards land in 2 transactions
	if tx.calls != 2 {
		t.Errorf("tx chunks: got %d, want 2", tx.calls)
	}
	for _, c := range createdCards {
		if c.FrontNormalized == "" {
			t.Errorf("card %q imported without normalized front", c.FrontText)
		}
	}
}

func TestImport_ReusesExistingFolderAndSkipsDuplicates(t *testing.T) {
	t.Parallel()

	existing := domain.Folder{ID: uuid.New(), Name: "Food"}
	folders := &folderRepoMock{
		ListAllFunc: func(ctx context.Context) ([]domain.Folder, error) {
			return []domain.Folder{existing}, nil
		},
		CreateFunc: func(ctx context.Context, name string) (domain.Folder, error) {
			t.Fatalf("Create called for existing folder %q", name)
			return domain.Folder{}, nil
		},
	}
	dup := domain.NormalizeText("กิน")
	cards := &cardRepoMock{
		GetByNormalizedFrontFunc: func(ctx context.Context, folderID uuid.UUID, front string) (domain.Flashcard, error) {
			if front == dup {
				return domain.Flashcard{ID: uuid.New()}, nil
			}
			return domain.Flashcard{}, domain.ErrNotFound
		},
		CreateFunc: func(ctx context.Context, card domain.Flashcard) (domain.Flashcard, error) {
			return card, nil
		},
	}

	svc := newTestService(folders, cards, &txManagerMock{})
	data := exportJSON(t, ExportDocument{
		Version: documentVersion,
		Folders: []ExportFolder{
			{Name: "Food", Cards: []ExportCard{
				{FrontText: "กิน", BackText: "eat"},
				{FrontText: "นอน", BackText: "sleep"},
			}},
		},
	})

	report, err := svc.Import(context.Background(), data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.FoldersCreated != 0 {
		t.Errorf("FoldersCreated: got %d, want 0", report.FoldersCreated)
	}
	if report.CardsImported != 1 {
		t.Errorf("CardsImported: got %d, want 1", report.CardsImported)
	}
	if report.CardsSkipped != 1 {
		t.Errorf("CardsSkipped: got %d, want 1", report.CardsSkipped)
	}
	if len(report.Skipped) != 1 || !strings.Contains(report.Skipped[0], "already exists") {
		t.Errorf("Skipped: %v", report.Skipped)
	}
}

func TestImport_SkipsBlankCards(t *testing.T) {
	t.Parallel()

	folders := &folderRepoMock{
		ListAllFunc: func(ctx context.Context) ([]domain.Folder, error) {
			return []domain.Folder{{ID: uuid.New(), Name: "Food"}}, nil
		},
	}
	cards := &cardRepoMock{
		GetByNormalizedFrontFunc: func(ctx context.Context, folderID uuid.UUID, front string) (domain.Flashcard, error) {
			return domain.Flashcard{}, domain.ErrNotFound
		},
		CreateFunc: func(ctx context.Context, card domain.Flashcard) (domain.Flashcard, error) {
			return card, nil
		},
	}

	svc := newTestService(folders, cards, &txManagerMock{})
	data := exportJSON(t, ExportDocument{
		Version: documentVersion,
		Folders: []ExportFolder{
			{Name: "Food", Cards: []ExportCard{
				{FrontText: "   ", BackText: "eat"},
				{FrontText: "กิน", BackText: ""},
			}},
		},
	})

	report, err := svc.Import(context.Background(), data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.CardsImported != 0 {
		t.Errorf("CardsImported: got %d, want 0", report.CardsImported)
	}
	if report.CardsSkipped != 2 {
		t.Errorf("CardsSkipped: got %d, want 2", report.CardsSkipped)
	}
}

func TestImport_BadJSON(t *testing.T) {
	t.Parallel()

	svc := newTestService(&folderRepoMock{}, &cardRepoMock{}, &txManagerMock{})
	_, err := svc.Import(context.Background(), []byte("{not json"))
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestImport_WrongVersion(t *testing.T) {
	t.Parallel()

	svc := newTestService(&folderRepoMock{}, &cardRepoMock{}, &txManagerMock{})
	data := exportJSON(t, ExportDocument{Version: 99})
	_, err := svc.Import(context.Background(), data)
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}
