package quiz

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"

	"github.com/heartmarshall/thaivocab-backend/internal/adapter/postgres/flashcard"
	"github.com/heartmarshall/thaivocab-backend/internal/config"
	"github.com/heartmarshall/thaivocab-backend/internal/domain"
)

type folderRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (domain.Folder, error)
}

func (m *folderRepoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.Folder, error) {
	return m.GetByIDFunc(ctx, id)
}

type cardRepoMock struct {
	ListFunc func(ctx context.Context, filter flashcard.ListFilter) ([]domain.Flashcard, error)
}

func (m *cardRepoMock) List(ctx context.Context, filter flashcard.ListFilter) ([]domain.Flashcard, error) {
	return m.ListFunc(ctx, filter)
}

func testCards(n int) []domain.Flashcard {
	cards := make([]domain.Flashcard, n)
	for i := range cards {
		cards[i] = domain.Flashcard{
			ID:        uuid.New(),
			FrontText: fmt.Sprintf("คำ%d", i),
			BackText:  fmt.Sprintf("word %d", i),
		}
	}
	return cards
}

func newTestService(cards []domain.Flashcard) *Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	folders := &folderRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (domain.Folder, error) {
			return domain.Folder{ID: id}, nil
		},
	}
	repo := &cardRepoMock{
		ListFunc: func(ctx context.Context, filter flashcard.ListFilter) ([]domain.Flashcard, error) {
			return cards, nil
		},
	}
	cfg := config.QuizConfig{DefaultQuestionCount: 5, ChoicesPerQuestion: 4}
	return NewService(logger, folders, repo, cfg, WithSeedFn(func() int64 { return 42 }))
}

func TestGenerate_Success(t *testing.T) {
	t.Parallel()

	svc := newTestService(testCards(10))
	quiz, err := svc.Generate(context.Background(), GenerateInput{FolderID: uuid.New()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(quiz.Questions) != 5 {
		t.Fatalf("questions: got %d, want 5 (default)", len(quiz.Questions))
	}
	for qi, q := range quiz.Questions {
		if len(q.Choices) != 4 {
			t.Errorf("question %d: %d choices, want 4", qi, len(q.Choices))
		}
		if q.AnswerIndex < 0 || q.AnswerIndex >= len(q.Choices) {
			t.Errorf("question %d: answer index %d out of range", qi, q.AnswerIndex)
		}
		seen := make(map[string]struct{})
		for _, c := range q.Choices {
			if _, dup := seen[c]; dup {
				t.Errorf("question %d: duplicate choice %q", qi, c)
			}
			seen[c] = struct{}{}
		}
	}
}

func TestGenerate_AnswerIsTheCardsBack(t *testing.T) {
	t.Parallel()

	cards := testCards(6)
	backByFront := make(map[string]string, len(cards))
	for _, c := range cards {
		backByFront[c.FrontText] = c.BackText
	}

	svc := newTestService(cards)
	quiz, err := svc.Generate(context.Background(), GenerateInput{FolderID: uuid.New(), QuestionCount: 6})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for qi, q := range quiz.Questions {
		want := backByFront[q.Prompt]
		if got := q.Choices[q.AnswerIndex]; got != want {
			t.Errorf("question %d: answer %q, want %q", qi, got, want)
		}
	}
}

func TestGenerate_CapsAtCardCount(t *testing.T) {
	t.Parallel()

	svc := newTestService(testCards(4))
	quiz, err := svc.Generate(context.Background(), GenerateInput{FolderID: uuid.New(), QuestionCount: 100})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(quiz.Questions) != 4 {
		t.Errorf("questions: got %d, want 4", len(quiz.Questions))
	}
}

func TestGenerate_TooFewDistinctBacks(t *testing.T) {
	t.Parallel()

	// 5 cards but only 2 distinct back texts
	cards := testCards(5)
	for i := range cards {
		cards[i].BackText = fmt.Sprintf("word %d", i%2)
	}

	svc := newTestService(cards)
	_, err := svc.Generate(context.Background(), GenerateInput{FolderID: uuid.New()})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestGenerate_FolderNotFound(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	folders := &folderRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (domain.Folder, error) {
			return domain.Folder{}, domain.ErrNotFound
		},
	}
	repo := &cardRepoMock{}
	svc := NewService(logger, folders, repo, config.QuizConfig{DefaultQuestionCount: 5, ChoicesPerQuestion: 4})

	_, err := svc.Generate(context.Background(), GenerateInput{FolderID: uuid.New()})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestGenerate_ZeroFolderID(t *testing.T) {
	t.Parallel()

	svc := newTestService(testCards(10))
	_, err := svc.Generate(context.Background(), GenerateInput{})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	t.Parallel()

	cards := testCards(8)
	a, err := newTestService(cards).Generate(context.Background(), GenerateInput{FolderID: uuid.New()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := newTestService(cards).Generate(context.Background(), GenerateInput{FolderID: uuid.New()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(a.Questions) != len(b.Questions) {
		t.Fatalf("question counts differ: %d vs %d", len(a.Questions), len(b.Questions))
	}
	for i := range a.Questions {
		if a.Questions[i].Prompt != b.Questions[i].Prompt {
			t.Errorf("question %d prompt differs with same seed", i)
		}
	}
}
