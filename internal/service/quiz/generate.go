package quiz

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/google/uuid"

	"github.com/heartmarshall/thaivocab-backend/internal/adapter/postgres/flashcard"
	"github.com/heartmarshall/thaivocab-backend/internal/domain"
)

// GenerateInput holds the parameters for generating a quiz.
type GenerateInput struct {
	FolderID uuid.UUID
	// QuestionCount of 0 means the configured default.
	QuestionCount int
}

// Validate checks all fields and collects all errors.
func (i GenerateInput) Validate() error {
	var errs []domain.FieldError

	if i.FolderID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "folder_id", Message: "required"})
	}
	if i.QuestionCount < 0 {
		errs = append(errs, domain.FieldError{Field: "question_count", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Question is one multiple-choice question. The prompt is the Thai side of a
// card; exactly one choice is its English gloss.
type Question struct {
	CardID          uuid.UUID
	Prompt          string
	Transliteration *string
	Choices         []string
	AnswerIndex     int
}

// Quiz is a generated set of questions for a folder.
type Quiz struct {
	FolderID  uuid.UUID
	Questions []Question
}

// Generate builds a quiz from the cards in a folder. Each question uses one
// card's front as the prompt and draws wrong choices from other cards' backs.
// The folder must hold at least as many cards with distinct backs as there
// are choices per question.
func (s *Service) Generate(ctx context.Context, input GenerateInput) (Quiz, error) {
	if err := input.Validate(); err != nil {
		return Quiz{}, err
	}

	questionCount := input.QuestionCount
	if questionCount == 0 {
		questionCount = s.cfg.DefaultQuestionCount
	}

	if _, err := s.folders.GetByID(ctx, input.FolderID); err != nil {
		return Quiz{}, fmt.Errorf("get folder: %w", err)
	}

	cards, err := s.cards.List(ctx, flashcard.ListFilter{FolderID: &input.FolderID})
	if err != nil {
		return Quiz{}, fmt.Errorf("list cards: %w", err)
	}

	distinctBacks := make(map[string]struct{}, len(cards))
	for _, c := range cards {
		distinctBacks[c.BackText] = struct{}{}
	}
	if len(distinctBacks) < s.cfg.ChoicesPerQuestion {
		return Quiz{}, domain.NewValidationError("folder",
			fmt.Sprintf("needs at least %d cards with distinct answers", s.cfg.ChoicesPerQuestion))
	}

	//nolint:gosec // quiz shuffling, not cryptographic
	rng := rand.New(rand.NewSource(s.seedFn()))

	shuffled := make([]domain.Flashcard, len(cards))
	copy(shuffled, cards)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if questionCount > len(shuffled) {
		questionCount = len(shuffled)
	}

	questions := make([]Question, 0, questionCount)
	for _, card := range shuffled[:questionCount] {
		questions = append(questions, s.buildQuestion(rng, card, shuffled))
	}

	s.log.InfoContext(ctx, "quiz generated",
		slog.String("folder_id", input.FolderID.String()),
		slog.Int("questions", len(questions)),
	)

	return Quiz{FolderID: input.FolderID, Questions: questions}, nil
}

// buildQuestion assembles one question: the card's back plus distractor backs
// drawn from other cards, shuffled together.
func (s *Service) buildQuestion(rng *rand.Rand, card domain.Flashcard, pool []domain.Flashcard) Question {
	choices := []string{card.BackText}
	seen := map[string]struct{}{card.BackText: {}}

	// Walk the pool from a random offset so distractors vary between runs.
	offset := rng.Intn(len(pool))
	for i := 0; i < len(pool) && len(choices) < s.cfg.ChoicesPerQuestion; i++ {
		back := pool[(offset+i)%len(pool)].BackText
		if _, dup := seen[back]; dup {
			continue
		}
		seen[back] = struct{}{}
		choices = append(choices, back)
	}

	rng.Shuffle(len(choices), func(i, j int) {
		choices[i], choices[j] = choices[j], choices[i]
	})

	answerIndex := 0
	for i, choice := range choices {
		if choice == card.BackText {
			answerIndex = i
			break
		}
	}

	return Question{
		CardID:          card.ID,
		Prompt:          card.FrontText,
		Transliteration: card.Transliteration,
		Choices:         choices,
		AnswerIndex:     answerIndex,
	}
}
