package vocab

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/thaivocab-backend/internal/adapter/postgres/flashcard"
	"github.com/heartmarshall/thaivocab-backend/internal/domain"
)

// CreateCard creates a flashcard in a folder. Duplicates are detected on the
// normalized front text, so "  กิน " and "กิน" count as the same card.
func (s *Service) CreateCard(ctx context.Context, input CreateCardInput) (domain.Flashcard, error) {
	if err := input.Validate(); err != nil {
		return domain.Flashcard{}, err
	}

	front := strings.TrimSpace(input.FrontText)
	normalized := domain.NormalizeText(front)

	var created domain.Flashcard
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.folders.GetByID(txCtx, input.FolderID); err != nil {
			return fmt.Errorf("get folder: %w", err)
		}

		count, err := s.cards.CountByFolder(txCtx, input.FolderID)
		if err != nil {
			return fmt.Errorf("count cards: %w", err)
		}
		if count >= s.cfg.MaxCardsPerFolder {
			return domain.NewValidationError("cards",
				fmt.Sprintf("folder limit reached (max %d)", s.cfg.MaxCardsPerFolder))
		}

		_, err = s.cards.GetByNormalizedFront(txCtx, input.FolderID, normalized)
		if err == nil {
			return fmt.Errorf("card %q: %w", front, domain.ErrAlreadyExists)
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("check duplicate: %w", err)
		}

		created, err = s.cards.Create(txCtx, domain.Flashcard{
			FolderID:        input.FolderID,
			FrontText:       front,
			FrontNormalized: normalized,
			BackText:        strings.TrimSpace(input.BackText),
			Transliteration: trimOrNil(input.Transliteration),
		})
		if err != nil {
			return fmt.Errorf("create card: %w", err)
		}

		return nil
	})
	if err != nil {
		return domain.Flashcard{}, err
	}

	s.log.InfoContext(ctx, "card created",
		slog.String("card_id", created.ID.String()),
		slog.String("folder_id", input.FolderID.String()),
	)

	return created, nil
}

// GetCard returns a flashcard by ID.
func (s *Service) GetCard(ctx context.Context, cardID uuid.UUID) (domain.Flashcard, error) {
	if cardID == uuid.Nil {
		return domain.Flashcard{}, domain.NewValidationError("card_id", "required")
	}
	return s.cards.GetByID(ctx, cardID)
}

// ListCards returns flashcards matching the filter, newest first.
func (s *Service) ListCards(ctx context.Context, input ListCardsInput) ([]domain.Flashcard, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	return s.cards.List(ctx, flashcard.ListFilter{
		FolderID: input.FolderID,
		Search:   domain.NormalizeText(input.Search),
		Limit:    input.Limit,
		Offset:   input.Offset,
	})
}

// UpdateCard rewrites the provided fields of a flashcard. Changing the front
// text re-normalizes it and re-checks for duplicates within the folder.
func (s *Service) UpdateCard(ctx context.Context, input UpdateCardInput) (domain.Flashcard, error) {
	if err := input.Validate(); err != nil {
		return domain.Flashcard{}, err
	}

	var updated domain.Flashcard
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		card, err := s.cards.GetByID(txCtx, input.CardID)
		if err != nil {
			return fmt.Errorf("get card: %w", err)
		}

		if input.FrontText != nil {
			front := strings.TrimSpace(*input.FrontText)
			normalized := domain.NormalizeText(front)
			if normalized != card.FrontNormalized {
				other, err := s.cards.GetByNormalizedFront(txCtx, card.FolderID, normalized)
				if err == nil && other.ID != card.ID {
					return fmt.Errorf("card %q: %w", front, domain.ErrAlreadyExists)
				}
				if err != nil && !errors.Is(err, domain.ErrNotFound) {
					return fmt.Errorf("check duplicate: %w", err)
				}
			}
			card.FrontText = front
			card.FrontNormalized = normalized
		}
		if input.BackText != nil {
			card.BackText = strings.TrimSpace(*input.BackText)
		}
		if input.Transliteration != nil {
			card.Transliteration = trimOrNil(input.Transliteration)
		}

		if err := s.cards.Update(txCtx, card); err != nil {
			return fmt.Errorf("update card: %w", err)
		}

		updated = card
		return nil
	})
	if err != nil {
		return domain.Flashcard{}, err
	}

	s.log.InfoContext(ctx, "card updated",
		slog.String("card_id", input.CardID.String()),
	)

	return updated, nil
}

// DeleteCard removes a flashcard by ID.
func (s *Service) DeleteCard(ctx context.Context, cardID uuid.UUID) error {
	if cardID == uuid.Nil {
		return domain.NewValidationError("card_id", "required")
	}

	if err := s.cards.Delete(ctx, cardID); err != nil {
		return fmt.Errorf("delete card: %w", err)
	}

	s.log.InfoContext(ctx, "card deleted",
		slog.String("card_id", cardID.String()),
	)

	return nil
}

// trimOrNil trims whitespace. Returns nil if the pointer is nil or the
// trimmed result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
