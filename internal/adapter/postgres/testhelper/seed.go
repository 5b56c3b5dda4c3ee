package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/thaivocab-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedFolder creates a folder with a unique name and returns it.
func SeedFolder(t *testing.T, pool *pgxpool.Pool) domain.Folder {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	folder := domain.Folder{
		ID:        uuid.New(),
		Name:      "Test Folder " + uniqueSuffix(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO folders (id, name, created_at, updated_at)
		 VALUES ($1, $2, $3, $4)`,
		folder.ID, folder.Name, folder.CreatedAt, folder.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedFolder insert: %v", err)
	}

	return folder
}

// SeedFlashcard creates a flashcard in the given folder. frontText is made
// unique with a suffix so tests do not collide on the per-folder constraint.
func SeedFlashcard(t *testing.T, pool *pgxpool.Pool, folderID uuid.UUID, frontText string) domain.Flashcard {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	card := domain.Flashcard{
		ID:              uuid.New(),
		FolderID:        folderID,
		FrontText:       frontText + suffix,
		FrontNormalized: domain.NormalizeText(frontText + suffix),
		BackText:        "gloss " + suffix,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO flashcards (id, folder_id, front_text, front_normalized, back_text, transliteration, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		card.ID, card.FolderID, card.FrontText, card.FrontNormalized, card.BackText,
		card.Transliteration, card.CreatedAt, card.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedFlashcard insert: %v", err)
	}

	return card
}
