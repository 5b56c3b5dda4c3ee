package testhelper

import (
	"context"
	"testing"
)

// TestSetupTestDB verifies the container starts, migrations apply, and the
// seed helpers produce rows the schema accepts.
func TestSetupTestDB(t *testing.T) {
	t.Parallel()
	pool := SetupTestDB(t)
	ctx := context.Background()

	var one int
	if err := pool.QueryRow(ctx, "SELECT 1").Scan(&one); err != nil {
		t.Fatalf("SELECT 1: %v", err)
	}

	folder := SeedFolder(t, pool)
	card := SeedFlashcard(t, pool, folder.ID, "สวัสดี")

	var count int
	if err := pool.QueryRow(ctx,
		"SELECT count(*) FROM flashcards WHERE folder_id = $1", folder.ID,
	).Scan(&count); err != nil {
		t.Fatalf("count flashcards: %v", err)
	}
	if count != 1 {
		t.Errorf("flashcards in folder: got %d, want 1", count)
	}
	if card.FrontNormalized == "" {
		t.Error("seeded flashcard has empty front_normalized")
	}
}
