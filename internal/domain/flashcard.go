package domain

import (
	"time"

	"github.com/google/uuid"
)

// Folder groups a user's flashcards.
type Folder struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time

	CardCount int
}

// Flashcard is a saved vocabulary card. FrontText holds the Thai side,
// BackText the English gloss. Transliteration is optional and usually
// carried over from a pipeline result.
type Flashcard struct {
	ID              uuid.UUID
	FolderID        uuid.UUID
	FrontText       string
	FrontNormalized string
	BackText        string
	Transliteration *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
