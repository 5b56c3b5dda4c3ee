package vocab

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/thaivocab-backend/internal/domain"
)

const (
	maxFolderNameLen = 100
	maxFrontTextLen  = 500
	maxBackTextLen   = 500
)

// CreateFolderInput holds the parameters for creating a folder.
type CreateFolderInput struct {
	Name string
}

// Validate checks all fields and collects all errors.
func (i CreateFolderInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if utf8.RuneCountInString(name) > maxFolderNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RenameFolderInput holds the parameters for renaming a folder.
type RenameFolderInput struct {
	FolderID uuid.UUID
	Name     string
}

// Validate checks all fields and collects all errors.
func (i RenameFolderInput) Validate() error {
	var errs []domain.FieldError

	if i.FolderID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "folder_id", Message: "required"})
	}
	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if utf8.RuneCountInString(name) > maxFolderNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateCardInput holds the parameters for creating a flashcard.
type CreateCardInput struct {
	FolderID        uuid.UUID
	FrontText       string
	BackText        string
	Transliteration *string
}

// Validate checks all fields and collects all errors.
func (i CreateCardInput) Validate() error {
	var errs []domain.FieldError

	if i.FolderID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "folder_id", Message: "required"})
	}
	front := strings.TrimSpace(i.FrontText)
	if front == "" {
		errs = append(errs, domain.FieldError{Field: "front_text", Message: "required"})
	}
	if utf8.RuneCountInString(front) > maxFrontTextLen {
		errs = append(errs, domain.FieldError{Field: "front_text", Message: "max 500 characters"})
	}
	back := strings.TrimSpace(i.BackText)
	if back == "" {
		errs = append(errs, domain.FieldError{Field: "back_text", Message: "required"})
	}
	if utf8.RuneCountInString(back) > maxBackTextLen {
		errs = append(errs, domain.FieldError{Field: "back_text", Message: "max 500 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateCardInput holds the parameters for updating a flashcard.
// Nil pointer fields are left unchanged.
type UpdateCardInput struct {
	CardID          uuid.UUID
	FrontText       *string
	BackText        *string
	Transliteration *string
}

// Validate checks all fields and collects all errors.
func (i UpdateCardInput) Validate() error {
	var errs []domain.FieldError

	if i.CardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "card_id", Message: "required"})
	}
	if i.FrontText == nil && i.BackText == nil && i.Transliteration == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.FrontText != nil {
		front := strings.TrimSpace(*i.FrontText)
		if front == "" {
			errs = append(errs, domain.FieldError{Field: "front_text", Message: "required"})
		}
		if utf8.RuneCountInString(front) > maxFrontTextLen {
			errs = append(errs, domain.FieldError{Field: "front_text", Message: "max 500 characters"})
		}
	}
	if i.BackText != nil {
		back := strings.TrimSpace(*i.BackText)
		if back == "" {
			errs = append(errs, domain.FieldError{Field: "back_text", Message: "required"})
		}
		if utf8.RuneCountInString(back) > maxBackTextLen {
			errs = append(errs, domain.FieldError{Field: "back_text", Message: "max 500 characters"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListCardsInput narrows ListCards results.
type ListCardsInput struct {
	FolderID *uuid.UUID
	Search   string
	Limit    int
	Offset   int
}

// Validate checks all fields and collects all errors.
func (i ListCardsInput) Validate() error {
	var errs []domain.FieldError

	if i.FolderID != nil && *i.FolderID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "folder_id", Message: "must not be the zero UUID"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must not be negative"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
