package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/thaivocab-backend/internal/domain"
)

func TestMapError_Nil(t *testing.T) {
	t.Parallel()

	if got := MapError(nil, "flashcard", uuid.New().String()); got != nil {
		t.Errorf("MapError(nil) = %v, want nil", got)
	}
}

func TestMapError_NoRows(t *testing.T) {
	t.Parallel()

	id := uuid.New().String()
	got := MapError(pgx.ErrNoRows, "flashcard", id)

	if got == nil {
		t.Fatal("MapError(ErrNoRows) = nil, want error")
	}
	if !errors.Is(got, domain.ErrNotFound) {
		t.Errorf("MapError(ErrNoRows) does not wrap domain.ErrNotFound: %v", got)
	}
	if want := fmt.Sprintf("flashcard %s: not found", id); got.Error() != want {
		t.Errorf("Error() = %q, want %q", got.Error(), want)
	}
}

func TestMapError_WrappedNoRows(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("scan row: %w", pgx.ErrNoRows)
	if got := MapError(wrapped, "folder", "x"); !errors.Is(got, domain.ErrNotFound) {
		t.Errorf("wrapped ErrNoRows does not map to domain.ErrNotFound: %v", got)
	}
}

func TestMapError_PgCodes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code string
		want error
	}{
		{"23505", domain.ErrAlreadyExists},
		{"23503", domain.ErrNotFound},
		{"23514", domain.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			t.Parallel()
			pgErr := &pgconn.PgError{Code: tt.code}
			got := MapError(pgErr, "flashcard", "x")
			if !errors.Is(got, tt.want) {
				t.Errorf("code %s: got %v, want wrap of %v", tt.code, got, tt.want)
			}
		})
	}
}

func TestMapError_ContextErrorsPassThrough(t *testing.T) {
	t.Parallel()

	for _, ctxErr := range []error{context.Canceled, context.DeadlineExceeded} {
		got := MapError(ctxErr, "flashcard", "x")
		if !errors.Is(got, ctxErr) {
			t.Errorf("context error not passed through: %v", got)
		}
		if errors.Is(got, domain.ErrNotFound) {
			t.Errorf("context error wrongly mapped to domain error: %v", got)
		}
	}
}

func TestMapError_UnknownErrorWrapped(t *testing.T) {
	t.Parallel()

	base := errors.New("connection reset")
	got := MapError(base, "folder", "y")
	if !errors.Is(got, base) {
		t.Errorf("unknown error not wrapped: %v", got)
	}
}
