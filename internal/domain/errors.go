package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrConflict      = errors.New("conflict")
)

// Provider error taxonomy. Each pipeline stage fails with exactly one of
// these; the orchestrator classifies severity by stage, not by cause.
var (
	// ErrTranslationUnavailable means the coarse translation source (and its
	// fallback) could not be reached or returned garbage. Fatal for a query.
	ErrTranslationUnavailable = errors.New("translation unavailable")

	// ErrAnalysisUnavailable means the linguistic analysis source failed.
	// Fatal for the deep-analysis phase; the coarse result stays visible.
	ErrAnalysisUnavailable = errors.New("analysis unavailable")

	// ErrEnrichmentUnavailable means the synonym source failed. Always
	// swallowed by the orchestrator, never surfaced.
	ErrEnrichmentUnavailable = errors.New("enrichment unavailable")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
