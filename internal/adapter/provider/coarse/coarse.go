// Package coarse composes the fast and slow coarse-translation sources into
// the single Stage-1 contract the pipeline consumes: try the fast source,
// fall back to the deep one when it is unreachable.
package coarse

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/thaivocab-backend/internal/domain"
	"github.com/heartmarshall/thaivocab-backend/internal/provider"
)

// Source is one coarse-translation backend.
type Source interface {
	FetchCoarseTranslation(ctx context.Context, text string) (provider.CoarseResult, error)
}

// Fetcher tries the primary source first and falls back to the secondary.
type Fetcher struct {
	primary  Source
	fallback Source
	log      *slog.Logger
}

// NewFetcher creates a Fetcher. fallback may be nil, in which case primary
// failures are returned as-is.
func NewFetcher(primary, fallback Source, logger *slog.Logger) *Fetcher {
	return &Fetcher{
		primary:  primary,
		fallback: fallback,
		log:      logger.With("adapter", "coarse"),
	}
}

// FetchCoarseTranslation implements the Stage-1 contract. Both sources
// failing wraps domain.ErrTranslationUnavailable.
func (f *Fetcher) FetchCoarseTranslation(ctx context.Context, text string) (provider.CoarseResult, error) {
	result, primaryErr := f.primary.FetchCoarseTranslation(ctx, text)
	if primaryErr == nil {
		return result, nil
	}
	if f.fallback == nil || ctx.Err() != nil {
		return provider.CoarseResult{}, primaryErr
	}

	f.log.WarnContext(ctx, "fast source unreachable, trying fallback",
		slog.String("error", primaryErr.Error()))

	result, fallbackErr := f.fallback.FetchCoarseTranslation(ctx, text)
	if fallbackErr == nil {
		return result, nil
	}
	return provider.CoarseResult{}, fmt.Errorf("%w: primary: %w; fallback: %w",
		domain.ErrTranslationUnavailable, primaryErr, fallbackErr)
}
