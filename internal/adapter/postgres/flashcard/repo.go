// Package flashcard implements the Flashcard repository using PostgreSQL.
// Fixed-shape queries use raw SQL constants; the list query is assembled
// with squirrel because its filters are optional.
package flashcard

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/thaivocab-backend/internal/adapter/postgres"
	"github.com/heartmarshall/thaivocab-backend/internal/domain"
)

// ListFilter narrows List results. Zero-value fields are ignored.
type ListFilter struct {
	FolderID *uuid.UUID
	// Search matches front_normalized and back_text by substring.
	Search string
	Limit  int
	Offset int
}

// Repo provides flashcard persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new flashcard repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const columns = "id, folder_id, front_text, front_normalized, back_text, transliteration, created_at, updated_at"

const getByIDSQL = `
SELECT id, folder_id, front_text, front_normalized, back_text, transliteration, created_at, updated_at
FROM flashcards
WHERE id = $1`

const getByNormalizedSQL = `
SELECT id, folder_id, front_text, front_normalized, back_text, transliteration, created_at, updated_at
FROM flashcards
WHERE folder_id = $1 AND front_normalized = $2`

const createSQL = `
INSERT INTO flashcards (id, folder_id, front_text, front_normalized, back_text, transliteration, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

const updateSQL = `
UPDATE flashcards
SET front_text = $2, front_normalized = $3, back_text = $4, transliteration = $5, updated_at = $6
WHERE id = $1`

const deleteSQL = `
DELETE FROM flashcards WHERE id = $1`

const countByFolderSQL = `
SELECT count(*) FROM flashcards WHERE folder_id = $1`

// GetByID returns a flashcard by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Flashcard, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	c, err := scanCard(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return domain.Flashcard{}, postgres.MapError(err, "flashcard", id.String())
	}

	return c, nil
}

// GetByNormalizedFront returns the card in a folder whose normalized front
// matches. Used for duplicate detection before insert.
func (r *Repo) GetByNormalizedFront(ctx context.Context, folderID uuid.UUID, frontNormalized string) (domain.Flashcard, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	c, err := scanCard(querier.QueryRow(ctx, getByNormalizedSQL, folderID, frontNormalized))
	if err != nil {
		return domain.Flashcard{}, postgres.MapError(err, "flashcard", frontNormalized)
	}

	return c, nil
}

// List returns flashcards matching the filter, newest first.
func (r *Repo) List(ctx context.Context, filter ListFilter) ([]domain.Flashcard, error) {
	query := squirrel.Select(columns).
		From("flashcards").
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filter.FolderID != nil {
		query = query.Where(squirrel.Eq{"folder_id": *filter.FolderID})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(squirrel.Or{
			squirrel.Like{"front_normalized": pattern},
			squirrel.ILike{"back_text": pattern},
		})
	}
	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		query = query.Offset(uint64(filter.Offset))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list flashcards: %w", err)
	}
	defer rows.Close()

	cards, err := scanCards(rows)
	if err != nil {
		return nil, fmt.Errorf("list flashcards: %w", err)
	}

	return cards, nil
}

// CountByFolder returns the number of flashcards in a folder.
func (r *Repo) CountByFolder(ctx context.Context, folderID uuid.UUID) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := querier.QueryRow(ctx, countByFolderSQL, folderID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count flashcards: %w", err)
	}

	return count, nil
}

// Create inserts a new flashcard and returns the persisted domain.Flashcard.
// A duplicate normalized front within the folder results in
// domain.ErrAlreadyExists; a missing folder results in domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, card domain.Flashcard) (domain.Flashcard, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)
	card.ID = uuid.New()
	card.CreatedAt = now
	card.UpdatedAt = now

	_, err := querier.Exec(ctx, createSQL,
		card.ID, card.FolderID, card.FrontText, card.FrontNormalized,
		card.BackText, card.Transliteration, card.CreatedAt, card.UpdatedAt,
	)
	if err != nil {
		return domain.Flashcard{}, postgres.MapError(err, "flashcard", card.ID.String())
	}

	return card, nil
}

// Update rewrites the mutable fields of a flashcard.
// Returns domain.ErrNotFound if the card does not exist.
func (r *Repo) Update(ctx context.Context, card domain.Flashcard) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, updateSQL,
		card.ID, card.FrontText, card.FrontNormalized, card.BackText,
		card.Transliteration, time.Now().UTC().Truncate(time.Microsecond),
	)
	if err != nil {
		return postgres.MapError(err, "flashcard", card.ID.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("flashcard %s: %w", card.ID, domain.ErrNotFound)
	}

	return nil
}

// Delete removes a flashcard by ID.
// Returns domain.ErrNotFound if the card does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "flashcard", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("flashcard %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// scanCard scans a single flashcard row.
func scanCard(row pgx.Row) (domain.Flashcard, error) {
	var c domain.Flashcard
	err := row.Scan(&c.ID, &c.FolderID, &c.FrontText, &c.FrontNormalized,
		&c.BackText, &c.Transliteration, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return domain.Flashcard{}, err
	}
	return c, nil
}

// scanCards scans multiple rows into a domain.Flashcard slice.
func scanCards(rows pgx.Rows) ([]domain.Flashcard, error) {
	var cards []domain.Flashcard
	for rows.Next() {
		c, err := scanCard(rows)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if cards == nil {
		cards = []domain.Flashcard{}
	}

	return cards, nil
}
