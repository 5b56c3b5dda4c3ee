// Package folder implements the Folder repository using PostgreSQL.
package folder

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/thaivocab-backend/internal/adapter/postgres"
	"github.com/heartmarshall/thaivocab-backend/internal/domain"
)

// Repo provides folder persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new folder repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Every read joins the card count in; the domain type carries it and the
// transport layer always wants it.

const getByIDSQL = `
SELECT f.id, f.name, f.created_at, f.updated_at, count(c.id) AS card_count
FROM folders f
LEFT JOIN flashcards c ON c.folder_id = f.id
WHERE f.id = $1
GROUP BY f.id`

const listAllSQL = `
SELECT f.id, f.name, f.created_at, f.updated_at, count(c.id) AS card_count
FROM folders f
LEFT JOIN flashcards c ON c.folder_id = f.id
GROUP BY f.id
ORDER BY f.name ASC`

const createSQL = `
INSERT INTO folders (id, name, created_at, updated_at)
VALUES ($1, $2, $3, $4)`

const renameSQL = `
UPDATE folders SET name = $2, updated_at = $3 WHERE id = $1`

const deleteSQL = `
DELETE FROM folders WHERE id = $1`

// GetByID returns a folder with its card count.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Folder, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var f domain.Folder
	err := querier.QueryRow(ctx, getByIDSQL, id).
		Scan(&f.ID, &f.Name, &f.CreatedAt, &f.UpdatedAt, &f.CardCount)
	if err != nil {
		return domain.Folder{}, postgres.MapError(err, "folder", id.String())
	}

	return f, nil
}

// ListAll returns all folders ordered by name, each with its card count.
func (r *Repo) ListAll(ctx context.Context) ([]domain.Folder, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listAllSQL)
	if err != nil {
		return nil, fmt.Errorf("list folders: %w", err)
	}
	defer rows.Close()

	folders, err := scanFolders(rows)
	if err != nil {
		return nil, fmt.Errorf("list folders: %w", err)
	}

	return folders, nil
}

// Create inserts a new folder. A duplicate name results in domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, name string) (domain.Folder, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)
	f := domain.Folder{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := querier.Exec(ctx, createSQL, f.ID, f.Name, f.CreatedAt, f.UpdatedAt); err != nil {
		return domain.Folder{}, postgres.MapError(err, "folder", f.ID.String())
	}

	return f, nil
}

// Rename changes a folder's name.
// Returns domain.ErrNotFound if the folder does not exist.
func (r *Repo) Rename(ctx context.Context, id uuid.UUID, name string) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, renameSQL, id, name, time.Now().UTC().Truncate(time.Microsecond))
	if err != nil {
		return postgres.MapError(err, "folder", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("folder %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// Delete removes a folder and, via ON DELETE CASCADE, every flashcard in it.
// Returns domain.ErrNotFound if the folder does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "folder", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("folder %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// scanFolders scans rows of the card-count join into a domain.Folder slice.
func scanFolders(rows pgx.Rows) ([]domain.Folder, error) {
	var folders []domain.Folder
	for rows.Next() {
		var f domain.Folder
		if err := rows.Scan(&f.ID, &f.Name, &f.CreatedAt, &f.UpdatedAt, &f.CardCount); err != nil {
			return nil, err
		}
		folders = append(folders, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if folders == nil {
		folders = []domain.Folder{}
	}

	return folders, nil
}
