package authors

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/slicedsoap/wolfnotes/internal/client/models"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Save(ctx context.Context, a *models.Author) error {
	query := `INSERT INTO authors (id, first_name, last_name, full_name, cached_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET first_name = excluded.first_name,
			last_name = excluded.last_name,
			full_name = excluded.full_name,
			cached_at = excluded.cached_at`
	_, err := r.db.ExecContext(ctx, query,
		a.ID, a.FirstName, a.LastName, a.FullName, a.CachedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("failed to upsert author: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.Author, error) {
	query := `SELECT id, first_name, last_name, full_name, cached_at FROM authors WHERE id=?`
	row := r.db.QueryRowContext(ctx, query, id)

	a := &models.Author{}
	var cachedAt string
	if err := row.Scan(&a.ID, &a.FirstName, &a.LastName, &a.FullName, &cachedAt); err != nil {
		return nil, err
	}
	ts, err := time.Parse(time.RFC3339Nano, cachedAt)
	if err != nil {
		return nil, fmt.Errorf("invalid cached_at for author %s: %w", a.ID, err)
	}
	a.CachedAt = ts
	return a, nil
}
