package assets

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Put(ctx context.Context, a *Asset) error {
	query := `INSERT INTO static_assets (cache_name, path, content_type, body, fetched_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(cache_name, path) DO UPDATE SET content_type = excluded.content_type,
			body = excluded.body,
			fetched_at = excluded.fetched_at`
	_, err := r.db.ExecContext(ctx, query,
		a.CacheName, a.Path, a.ContentType, a.Body, a.FetchedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to upsert asset: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Get(ctx context.Context, cacheName, path string) (*Asset, error) {
	query := `SELECT cache_name, path, content_type, body, fetched_at
		FROM static_assets WHERE cache_name=? AND path=?`
	row := r.db.QueryRowContext(ctx, query, cacheName, path)

	a := &Asset{}
	var fetchedAt int64
	if err := row.Scan(&a.CacheName, &a.Path, &a.ContentType, &a.Body, &fetchedAt); err != nil {
		return nil, err
	}
	a.FetchedAt = time.UnixMilli(fetchedAt).UTC()
	return a, nil
}

func (r *SQLiteRepository) DeleteCache(ctx context.Context, cacheName string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM static_assets WHERE cache_name=?`, cacheName)
	if err != nil {
		return fmt.Errorf("failed to delete cache %s: %w", cacheName, err)
	}
	return nil
}

func (r *SQLiteRepository) DeleteOtherCaches(ctx context.Context, prefix, keep string) error {
	query := `DELETE FROM static_assets WHERE cache_name LIKE ? || '%' AND cache_name != ?`
	_, err := r.db.ExecContext(ctx, query, prefix, keep)
	if err != nil {
		return fmt.Errorf("failed to delete stale caches: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) CacheNames(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT DISTINCT cache_name FROM static_assets ORDER BY cache_name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list caches: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		names = append(names, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return names, nil
}
