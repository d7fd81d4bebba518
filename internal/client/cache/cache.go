// Package cache bootstraps the structured local store: a SQLite database
// holding cached entities and the outbox, initialized through embedded goose
// migrations and exposed as a bundle of per-container repositories.
package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/slicedsoap/wolfnotes/internal/client/cache/migrations"
	"github.com/slicedsoap/wolfnotes/internal/client/repositories/assets"
	"github.com/slicedsoap/wolfnotes/internal/client/repositories/authors"
	"github.com/slicedsoap/wolfnotes/internal/client/repositories/classes"
	"github.com/slicedsoap/wolfnotes/internal/client/repositories/notes"
	"github.com/slicedsoap/wolfnotes/internal/client/repositories/outbox"
	"github.com/slicedsoap/wolfnotes/internal/client/repositories/profile"
	"github.com/slicedsoap/wolfnotes/internal/client/repositories/roster"
)

// ErrStorageUnavailable reports that the local cache could not be opened or
// migrated. Callers must degrade to "no offline support", not crash.
var ErrStorageUnavailable = errors.New("local storage unavailable")

// Cache is the ready handle over the local store. It is constructed once at
// startup and passed explicitly to everything that needs it.
type Cache struct {
	db *sql.DB

	Notes   notes.Repository
	Classes classes.Repository
	Roster  roster.Repository
	Profile profile.Repository
	Authors authors.Repository
	Outbox  outbox.Repository
	Assets  assets.Repository
}

// RunMigrations applies the embedded schema migrations. Goose records the
// applied version, so already-migrated databases pass through untouched.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// Open initializes (or migrates) the store at dsn and returns a ready handle.
// Any failure is wrapped in ErrStorageUnavailable so callers can match it
// with errors.Is and carry on without a cache.
func Open(ctx context.Context, dsn string) (*Cache, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	return &Cache{
		db:      db,
		Notes:   notes.NewSQLiteRepository(db),
		Classes: classes.NewSQLiteRepository(db),
		Roster:  roster.NewSQLiteRepository(db),
		Profile: profile.NewSQLiteRepository(db),
		Authors: authors.NewSQLiteRepository(db),
		Outbox:  outbox.NewSQLiteRepository(db),
		Assets:  assets.NewSQLiteRepository(db),
	}, nil
}

// Close releases the underlying database.
func (c *Cache) Close() error {
	return c.db.Close()
}
