package assets

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE static_assets (
  cache_name   TEXT NOT NULL,
  path         TEXT NOT NULL,
  content_type TEXT NOT NULL,
  body         BLOB NOT NULL,
  fetched_at   INTEGER NOT NULL,
  PRIMARY KEY (cache_name, path)
);
`)
	require.NoError(t, err)

	return db
}

func asset(cacheName, path string) *Asset {
	return &Asset{
		CacheName:   cacheName,
		Path:        path,
		ContentType: "text/css",
		Body:        []byte("body{}"),
		FetchedAt:   time.Now().UTC(),
	}
}

func TestPut_Get(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	a := asset("wolfnotes-static-v3", "/css/styles.css")
	require.NoError(t, r.Put(ctx, a))

	got, err := r.Get(ctx, "wolfnotes-static-v3", "/css/styles.css")
	require.NoError(t, err)
	assert.Equal(t, a.Body, got.Body)
	assert.Equal(t, "text/css", got.ContentType)

	_, err = r.Get(ctx, "wolfnotes-static-v3", "/missing")
	assert.True(t, errors.Is(err, sql.ErrNoRows))
}

func TestPut_Replaces(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	a := asset("wolfnotes-static-v3", "/css/styles.css")
	require.NoError(t, r.Put(ctx, a))

	a.Body = []byte("body{margin:0}")
	require.NoError(t, r.Put(ctx, a))

	got, err := r.Get(ctx, "wolfnotes-static-v3", "/css/styles.css")
	require.NoError(t, err)
	assert.Equal(t, []byte("body{margin:0}"), got.Body)
}

func TestDeleteOtherCaches(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Put(ctx, asset("wolfnotes-static-v2", "/css/old.css")))
	require.NoError(t, r.Put(ctx, asset("wolfnotes-static-v3", "/css/styles.css")))
	require.NoError(t, r.Put(ctx, asset("other-app-v1", "/unrelated.css")))

	require.NoError(t, r.DeleteOtherCaches(ctx, "wolfnotes-", "wolfnotes-static-v3"))

	names, err := r.CacheNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"other-app-v1", "wolfnotes-static-v3"}, names)
}

func TestDeleteCache(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Put(ctx, asset("wolfnotes-static-v3", "/css/styles.css")))
	require.NoError(t, r.DeleteCache(ctx, "wolfnotes-static-v3"))

	names, err := r.CacheNames(ctx)
	require.NoError(t, err)
	assert.Empty(t, names)
}
