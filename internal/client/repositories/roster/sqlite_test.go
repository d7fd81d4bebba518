package roster

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slicedsoap/wolfnotes/internal/client/models"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE class_students (
  class_id TEXT PRIMARY KEY,
  students TEXT NOT NULL
);
`)
	require.NoError(t, err)

	return db
}

func TestSave_OverwritesWholesale(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	first := []models.Student{
		{ID: "s1", FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.edu"},
		{ID: "s2", FirstName: "Alan", LastName: "Turing", Email: "alan@example.edu"},
	}
	require.NoError(t, r.Save(ctx, "c1", first))

	second := []models.Student{
		{ID: "s3", FirstName: "Grace", LastName: "Hopper", Email: "grace@example.edu"},
	}
	require.NoError(t, r.Save(ctx, "c1", second))

	got, err := r.GetByClass(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, second, got)
}

func TestGetByClass_MissingIsEmpty(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	got, err := r.GetByClass(context.Background(), "never-cached")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSave_NilRoster(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Save(ctx, "c1", nil))

	got, err := r.GetByClass(ctx, "c1")
	require.NoError(t, err)
	assert.Empty(t, got)
}
