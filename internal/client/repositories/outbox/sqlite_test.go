package outbox

import (
	"context"
	"database/sql"
	"testing"
	"time"

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
CREATE TABLE pending_uploads (
  temp_id    INTEGER PRIMARY KEY AUTOINCREMENT,
  title      TEXT NOT NULL,
  class_id   TEXT NOT NULL,
  file_blob  BLOB NOT NULL,
  file_name  TEXT NOT NULL,
  file_type  TEXT NOT NULL,
  created_at INTEGER NOT NULL
);
`)
	require.NoError(t, err)

	return db
}

func pending(title, classID string) *models.PendingUpload {
	return &models.PendingUpload{
		Title:     title,
		ClassID:   classID,
		FileBlob:  []byte("%PDF-1.4 fake"),
		FileName:  title + ".pdf",
		FileType:  "application/pdf",
		CreatedAt: time.Now().UTC(),
	}
}

func TestAdd_AssignsIncreasingIDs(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	id1, err := r.Add(ctx, pending("first", "c1"))
	require.NoError(t, err)
	id2, err := r.Add(ctx, pending("second", "c1"))
	require.NoError(t, err)

	assert.Greater(t, id2, id1)
}

func TestGetAll_FIFOOrder(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	_, err := r.Add(ctx, pending("first", "c1"))
	require.NoError(t, err)
	_, err = r.Add(ctx, pending("second", "c2"))
	require.NoError(t, err)
	_, err = r.Add(ctx, pending("third", "c1"))
	require.NoError(t, err)

	all, err := r.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "first", all[0].Title)
	assert.Equal(t, "second", all[1].Title)
	assert.Equal(t, "third", all[2].Title)
}

func TestDeleteByID(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	id, err := r.Add(ctx, pending("first", "c1"))
	require.NoError(t, err)

	require.NoError(t, r.DeleteByID(ctx, id))

	n, err := r.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	// deleting an id that is already gone is a bookkeeping error
	require.Error(t, r.DeleteByID(ctx, id))
}

func TestGetAll_PreservesBlob(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	u := pending("first", "c1")
	u.FileBlob = []byte{0x25, 0x50, 0x44, 0x46, 0x00, 0xff}
	_, err := r.Add(ctx, u)
	require.NoError(t, err)

	all, err := r.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, u.FileBlob, all[0].FileBlob)
	assert.Equal(t, "application/pdf", all[0].FileType)
}
