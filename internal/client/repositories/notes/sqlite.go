package notes

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/slicedsoap/wolfnotes/internal/client/models"
	"github.com/slicedsoap/wolfnotes/internal/dbx"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given database.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

const upsertQuery = `INSERT INTO note_metadata (id, class_id, uploader_id, title, created_at, upvotes)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET class_id = excluded.class_id,
			uploader_id = excluded.uploader_id,
			title = excluded.title,
			created_at = excluded.created_at,
			upvotes = excluded.upvotes
`

func upsert(ctx context.Context, db dbx.DBTX, n *models.Note) error {
	_, err := db.ExecContext(ctx, upsertQuery,
		n.ID, n.ClassID, n.UploaderID, n.Title, n.CreatedAt.UTC().Format(time.RFC3339Nano), n.Upvotes)
	if err != nil {
		return fmt.Errorf("failed to upsert note: %w", err)
	}
	return nil
}

// Save upserts a single note by id.
func (r *SQLiteRepository) Save(ctx context.Context, n *models.Note) error {
	return upsert(ctx, r.db, n)
}

// SaveAll upserts notes in one transaction so a partial batch never commits.
func (r *SQLiteRepository) SaveAll(ctx context.Context, list []models.Note) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for i := range list {
			if err := upsert(ctx, tx, &list[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

func scanNotes(rows *sql.Rows) ([]models.Note, error) {
	var result []models.Note
	for rows.Next() {
		var item models.Note
		var createdAt string
		if err := rows.Scan(&item.ID, &item.ClassID, &item.UploaderID, &item.Title, &createdAt, &item.Upvotes); err != nil {
			return nil, err
		}
		ts, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("invalid created_at for note %s: %w", item.ID, err)
		}
		item.CreatedAt = ts
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetByClass lists cached notes for one class, oldest first.
func (r *SQLiteRepository) GetByClass(ctx context.Context, classID string) ([]models.Note, error) {
	query := `SELECT id, class_id, uploader_id, title, created_at, upvotes
		FROM note_metadata WHERE class_id=? ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, classID)
	if err != nil {
		return nil, fmt.Errorf("failed to select notes: %w", err)
	}
	defer rows.Close()
	return scanNotes(rows)
}

// GetByUploader lists cached notes uploaded by one user.
func (r *SQLiteRepository) GetByUploader(ctx context.Context, uploaderID string) ([]models.Note, error) {
	query := `SELECT id, class_id, uploader_id, title, created_at, upvotes
		FROM note_metadata WHERE uploader_id=? ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, uploaderID)
	if err != nil {
		return nil, fmt.Errorf("failed to select notes: %w", err)
	}
	defer rows.Close()
	return scanNotes(rows)
}

// GetAll lists every cached note.
func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Note, error) {
	query := `SELECT id, class_id, uploader_id, title, created_at, upvotes
		FROM note_metadata ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select notes: %w", err)
	}
	defer rows.Close()
	return scanNotes(rows)
}

// DeleteByID removes one note. Deleting an absent id is not an error: the
// server copy may never have been cached here.
func (r *SQLiteRepository) DeleteByID(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM note_metadata WHERE id=?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	return nil
}
