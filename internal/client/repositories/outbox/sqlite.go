package outbox

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

func (r *SQLiteRepository) Add(ctx context.Context, u *models.PendingUpload) (int64, error) {
	query := `INSERT INTO pending_uploads (title, class_id, file_blob, file_name, file_type, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		u.Title, u.ClassID, u.FileBlob, u.FileName, u.FileType, u.CreatedAt.UnixMilli())
	if err != nil {
		return 0, fmt.Errorf("failed to insert pending upload: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get temp id: %w", err)
	}
	return id, nil
}

// GetAll lists queued uploads ordered by temp_id, which is the creation
// order: the reconciler replays them strictly oldest first.
func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.PendingUpload, error) {
	query := `SELECT temp_id, title, class_id, file_blob, file_name, file_type, created_at
		FROM pending_uploads ORDER BY temp_id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select pending uploads: %w", err)
	}
	defer rows.Close()

	var result []models.PendingUpload
	for rows.Next() {
		var item models.PendingUpload
		var createdAt int64
		if err := rows.Scan(&item.TempID, &item.Title, &item.ClassID, &item.FileBlob, &item.FileName, &item.FileType, &createdAt); err != nil {
			return nil, err
		}
		item.CreatedAt = time.UnixMilli(createdAt).UTC()
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// DeleteByID removes a confirmed entry. It expects exactly one row to be
// affected: deleting an unknown temp id means the caller's bookkeeping broke.
func (r *SQLiteRepository) DeleteByID(ctx context.Context, tempID int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM pending_uploads WHERE temp_id=?`, tempID)
	if err != nil {
		return fmt.Errorf("failed to delete pending upload: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra != 1 {
		return fmt.Errorf("wrong rows affected count: %d", ra)
	}
	return nil
}

func (r *SQLiteRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM pending_uploads`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count pending uploads: %w", err)
	}
	return n, nil
}
