package roster

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/slicedsoap/wolfnotes/internal/client/models"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Save serializes the roster to JSON and replaces the row for classID.
func (r *SQLiteRepository) Save(ctx context.Context, classID string, students []models.Student) error {
	if students == nil {
		students = []models.Student{}
	}
	data, err := json.Marshal(students)
	if err != nil {
		return fmt.Errorf("failed to encode roster: %w", err)
	}

	query := `INSERT INTO class_students (class_id, students) VALUES (?, ?)
		ON CONFLICT(class_id) DO UPDATE SET students = excluded.students`
	if _, err := r.db.ExecContext(ctx, query, classID, string(data)); err != nil {
		return fmt.Errorf("failed to upsert roster: %w", err)
	}
	return nil
}

// GetByClass returns the cached roster. A class that was never cached yields
// an empty slice, mirroring an empty server response.
func (r *SQLiteRepository) GetByClass(ctx context.Context, classID string) ([]models.Student, error) {
	var data string
	row := r.db.QueryRowContext(ctx, `SELECT students FROM class_students WHERE class_id=?`, classID)
	if err := row.Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []models.Student{}, nil
		}
		return nil, fmt.Errorf("failed to select roster: %w", err)
	}

	var students []models.Student
	if err := json.Unmarshal([]byte(data), &students); err != nil {
		return nil, fmt.Errorf("failed to decode roster: %w", err)
	}
	return students, nil
}
