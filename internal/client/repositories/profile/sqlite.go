package profile

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/slicedsoap/wolfnotes/internal/client/models"
	"github.com/slicedsoap/wolfnotes/internal/dbx"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Save wipes any previous profile and stores the new one. The two statements
// run in one transaction so the cache never holds two accounts.
func (r *SQLiteRepository) Save(ctx context.Context, u *models.User) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM user_profile`); err != nil {
			return fmt.Errorf("failed to clear profile: %w", err)
		}
		query := `INSERT INTO user_profile (id, first_name, last_name, email, role, institution, subject)
			VALUES (?, ?, ?, ?, ?, ?, ?)`
		if _, err := tx.ExecContext(ctx, query,
			u.ID, u.FirstName, u.LastName, u.Email, string(u.Role), u.Institution, u.Subject); err != nil {
			return fmt.Errorf("failed to insert profile: %w", err)
		}
		return nil
	})
}

func (r *SQLiteRepository) Get(ctx context.Context) (*models.User, error) {
	query := `SELECT id, first_name, last_name, email, role, institution, subject FROM user_profile LIMIT 1`
	row := r.db.QueryRowContext(ctx, query)

	u := &models.User{}
	var role string
	if err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &role, &u.Institution, &u.Subject); err != nil {
		return nil, err
	}
	u.Role = models.Role(role)
	return u, nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM user_profile`); err != nil {
		return fmt.Errorf("failed to clear profile: %w", err)
	}
	return nil
}
