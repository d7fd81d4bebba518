package classes

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

const upsertQuery = `INSERT INTO classes (id, name, class_code, class_desc, section, tags, archived)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name,
			class_code = excluded.class_code,
			class_desc = excluded.class_desc,
			section = excluded.section,
			tags = excluded.tags,
			archived = excluded.archived
`

func upsert(ctx context.Context, db dbx.DBTX, c *models.Class) error {
	_, err := db.ExecContext(ctx, upsertQuery,
		c.ID, c.Name, c.ClassCode, c.ClassDesc, c.Section, c.Tags, c.Archived)
	if err != nil {
		return fmt.Errorf("failed to upsert class: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Save(ctx context.Context, c *models.Class) error {
	return upsert(ctx, r.db, c)
}

func (r *SQLiteRepository) SaveAll(ctx context.Context, list []models.Class) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for i := range list {
			if err := upsert(ctx, tx, &list[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Class, error) {
	query := `SELECT id, name, class_code, class_desc, section, tags, archived FROM classes ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select classes: %w", err)
	}
	defer rows.Close()

	var result []models.Class
	for rows.Next() {
		var item models.Class
		if err := rows.Scan(&item.ID, &item.Name, &item.ClassCode, &item.ClassDesc, &item.Section, &item.Tags, &item.Archived); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.Class, error) {
	query := `SELECT id, name, class_code, class_desc, section, tags, archived FROM classes WHERE id=?`
	row := r.db.QueryRowContext(ctx, query, id)

	c := &models.Class{}
	if err := row.Scan(&c.ID, &c.Name, &c.ClassCode, &c.ClassDesc, &c.Section, &c.Tags, &c.Archived); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *SQLiteRepository) DeleteByID(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM classes WHERE id=?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete class: %w", err)
	}
	return nil
}
