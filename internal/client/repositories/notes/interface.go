package notes

import (
	"context"

	"github.com/slicedsoap/wolfnotes/internal/client/models"
)

// Repository describes cache operations for note metadata.
// Implementations are backed by the local SQLite cache.
type Repository interface {
	// Save inserts or replaces one note by id. Re-caching an id is
	// idempotent: the row is replaced, never duplicated.
	Save(ctx context.Context, note *models.Note) error

	// SaveAll upserts a batch of notes inside a single transaction.
	SaveAll(ctx context.Context, notes []models.Note) error

	// GetByClass returns the cached notes of one class, using the
	// class_id index.
	GetByClass(ctx context.Context, classID string) ([]models.Note, error)

	// GetByUploader returns the cached notes uploaded by one user.
	GetByUploader(ctx context.Context, uploaderID string) ([]models.Note, error)

	// GetAll returns every cached note.
	GetAll(ctx context.Context) ([]models.Note, error)

	// DeleteByID removes one note from the cache.
	DeleteByID(ctx context.Context, id string) error
}
