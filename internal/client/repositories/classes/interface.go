package classes

import (
	"context"

	"github.com/slicedsoap/wolfnotes/internal/client/models"
)

// Repository describes cache operations for class records.
type Repository interface {
	// Save inserts or replaces one class by id.
	Save(ctx context.Context, class *models.Class) error

	// SaveAll upserts a batch of classes inside a single transaction.
	SaveAll(ctx context.Context, classes []models.Class) error

	// GetAll returns every cached class.
	GetAll(ctx context.Context) ([]models.Class, error)

	// GetByID returns one class. The caller gets sql.ErrNoRows on a miss.
	GetByID(ctx context.Context, id string) (*models.Class, error)

	// DeleteByID removes one class from the cache.
	DeleteByID(ctx context.Context, id string) error
}
