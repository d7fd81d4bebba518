package roster

import (
	"context"

	"github.com/slicedsoap/wolfnotes/internal/client/models"
)

// Repository caches the student roster of a class. The roster is stored as a
// single row per class and overwritten wholesale on every refresh.
type Repository interface {
	// Save replaces the cached roster of one class.
	Save(ctx context.Context, classID string, students []models.Student) error

	// GetByClass returns the cached roster, or an empty slice when the
	// class has never been cached.
	GetByClass(ctx context.Context, classID string) ([]models.Student, error)
}
