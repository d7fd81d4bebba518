package authors

import (
	"context"

	"github.com/slicedsoap/wolfnotes/internal/client/models"
)

// Repository caches uploader id → display name lookups. Entries have no
// expiry; a stale name beats "Unknown Author" while offline.
type Repository interface {
	// Save inserts or replaces one author by id.
	Save(ctx context.Context, author *models.Author) error

	// GetByID returns one author, or sql.ErrNoRows on a miss.
	GetByID(ctx context.Context, id string) (*models.Author, error)
}
