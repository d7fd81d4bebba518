package outbox

import (
	"context"

	"github.com/slicedsoap/wolfnotes/internal/client/models"
)

// Repository is the durable queue of note uploads created while offline.
// Entries are inserted and deleted, never updated: a row disappears only
// after the server has confirmed the corresponding write.
type Repository interface {
	// Add appends an entry and returns its store-assigned temp id.
	Add(ctx context.Context, upload *models.PendingUpload) (int64, error)

	// GetAll returns every queued entry in FIFO creation order.
	GetAll(ctx context.Context) ([]models.PendingUpload, error)

	// DeleteByID removes one entry after confirmed server acceptance.
	DeleteByID(ctx context.Context, tempID int64) error

	// Count reports how many entries are waiting.
	Count(ctx context.Context) (int, error)
}
