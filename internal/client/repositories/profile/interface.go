package profile

import (
	"context"

	"github.com/slicedsoap/wolfnotes/internal/client/models"
)

// Repository caches the profile of the account signed in on this device.
// The cache holds at most one meaningful row; each Save overwrites wholesale.
type Repository interface {
	// Save replaces the cached profile.
	Save(ctx context.Context, user *models.User) error

	// Get returns the cached profile, or sql.ErrNoRows when the device
	// has never seen a successful profile fetch.
	Get(ctx context.Context) (*models.User, error)

	// Clear removes the cached profile, e.g. on logout.
	Clear(ctx context.Context) error
}
