package assets

import (
	"context"
	"time"
)

// Asset is one cached static response (page, stylesheet, script, image).
type Asset struct {
	CacheName   string
	Path        string
	ContentType string
	Body        []byte
	FetchedAt   time.Time
}

// Repository is the versioned static-asset cache used by the request
// interception layer. Assets live under a cache name such as
// "wolfnotes-static-v3"; bumping the version and deleting siblings under the
// same prefix is how a new asset set replaces an old one.
type Repository interface {
	// Put inserts or replaces one asset.
	Put(ctx context.Context, asset *Asset) error

	// Get returns one asset, or sql.ErrNoRows on a miss.
	Get(ctx context.Context, cacheName, path string) (*Asset, error)

	// DeleteCache removes every asset under one cache name.
	DeleteCache(ctx context.Context, cacheName string) error

	// DeleteOtherCaches removes every cache whose name starts with prefix
	// except keep. Used on activation to drop previous versions.
	DeleteOtherCaches(ctx context.Context, prefix, keep string) error

	// CacheNames lists the distinct cache names currently stored.
	CacheNames(ctx context.Context) ([]string, error)
}
