// Package migrations embeds the versioned schema of the local cache.
// Goose applies them exactly once per version, so opening an already
// migrated cache is a no-op.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
