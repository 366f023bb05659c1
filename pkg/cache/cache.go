// Package cache stores converted images so repeated exports of the same
// chart skip the external converter.
//
// Entries are addressed by [ArtifactKey], a hash of the source SVG and the
// conversion settings, so a changed chart never hits a stale entry.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store keyed by string.
type Cache interface {
	// Get returns the stored value and whether it was found. An expired
	// or unreadable entry is a miss, not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}
