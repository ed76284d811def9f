package providers

import (
	"context"
)

// CacheProvider defines byte-oriented cache operations backing the
// catalog adapters and response caching
type CacheProvider interface {
	// Get retrieves a value; an error means the key is absent or the
	// backend failed
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value with a TTL in seconds
	Set(ctx context.Context, key string, value []byte, expirationSeconds int) error

	// Delete removes a value
	Delete(ctx context.Context, key string) error
}
