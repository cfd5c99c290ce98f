package cache

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by Get when the key does not exist. Callers match
// it with errors.Is instead of inspecting error text.
var ErrCacheMiss = errors.New("cache: key not found")

// Cache defines the key-value storage operations used by the application.
// It is a port that can be backed by different providers (Redis, in-memory).
type Cache interface {
	// Get retrieves a value by key. Returns ErrCacheMiss when absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value under key with the given TTL. A TTL of 0 means no
	// expiration.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value by key.
	Delete(ctx context.Context, key string) error

	// Ping checks if the storage service is reachable.
	Ping(ctx context.Context) error

	// Close closes the underlying connection.
	Close() error
}
