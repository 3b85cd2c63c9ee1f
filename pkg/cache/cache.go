// Package cache defines a small string cache used for client profile lookups.
package cache

import (
	"context"
	"time"
)

// Cache stores string values with a TTL. Get returns the empty string on a
// miss; a miss is not an error.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
