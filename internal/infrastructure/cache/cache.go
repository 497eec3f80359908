// Package cache stores serialized adapter responses with a TTL, in Redis when
// configured and in process memory otherwise.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented TTL store. A miss is (nil, false, nil).
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
