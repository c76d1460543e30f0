package cache

import (
	"context"
	"time"
)

// Cache stores JSON-serialized values with a TTL. The profile endpoint
// uses it cache-aside.
type Cache interface {
	// Set stores value under key for ttl.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	// Get loads key into dest, reporting whether the key existed.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	// Delete removes key.
	Delete(ctx context.Context, key string) error
}

var _ Cache = (*Redis)(nil)
