package repository

import (
	"context"
	"time"
)

// CacheRepository abstracts the Redis cache used for geocoding results.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
