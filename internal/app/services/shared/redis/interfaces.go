package redis

import (
	"context"
	"time"
)

// KVStore is the small key-value surface the caching layers need. Get returns
// ("", nil) on a missing key so callers can treat absence as a cache miss.
type KVStore interface {
	Set(ctx context.Context, key string, value interface{}, exp time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, keys ...string) error
}
