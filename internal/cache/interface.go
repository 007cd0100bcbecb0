package cache

import (
	"context"
	"time"
)

// Service defines the interface for key-value store operations. The auth
// package keeps session records here.
type Service interface {
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
	Close() error
}
