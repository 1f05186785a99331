package cache

import (
	"context"
	"time"
)

type Cache interface {
	Get(ctx context.Context, key string, value any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// CatalogKey holds the full /products/all listing; it is the only hot key,
// every cart render joins against it.
const CatalogKey = "catalog:all"
