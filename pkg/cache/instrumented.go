package cache

import (
	"context"
	"time"

	"github.com/matzehuels/deltabench/pkg/observability"
)

// Instrumented reports hits, misses and writes of an inner cache to the
// registered [observability.CacheHooks], tagged with keyType.
type Instrumented struct {
	inner   Cache
	keyType string
}

// NewInstrumented wraps c.
func NewInstrumented(c Cache, keyType string) *Instrumented {
	return &Instrumented{inner: c, keyType: keyType}
}

func (c *Instrumented) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, hit, err := c.inner.Get(ctx, key)
	if err == nil {
		if hit {
			observability.Cache().OnCacheHit(ctx, c.keyType)
		} else {
			observability.Cache().OnCacheMiss(ctx, c.keyType)
		}
	}
	return data, hit, err
}

func (c *Instrumented) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if err := c.inner.Set(ctx, key, data, ttl); err != nil {
		return err
	}
	observability.Cache().OnCacheSet(ctx, c.keyType, len(data))
	return nil
}

func (c *Instrumented) Delete(ctx context.Context, key string) error {
	return c.inner.Delete(ctx, key)
}

func (c *Instrumented) Close() error {
	return c.inner.Close()
}

var _ Cache = (*Instrumented)(nil)
