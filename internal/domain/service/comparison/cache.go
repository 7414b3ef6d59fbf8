package comparison

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"

	"boatmatch/internal/domain/value"
)

// ResultCache memoizes comparison results by pair key. Implementations must be
// safe for concurrent use; Set overwrites.
type ResultCache interface {
	Get(ctx context.Context, key string) (value.ComparisonResult, bool)
	Set(ctx context.Context, key string, result value.ComparisonResult)
}

// NopCache never stores anything.
type NopCache struct{}

func (NopCache) Get(context.Context, string) (value.ComparisonResult, bool) {
	return value.ComparisonResult{}, false
}

func (NopCache) Set(context.Context, string, value.ComparisonResult) {}

type memoryEntry struct {
	result   value.ComparisonResult
	storedAt time.Time
}

// MemoryCache keeps results in process memory. Expiry is decided against the
// injected clock; go-cache's janitor only reclaims memory.
type MemoryCache struct {
	items *cache.Cache
	ttl   time.Duration
	now   func() time.Time
}

type MemoryCacheOption func(*MemoryCache)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) MemoryCacheOption {
	return func(c *MemoryCache) {
		c.now = now
	}
}

// NewMemoryCache creates a cache whose entries live for ttl. A non-positive
// ttl keeps entries forever.
func NewMemoryCache(ttl, cleanupInterval time.Duration, opts ...MemoryCacheOption) *MemoryCache {
	expiration := cache.NoExpiration
	if ttl > 0 {
		expiration = ttl
	}

	c := &MemoryCache{
		items: cache.New(expiration, cleanupInterval),
		ttl:   ttl,
		now:   time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *MemoryCache) Get(_ context.Context, key string) (value.ComparisonResult, bool) {
	raw, ok := c.items.Get(key)
	if !ok {
		return value.ComparisonResult{}, false
	}

	entry, ok := raw.(memoryEntry)
	if !ok {
		return value.ComparisonResult{}, false
	}

	if c.ttl > 0 && !c.now().Before(entry.storedAt.Add(c.ttl)) {
		c.items.Delete(key)

		return value.ComparisonResult{}, false
	}

	return entry.result, true
}

func (c *MemoryCache) Set(_ context.Context, key string, result value.ComparisonResult) {
	c.items.Set(key, memoryEntry{result: result, storedAt: c.now()}, cache.DefaultExpiration)
}

func (c *MemoryCache) Len() int {
	return c.items.ItemCount()
}

func (c *MemoryCache) Flush() {
	c.items.Flush()
}
