package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/dgraph-io/ristretto"
)

// Cache defines the interface for a generic cache with TTL support
type Cache interface {
	Get(ctx context.Context, key string) (any, bool)
	Set(ctx context.Context, key string, value any, ttl time.Duration) bool
}

// RistrettoCache is an in-process Cache. Writes are applied before Set
// returns, so a Get right after a Set sees the value.
type RistrettoCache struct {
	store  *ristretto.Cache
	config *CacheConfig
}

// CacheConfig holds configuration for the cache
type CacheConfig struct {
	// MaxCost is the maximum cost of the cache; every entry costs 1
	MaxCost int64
	// NumCounters is the number of counters for the cache
	NumCounters int64
	// BufferItems is the number of items to buffer
	BufferItems int64
}

func DefaultConfig() *CacheConfig {
	return &CacheConfig{
		MaxCost:     1 << 20,
		NumCounters: 1e7,
		BufferItems: 64,
	}
}

func New(config *CacheConfig) (*RistrettoCache, error) {
	if config == nil {
		config = DefaultConfig()
	}

	store, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: config.NumCounters,
		MaxCost:     config.MaxCost,
		BufferItems: config.BufferItems,
		OnEvict: func(item *ristretto.Item) {
			slog.Debug("cache entry evicted", slog.Uint64("key_hash", item.Key))
		},
	})
	if err != nil {
		return nil, err
	}

	return &RistrettoCache{
		store:  store,
		config: config,
	}, nil
}

var _ Cache = (*RistrettoCache)(nil)

func (c *RistrettoCache) Get(ctx context.Context, key string) (any, bool) {
	if ctx.Err() != nil {
		return nil, false
	}

	return c.store.Get(key)
}

func (c *RistrettoCache) Set(ctx context.Context, key string, value any, ttl time.Duration) bool {
	if ctx.Err() != nil {
		return false
	}

	if !c.store.SetWithTTL(key, value, 1, ttl) {
		return false
	}
	c.store.Wait()
	return true
}

func (c *RistrettoCache) Close() {
	c.store.Close()
}
