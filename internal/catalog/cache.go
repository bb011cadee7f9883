package catalog

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	gocache "github.com/patrickmn/go-cache"
)

// Cache is the injected storage behind the catalog client. Implementations
// must be safe for concurrent use.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, val []byte, ttl time.Duration)
}

// MemoryCache is an in-process TTL cache.
type MemoryCache struct {
	store *gocache.Cache
}

// NewMemoryCache creates a memory cache whose expired entries are purged
// every defaultTTL.
func NewMemoryCache(defaultTTL time.Duration) *MemoryCache {
	return &MemoryCache{store: gocache.New(defaultTTL, defaultTTL)}
}

func (m *MemoryCache) Get(_ context.Context, key string) ([]byte, bool) {
	v, ok := m.store.Get(key)
	if !ok {
		return nil, false
	}
	b, ok := v.([]byte)
	return b, ok
}

func (m *MemoryCache) Set(_ context.Context, key string, val []byte, ttl time.Duration) {
	m.store.Set(key, val, ttl)
}

// RedisCache shares catalog snapshots across processes. Redis errors are
// treated as cache misses; the client falls through to a live fetch.
type RedisCache struct {
	rdb *redis.Client
}

// NewRedisCache connects to the given redis address.
func NewRedisCache(addr string) *RedisCache {
	return &RedisCache{rdb: redis.NewClient(&redis.Options{Addr: addr})}
}

func (r *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	b, err := r.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return b, true
}

func (r *RedisCache) Set(ctx context.Context, key string, val []byte, ttl time.Duration) {
	r.rdb.Set(ctx, key, val, ttl)
}
