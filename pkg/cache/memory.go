package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const DefaultMemoryCleanupInterval = time.Minute

// MemoryCache is a single-process Client used when redis is not configured.
// A background janitor removes expired entries whether or not they are read.
type MemoryCache struct {
	items *gocache.Cache
}

func NewMemoryCache() *MemoryCache {
	return NewMemoryCacheWithCleanup(DefaultMemoryCleanupInterval)
}

// NewMemoryCacheWithCleanup sets how often expired entries are swept.
func NewMemoryCacheWithCleanup(interval time.Duration) *MemoryCache {
	if interval <= 0 {
		interval = DefaultMemoryCleanupInterval
	}
	return &MemoryCache{items: gocache.New(gocache.NoExpiration, interval)}
}

func (m *MemoryCache) Get(_ context.Context, key string) (string, error) {
	value, ok := m.items.Get(key)
	if !ok {
		return "", ErrCacheMiss
	}
	return value.(string), nil
}

// Set stores value; a non-positive expiration keeps it until deleted.
func (m *MemoryCache) Set(_ context.Context, key string, value []byte, expiration time.Duration) error {
	if expiration <= 0 {
		expiration = gocache.NoExpiration
	}
	m.items.Set(key, string(value), expiration)
	return nil
}

func (m *MemoryCache) Del(_ context.Context, keys ...string) error {
	for _, key := range keys {
		m.items.Delete(key)
	}
	return nil
}

func (m *MemoryCache) Exists(_ context.Context, key string) (bool, error) {
	_, ok := m.items.Get(key)
	return ok, nil
}

func (m *MemoryCache) Ping(context.Context) error {
	return nil
}

// Len counts stored entries, including expired ones the janitor has not
// reached yet.
func (m *MemoryCache) Len() int {
	return m.items.ItemCount()
}

func (m *MemoryCache) Close() error {
	m.items.Flush()
	return nil
}
