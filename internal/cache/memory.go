package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryCache keeps page bodies in process memory with per-entry TTL.
// Expired entries are swept by a background janitor.
type MemoryCache struct {
	store      *gocache.Cache
	defaultTTL time.Duration
}

// NewMemoryCache creates a memory cache whose janitor sweeps at twice
// the default TTL.
func NewMemoryCache(defaultTTL time.Duration) *MemoryCache {
	if defaultTTL <= 0 {
		defaultTTL = 15 * time.Minute
	}
	return &MemoryCache{
		store:      gocache.New(defaultTTL, 2*defaultTTL),
		defaultTTL: defaultTTL,
	}
}

// Get retrieves a value from the cache
func (c *MemoryCache) Get(key string) ([]byte, bool) {
	val, found := c.store.Get(key)
	if !found {
		return nil, false
	}
	body, ok := val.([]byte)
	return body, ok
}

// Set stores a value; a non-positive ttl uses the cache default
func (c *MemoryCache) Set(key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = c.defaultTTL
	}
	c.store.Set(key, value, ttl)
	return nil
}

// Delete removes a value from the cache
func (c *MemoryCache) Delete(key string) error {
	c.store.Delete(key)
	return nil
}

// Clear removes all values from the cache
func (c *MemoryCache) Clear() error {
	c.store.Flush()
	return nil
}

// Len reports how many live entries the cache holds
func (c *MemoryCache) Len() int {
	return c.store.ItemCount()
}
