// ABOUTME: In-memory cache implementation backed by patrickmn/go-cache
// ABOUTME: Entries expire lazily on read and are purged by a background janitor

package memory

import (
	"context"
	"time"

	"fullfeed-api/core/interfaces"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryCache implements the Cache interface using in-memory storage
type MemoryCache struct {
	items *gocache.Cache
}

// NewMemoryCache creates a new in-memory cache instance. Expired entries are
// purged every cleanupInterval; a non-positive interval disables the janitor.
func NewMemoryCache(cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{
		items: gocache.New(gocache.NoExpiration, cleanupInterval),
	}
}

// Get retrieves a value from the cache
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	value, ok := c.items.Get(key)
	if !ok {
		return nil, interfaces.ErrCacheMiss
	}

	stored, ok := value.([]byte)
	if !ok {
		return nil, interfaces.ErrCacheMiss
	}

	// Return a copy of the value
	result := make([]byte, len(stored))
	copy(result, stored)
	return result, nil
}

// Set stores a value in the cache with the given TTL
func (c *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)

	expiration := ttl
	if ttl <= 0 {
		expiration = gocache.NoExpiration
	}
	c.items.Set(key, valueCopy, expiration)

	return nil
}

// Stats reports the number of stored entries, including expired ones not yet purged
func (c *MemoryCache) Stats(ctx context.Context) (map[string]interface{}, error) {
	return map[string]interface{}{
		"backend":       "memory",
		"total_entries": c.items.ItemCount(),
	}, nil
}
