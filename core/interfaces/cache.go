// Package interfaces defines the core interfaces used throughout the application.
// These interfaces allow for dependency injection and make the code testable.
package interfaces

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by Cache.Get when a key was never written or
// its entry has expired. Callers treat both cases the same way.
var ErrCacheMiss = errors.New("cache: key not found")

// Cache defines the contract of the article content store.
// Implementations can be Redis, SQLite, in-memory, or any other backend that
// stores opaque bytes with an expiry.
//
// Example usage:
//
//	key := content.CacheKey("https://example.com/post")
//
//	// Store compressed content for one minute
//	err := cache.Set(ctx, key, compressed, time.Minute)
//
//	// Retrieve it again
//	data, err := cache.Get(ctx, key)
//	if errors.Is(err, interfaces.ErrCacheMiss) {
//		// never written or expired
//	}
type Cache interface {
	// Get retrieves a value from the cache by key.
	// Returns ErrCacheMiss if the key doesn't exist or has expired.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in the cache with the given key and TTL, replacing
	// any existing entry and resetting its expiry from the time of the call.
	// If ttl is 0, the value should be stored indefinitely.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// StatsProvider is implemented by cache backends that can report
// their own occupancy.
type StatsProvider interface {
	Stats(ctx context.Context) (map[string]interface{}, error)
}
