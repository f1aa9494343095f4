// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package: caching, HTTP communication, and logging.
//
// - cache/memory: In-memory cache backed by patrickmn/go-cache
// - cache/redis: Redis cache backed by go-redis
// - cache/sqlite: File-based cache backed by mattn/go-sqlite3
// - http/standard: net/http client with optional retries and outbound throttling
// - logger/structured: logrus logger with optional rotating file output
//
// All cache backends return interfaces.ErrCacheMiss for missing and expired
// keys, overwrite on Set, and report statistics through interfaces.StatsProvider.
//
// Memory Cache Example:
//
//	cache := memory.NewMemoryCache(5 * time.Minute)
//	err := cache.Set(ctx, "key", []byte("value"), time.Minute)
//	value, err := cache.Get(ctx, "key")
//
// SQLite Cache Example:
//
//	cache, err := sqlite.NewSQLiteCache("cache.db", 5*time.Minute)
//	defer cache.Close()
//
// HTTP Client Example:
//
//	client := standard.NewStandardHTTPClient(20*time.Second,
//	    standard.WithMaxRetries(2),
//	    standard.WithRateLimit(5),
//	)
package infrastructure
