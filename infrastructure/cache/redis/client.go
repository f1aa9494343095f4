// ABOUTME: Redis cache implementation using go-redis client
// ABOUTME: Provides shared article storage with server-side TTL expiry

package redis

import (
	"context"
	"errors"
	"time"

	"fullfeed-api/core/interfaces"
	"fullfeed-api/pkg/config"

	"github.com/redis/go-redis/v9"
)

// keyPrefix namespaces article entries in a shared Redis database
const keyPrefix = "fullfeed:content:"

// RedisCache implements the Cache interface using Redis
type RedisCache struct {
	client redis.UniversalClient
}

// NewRedisCache creates a new Redis cache instance and verifies the connection
func NewRedisCache(cfg config.RedisConfig) (*RedisCache, error) {
	if cfg.Address == "" {
		return nil, errors.New("redis address cannot be empty")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}

	return NewRedisCacheWithClient(client), nil
}

// NewRedisCacheWithClient wraps an existing client
func NewRedisCacheWithClient(client redis.UniversalClient) *RedisCache {
	return &RedisCache{
		client: client,
	}
}

// Get retrieves a value from Redis
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, interfaces.ErrCacheMiss
		}
		return nil, err
	}

	return val, nil
}

// Set stores a value in Redis with the given TTL. SET replaces the value and
// its expiry atomically.
func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	// Redis SET with 0 TTL means no expiration
	return c.client.Set(ctx, keyPrefix+key, value, ttl).Err()
}

// Stats reports the Redis database size
func (c *RedisCache) Stats(ctx context.Context) (map[string]interface{}, error) {
	size, err := c.client.DBSize(ctx).Result()
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"backend":       "redis",
		"total_entries": size,
	}, nil
}

// Close closes the Redis connection
func (c *RedisCache) Close() error {
	return c.client.Close()
}
