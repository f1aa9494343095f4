package redis

import (
	"context"
	"os"
	"testing"
	"time"

	"fullfeed-api/core/interfaces"
	"fullfeed-api/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Integration tests run only when REDIS_TEST_ADDRESS points at a live server

func newTestCache(t *testing.T) *RedisCache {
	t.Helper()

	address := os.Getenv("REDIS_TEST_ADDRESS")
	if address == "" {
		t.Skip("Skipping Redis integration tests - set REDIS_TEST_ADDRESS to run")
	}

	cache, err := NewRedisCache(config.RedisConfig{Address: address})
	require.NoError(t, err)
	t.Cleanup(func() { cache.Close() })
	return cache
}

func TestNewRedisCache_InvalidAddress(t *testing.T) {
	cache, err := NewRedisCache(config.RedisConfig{Address: ""})

	assert.Error(t, err)
	assert.Nil(t, cache)
}

func TestNewRedisCache_Unreachable(t *testing.T) {
	cache, err := NewRedisCache(config.RedisConfig{Address: "127.0.0.1:1"})

	assert.Error(t, err)
	assert.Nil(t, cache)
}

func TestRedisCache_SetAndGet(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "test-key", []byte("test-value"), time.Minute))

	got, err := cache.Get(ctx, "test-key")
	require.NoError(t, err)
	assert.Equal(t, "test-value", string(got))
}

func TestRedisCache_Get_Missing(t *testing.T) {
	cache := newTestCache(t)

	_, err := cache.Get(context.Background(), "does-not-exist")
	assert.ErrorIs(t, err, interfaces.ErrCacheMiss)
}

func TestRedisCache_Get_Expired(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "short-lived", []byte("v"), 100*time.Millisecond))
	time.Sleep(250 * time.Millisecond)

	_, err := cache.Get(ctx, "short-lived")
	assert.ErrorIs(t, err, interfaces.ErrCacheMiss)
}
