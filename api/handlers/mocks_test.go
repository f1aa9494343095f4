package handlers

import (
	"context"
	"time"

	"fullfeed-api/core/domain"
	"fullfeed-api/core/interfaces"
)

type mockFeedService struct {
	fetchFeedFunc     func(ctx context.Context, url string) (*domain.Feed, error)
	buildFullFeedFunc func(ctx context.Context, url string, format domain.FeedFormat) ([]byte, string, error)
}

func (m *mockFeedService) FetchFeed(ctx context.Context, url string) (*domain.Feed, error) {
	if m.fetchFeedFunc != nil {
		return m.fetchFeedFunc(ctx, url)
	}
	return nil, nil
}

func (m *mockFeedService) BuildFullFeed(ctx context.Context, url string, format domain.FeedFormat) ([]byte, string, error) {
	if m.buildFullFeedFunc != nil {
		return m.buildFullFeedFunc(ctx, url, format)
	}
	return nil, "", nil
}

type mockFetcher struct {
	fetchContentFunc func(ctx context.Context, url string) (string, error)
}

func (m *mockFetcher) FetchContent(ctx context.Context, url string) (string, error) {
	if m.fetchContentFunc != nil {
		return m.fetchContentFunc(ctx, url)
	}
	return "", nil
}

// statsCache is a cache that also reports statistics
type statsCache struct {
	stats map[string]interface{}
	err   error
}

func (c *statsCache) Get(ctx context.Context, key string) ([]byte, error) {
	return nil, interfaces.ErrCacheMiss
}

func (c *statsCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return nil
}

func (c *statsCache) Stats(ctx context.Context) (map[string]interface{}, error) {
	return c.stats, c.err
}

// plainCache has no statistics
type plainCache struct{}

func (plainCache) Get(ctx context.Context, key string) ([]byte, error) {
	return nil, interfaces.ErrCacheMiss
}

func (plainCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return nil
}
