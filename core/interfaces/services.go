// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts for the content pipeline and its pluggable stages

package interfaces

import (
	"context"

	"fullfeed-api/core/domain"
)

// Codec turns article content into stored bytes and back.
type Codec interface {
	Compress(text string) ([]byte, error)
	Decompress(data []byte) (string, error)
}

// ContentTransformer converts a raw article page into normalized content.
// Implementations must be pure: no network access, no shared state.
type ContentTransformer interface {
	Transform(raw []byte, pageURL string) (string, error)
}

// ContentFetcher returns the processed content for one article URL.
type ContentFetcher interface {
	FetchContent(ctx context.Context, url string) (string, error)
}

// FeedProcessor replaces entry bodies with full article content.
type FeedProcessor interface {
	Process(ctx context.Context, feed *domain.Feed) *domain.Feed
}

// FeedService builds full-content feeds from a feed URL.
type FeedService interface {
	FetchFeed(ctx context.Context, feedURL string) (*domain.Feed, error)
	BuildFullFeed(ctx context.Context, feedURL string, format domain.FeedFormat) ([]byte, string, error)
}
