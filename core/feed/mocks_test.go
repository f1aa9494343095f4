package feed

import (
	"context"
	"io"
	"strings"

	"fullfeed-api/core/domain"
	"fullfeed-api/core/interfaces"
)

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	getFunc func(ctx context.Context, url string) (interfaces.Response, error)
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, url)
	}
	return nil, nil
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	body       string
	headers    map[string]string
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) Body() io.ReadCloser {
	return io.NopCloser(strings.NewReader(m.body))
}

func (m *mockResponse) Header(key string) string {
	if m.headers != nil {
		return m.headers[key]
	}
	return ""
}

// mockFetcher records every URL it is asked for
type mockFetcher struct {
	urls      []string
	fetchFunc func(ctx context.Context, url string) (string, error)
}

func (m *mockFetcher) FetchContent(ctx context.Context, url string) (string, error) {
	m.urls = append(m.urls, url)
	if m.fetchFunc != nil {
		return m.fetchFunc(ctx, url)
	}
	return "full:" + url, nil
}

// mockProcessor is a mock implementation of the FeedProcessor interface
type mockProcessor struct {
	processFunc func(ctx context.Context, feed *domain.Feed) *domain.Feed
}

func (m *mockProcessor) Process(ctx context.Context, feed *domain.Feed) *domain.Feed {
	if m.processFunc != nil {
		return m.processFunc(ctx, feed)
	}
	return feed
}
