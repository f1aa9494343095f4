package content

import (
	"context"
	"io"
	"strings"
	"sync"
	"time"

	"fullfeed-api/core/interfaces"
)

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	mu      sync.Mutex
	calls   int
	getFunc func(ctx context.Context, url string) (interfaces.Response, error)
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()

	if m.getFunc != nil {
		return m.getFunc(ctx, url)
	}
	return nil, nil
}

func (m *mockHTTPClient) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
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

func htmlResponse(body string) *mockResponse {
	return &mockResponse{
		statusCode: 200,
		body:       body,
		headers:    map[string]string{"Content-Type": "text/html; charset=utf-8"},
	}
}

type fakeEntry struct {
	value   []byte
	expires time.Time
}

// fakeCache is an in-memory Cache with a controllable clock and call counters
type fakeCache struct {
	mu      sync.Mutex
	entries map[string]fakeEntry
	now     time.Time
	gets    int
	sets    int
	lastTTL time.Duration
	getErr  error
	setErr  error
}

func newFakeCache() *fakeCache {
	return &fakeCache{
		entries: make(map[string]fakeEntry),
		now:     time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (c *fakeCache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++

	if c.getErr != nil {
		return nil, c.getErr
	}
	entry, ok := c.entries[key]
	if !ok || !c.now.Before(entry.expires) {
		return nil, interfaces.ErrCacheMiss
	}
	return append([]byte(nil), entry.value...), nil
}

func (c *fakeCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	c.lastTTL = ttl

	if c.setErr != nil {
		return c.setErr
	}
	c.entries[key] = fakeEntry{value: append([]byte(nil), value...), expires: c.now.Add(ttl)}
	return nil
}

func (c *fakeCache) advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func (c *fakeCache) counts() (gets, sets int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gets, c.sets
}

func (c *fakeCache) put(key string, value []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = fakeEntry{value: value, expires: c.now.Add(time.Hour)}
}

// mockTransformer is a mock implementation of the ContentTransformer interface
type mockTransformer struct {
	mu            sync.Mutex
	calls         int
	transformFunc func(raw []byte, pageURL string) (string, error)
}

func (m *mockTransformer) Transform(raw []byte, pageURL string) (string, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()

	if m.transformFunc != nil {
		return m.transformFunc(raw, pageURL)
	}
	return "# Title\n\nBody text", nil
}

func (m *mockTransformer) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// recordingLogger collects warn messages
type recordingLogger struct {
	interfaces.NopLogger
	mu    sync.Mutex
	warns []string
}

func (l *recordingLogger) Warn(msg string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warns = append(l.warns, msg)
}
