// ABOUTME: Content service acquires article content through the cache
// ABOUTME: Cache hit returns stored content; miss fetches, transforms, compresses and stores it

package content

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"fullfeed-api/core/codec"
	coreerrors "fullfeed-api/core/errors"
	"fullfeed-api/core/interfaces"
	"fullfeed-api/pkg/featureflags"

	"github.com/klauspost/compress/gzip"
	"golang.org/x/net/html/charset"
	"golang.org/x/sync/singleflight"
)

const (
	// DefaultTTL keeps article content long enough to absorb duplicate
	// requests for the same feed, shorter than typical poll intervals.
	DefaultTTL = 60 * time.Second

	// DefaultMaxBodyBytes caps how much of an article page is read.
	DefaultMaxBodyBytes int64 = 10 << 20
)

// Service implements interfaces.ContentFetcher
type Service struct {
	deps         interfaces.Dependencies
	transformer  interfaces.ContentTransformer
	codec        interfaces.Codec
	renderer     *Renderer
	flags        featureflags.Manager
	ttl          time.Duration
	maxBodyBytes int64

	// inflight deduplicates concurrent misses when the single_flight flag is on
	inflight singleflight.Group
}

// Option configures a Service
type Option func(*Service)

// WithTTL sets how long stored content stays valid
func WithTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithCodec replaces the default gzip codec
func WithCodec(c interfaces.Codec) Option {
	return func(s *Service) {
		if c != nil {
			s.codec = c
		}
	}
}

// WithFeatureFlags enables flag-controlled behavior such as single-flight fetches
func WithFeatureFlags(flags featureflags.Manager) Option {
	return func(s *Service) {
		s.flags = flags
	}
}

// WithMaxBodyBytes limits the size of article pages
func WithMaxBodyBytes(n int64) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxBodyBytes = n
		}
	}
}

// NewService creates a content service. The cache handle in deps is owned by
// the caller, which opens and closes it.
func NewService(deps interfaces.Dependencies, transformer interfaces.ContentTransformer, opts ...Option) *Service {
	if deps.Logger == nil {
		deps.Logger = interfaces.NopLogger{}
	}

	s := &Service{
		deps:         deps,
		transformer:  transformer,
		codec:        codec.NewGzipCodec(gzip.BestCompression),
		renderer:     NewRenderer(),
		flags:        featureflags.NewStaticManager(nil),
		ttl:          DefaultTTL,
		maxBodyBytes: DefaultMaxBodyBytes,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// FetchContent returns sanitized HTML for the article at rawURL.
//
// Invalid URLs fail with InvalidURLError before any cache or network access.
// Every other failure is a FetchError.
func (s *Service) FetchContent(ctx context.Context, rawURL string) (string, error) {
	articleURL, err := ValidateURL(rawURL)
	if err != nil {
		return "", err
	}

	normalized := articleURL.String()
	stored, err := s.load(ctx, normalized, CacheKey(normalized))
	if err != nil {
		return "", err
	}

	html, err := s.renderer.Render(stored)
	if err != nil {
		return "", &coreerrors.FetchError{URL: normalized, Cause: err}
	}
	return html, nil
}

// load returns the stored (decompressed) content for url, fetching it on a miss
func (s *Service) load(ctx context.Context, url, key string) (string, error) {
	if data, ok := s.lookup(ctx, key); ok {
		text, err := s.codec.Decompress(data)
		if err != nil {
			s.deps.Logger.Warn("Cached content is corrupt", map[string]interface{}{
				"url":   url,
				"key":   key,
				"error": err.Error(),
			})
			return "", &coreerrors.FetchError{URL: url, Cause: err}
		}

		s.deps.Logger.Debug("Content cache hit", map[string]interface{}{
			"url": url,
			"key": key,
		})
		return text, nil
	}

	if !s.flags.IsEnabled(ctx, featureflags.SingleFlight) {
		return s.fetchAndStore(ctx, url, key)
	}

	v, err, shared := s.inflight.Do(key, func() (interface{}, error) {
		return s.fetchAndStore(ctx, url, key)
	})
	if shared {
		s.deps.Logger.Debug("Joined in-flight article fetch", map[string]interface{}{
			"url": url,
		})
	}
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// lookup reports a hit only for a present, unexpired entry. Store errors are
// logged and treated as a miss.
func (s *Service) lookup(ctx context.Context, key string) ([]byte, bool) {
	if s.deps.Cache == nil {
		return nil, false
	}

	data, err := s.deps.Cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, interfaces.ErrCacheMiss) {
			s.deps.Logger.Warn("Content cache lookup failed", map[string]interface{}{
				"key":   key,
				"error": err.Error(),
			})
		}
		return nil, false
	}
	return data, true
}

// fetchAndStore is the miss path. The returned string is the decompressed
// form of exactly the bytes written to the cache.
func (s *Service) fetchAndStore(ctx context.Context, url, key string) (string, error) {
	start := time.Now()

	raw, err := s.download(ctx, url)
	if err != nil {
		return "", &coreerrors.FetchError{URL: url, Cause: err}
	}

	text, err := s.transform(raw, url)
	if err != nil {
		return "", &coreerrors.FetchError{URL: url, Cause: err}
	}

	data, err := s.codec.Compress(text)
	if err != nil {
		return "", &coreerrors.FetchError{URL: url, Cause: err}
	}

	if s.deps.Cache != nil {
		if err := s.deps.Cache.Set(ctx, key, data, s.ttl); err != nil {
			s.deps.Logger.Warn("Failed to store article content", map[string]interface{}{
				"url":   url,
				"key":   key,
				"error": err.Error(),
			})
		}
	}

	stored, err := s.codec.Decompress(data)
	if err != nil {
		return "", &coreerrors.FetchError{URL: url, Cause: err}
	}

	s.deps.Logger.Info("Fetched article content", map[string]interface{}{
		"url":              url,
		"raw_bytes":        len(raw),
		"compressed_bytes": len(data),
		"duration_ms":      time.Since(start).Milliseconds(),
	})
	return stored, nil
}

// download retrieves the article page and checks it is a text document
func (s *Service) download(ctx context.Context, url string) ([]byte, error) {
	if s.deps.HTTPClient == nil {
		return nil, errors.New("HTTP client not configured")
	}

	resp, err := s.deps.HTTPClient.Get(ctx, url)
	if err != nil {
		return nil, err
	}
	body := resp.Body()
	defer body.Close()

	if resp.StatusCode() != http.StatusOK {
		return nil, &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    http.StatusText(resp.StatusCode()),
			API:        "article",
		}
	}

	contentType := resp.Header("Content-Type")
	if !isTextual(contentType) {
		return nil, fmt.Errorf("unsupported content type %q", contentType)
	}

	raw, err := io.ReadAll(io.LimitReader(body, s.maxBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if int64(len(raw)) > s.maxBodyBytes {
		return nil, fmt.Errorf("article exceeds %d bytes", s.maxBodyBytes)
	}
	return toUTF8(raw, contentType), nil
}

// toUTF8 decodes non-UTF-8 pages using the charset from the header or a
// <meta> tag. Valid UTF-8 and undecodable input are passed through unchanged.
func toUTF8(raw []byte, contentType string) []byte {
	if utf8.Valid(raw) {
		return raw
	}
	r, err := charset.NewReader(bytes.NewReader(raw), contentType)
	if err != nil {
		return raw
	}
	decoded, err := io.ReadAll(r)
	if err != nil {
		return raw
	}
	return decoded
}

// transform runs the content transformer, turning a panic into an error
func (s *Service) transform(raw []byte, url string) (text string, err error) {
	if s.transformer == nil {
		return "", errors.New("content transformer not configured")
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("transform panicked: %v", r)
		}
	}()

	return s.transformer.Transform(raw, url)
}

// isTextual accepts missing content types and any text, HTML or XML document
func isTextual(contentType string) bool {
	if contentType == "" {
		return true
	}
	ct := strings.ToLower(contentType)
	return strings.HasPrefix(ct, "text/") || strings.Contains(ct, "html") || strings.Contains(ct, "xml")
}
