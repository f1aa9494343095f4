// ABOUTME: Feed service fetches an outer feed and re-emits it with full article bodies
// ABOUTME: Outer feed failures are fatal for the request; article failures are contained

package feed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"fullfeed-api/core/content"
	"fullfeed-api/core/domain"
	coreerrors "fullfeed-api/core/errors"
	"fullfeed-api/core/interfaces"
)

// maxFeedBytes caps the size of an outer feed document
const maxFeedBytes int64 = 20 << 20

// FeedService implements interfaces.FeedService
type FeedService struct {
	deps      interfaces.Dependencies
	processor interfaces.FeedProcessor
}

// NewFeedService creates a new feed service instance
func NewFeedService(deps interfaces.Dependencies, processor interfaces.FeedProcessor) *FeedService {
	if deps.Logger == nil {
		deps.Logger = interfaces.NopLogger{}
	}
	return &FeedService{
		deps:      deps,
		processor: processor,
	}
}

// FetchFeed downloads and parses the feed at feedURL. The feed itself is never cached.
func (s *FeedService) FetchFeed(ctx context.Context, feedURL string) (*domain.Feed, error) {
	parsedURL, err := content.ValidateURL(feedURL)
	if err != nil {
		return nil, err
	}
	feedURL = parsedURL.String()

	if s.deps.HTTPClient == nil {
		return nil, errors.New("HTTP client not configured")
	}

	resp, err := s.deps.HTTPClient.Get(ctx, feedURL)
	if err != nil {
		return nil, &coreerrors.FetchError{URL: feedURL, Cause: coreerrors.WrapError(err, "fetch feed")}
	}
	body := resp.Body()
	defer body.Close()

	if resp.StatusCode() != http.StatusOK {
		return nil, &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    http.StatusText(resp.StatusCode()),
			API:        "feed",
		}
	}

	raw, err := io.ReadAll(io.LimitReader(body, maxFeedBytes+1))
	if err != nil {
		return nil, &coreerrors.FetchError{URL: feedURL, Cause: coreerrors.WrapError(err, "read feed")}
	}
	if int64(len(raw)) > maxFeedBytes {
		return nil, &coreerrors.FetchError{URL: feedURL, Cause: fmt.Errorf("feed exceeds %d bytes", maxFeedBytes)}
	}

	feed, err := ParseFeed(raw, feedURL)
	if err != nil {
		return nil, &coreerrors.FeedParseError{URL: feedURL, Cause: err}
	}

	s.deps.Logger.Debug("Parsed feed", map[string]interface{}{
		"url":     feedURL,
		"title":   feed.Title,
		"entries": len(feed.Entries),
	})
	return feed, nil
}

// BuildFullFeed fetches the feed, replaces entry bodies with article content
// and serializes the result.
func (s *FeedService) BuildFullFeed(ctx context.Context, feedURL string, format domain.FeedFormat) ([]byte, string, error) {
	feed, err := s.FetchFeed(ctx, feedURL)
	if err != nil {
		s.deps.Logger.Error("Failed to fetch feed", map[string]interface{}{
			"url":   feedURL,
			"error": err.Error(),
		})
		return nil, "", err
	}

	if s.processor != nil {
		feed = s.processor.Process(ctx, feed)
	}

	return Serialize(feed, format)
}
