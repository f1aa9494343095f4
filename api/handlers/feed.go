// ABOUTME: Feed handlers for the Huma API
// ABOUTME: Serves a feed re-emitted with full article bodies as RSS or Atom

package handlers

import (
	"context"
	"net/http"
	"strings"

	"fullfeed-api/core/domain"
	coreerrors "fullfeed-api/core/errors"
	"fullfeed-api/core/interfaces"
	"fullfeed-api/pkg/featureflags"

	"github.com/danielgtaylor/huma/v2"
)

// FeedHandler handles feed-related HTTP requests
type FeedHandler struct {
	feedService interfaces.FeedService
	flags       featureflags.Manager
}

// NewFeedHandler creates a new feed handler. flags may be nil.
func NewFeedHandler(feedService interfaces.FeedService, flags featureflags.Manager) *FeedHandler {
	if flags == nil {
		flags = featureflags.NewStaticManager(nil)
	}
	return &FeedHandler{
		feedService: feedService,
		flags:       flags,
	}
}

// RegisterRoutes registers all feed-related routes
func (h *FeedHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getFullFeed",
		Method:      http.MethodGet,
		Path:        "/feed",
		Summary:     "Get a feed with full article content",
		Description: "Fetches an RSS/Atom feed and replaces the body of its first entries with the readable content of each linked article",
		Tags:        []string{"Feeds"},
	}, h.GetFullFeed)
}

// FullFeedInput defines the input for the GetFullFeed operation
type FullFeedInput struct {
	URL    string `query:"url" doc:"Feed URL" example:"https://example.com/feed.xml"`
	Format string `query:"format" enum:"rss,atom" doc:"Output format; defaults to rss"`
}

// FullFeedOutput defines the output for the GetFullFeed operation
type FullFeedOutput struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}

// GetFullFeed handles the GET /feed endpoint
func (h *FeedHandler) GetFullFeed(ctx context.Context, input *FullFeedInput) (*FullFeedOutput, error) {
	feedURL := strings.TrimSpace(input.URL)
	if feedURL == "" {
		return nil, toHumaError(&coreerrors.ValidationError{Field: "url", Message: "url is required"})
	}

	body, contentType, err := h.feedService.BuildFullFeed(ctx, feedURL, h.format(ctx, input.Format))
	if err != nil {
		return nil, toHumaError(err)
	}

	return &FullFeedOutput{
		ContentType: contentType,
		Body:        body,
	}, nil
}

// format resolves the requested output format, honoring the atom_default flag
func (h *FeedHandler) format(ctx context.Context, requested string) domain.FeedFormat {
	if requested != "" {
		return domain.FeedFormat(requested)
	}
	if h.flags.IsEnabled(ctx, featureflags.AtomDefault) {
		return domain.FormatAtom
	}
	return domain.FormatRSS
}
