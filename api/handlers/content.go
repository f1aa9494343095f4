// ABOUTME: Content handler for the Huma API
// ABOUTME: Runs a single article URL through the fetch, extract and render pipeline

package handlers

import (
	"context"
	"net/http"
	"strings"

	coreerrors "fullfeed-api/core/errors"
	"fullfeed-api/core/interfaces"

	"github.com/danielgtaylor/huma/v2"
)

// ContentHandler handles single-article requests
type ContentHandler struct {
	fetcher interfaces.ContentFetcher
}

// NewContentHandler creates a new content handler
func NewContentHandler(fetcher interfaces.ContentFetcher) *ContentHandler {
	return &ContentHandler{fetcher: fetcher}
}

// RegisterRoutes registers all content-related routes
func (h *ContentHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getContent",
		Method:      http.MethodGet,
		Path:        "/content",
		Summary:     "Extract readable content from an article",
		Description: "Downloads an article page and returns its readable content as sanitized HTML. Results are cached briefly.",
		Tags:        []string{"Content"},
	}, h.GetContent)
}

// ContentInput defines the input for the GetContent operation
type ContentInput struct {
	URL string `query:"url" doc:"Article URL" example:"https://example.com/2024/01/post"`
}

// ContentBody is the JSON payload returned for an article
type ContentBody struct {
	URL     string `json:"url" doc:"Requested article URL"`
	Content string `json:"content" doc:"Readable article content as HTML"`
}

// ContentOutput defines the output for the GetContent operation
type ContentOutput struct {
	Body ContentBody
}

// GetContent handles the GET /content endpoint
func (h *ContentHandler) GetContent(ctx context.Context, input *ContentInput) (*ContentOutput, error) {
	articleURL := strings.TrimSpace(input.URL)
	if articleURL == "" {
		return nil, toHumaError(&coreerrors.ValidationError{Field: "url", Message: "url is required"})
	}

	body, err := h.fetcher.FetchContent(ctx, articleURL)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &ContentOutput{
		Body: ContentBody{
			URL:     articleURL,
			Content: body,
		},
	}, nil
}
