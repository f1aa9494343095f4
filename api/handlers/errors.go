// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	"errors"

	coreerrors "fullfeed-api/core/errors"

	"github.com/danielgtaylor/huma/v2"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	if coreerrors.IsValidation(err) || coreerrors.IsInvalidURL(err) {
		return huma.Error400BadRequest(err.Error())
	}

	if coreerrors.IsFeedParse(err) {
		return huma.Error422UnprocessableEntity("Upstream document is not a valid feed", err)
	}

	var apiErr *coreerrors.ExternalAPIError
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode == 429 {
			return huma.Error429TooManyRequests("Rate limited by upstream server")
		}
		return huma.Error502BadGateway("Upstream server returned an error", err)
	}

	if coreerrors.IsFetch(err) {
		return huma.Error502BadGateway("Upstream fetch failed", err)
	}

	return huma.Error500InternalServerError("Internal server error", err)
}
