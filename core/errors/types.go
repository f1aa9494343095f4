// ABOUTME: Custom error types for the core business logic
// ABOUTME: Provides structured errors for the content pipeline and API responses

package errors

import (
	"errors"
	"fmt"
)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// ExternalAPIError represents a non-success response from an upstream server
type ExternalAPIError struct {
	StatusCode int
	Message    string
	API        string
}

// Error implements the error interface
func (e *ExternalAPIError) Error() string {
	return fmt.Sprintf("external API error from %s: %d - %s", e.API, e.StatusCode, e.Message)
}

// InvalidURLError is returned before any I/O when an article URL is not
// an absolute http(s) URL.
type InvalidURLError struct {
	URL    string
	Reason string
}

// Error implements the error interface
func (e *InvalidURLError) Error() string {
	return fmt.Sprintf("invalid URL %q: %s", e.URL, e.Reason)
}

// FetchError wraps any failure while acquiring an article: transport,
// non-text response, transform failure or unreadable cached data.
type FetchError struct {
	URL   string
	Cause error
}

// Error implements the error interface
func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Cause)
}

// Unwrap returns the underlying cause
func (e *FetchError) Unwrap() error {
	return e.Cause
}

// CorruptDataError means stored bytes could not be decoded by the codec
type CorruptDataError struct {
	Cause error
}

// Error implements the error interface
func (e *CorruptDataError) Error() string {
	return fmt.Sprintf("corrupt data: %v", e.Cause)
}

// Unwrap returns the underlying cause
func (e *CorruptDataError) Unwrap() error {
	return e.Cause
}

// FeedParseError means the outer feed document could not be parsed
type FeedParseError struct {
	URL   string
	Cause error
}

// Error implements the error interface
func (e *FeedParseError) Error() string {
	return fmt.Sprintf("parse feed %s: %v", e.URL, e.Cause)
}

// Unwrap returns the underlying cause
func (e *FeedParseError) Unwrap() error {
	return e.Cause
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsExternalAPI checks if an error is an ExternalAPIError
func IsExternalAPI(err error) bool {
	var apiErr *ExternalAPIError
	return errors.As(err, &apiErr)
}

// IsInvalidURL checks if an error is an InvalidURLError
func IsInvalidURL(err error) bool {
	var urlErr *InvalidURLError
	return errors.As(err, &urlErr)
}

// IsFetch checks if an error is a FetchError
func IsFetch(err error) bool {
	var fetchErr *FetchError
	return errors.As(err, &fetchErr)
}

// IsCorruptData checks if an error is a CorruptDataError
func IsCorruptData(err error) bool {
	var corruptErr *CorruptDataError
	return errors.As(err, &corruptErr)
}

// IsFeedParse checks if an error is a FeedParseError
func IsFeedParse(err error) bool {
	var parseErr *FeedParseError
	return errors.As(err, &parseErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
