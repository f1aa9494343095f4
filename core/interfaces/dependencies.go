// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: The cache handle is opened by the entry point and passed in, never held globally

package interfaces

// Dependencies holds all external dependencies required by the core business logic
type Dependencies struct {
	// Cache stores compressed article content keyed by URL fingerprint
	Cache Cache

	// HTTPClient fetches feeds and article pages
	HTTPClient HTTPClient

	// Logger provides structured logging
	Logger Logger
}
