// Package core contains the business logic for the Full Feed API.
// It is framework-agnostic; all I/O goes through the contracts in
// core/interfaces and is injected by cmd/api.
//
// The core package is organized into several sub-packages:
//
// - domain: Feed and Entry models
// - codec: gzip compression of cached article bodies
// - reader: readability extraction of an article page to Markdown
// - content: article fetcher with a TTL cache keyed by SHA-256 of the URL
// - feed: outer feed parsing, bounded entry processing, RSS/Atom output
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, HTTP, logger)
//
// # Usage Example
//
//	import (
//	    "fullfeed-api/core/content"
//	    "fullfeed-api/core/feed"
//	    "fullfeed-api/core/interfaces"
//	    "fullfeed-api/core/reader"
//	)
//
//	deps := interfaces.Dependencies{
//	    Cache:      cache,
//	    HTTPClient: httpClient,
//	    Logger:     logger,
//	}
//
//	fetcher := content.NewService(deps, reader.NewTransformer())
//	feedService := feed.NewFeedService(deps, feed.NewProcessor(fetcher, logger))
//
//	body, contentType, err := feedService.BuildFullFeed(ctx, "https://example.com/feed.xml", domain.FormatRSS)
package core
