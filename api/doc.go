// Package api provides the HTTP API layer for the Full Feed service.
// It uses the Huma framework on a chi router for automatic OpenAPI
// documentation, request validation, and a clean handler interface.
//
// # Architecture
//
//   - server.go: Huma API configuration, CORS and request logging
//   - handlers/: HTTP request handlers (feed, content, health, landing page)
//   - middleware/: request logging and outbound request logging
//
// # Endpoints
//
//	GET /                landing page with a feed URL form
//	GET /feed?url=&format=rss|atom
//	GET /content?url=
//	GET /healthz
//	GET /openapi.json    generated OpenAPI document
//	GET /docs            interactive docs
//
// # Usage Example
//
//	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{Logger: logger})
//	handlers.NewFeedHandler(feedService, flags).RegisterRoutes(humaAPI)
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// Errors use the RFC 7807 problem format. Invalid input maps to 400,
// documents that are not feeds to 422, and upstream failures to 502.
package api
