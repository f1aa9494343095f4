// ABOUTME: Huma API server configuration and setup
// ABOUTME: Provides OpenAPI documentation and request/response validation

package api

import (
	"fullfeed-api/api/handlers"
	"fullfeed-api/api/middleware"
	"fullfeed-api/core/interfaces"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

const (
	apiTitle   = "Full Feed API"
	apiVersion = "1.0.0"
)

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger interfaces.Logger
}

// NewAPI creates and configures a new Huma API instance without request logging
func NewAPI() (huma.API, chi.Router) {
	return NewAPIWithMiddleware(APIConfig{})
}

// NewAPIWithMiddleware creates a new API with middleware configured.
// The landing page is served from the router directly; everything else is a Huma operation.
func NewAPIWithMiddleware(cfg APIConfig) (huma.API, chi.Router) {
	router := chi.NewRouter()

	// CORS must run before logging so preflights are answered cheaply
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300, // Maximum value not ignored by any of major browsers
	}))

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	router.Get("/", handlers.Index)

	config := huma.DefaultConfig(apiTitle, apiVersion)
	config.Info.Description = "Re-emits RSS/Atom feeds with the full readable content of each linked article"

	// OpenAPI document at /openapi.json, docs UI at /docs
	api := humachi.New(router, config)

	return api, router
}
