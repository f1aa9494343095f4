// ABOUTME: Health check handler for the Huma API
// ABOUTME: Reports liveness and, when available, cache backend statistics

package handlers

import (
	"context"
	"net/http"

	"fullfeed-api/core/interfaces"

	"github.com/danielgtaylor/huma/v2"
)

// HealthHandler reports service health
type HealthHandler struct {
	cache interfaces.Cache
}

// NewHealthHandler creates a new health handler. cache may be nil.
func NewHealthHandler(cache interfaces.Cache) *HealthHandler {
	return &HealthHandler{cache: cache}
}

// RegisterRoutes registers the health route
func (h *HealthHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "healthz",
		Method:      http.MethodGet,
		Path:        "/healthz",
		Summary:     "Health check",
		Tags:        []string{"Health"},
	}, h.Health)
}

// HealthBody is the health payload
type HealthBody struct {
	Status string                 `json:"status" example:"ok"`
	Cache  map[string]interface{} `json:"cache,omitempty" doc:"Cache backend statistics"`
}

// HealthOutput defines the output for the Health operation
type HealthOutput struct {
	Body HealthBody
}

// Health handles the GET /healthz endpoint. Cache statistics errors degrade
// the reported status but never fail the check.
func (h *HealthHandler) Health(ctx context.Context, _ *struct{}) (*HealthOutput, error) {
	out := &HealthOutput{Body: HealthBody{Status: "ok"}}

	if sp, ok := h.cache.(interfaces.StatsProvider); ok {
		stats, err := sp.Stats(ctx)
		if err != nil {
			out.Body.Status = "degraded"
			out.Body.Cache = map[string]interface{}{"error": err.Error()}
		} else {
			out.Body.Cache = stats
		}
	}

	return out, nil
}
