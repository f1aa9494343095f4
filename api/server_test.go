package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"fullfeed-api/api/handlers"
	"fullfeed-api/core/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAPI_Info(t *testing.T) {
	api, router := NewAPI()

	require.NotNil(t, api)
	require.NotNil(t, router)
	assert.Equal(t, "Full Feed API", api.OpenAPI().Info.Title)
	assert.Equal(t, "1.0.0", api.OpenAPI().Info.Version)
}

func TestAPI_OpenAPIEndpoint(t *testing.T) {
	_, router := NewAPI()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/vnd.oai.openapi+json", rec.Header().Get("Content-Type"))
}

func TestAPI_IndexPage(t *testing.T) {
	_, router := NewAPI()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<form")
}

func TestAPI_RequestLoggingSetsRequestID(t *testing.T) {
	api, router := NewAPIWithMiddleware(APIConfig{Logger: interfaces.NopLogger{}})
	handlers.NewHealthHandler(nil).RegisterRoutes(api)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestAPI_CORSPreflight(t *testing.T) {
	api, router := NewAPI()
	handlers.NewHealthHandler(nil).RegisterRoutes(api)

	req := httptest.NewRequest(http.MethodOptions, "/healthz", nil)
	req.Header.Set("Origin", "https://reader.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
