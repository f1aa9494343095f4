package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockLogger implements the Logger interface for testing
type MockLogger struct {
	mu   sync.Mutex
	logs []LogEntry
}

type LogEntry struct {
	Level   string
	Message string
	Fields  map[string]interface{}
}

func (m *MockLogger) record(level, msg string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logs = append(m.logs, LogEntry{Level: level, Message: msg, Fields: fields})
}

func (m *MockLogger) Debug(msg string, fields map[string]interface{}) { m.record("DEBUG", msg, fields) }
func (m *MockLogger) Info(msg string, fields map[string]interface{})  { m.record("INFO", msg, fields) }
func (m *MockLogger) Warn(msg string, fields map[string]interface{})  { m.record("WARN", msg, fields) }
func (m *MockLogger) Error(msg string, fields map[string]interface{}) { m.record("ERROR", msg, fields) }

func TestRequestLoggingMiddleware_LogsRequestMethodAndPath(t *testing.T) {
	logger := &MockLogger{}
	handler := RequestLoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/feed?url=https://example.com/rss", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Len(t, logger.logs, 2)

	startLog := logger.logs[0]
	assert.Equal(t, "INFO", startLog.Level)
	assert.Equal(t, "Request started", startLog.Message)
	assert.Equal(t, http.MethodGet, startLog.Fields["method"])
	assert.Equal(t, "/feed", startLog.Fields["path"])
	assert.Equal(t, "url=https://example.com/rss", startLog.Fields["query"])
	assert.NotEmpty(t, startLog.Fields["request_id"])

	completeLog := logger.logs[1]
	assert.Equal(t, "Request completed", completeLog.Message)
	assert.Equal(t, http.StatusOK, completeLog.Fields["status"])
}

func TestRequestLoggingMiddleware_LogsResponseStatusCode(t *testing.T) {
	tests := []struct {
		name           string
		responseStatus int
		expectedLogs   int
		expectError    bool
	}{
		{"200 OK", http.StatusOK, 2, false},
		{"400 Bad Request", http.StatusBadRequest, 2, false},
		{"500 Internal Server Error", http.StatusInternalServerError, 3, true},
		{"502 Bad Gateway", http.StatusBadGateway, 3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := &MockLogger{}
			handler := RequestLoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.responseStatus)
			}))

			handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/test", nil))

			require.Len(t, logger.logs, tt.expectedLogs)
			assert.Equal(t, tt.responseStatus, logger.logs[1].Fields["status"])

			if tt.expectError {
				assert.Equal(t, "ERROR", logger.logs[2].Level)
				assert.Contains(t, logger.logs[2].Message, "server error")
			}
		})
	}
}

func TestRequestLoggingMiddleware_LogsRequestDuration(t *testing.T) {
	logger := &MockLogger{}
	handler := RequestLoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(50 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/test", nil))

	durationMs, ok := logger.logs[1].Fields["duration_ms"].(int64)
	require.True(t, ok)
	assert.GreaterOrEqual(t, durationMs, int64(50))
}

func TestRequestLoggingMiddleware_RequestIDInContextAndHeader(t *testing.T) {
	logger := &MockLogger{}
	var ctxID string
	handler := RequestLoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxID = RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/test", nil))

	requestID := logger.logs[0].Fields["request_id"].(string)
	assert.Len(t, requestID, 36)
	assert.Equal(t, requestID, logger.logs[1].Fields["request_id"])
	assert.Equal(t, requestID, ctxID)
	assert.Equal(t, requestID, rec.Header().Get("X-Request-ID"))
}

func TestRequestLoggingMiddleware_ReusesIncomingRequestID(t *testing.T) {
	logger := &MockLogger{}
	handler := RequestLoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("X-Request-ID", "upstream-id")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "upstream-id", rec.Header().Get("X-Request-ID"))
	assert.Equal(t, "upstream-id", logger.logs[0].Fields["request_id"])
}

func TestResponseWriter_CapturesStatusCode(t *testing.T) {
	rw := &responseWriter{ResponseWriter: httptest.NewRecorder(), statusCode: http.StatusOK}

	rw.WriteHeader(http.StatusCreated)
	assert.Equal(t, http.StatusCreated, rw.statusCode)
	assert.True(t, rw.written)

	rw.WriteHeader(http.StatusBadRequest)
	assert.Equal(t, http.StatusCreated, rw.statusCode)
}

func TestResponseWriter_DefaultsTo200(t *testing.T) {
	rw := &responseWriter{ResponseWriter: httptest.NewRecorder(), statusCode: http.StatusOK}

	rw.Write([]byte("test"))
	assert.Equal(t, http.StatusOK, rw.statusCode)
	assert.True(t, rw.written)
}

func TestExtractIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{"forwarded chain takes first", map[string]string{"X-Forwarded-For": "203.0.113.1, 10.0.0.1"}, "10.0.0.2:1234", "203.0.113.1"},
		{"real ip", map[string]string{"X-Real-IP": "198.51.100.7"}, "10.0.0.2:1234", "198.51.100.7"},
		{"remote addr", nil, "192.168.1.1:1234", "192.168.1.1:1234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, extractIP(req))
		})
	}
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) { return f(req) }

func TestLoggingRoundTripper_PropagatesRequestID(t *testing.T) {
	logger := &MockLogger{}
	var sentID string
	rt := &LoggingRoundTripper{
		Logger: logger,
		Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
			sentID = req.Header.Get("X-Request-ID")
			return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody}, nil
		}),
	}

	req := httptest.NewRequest(http.MethodGet, "https://example.com/post", nil)
	req = req.WithContext(WithRequestID(req.Context(), "req-123"))

	resp, err := rt.RoundTrip(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "req-123", sentID)
	assert.Empty(t, req.Header.Get("X-Request-ID"), "caller's request must not be mutated")
	require.Len(t, logger.logs, 2)
	assert.Equal(t, "Outgoing HTTP response", logger.logs[1].Message)
	assert.Equal(t, http.StatusOK, logger.logs[1].Fields["status"])
}

func TestLoggingRoundTripper_LogsFailure(t *testing.T) {
	logger := &MockLogger{}
	rt := &LoggingRoundTripper{
		Logger: logger,
		Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
			return nil, errors.New("connection refused")
		}),
	}

	_, err := rt.RoundTrip(httptest.NewRequest(http.MethodGet, "https://example.com/post", nil))
	require.Error(t, err)

	last := logger.logs[len(logger.logs)-1]
	assert.Equal(t, "WARN", last.Level)
	assert.Equal(t, "connection refused", last.Fields["error"])
}
