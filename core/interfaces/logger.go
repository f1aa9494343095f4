package interfaces

// Logger is the structured logger used by every service.
// Fields are attached as key/value pairs; implementations decide the format.
//
//	logger.Warn("Article fetch failed, keeping original entry", map[string]interface{}{
//		"url":   "https://example.com/post",
//		"error": err.Error(),
//	})
type Logger interface {
	// Debug logs detailed troubleshooting information such as cache hits.
	Debug(msg string, fields map[string]interface{})

	// Info logs general operational events.
	Info(msg string, fields map[string]interface{})

	// Warn logs recoverable failures, e.g. a single article that could not be fetched.
	Warn(msg string, fields map[string]interface{})

	// Error logs failures that abort a request or a component.
	Error(msg string, fields map[string]interface{})
}

// NopLogger discards everything. Services fall back to it when no logger is injected.
type NopLogger struct{}

func (NopLogger) Debug(string, map[string]interface{}) {}
func (NopLogger) Info(string, map[string]interface{})  {}
func (NopLogger) Warn(string, map[string]interface{})  {}
func (NopLogger) Error(string, map[string]interface{}) {}
