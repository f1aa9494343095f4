package content

import (
	"crypto/sha256"
	"encoding/hex"
	"net/url"

	coreerrors "fullfeed-api/core/errors"
)

// CacheKey returns the hex SHA-256 fingerprint of an article URL.
// Equal URLs always produce equal keys.
func CacheKey(articleURL string) string {
	sum := sha256.Sum256([]byte(articleURL))
	return hex.EncodeToString(sum[:])
}

// ValidateURL accepts absolute http(s) URLs only.
func ValidateURL(rawURL string) (*url.URL, error) {
	if rawURL == "" {
		return nil, &coreerrors.InvalidURLError{URL: rawURL, Reason: "empty"}
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, &coreerrors.InvalidURLError{URL: rawURL, Reason: err.Error()}
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, &coreerrors.InvalidURLError{URL: rawURL, Reason: "scheme must be http or https"}
	}
	if parsed.Host == "" {
		return nil, &coreerrors.InvalidURLError{URL: rawURL, Reason: "missing host"}
	}
	return parsed, nil
}
