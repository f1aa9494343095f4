// ABOUTME: Gzip codec for cached article content
// ABOUTME: Compresses content strings into a self-describing stream and back

package codec

import (
	"bytes"
	"fmt"
	"io"

	coreerrors "fullfeed-api/core/errors"
	"github.com/klauspost/compress/gzip"
)

// GzipCodec implements interfaces.Codec with gzip streams
type GzipCodec struct {
	level int
}

// NewGzipCodec creates a codec using the given compression level.
// Out of range levels fall back to gzip.DefaultCompression.
func NewGzipCodec(level int) *GzipCodec {
	if level < gzip.HuffmanOnly || level > gzip.BestCompression {
		level = gzip.DefaultCompression
	}
	return &GzipCodec{level: level}
}

// Compress gzips text. The whole stream is accumulated in memory and
// returned as one unit.
func (c *GzipCodec) Compress(text string) ([]byte, error) {
	var buf bytes.Buffer
	w, err := gzip.NewWriterLevel(&buf, c.level)
	if err != nil {
		return nil, fmt.Errorf("create gzip writer: %w", err)
	}
	if _, err := io.WriteString(w, text); err != nil {
		w.Close()
		return nil, fmt.Errorf("compress content: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("flush gzip stream: %w", err)
	}
	return buf.Bytes(), nil
}

// Decompress reverses Compress. Any malformed input yields a CorruptDataError.
func (c *GzipCodec) Decompress(data []byte) (string, error) {
	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return "", &coreerrors.CorruptDataError{Cause: err}
	}
	defer r.Close()

	var out bytes.Buffer
	if _, err := io.Copy(&out, r); err != nil {
		return "", &coreerrors.CorruptDataError{Cause: err}
	}
	return out.String(), nil
}
