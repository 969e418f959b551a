// Package security validates untrusted values received from remote services.
package security

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
)

// ErrBodyTooLarge is returned once a LimitedReader has used its budget.
var ErrBodyTooLarge = errors.New("response size limit exceeded")

// ValidateImageURL checks that a paint image URL is an absolute http(s) URL
// that is safe to embed in a CSS url() value.
func ValidateImageURL(urlStr string) error {
	if urlStr == "" {
		return fmt.Errorf("empty image URL")
	}

	parsed, err := url.Parse(urlStr)
	if err != nil {
		return fmt.Errorf("invalid image URL: %w", err)
	}

	scheme := strings.ToLower(parsed.Scheme)
	if scheme != "https" && scheme != "http" {
		return fmt.Errorf("image URL must use http or https (got %q)", parsed.Scheme)
	}

	if parsed.Host == "" {
		return fmt.Errorf("image URL must have a hostname")
	}

	return nil
}

// LimitedReader wraps an io.Reader and fails once more than the allowed
// number of bytes has been read.
type LimitedReader struct {
	R         io.Reader
	Remaining int64
}

// Read implements io.Reader with a size limit.
func (l *LimitedReader) Read(p []byte) (int, error) {
	if l.Remaining <= 0 {
		// Probe for one more byte so that an exact-size body still ends in EOF.
		var probe [1]byte
		n, err := l.R.Read(probe[:])
		if n > 0 {
			return 0, ErrBodyTooLarge
		}
		return 0, err
	}
	if int64(len(p)) > l.Remaining {
		p = p[:l.Remaining]
	}
	n, err := l.R.Read(p)
	l.Remaining -= int64(n)
	return n, err
}

// NewLimitedReader creates a new LimitedReader with the specified size limit.
func NewLimitedReader(r io.Reader, maxBytes int64) *LimitedReader {
	return &LimitedReader{
		R:         r,
		Remaining: maxBytes,
	}
}
