package integrations

import (
	"net/http"
	"time"

	"github.com/ChenhuiZhang/cargo-scorecard/pkg/buildinfo"
)

// DefaultTimeout bounds every upstream request so that no lookup can
// suspend a batch indefinitely.
const DefaultTimeout = 10 * time.Second

// NewHTTPClient creates an HTTP client with the given per-request timeout.
// A non-positive timeout falls back to [DefaultTimeout].
//
// The returned client is meant to be created once per run and shared by all
// API clients; net/http clients are safe for concurrent use.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

// DefaultHeaders returns the headers every upstream request carries.
func DefaultHeaders() map[string]string {
	return map[string]string{
		"User-Agent": buildinfo.UserAgent(),
	}
}
