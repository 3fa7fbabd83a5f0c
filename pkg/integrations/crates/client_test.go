package crates

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/ChenhuiZhang/cargo-scorecard/pkg/buildinfo"
	"github.com/ChenhuiZhang/cargo-scorecard/pkg/errors"
)

func TestNewClient(t *testing.T) {
	c := NewClient(nil)
	if c.Client == nil {
		t.Error("expected client to be initialized")
	}
	if c.baseURL != DefaultBaseURL {
		t.Errorf("baseURL = %q, want %q", c.baseURL, DefaultBaseURL)
	}
}

func TestClient_FetchCrate(t *testing.T) {
	var userAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userAgent = r.Header.Get("User-Agent")
		if r.URL.Path != "/crates/serde" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(`{"crate": {
			"name": "serde",
			"max_version": "1.0.193",
			"description": "A generic serialization/deserialization framework",
			"license": "MIT OR Apache-2.0",
			"repository": "https://github.com/serde-rs/serde",
			"homepage": "https://serde.rs",
			"downloads": 1000000
		}}`))
	}))
	defer server.Close()

	c := NewClientWithBaseURL(server.Client(), server.URL)

	info, err := c.FetchCrate(context.Background(), "serde")
	if err != nil {
		t.Fatalf("FetchCrate failed: %v", err)
	}

	if info.Name != "serde" {
		t.Errorf("expected name serde, got %s", info.Name)
	}
	if info.Version != "1.0.193" {
		t.Errorf("expected version 1.0.193, got %s", info.Version)
	}
	if info.Repository == nil || *info.Repository != "https://github.com/serde-rs/serde" {
		t.Errorf("unexpected repository %v", info.Repository)
	}
	if info.License != "MIT OR Apache-2.0" {
		t.Errorf("expected license MIT OR Apache-2.0, got %s", info.License)
	}
	if info.Downloads != 1000000 {
		t.Errorf("expected 1000000 downloads, got %d", info.Downloads)
	}
	if userAgent != buildinfo.UserAgent() {
		t.Errorf("User-Agent = %q, want %q", userAgent, buildinfo.UserAgent())
	}
}

func TestClient_Resolve(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantRepo *string
		wantCode errors.Code
	}{
		{
			name:     "repository present",
			status:   http.StatusOK,
			body:     `{"crate": {"name": "serde", "repository": "https://github.com/serde-rs/serde"}}`,
			wantRepo: ptr("https://github.com/serde-rs/serde"),
		},
		{
			name:   "repository null",
			status: http.StatusOK,
			body:   `{"crate": {"name": "left-pad-clone", "repository": null}}`,
		},
		{
			name:   "repository absent",
			status: http.StatusOK,
			body:   `{"crate": {"name": "left-pad-clone"}}`,
		},
		{
			name:   "crate object absent",
			status: http.StatusOK,
			body:   `{}`,
		},
		{
			name:     "not found",
			status:   http.StatusNotFound,
			body:     `{"errors": [{"detail": "Not Found"}]}`,
			wantCode: errors.ErrCodeHTTPStatus,
		},
		{
			name:     "server error",
			status:   http.StatusBadGateway,
			wantCode: errors.ErrCodeHTTPStatus,
		},
		{
			name:     "malformed body",
			status:   http.StatusOK,
			body:     `{"crate": `,
			wantCode: errors.ErrCodeParse,
		},
		{
			name:   "repository wrong type",
			status: http.StatusOK,
			body:   `{"crate": {"repository": 42}}`,
		},
		{
			name:   "crate not an object",
			status: http.StatusOK,
			body:   `{"crate": "serde"}`,
		},
		{
			name:     "unrelated fields wrong type",
			status:   http.StatusOK,
			body:     `{"crate": {"repository": "https://github.com/serde-rs/serde", "downloads": "lots", "max_version": 1}, "versions": "n/a"}`,
			wantRepo: ptr("https://github.com/serde-rs/serde"),
		},
		{
			name:     "body not an object",
			status:   http.StatusOK,
			body:     `["serde"]`,
			wantCode: errors.ErrCodeParse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			c := NewClientWithBaseURL(server.Client(), server.URL)
			repo, err := c.Resolve(context.Background(), "serde")

			if tt.wantCode != "" {
				if !errors.Is(err, tt.wantCode) {
					t.Fatalf("Resolve() error = %v, want code %s", err, tt.wantCode)
				}
				if repo != nil {
					t.Errorf("Resolve() repo = %v, want nil on error", *repo)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve() unexpected error: %v", err)
			}
			switch {
			case tt.wantRepo == nil && repo != nil:
				t.Errorf("Resolve() = %q, want nil", *repo)
			case tt.wantRepo != nil && (repo == nil || *repo != *tt.wantRepo):
				t.Errorf("Resolve() = %v, want %q", repo, *tt.wantRepo)
			}
		})
	}
}

func TestClient_ResolveErrorNamesCrate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	c := NewClientWithBaseURL(server.Client(), server.URL)
	_, err := c.Resolve(context.Background(), "nonexistent")
	if err == nil {
		t.Fatal("expected error for nonexistent crate")
	}
	if got := errors.UserMessage(err); got != "resolve repository for crate nonexistent" {
		t.Errorf("UserMessage() = %q", got)
	}
	if errors.StatusCode(err) != http.StatusNotFound {
		t.Errorf("StatusCode() = %d, want 404", errors.StatusCode(err))
	}
}

func TestClient_ResolveInvalidNameSkipsRequest(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()

	c := NewClientWithBaseURL(server.Client(), server.URL)
	for _, name := range []string{"", "../admin", "a/b"} {
		if _, err := c.Resolve(context.Background(), name); !errors.Is(err, errors.ErrCodeInvalidPackage) {
			t.Errorf("Resolve(%q) error = %v, want %s", name, err, errors.ErrCodeInvalidPackage)
		}
	}
	if calls.Load() != 0 {
		t.Errorf("server called %d times, want 0", calls.Load())
	}
}

func TestClient_FetchCrateStrictDecode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"crate": {"repository": "https://github.com/serde-rs/serde", "downloads": "lots"}}`))
	}))
	defer server.Close()

	c := NewClientWithBaseURL(server.Client(), server.URL)
	if _, err := c.FetchCrate(context.Background(), "serde"); !errors.Is(err, errors.ErrCodeParse) {
		t.Errorf("FetchCrate() error = %v, want %s", err, errors.ErrCodeParse)
	}
	repo, err := c.Resolve(context.Background(), "serde")
	if err != nil || repo == nil {
		t.Fatalf("Resolve() = %v, %v; want repository", repo, err)
	}
}

func ptr(s string) *string { return &s }
