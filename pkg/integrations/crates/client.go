package crates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/ChenhuiZhang/cargo-scorecard/pkg/errors"
	"github.com/ChenhuiZhang/cargo-scorecard/pkg/integrations"
)

// DefaultBaseURL is the crates.io API root.
const DefaultBaseURL = "https://crates.io/api/v1"

// CrateInfo holds metadata for a Rust crate from crates.io.
//
// Repository is nil when the registry has no repository metadata for the
// crate (the field was absent or null). All other string fields may be empty.
// This struct is safe for concurrent reads after construction.
type CrateInfo struct {
	Name        string  // Crate name (e.g., "serde")
	Version     string  // Latest version (max_version)
	Repository  *string // Repository URL, nil when unknown
	HomePage    string  // Homepage URL (may be empty)
	Description string  // Crate description (may be empty)
	License     string  // License identifier(s) (may be empty or "MIT OR Apache-2.0")
	Downloads   int     // Total download count across all versions
}

// Client provides access to the crates.io package registry API.
//
// All methods are safe for concurrent use by multiple goroutines.
//
// Note: crates.io requires a User-Agent header; this client sets one automatically.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a crates.io client that sends requests through hc.
// Pass the run's shared *http.Client; nil gets a default one.
//
// The client includes the cargo-scorecard User-Agent header as required by
// crates.io API policy.
func NewClient(hc *http.Client) *Client {
	return NewClientWithBaseURL(hc, DefaultBaseURL)
}

// NewClientWithBaseURL is like [NewClient] but targets a different API root,
// such as a registry mirror or a test server.
func NewClientWithBaseURL(hc *http.Client, baseURL string) *Client {
	return &Client{
		Client:  integrations.NewClient(hc, integrations.DefaultHeaders()),
		baseURL: baseURL,
	}
}

// Resolve returns the source repository URL that crates.io records for
// crate, or nil if the crate has no repository metadata.
//
// Resolve issues exactly one request. Errors carry
// [errors.ErrCodeTransport], [errors.ErrCodeHTTPStatus] or
// [errors.ErrCodeParse] and name the crate; an invalid or empty crate name
// fails with [errors.ErrCodeInvalidPackage] before any request is made.
//
// Only crate.repository is read. A body that is not a JSON object fails with
// [errors.ErrCodeParse]; a missing crate object or a repository that is not a
// string counts as absent.
func (c *Client) Resolve(ctx context.Context, crate string) (*string, error) {
	if err := errors.ValidateCrateName(crate); err != nil {
		return nil, err
	}

	var data repositoryResponse
	if err := c.Get(ctx, c.crateURL(crate), &data); err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "resolve repository for crate %s", crate)
	}

	var crateObj struct {
		Repository json.RawMessage `json:"repository"`
	}
	if json.Unmarshal(data.Crate, &crateObj) != nil {
		return nil, nil
	}
	return jsonString(crateObj.Repository), nil
}

// jsonString returns the value of raw if it holds a JSON string, else nil.
func jsonString(raw json.RawMessage) *string {
	var s *string
	if json.Unmarshal(raw, &s) != nil {
		return nil
	}
	return s
}

// FetchCrate retrieves metadata for a Rust crate from crates.io.
// Unlike [Client.Resolve] it decodes the full document, so a field with an
// unexpected type fails the call with [errors.ErrCodeParse].
//
// The crate parameter is case-sensitive and must match the published crate
// name exactly. The returned CrateInfo pointer is never nil if err is nil.
func (c *Client) FetchCrate(ctx context.Context, crate string) (*CrateInfo, error) {
	if err := errors.ValidateCrateName(crate); err != nil {
		return nil, err
	}

	var data crateResponse
	if err := c.Get(ctx, c.crateURL(crate), &data); err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "fetch crate %s", crate)
	}

	return &CrateInfo{
		Name:        data.Crate.Name,
		Version:     data.Crate.MaxVersion,
		Repository:  data.Crate.Repository,
		HomePage:    data.Crate.HomePage,
		Description: data.Crate.Description,
		License:     data.Crate.License,
		Downloads:   data.Crate.Downloads,
	}, nil
}

func (c *Client) crateURL(crate string) string {
	return fmt.Sprintf("%s/crates/%s", c.baseURL, url.PathEscape(crate))
}

type repositoryResponse struct {
	Crate json.RawMessage `json:"crate"`
}

type crateResponse struct {
	Crate struct {
		Name        string  `json:"name"`
		MaxVersion  string  `json:"max_version"`
		Description string  `json:"description"`
		License     string  `json:"license"`
		Repository  *string `json:"repository"`
		HomePage    string  `json:"homepage"`
		Downloads   int     `json:"downloads"`
	} `json:"crate"`
}
