package integrations

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/ChenhuiZhang/cargo-scorecard/pkg/errors"
	"github.com/ChenhuiZhang/cargo-scorecard/pkg/observability"
)

// Client provides shared HTTP functionality for the upstream API clients.
// It applies common request headers and classifies failures into the
// transport, HTTP status and parse error codes of [errors].
//
// Each call issues exactly one request. Client holds no per-request state
// and is safe for concurrent use.
type Client struct {
	http    *http.Client
	headers map[string]string
}

// NewClient creates a Client that sends requests through hc with the given
// default headers. A nil hc gets [NewHTTPClient] with [DefaultTimeout].
// Pass nil for headers if no default headers are needed.
func NewClient(hc *http.Client, headers map[string]string) *Client {
	if hc == nil {
		hc = NewHTTPClient(DefaultTimeout)
	}
	return &Client{
		http:    hc,
		headers: headers,
	}
}

// Get performs an HTTP GET request and JSON-decodes the response into v.
func (c *Client) Get(ctx context.Context, url string, v any) error {
	return c.GetWithHeaders(ctx, url, nil, v)
}

// GetWithHeaders performs an HTTP GET with additional headers merged with defaults.
// Request-specific headers override client defaults for the same key.
//
// Errors carry one of three codes:
//   - [errors.ErrCodeTransport]: the request could not be built or sent, or
//     the body could not be read
//   - [errors.ErrCodeHTTPStatus]: the status was outside 200-299
//   - [errors.ErrCodeParse]: the body was not valid JSON for v
func (c *Client) GetWithHeaders(ctx context.Context, url string, headers map[string]string, v any) error {
	data, err := c.doRequest(ctx, url, headers)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errors.Wrap(errors.ErrCodeParse, err, "decode %s", url)
	}
	return nil
}

func (c *Client) doRequest(ctx context.Context, url string, headers map[string]string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeTransport, err, "build request %s", url)
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	hooks := observability.HTTP()
	host, path := req.URL.Host, req.URL.Path
	hooks.OnRequest(ctx, req.Method, host, path)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		hooks.OnError(ctx, req.Method, host, path, err)
		return nil, errors.Wrap(errors.ErrCodeTransport, err, "GET %s", url)
	}
	defer resp.Body.Close()
	hooks.OnResponse(ctx, req.Method, host, path, resp.StatusCode, time.Since(start))

	if err := checkStatus(resp.StatusCode); err != nil {
		return nil, errors.Wrap(errors.ErrCodeHTTPStatus, err, "GET %s", url)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		hooks.OnError(ctx, req.Method, host, path, err)
		return nil, errors.Wrap(errors.ErrCodeTransport, err, "read body %s", url)
	}
	return data, nil
}

func checkStatus(code int) error {
	if code >= 200 && code < 300 {
		return nil
	}
	return &errors.StatusError{StatusCode: code}
}
