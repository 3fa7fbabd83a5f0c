package scorecard

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/ChenhuiZhang/cargo-scorecard/pkg/errors"
	"github.com/ChenhuiZhang/cargo-scorecard/pkg/integrations"
)

// DefaultBaseURL is the OpenSSF Scorecard API root.
const DefaultBaseURL = "https://api.securityscorecards.dev"

// Project is the scorecard document the API publishes for one repository.
type Project struct {
	Date    string   // Date of the scorecard run (e.g. "2024-05-20")
	Repo    string   // Repository as addressed by the service (host/owner/name)
	Commit  string   // Commit the checks ran against
	Version string   // Scorecard version that produced the result
	Score   *float64 // Aggregate score (0-10), nil when the service has none
	Checks  []Check  // Individual check results
}

// Check is one scorecard check result. A Score of -1 means the check was
// inconclusive.
type Check struct {
	Name   string
	Score  float64
	Reason string
}

// Client provides access to the OpenSSF Scorecard API.
//
// All methods are safe for concurrent use by multiple goroutines.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a scorecard client that sends requests through hc.
// Pass the run's shared *http.Client; nil gets a default one.
func NewClient(hc *http.Client) *Client {
	return NewClientWithBaseURL(hc, DefaultBaseURL)
}

// NewClientWithBaseURL is like [NewClient] but targets a different API root.
func NewClientWithBaseURL(hc *http.Client, baseURL string) *Client {
	return &Client{
		Client:  integrations.NewClient(hc, integrations.DefaultHeaders()),
		baseURL: baseURL,
	}
}

// ProjectPath converts a repository URL into the host/path form the
// scorecard service uses to address projects. One leading "http://" and then
// one leading "https://" are removed; nothing else is rewritten.
func ProjectPath(repoURL string) string {
	p := strings.TrimPrefix(repoURL, "http://")
	return strings.TrimPrefix(p, "https://")
}

// Score returns the aggregate security score of the repository at repoURL,
// or nil if the service reports no score.
//
// Score issues exactly one request and reads only the top-level "score";
// a score that is not a number counts as absent. Errors carry
// [errors.ErrCodeTransport], [errors.ErrCodeHTTPStatus] or
// [errors.ErrCodeParse] (body not a JSON object) and name the repository URL.
func (c *Client) Score(ctx context.Context, repoURL string) (*float64, error) {
	var data scoreResponse
	if err := c.fetch(ctx, repoURL, &data); err != nil {
		return nil, err
	}
	var score *float64
	if json.Unmarshal(data.Score, &score) != nil {
		return nil, nil
	}
	return score, nil
}

// FetchProject retrieves the full scorecard document for repoURL. Every
// field is decoded, so one with an unexpected type fails the call with
// [errors.ErrCodeParse]. The returned Project pointer is never nil if err is nil.
func (c *Client) FetchProject(ctx context.Context, repoURL string) (*Project, error) {
	var data projectResponse
	if err := c.fetch(ctx, repoURL, &data); err != nil {
		return nil, err
	}

	p := &Project{
		Date:    data.Date,
		Repo:    data.Repo.Name,
		Commit:  data.Repo.Commit,
		Version: data.Scorecard.Version,
		Score:   data.Score,
	}
	for _, ch := range data.Checks {
		p.Checks = append(p.Checks, Check{Name: ch.Name, Score: ch.Score, Reason: ch.Reason})
	}
	return p, nil
}

func (c *Client) fetch(ctx context.Context, repoURL string, v any) error {
	if repoURL == "" {
		return errors.New(errors.ErrCodeInvalidInput, "repository URL cannot be empty")
	}

	headers := map[string]string{"Accept": "application/json"}
	if err := c.GetWithHeaders(ctx, c.baseURL+"/projects/"+ProjectPath(repoURL), headers, v); err != nil {
		return errors.Wrap(errors.GetCode(err), err, "fetch security score for %s", repoURL)
	}
	return nil
}

type scoreResponse struct {
	Score json.RawMessage `json:"score"`
}

type projectResponse struct {
	Date string `json:"date"`
	Repo struct {
		Name   string `json:"name"`
		Commit string `json:"commit"`
	} `json:"repo"`
	Scorecard struct {
		Version string `json:"version"`
	} `json:"scorecard"`
	Score  *float64 `json:"score"`
	Checks []struct {
		Name   string  `json:"name"`
		Score  float64 `json:"score"`
		Reason string  `json:"reason"`
	} `json:"checks"`
}
