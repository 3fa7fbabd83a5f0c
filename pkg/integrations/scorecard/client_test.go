package scorecard

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChenhuiZhang/cargo-scorecard/pkg/buildinfo"
	"github.com/ChenhuiZhang/cargo-scorecard/pkg/errors"
)

func TestProjectPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"https://github.com/acme/widget", "github.com/acme/widget"},
		{"http://github.com/acme/widget", "github.com/acme/widget"},
		{"github.com/acme/widget", "github.com/acme/widget"},
		{"http://https://github.com/acme/widget", "github.com/acme/widget"},
		{"https://http://github.com/acme/widget", "http://github.com/acme/widget"},
		{"https://https://github.com/acme/widget", "https://github.com/acme/widget"},
		{"git://github.com/acme/widget", "git://github.com/acme/widget"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ProjectPath(tt.in))
		})
	}
}

func TestClient_ScoreRequest(t *testing.T) {
	for _, repo := range []string{"https://github.com/acme/widget", "http://github.com/acme/widget"} {
		t.Run(repo, func(t *testing.T) {
			var gotPath, gotAccept, gotUA string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				gotAccept = r.Header.Get("Accept")
				gotUA = r.Header.Get("User-Agent")
				w.Write([]byte(`{"score": 7.5}`))
			}))
			defer server.Close()

			c := NewClientWithBaseURL(server.Client(), server.URL)
			score, err := c.Score(context.Background(), repo)
			require.NoError(t, err)
			require.NotNil(t, score)

			assert.Equal(t, 7.5, *score)
			assert.Equal(t, "/projects/github.com/acme/widget", gotPath)
			assert.Equal(t, "application/json", gotAccept)
			assert.Equal(t, buildinfo.UserAgent(), gotUA)
		})
	}
}

func TestClient_Score(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantScore *float64
		wantCode  errors.Code
	}{
		{name: "score present", status: http.StatusOK, body: `{"score": 9.2}`, wantScore: ptr(9.2)},
		{name: "integer score", status: http.StatusOK, body: `{"score": 10}`, wantScore: ptr(10)},
		{name: "score null", status: http.StatusOK, body: `{"score": null}`},
		{name: "score absent", status: http.StatusOK, body: `{"repo": {"name": "github.com/acme/widget"}}`},
		{name: "not found", status: http.StatusNotFound, body: `{"code": 5, "message": "not found"}`, wantCode: errors.ErrCodeHTTPStatus},
		{name: "server error", status: http.StatusInternalServerError, wantCode: errors.ErrCodeHTTPStatus},
		{name: "malformed body", status: http.StatusOK, body: `<html>`, wantCode: errors.ErrCodeParse},
		{name: "score wrong type", status: http.StatusOK, body: `{"score": "high"}`},
		{name: "unrelated fields wrong type", status: http.StatusOK, body: `{"score": 6.4, "date": 20240520, "checks": "none", "repo": []}`, wantScore: ptr(6.4)},
		{name: "body not an object", status: http.StatusOK, body: `[9.2]`, wantCode: errors.ErrCodeParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			c := NewClientWithBaseURL(server.Client(), server.URL)
			score, err := c.Score(context.Background(), "https://github.com/acme/widget")

			if tt.wantCode != "" {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantCode), "error %v should carry %s", err, tt.wantCode)
				assert.Contains(t, err.Error(), "https://github.com/acme/widget")
				assert.Nil(t, score)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantScore, score)
		})
	}
}

func TestClient_ScoreTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	c := NewClientWithBaseURL(http.DefaultClient, url)
	_, err := c.Score(context.Background(), "https://github.com/acme/widget")
	assert.True(t, errors.Is(err, errors.ErrCodeTransport), "got %v", err)
}

func TestClient_ScoreEmptyURL(t *testing.T) {
	c := NewClient(nil)
	_, err := c.Score(context.Background(), "")
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput), "got %v", err)
}

func TestClient_FetchProject(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"date": "2024-05-20",
			"repo": {"name": "github.com/serde-rs/serde", "commit": "abc123"},
			"scorecard": {"version": "v5.0.0", "commit": "def456"},
			"score": 9.2,
			"checks": [
				{"name": "Maintained", "score": 10, "reason": "30 commit(s) out of 30"},
				{"name": "Fuzzing", "score": -1, "reason": "project is not fuzzed"}
			]
		}`))
	}))
	defer server.Close()

	c := NewClientWithBaseURL(server.Client(), server.URL)
	p, err := c.FetchProject(context.Background(), "https://github.com/serde-rs/serde")
	require.NoError(t, err)

	assert.Equal(t, "2024-05-20", p.Date)
	assert.Equal(t, "github.com/serde-rs/serde", p.Repo)
	assert.Equal(t, "abc123", p.Commit)
	assert.Equal(t, "v5.0.0", p.Version)
	require.NotNil(t, p.Score)
	assert.Equal(t, 9.2, *p.Score)
	require.Len(t, p.Checks, 2)
	assert.Equal(t, Check{Name: "Fuzzing", Score: -1, Reason: "project is not fuzzed"}, p.Checks[1])
}

func ptr(f float64) *float64 { return &f }

func TestClient_FetchProjectStrictDecode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"score": 7.1, "checks": "none"}`))
	}))
	defer server.Close()

	c := NewClientWithBaseURL(server.Client(), server.URL)
	_, err := c.FetchProject(context.Background(), "https://github.com/acme/widget")
	assert.True(t, errors.Is(err, errors.ErrCodeParse), "got %v", err)

	score, err := c.Score(context.Background(), "https://github.com/acme/widget")
	require.NoError(t, err)
	assert.Equal(t, ptr(7.1), score)
}
