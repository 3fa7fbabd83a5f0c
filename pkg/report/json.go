package report

import (
	"encoding/json"
	"io"
	"time"

	"github.com/ChenhuiZhang/cargo-scorecard/pkg/enrich"
)

type jsonReport struct {
	ReportID    string       `json:"report_id"`
	GeneratedAt time.Time    `json:"generated_at"`
	Summary     jsonSummary  `json:"summary"`
	Results     []jsonResult `json:"results"`
}

type jsonSummary struct {
	Total          int      `json:"total"`
	WithRepository int      `json:"with_repository"`
	Scored         int      `json:"scored"`
	Failed         int      `json:"failed"`
	MeanScore      *float64 `json:"mean_score"`
}

type jsonResult struct {
	Name          string   `json:"name"`
	Version       string   `json:"version"`
	Repository    *string  `json:"repository"`
	SecurityScore *float64 `json:"security_score"`
	Error         string   `json:"error,omitempty"`
}

// JSON writes results as an indented JSON document identified by reportID.
// Missing repositories and scores are encoded as null; placeholder items
// carry an "error" field.
func JSON(w io.Writer, results []enrich.Result, reportID string, generatedAt time.Time) error {
	s := Summarize(results)
	out := jsonReport{
		ReportID:    reportID,
		GeneratedAt: generatedAt.UTC(),
		Summary: jsonSummary{
			Total:          s.Total,
			WithRepository: s.WithRepository,
			Scored:         s.Scored,
			Failed:         s.Failed,
		},
		Results: make([]jsonResult, len(results)),
	}
	if s.Scored > 0 {
		mean := s.Mean
		out.Summary.MeanScore = &mean
	}
	for i, r := range results {
		jr := jsonResult{
			Name:          r.Name,
			Version:       r.Version,
			Repository:    r.Repository,
			SecurityScore: r.SecurityScore,
		}
		if r.Err != nil {
			jr.Error = r.Err.Error()
		}
		out.Results[i] = jr
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
