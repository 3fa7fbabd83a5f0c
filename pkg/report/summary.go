package report

import (
	"fmt"

	"github.com/ChenhuiZhang/cargo-scorecard/pkg/enrich"
)

// Summary aggregates a batch of results.
type Summary struct {
	Total          int     // Number of results
	WithRepository int     // Results with a repository URL
	Scored         int     // Results with a security score
	Failed         int     // Placeholder results (pipeline panicked)
	Mean           float64 // Mean score over scored results, 0 if none
}

// Summarize counts results and averages their scores.
func Summarize(results []enrich.Result) Summary {
	var s Summary
	var sum float64
	for _, r := range results {
		s.Total++
		if r.Err != nil {
			s.Failed++
		}
		if r.Repository != nil {
			s.WithRepository++
		}
		if r.SecurityScore != nil {
			s.Scored++
			sum += *r.SecurityScore
		}
	}
	if s.Scored > 0 {
		s.Mean = sum / float64(s.Scored)
	}
	return s
}

func (s Summary) String() string {
	out := fmt.Sprintf("%d dependencies, %d with repository, %d scored", s.Total, s.WithRepository, s.Scored)
	if s.Scored > 0 {
		out += fmt.Sprintf(" (mean %s)", formatScore(s.Mean))
	}
	if s.Failed > 0 {
		out += fmt.Sprintf(", %d failed", s.Failed)
	}
	return out
}
