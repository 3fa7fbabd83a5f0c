package report

import (
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ChenhuiZhang/cargo-scorecard/pkg/enrich"
	"github.com/ChenhuiZhang/cargo-scorecard/pkg/errors"
)

// Format selects a report renderer.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatTable    Format = "table"
	FormatJSON     Format = "json"
)

// Formats lists the supported formats in the order they are documented.
var Formats = []Format{FormatMarkdown, FormatTable, FormatJSON}

// Cell text for missing values.
const (
	NoRepository = "No repository information"
	NotAvailable = "Not available"
)

// ParseFormat maps a user-supplied format name to a Format.
// Matching is case-insensitive; an unknown name fails with
// [errors.ErrCodeInvalidFormat].
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unknown report format %q (want markdown, table or json)", s)
}

// Option configures [Render].
type Option func(*options)

type options struct {
	reportID    string
	generatedAt time.Time
}

// WithReportID overrides the generated report id of JSON reports.
func WithReportID(id string) Option { return func(o *options) { o.reportID = id } }

// WithGeneratedAt overrides the generation timestamp of JSON reports.
func WithGeneratedAt(t time.Time) Option { return func(o *options) { o.generatedAt = t } }

// Render writes results to w in the given format. Rows keep the order of
// results.
func Render(w io.Writer, f Format, results []enrich.Result, opts ...Option) error {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	switch f {
	case FormatMarkdown:
		return Markdown(w, results)
	case FormatTable:
		return Table(w, results)
	case FormatJSON:
		if o.reportID == "" {
			o.reportID = uuid.NewString()
		}
		if o.generatedAt.IsZero() {
			o.generatedAt = time.Now()
		}
		return JSON(w, results, o.reportID, o.generatedAt)
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unknown report format %q", f)
	}
}

func repositoryCell(r enrich.Result) string {
	if r.Repository == nil {
		return NoRepository
	}
	return *r.Repository
}

func scoreCell(r enrich.Result) string {
	if r.SecurityScore == nil {
		return NotAvailable
	}
	return formatScore(*r.SecurityScore)
}
