package report

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/ChenhuiZhang/cargo-scorecard/pkg/enrich"
)

// Markdown writes results as a GitHub-flavored Markdown table under a
// "Cargo Scorecard Results" heading.
func Markdown(w io.Writer, results []enrich.Result) error {
	bw := bufio.NewWriter(w)
	fmt.Fprint(bw, "\n## Cargo Scorecard Results\n\n")
	fmt.Fprintln(bw, "| Crate Name | Version | Repository URL | Security Score |")
	fmt.Fprintln(bw, "| --- | --- | --- | --- |")
	for _, r := range results {
		fmt.Fprintf(bw, "| %s | %s | %s | %s |\n", r.Name, r.Version, repositoryCell(r), scoreCell(r))
	}
	return bw.Flush()
}

func formatScore(f float64) string {
	return strconv.FormatFloat(f, 'f', 1, 64)
}
