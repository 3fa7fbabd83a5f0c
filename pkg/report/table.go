package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/ChenhuiZhang/cargo-scorecard/pkg/enrich"
)

type tableStyles struct {
	header, cell, missing, border lipgloss.Style

	// Score bands: below 4, below 7, and the rest.
	low, mid, high lipgloss.Style
}

// newTableStyles binds every style to a renderer for w, so the colour
// profile follows the report's destination rather than os.Stdout.
func newTableStyles(w io.Writer) tableStyles {
	re := lipgloss.NewRenderer(w)
	cell := re.NewStyle().Padding(0, 1)
	return tableStyles{
		header:  re.NewStyle().Bold(true).Padding(0, 1),
		cell:    cell,
		missing: cell.Foreground(lipgloss.Color("245")),
		border:  re.NewStyle().Foreground(lipgloss.Color("240")),
		low:     cell.Foreground(lipgloss.Color("196")),
		mid:     cell.Foreground(lipgloss.Color("214")),
		high:    cell.Foreground(lipgloss.Color("35")),
	}
}

const scoreColumn = 3

// Table writes results as a bordered terminal table followed by a summary
// line. Colours degrade to plain text when w is not a terminal.
func Table(w io.Writer, results []enrich.Result) error {
	rows := make([][]string, len(results))
	for i, r := range results {
		rows[i] = []string{r.Name, r.Version, repositoryCell(r), scoreCell(r)}
	}

	st := newTableStyles(w)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(st.border).
		Headers("Crate Name", "Version", "Repository URL", "Security Score").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return st.header
			}
			r := results[row]
			switch {
			case col == 2 && r.Repository == nil:
				return st.missing
			case col == scoreColumn:
				return st.score(r.SecurityScore)
			}
			return st.cell
		})

	if _, err := fmt.Fprintln(w, t.Render()); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, Summarize(results))
	return err
}

func (st tableStyles) score(score *float64) lipgloss.Style {
	switch {
	case score == nil:
		return st.missing
	case *score < 4:
		return st.low
	case *score < 7:
		return st.mid
	default:
		return st.high
	}
}
