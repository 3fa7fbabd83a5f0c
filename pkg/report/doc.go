// Package report renders enrichment results.
//
// Three formats are supported:
//
//   - markdown: the "Cargo Scorecard Results" table, one row per dependency,
//     with "No repository information" and "Not available" markers and
//     scores printed to one decimal
//   - table: a lipgloss terminal table with score bands coloured, followed
//     by a [Summary] line
//   - json: a document with a report_id (UUID), generated_at timestamp,
//     summary, and results in which missing values are null
//
// Rows always follow the order of the input slice.
package report
