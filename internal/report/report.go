// Package report collects per-run normalization statistics and renders
// them as an aligned markdown summary.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Stats accumulates counters over one normalization run.
type Stats struct {
	RowsIn             int
	Excluded           int
	Documents          int
	UnmatchedCountries int
	DateErrors         int
	DuplicateIDs       []string
	ByRegistry         map[string]int
}

// NewStats creates an empty Stats.
func NewStats() *Stats {
	return &Stats{ByRegistry: map[string]int{}}
}

// CountRegistry records one normalized row for a registry code.
func (s *Stats) CountRegistry(code string) {
	if code == "" {
		code = "(unknown)"
	}

	s.ByRegistry[code]++
}

// Render returns the run summary as markdown.
func (s *Stats) Render() string {
	var b strings.Builder

	b.WriteString("## Normalization Run Summary\n\n")

	b.WriteString(renderTable(
		[]string{"Metric", "Value"},
		[][]string{
			{"Rows read", fmt.Sprintf("%d", s.RowsIn)},
			{"Rows excluded", fmt.Sprintf("%d", s.Excluded)},
			{"Documents produced", fmt.Sprintf("%d", s.Documents)},
			{"Duplicate identifiers", fmt.Sprintf("%d", len(s.DuplicateIDs))},
			{"Unmatched countries", fmt.Sprintf("%d", s.UnmatchedCountries)},
			{"Date parse failures", fmt.Sprintf("%d", s.DateErrors)},
		},
	))

	if len(s.ByRegistry) > 0 {
		b.WriteString("\n### Documents by registry\n\n")

		codes := make([]string, 0, len(s.ByRegistry))
		for code := range s.ByRegistry {
			codes = append(codes, code)
		}

		sort.Strings(codes)

		rows := make([][]string, 0, len(codes))
		for _, code := range codes {
			rows = append(rows, []string{code, fmt.Sprintf("%d", s.ByRegistry[code])})
		}

		b.WriteString(renderTable([]string{"Registry", "Documents"}, rows))
	}

	if len(s.DuplicateIDs) > 0 {
		b.WriteString("\n### Duplicate identifiers\n\n")

		for _, id := range s.DuplicateIDs {
			b.WriteString("- " + id + "\n")
		}
	}

	return b.String()
}

// renderTable builds a markdown table with columns padded to the
// display width of their widest cell.
func renderTable(header []string, rows [][]string) string {
	widths := make([]int, len(header))

	for i, cell := range header {
		widths[i] = runewidth.StringWidth(cell)
	}

	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}

			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder

	writeRow := func(cells []string) {
		b.WriteString("|")

		for i, cell := range cells {
			padding := widths[i] - runewidth.StringWidth(cell)
			b.WriteString(" " + cell + strings.Repeat(" ", padding) + " |")
		}

		b.WriteString("\n")
	}

	writeRow(header)

	b.WriteString("|")

	for _, w := range widths {
		b.WriteString(strings.Repeat("-", w+2) + "|")
	}

	b.WriteString("\n")

	for _, row := range rows {
		writeRow(row)
	}

	return b.String()
}
