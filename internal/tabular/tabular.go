// Package tabular renders externally extracted table grids into
// deterministic text blocks suitable for section content.
package tabular

import (
	"fmt"
	"strings"
)

// Grid is one extracted table: ordered rows of ordered cells.
// A nil cell is a null from the extractor.
type Grid [][]*string

// Render normalizes a grid and formats it as a readable text block:
// a bracketed ordinal label, the first surviving row as a pipe-joined
// header, a fixed-width separator, then the remaining rows. Returns
// false when fewer than two non-empty rows survive normalization.
func Render(grid Grid, ordinal int) (string, bool) {
	var rows [][]string
	for _, row := range grid {
		cleaned := make([]string, len(row))
		empty := true
		for i, cell := range row {
			if cell != nil {
				cleaned[i] = strings.TrimSpace(*cell)
			}
			if cleaned[i] != "" {
				empty = false
			}
		}
		if !empty {
			rows = append(rows, cleaned)
		}
	}

	if len(rows) < 2 {
		return "", false
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "[Table %d]\n", ordinal)
	sb.WriteString(strings.Join(rows[0], " | "))
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("-", 60))
	for _, row := range rows[1:] {
		sb.WriteString("\n")
		sb.WriteString(strings.Join(row, " | "))
	}
	return sb.String(), true
}
