package source

import (
	"math"
	"sort"
	"strings"

	"github.com/dgallion1/docsect/internal/tabular"
	pdflib "github.com/ledongthuc/pdf"
)

// Table detection thresholds, in points.
const (
	tableRowTolerance = 3.0  // Y distance for glyphs on the same row
	tableCellGap      = 18.0 // X gap that separates two cells
	wordSpaceMul      = 0.3  // fraction of font size treated as a word space
	tableMinRows      = 2    // minimum aligned rows to call it a table
	tableMinCols      = 2
)

// ExtractTables runs best-effort table grid detection over a page's
// glyphs: rows grouped by vertical position, cells split on large
// horizontal gaps, consecutive rows with a matching column count form a
// grid. Malformed geometry yields zero grids, never an error.
func ExtractTables(texts []pdflib.Text) (grids []tabular.Grid) {
	defer func() {
		if recover() != nil {
			grids = nil
		}
	}()

	filtered := make([]pdflib.Text, 0, len(texts))
	for _, t := range texts {
		if strings.TrimSpace(t.S) != "" {
			filtered = append(filtered, t)
		}
	}
	if len(filtered) == 0 {
		return nil
	}

	rows := groupRows(filtered)

	// Scan for runs of consecutive rows sharing a column count.
	var run [][]string
	flush := func() {
		if len(run) >= tableMinRows {
			grid := make(tabular.Grid, len(run))
			for i, cells := range run {
				row := make([]*string, len(cells))
				for j := range cells {
					row[j] = &cells[j]
				}
				grid[i] = row
			}
			grids = append(grids, grid)
		}
		run = nil
	}

	for _, row := range rows {
		cells := splitCells(row)
		if len(cells) < tableMinCols {
			flush()
			continue
		}
		if len(run) > 0 && len(run[len(run)-1]) != len(cells) {
			flush()
		}
		run = append(run, cells)
	}
	flush()

	return grids
}

// groupRows buckets glyphs by vertical position and returns rows in
// top-to-bottom reading order, each sorted left to right.
func groupRows(texts []pdflib.Text) [][]pdflib.Text {
	buckets := make(map[float64][]pdflib.Text)
	for _, t := range texts {
		key := math.Round(t.Y / tableRowTolerance)
		buckets[key] = append(buckets[key], t)
	}

	keys := make([]float64, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	// Higher Y is higher on the page.
	sort.Sort(sort.Reverse(sort.Float64Slice(keys)))

	rows := make([][]pdflib.Text, 0, len(keys))
	for _, k := range keys {
		row := buckets[k]
		sort.Slice(row, func(i, j int) bool { return row[i].X < row[j].X })
		rows = append(rows, row)
	}
	return rows
}

// splitCells clusters one row's glyphs into cell strings, breaking on
// horizontal gaps wider than the cell threshold and inserting word
// spaces for smaller gaps.
func splitCells(row []pdflib.Text) []string {
	var cells []string
	var cell strings.Builder

	for i, t := range row {
		if i > 0 {
			prev := row[i-1]
			gap := t.X - (prev.X + prev.W)
			switch {
			case gap > tableCellGap:
				cells = append(cells, strings.TrimSpace(cell.String()))
				cell.Reset()
			case gap > wordSpaceMul*t.FontSize:
				cell.WriteString(" ")
			}
		}
		cell.WriteString(t.S)
	}
	if s := strings.TrimSpace(cell.String()); s != "" {
		cells = append(cells, s)
	}

	out := cells[:0]
	for _, c := range cells {
		if c != "" {
			out = append(out, c)
		}
	}
	return out
}
