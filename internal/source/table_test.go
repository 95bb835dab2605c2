package source

import (
	"testing"

	pdflib "github.com/ledongthuc/pdf"
)

// word lays out a string as per-character glyphs starting at x on row y.
func word(s string, x, y float64) []pdflib.Text {
	texts := make([]pdflib.Text, 0, len(s))
	for _, r := range s {
		texts = append(texts, pdflib.Text{S: string(r), X: x, Y: y, W: 6, FontSize: 10})
		x += 6
	}
	return texts
}

func tableGlyphs(rows [][]string, top float64) []pdflib.Text {
	var texts []pdflib.Text
	for i, cells := range rows {
		y := top - float64(i)*12
		x := 40.0
		for _, c := range cells {
			texts = append(texts, word(c, x, y)...)
			x += 120 // well past the cell gap threshold
		}
	}
	return texts
}

func TestExtractTables_AlignedRows(t *testing.T) {
	texts := tableGlyphs([][]string{
		{"Stage", "Creatinine", "Output"},
		{"1", "1.5x", "<0.5"},
		{"2", "2.0x", "<0.5"},
	}, 700)

	grids := ExtractTables(texts)
	if len(grids) != 1 {
		t.Fatalf("expected 1 grid, got %d", len(grids))
	}
	grid := grids[0]
	if len(grid) != 3 || len(grid[0]) != 3 {
		t.Fatalf("expected 3x3 grid, got %dx%d", len(grid), len(grid[0]))
	}
	if *grid[0][0] != "Stage" || *grid[2][1] != "2.0x" {
		t.Errorf("unexpected cells: %q, %q", *grid[0][0], *grid[2][1])
	}
}

func TestExtractTables_SingleColumnIsNotATable(t *testing.T) {
	var texts []pdflib.Text
	texts = append(texts, word("Just prose here", 40, 700)...)
	texts = append(texts, word("More prose below", 40, 688)...)

	if grids := ExtractTables(texts); len(grids) != 0 {
		t.Errorf("expected no grids for single-column text, got %d", len(grids))
	}
}

func TestExtractTables_ColumnCountChangeBreaksRun(t *testing.T) {
	texts := tableGlyphs([][]string{
		{"a", "b"},
		{"c", "d"},
		{"e", "f", "g"}, // lone three-column row, below the minimum run
	}, 700)

	grids := ExtractTables(texts)
	if len(grids) != 1 {
		t.Fatalf("expected 1 grid, got %d", len(grids))
	}
	if len(grids[0]) != 2 {
		t.Errorf("expected 2-row grid, got %d rows", len(grids[0]))
	}
}

func TestExtractTables_WordSpacingWithinCell(t *testing.T) {
	var texts []pdflib.Text
	// "serum creatinine" in one cell with a word gap, then a second cell.
	texts = append(texts, word("serum", 40, 700)...)
	texts = append(texts, word("creatinine", 78, 700)...) // 8pt gap, word space
	texts = append(texts, word("rising", 220, 700)...)
	texts = append(texts, word("alpha", 40, 688)...)
	texts = append(texts, word("beta", 220, 688)...)

	grids := ExtractTables(texts)
	if len(grids) != 1 {
		t.Fatalf("expected 1 grid, got %d", len(grids))
	}
	if *grids[0][0][0] != "serum creatinine" {
		t.Errorf("expected word-spaced cell, got %q", *grids[0][0][0])
	}
}

func TestExtractTables_Empty(t *testing.T) {
	if grids := ExtractTables(nil); grids != nil {
		t.Errorf("expected nil for no glyphs, got %v", grids)
	}
	if grids := ExtractTables([]pdflib.Text{{S: "  ", X: 1, Y: 1}}); grids != nil {
		t.Errorf("expected nil for whitespace glyphs, got %v", grids)
	}
}
