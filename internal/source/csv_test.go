package source

import (
	"strings"
	"testing"
)

func TestCSVParser(t *testing.T) {
	input := "Drug,Dose,Route\nFurosemide,40mg,IV\nLisinopril,10mg,PO\n"

	pages, err := (&CSVParser{}).Parse(strings.NewReader(input), "drugs.csv")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(pages) != 1 || len(pages[0].Tables) != 1 {
		t.Fatalf("expected 1 page with 1 table, got %+v", pages)
	}

	grid := pages[0].Tables[0]
	if len(grid) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(grid))
	}
	if *grid[0][0] != "Drug" || *grid[2][2] != "PO" {
		t.Errorf("unexpected cells: %q, %q", *grid[0][0], *grid[2][2])
	}
}

func TestCSVParser_RaggedRows(t *testing.T) {
	input := "a,b,c\nd,e\nf\n"

	pages, err := (&CSVParser{}).Parse(strings.NewReader(input), "ragged.csv")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	grid := pages[0].Tables[0]
	if len(grid[0]) != 3 || len(grid[1]) != 2 || len(grid[2]) != 1 {
		t.Errorf("expected ragged widths 3/2/1, got %d/%d/%d", len(grid[0]), len(grid[1]), len(grid[2]))
	}
}

func TestCSVParser_Empty(t *testing.T) {
	pages, err := (&CSVParser{}).Parse(strings.NewReader(""), "empty.csv")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if pages != nil {
		t.Errorf("expected no pages for empty input, got %d", len(pages))
	}
}
