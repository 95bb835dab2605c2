package source

import (
	"strings"
	"testing"
)

func TestTextParser(t *testing.T) {
	input := "INTRODUCTION\n\nFirst paragraph of the document.\nSecond line.\n"

	pages, err := (&TextParser{}).Parse(strings.NewReader(input), "doc.txt")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(pages))
	}

	pg := pages[0]
	if pg.Number != 1 {
		t.Errorf("expected page number 1, got %d", pg.Number)
	}
	if pg.Lines != nil || pg.Glyphs != nil {
		t.Errorf("plain text should carry only raw text lines")
	}
	want := []string{"INTRODUCTION", "", "First paragraph of the document.", "Second line."}
	if len(pg.TextLines) != len(want) {
		t.Fatalf("expected %d lines, got %d: %q", len(want), len(pg.TextLines), pg.TextLines)
	}
	for i, l := range want {
		if pg.TextLines[i] != l {
			t.Errorf("line %d: expected %q, got %q", i, l, pg.TextLines[i])
		}
	}
}

func TestTextParser_Empty(t *testing.T) {
	pages, err := (&TextParser{}).Parse(strings.NewReader(""), "empty.txt")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if pages != nil {
		t.Errorf("expected no pages for empty input, got %d", len(pages))
	}
}
