package assemble

import (
	"fmt"
	"strings"
	"testing"
)

func testConfig() Config {
	return Config{MinSectionLength: 50, MaxSectionLength: 3000}
}

func body(n int) string {
	return strings.TrimSpace(strings.Repeat(fmt.Sprintf("Body line %d with enough length to count. ", n), 3))
}

func TestAssembler_HeaderStartsNewSection(t *testing.T) {
	a := New(testConfig(), "doc.pdf")
	a.Header(2, "Chapter 1 Definitions")
	a.Body(2, body(1))
	a.Header(3, "Chapter 2 Staging")
	a.Body(3, body(2))

	sections := a.Finish()
	if len(sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(sections))
	}
	if sections[0].Title != "Chapter 1 Definitions" || sections[0].Page != 2 {
		t.Errorf("unexpected first section: %+v", sections[0])
	}
	if sections[1].Title != "Chapter 2 Staging" || sections[1].Page != 3 {
		t.Errorf("unexpected second section: %+v", sections[1])
	}
	for _, s := range sections {
		if s.Source != "doc.pdf" {
			t.Errorf("expected source doc.pdf, got %q", s.Source)
		}
	}
}

func TestAssembler_HeaderlessContentUsesSentinelTitle(t *testing.T) {
	a := New(testConfig(), "doc.pdf")
	a.Body(1, body(1))

	sections := a.Finish()
	if len(sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(sections))
	}
	if sections[0].Title != "Content" {
		t.Errorf("expected sentinel title, got %q", sections[0].Title)
	}
	if sections[0].Page != 1 {
		t.Errorf("expected page 1, got %d", sections[0].Page)
	}
}

func TestAssembler_HeaderlessSectionTakesFirstContributingPage(t *testing.T) {
	a := New(testConfig(), "doc.pdf")
	a.Body(4, body(1))
	a.Body(5, body(2))

	sections := a.Finish()
	if len(sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(sections))
	}
	if sections[0].Page != 4 {
		t.Errorf("expected page 4, got %d", sections[0].Page)
	}
}

func TestAssembler_DiscardsShortSections(t *testing.T) {
	a := New(testConfig(), "doc.pdf")
	a.Header(1, "First")
	a.Body(1, body(1))
	a.Header(2, "Running footer")
	a.Body(2, "page 2 of 9") // 11 chars, below the minimum
	a.Header(3, "Third")
	a.Body(3, body(3))

	sections := a.Finish()
	if len(sections) != 2 {
		t.Fatalf("expected 2 sections after discard, got %d", len(sections))
	}
	if sections[0].Title != "First" || sections[1].Title != "Third" {
		t.Errorf("unexpected surviving sections: %q, %q", sections[0].Title, sections[1].Title)
	}
}

func TestAssembler_SplitsOversizedSections(t *testing.T) {
	cfg := Config{MinSectionLength: 50, MaxSectionLength: 500}
	a := New(cfg, "doc.pdf")
	a.Header(7, "Long Chapter")
	for i := 0; i < 30; i++ {
		a.Body(7, "This sentence pads the section well past its limit.")
	}

	sections := a.Finish()
	if len(sections) < 2 {
		t.Fatalf("expected split into multiple sub-sections, got %d", len(sections))
	}
	for i, s := range sections {
		want := fmt.Sprintf("Long Chapter (Part %d)", i+1)
		if s.Title != want {
			t.Errorf("expected title %q, got %q", want, s.Title)
		}
		if s.Page != 7 {
			t.Errorf("expected page 7, got %d", s.Page)
		}
	}
}

func TestAssembler_ConservesContent(t *testing.T) {
	a := New(Config{MinSectionLength: 1, MaxSectionLength: 3000}, "doc.pdf")
	units := []string{"alpha unit", "beta unit", "gamma unit"}
	a.Header(1, "Only Section")
	for _, u := range units {
		a.Body(1, u)
	}

	sections := a.Finish()
	if len(sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(sections))
	}
	want := strings.Join(units, "\n")
	if sections[0].Content != want {
		t.Errorf("expected content %q, got %q", want, sections[0].Content)
	}
}

func TestAssembler_EmptyDocument(t *testing.T) {
	a := New(testConfig(), "doc.pdf")
	if sections := a.Finish(); len(sections) != 0 {
		t.Errorf("expected no sections, got %d", len(sections))
	}
}

func TestAssembler_HeaderWithNoBodyEmitsNothing(t *testing.T) {
	a := New(testConfig(), "doc.pdf")
	a.Header(1, "Lonely Header")
	a.Header(2, "Another Header")
	a.Body(2, body(1))

	sections := a.Finish()
	if len(sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(sections))
	}
	if sections[0].Title != "Another Header" {
		t.Errorf("expected %q, got %q", "Another Header", sections[0].Title)
	}
}
