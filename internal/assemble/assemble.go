// Package assemble groups classified lines and table blocks into
// sections, splitting oversized sections at sentence boundaries.
package assemble

import (
	"fmt"
	"strings"

	"github.com/dgallion1/docsect/internal/section"
)

// Config bounds the sections an Assembler emits.
type Config struct {
	MinSectionLength int // Sections shorter than this are discarded.
	MaxSectionLength int // Sections longer than this are split.
}

// DefaultConfig returns the standard section bounds.
func DefaultConfig() Config {
	return Config{
		MinSectionLength: 50,
		MaxSectionLength: 3000,
	}
}

// Assembler accumulates body content under the most recent header across
// the pages of a single document. It owns all of its state exclusively;
// one Assembler per document run.
type Assembler struct {
	cfg    Config
	source string

	title  string
	page   int
	buffer []string

	out []section.Section
}

// New creates an Assembler for one document. source tags every emitted
// section with its originating document name.
func New(cfg Config, source string) *Assembler {
	if cfg.MinSectionLength <= 0 {
		cfg.MinSectionLength = 50
	}
	if cfg.MaxSectionLength <= 0 {
		cfg.MaxSectionLength = 3000
	}
	return &Assembler{cfg: cfg, source: source, page: 1}
}

// Header flushes the current accumulator and starts a new section titled
// with the header text, tagged with the header's page.
func (a *Assembler) Header(page int, text string) {
	a.flush()
	a.title = text
	a.page = page
}

// Body appends one content unit (a body line or a rendered table block)
// to the current accumulator. A headerless section takes the page of the
// first content that reaches it.
func (a *Assembler) Body(page int, text string) {
	if a.title == "" && len(a.buffer) == 0 {
		a.page = page
	}
	a.buffer = append(a.buffer, text)
}

// Finish performs the terminal flush and returns all emitted sections.
func (a *Assembler) Finish() []section.Section {
	a.flush()
	return a.out
}

// flush turns the accumulator into zero or more sections: content below
// the minimum length is discarded, content above the maximum is split
// into part-numbered sub-sections.
func (a *Assembler) flush() {
	if len(a.buffer) == 0 {
		return
	}
	content := strings.TrimSpace(strings.Join(a.buffer, "\n"))
	a.buffer = nil

	if len(content) < a.cfg.MinSectionLength {
		return
	}

	title := a.title
	if title == "" {
		title = section.DefaultTitle
	}

	if len(content) > a.cfg.MaxSectionLength {
		for i, chunk := range SplitLongText(content, a.cfg.MaxSectionLength) {
			a.out = append(a.out, section.Section{
				Title:   fmt.Sprintf("%s (Part %d)", title, i+1),
				Content: strings.TrimSpace(chunk),
				Page:    a.page,
				Source:  a.source,
			})
		}
		return
	}

	a.out = append(a.out, section.Section{
		Title:   title,
		Content: content,
		Page:    a.page,
		Source:  a.source,
	})
}
