// Package pipeline runs documents through extraction, classification,
// assembly, and persistence.
package pipeline

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dgallion1/docsect/internal/assemble"
	"github.com/dgallion1/docsect/internal/classify"
	"github.com/dgallion1/docsect/internal/config"
	"github.com/dgallion1/docsect/internal/section"
	"github.com/dgallion1/docsect/internal/source"
	"github.com/dgallion1/docsect/internal/tabular"
)

// Processor converts one document into sections. Each call owns its own
// assembler state, so a single Processor is safe for concurrent use
// across documents.
type Processor struct {
	cfg config.Config
	log *slog.Logger
}

func NewProcessor(cfg config.Config, log *slog.Logger) *Processor {
	return &Processor{cfg: cfg, log: log}
}

// ProcessFile opens and processes one document from disk.
func (p *Processor) ProcessFile(path string) ([]section.Section, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return p.Process(f, filepath.Base(path))
}

// Process runs the synchronous per-document pipeline: pages strictly in
// order, each page classified then fed to the assembler, table blocks
// appended after the page's lines, terminal flush at document end.
func (p *Processor) Process(r io.Reader, filename string) ([]section.Section, error) {
	prs, err := source.ForFile(filename)
	if err != nil {
		return nil, err
	}
	if pdf, ok := prs.(*source.PDFParser); ok {
		pdf.FallbackPdftotext = p.cfg.PDFFallbackPdftotext
	}

	pages, err := prs.Parse(r, filename)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}

	asm := assemble.New(assemble.Config{
		MinSectionLength: p.cfg.MinSectionLength,
		MaxSectionLength: p.cfg.MaxSectionLength,
	}, filename)

	for _, pg := range pages {
		for _, ln := range p.classifyPage(pg, filename) {
			if ln.Header {
				asm.Header(pg.Number, ln.Text)
			} else {
				asm.Body(pg.Number, ln.Text)
			}
		}
		for i, grid := range pg.Tables {
			if block, ok := tabular.Render(grid, i+1); ok {
				asm.Body(pg.Number, block)
			}
		}
	}

	return asm.Finish(), nil
}

// classifyPage picks the classification path for one page: explicit
// structure from the format, the typographic glyph path, or the
// plain-text fallback when no usable glyph data exists.
func (p *Processor) classifyPage(pg source.Page, filename string) []classify.Line {
	if pg.Lines != nil {
		return pg.Lines
	}
	if lines := classify.Glyphs(pg.Glyphs); lines != nil {
		return lines
	}
	if len(pg.TextLines) > 0 {
		p.log.Debug("plain-text classification fallback", "file", filename, "page", pg.Number)
	}
	return classify.PlainText(pg.TextLines, p.cfg.HeaderPrefixes)
}
