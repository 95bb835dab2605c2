// Package source extracts page-structured content from documents. Each
// format parser yields ordered pages carrying glyph records, plain text
// lines, pre-classified lines, or table grids for the pipeline.
package source

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/dgallion1/docsect/internal/classify"
	"github.com/dgallion1/docsect/internal/tabular"
)

// Page is one page of extracted content. Lines, when non-nil, carry
// explicit structure from the format itself and bypass the typographic
// classifier; otherwise the pipeline classifies Glyphs, falling back to
// TextLines when no usable glyph data is present.
type Page struct {
	Number    int
	Glyphs    []classify.Glyph
	TextLines []string
	Lines     []classify.Line
	Tables    []tabular.Grid
}

// Parser converts raw document bytes into ordered pages.
type Parser interface {
	Parse(r io.Reader, filename string) ([]Page, error)
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".txt":      true,
	".md":       true,
	".markdown": true,
	".csv":      true,
	".html":     true,
	".htm":      true,
	".pdf":      true,
	".docx":     true,
}

// ForFile returns the appropriate parser for a filename.
func ForFile(filename string) (Parser, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt":
		return &TextParser{}, nil
	case ".md", ".markdown":
		return &MarkdownParser{}, nil
	case ".csv":
		return &CSVParser{}, nil
	case ".html", ".htm":
		return &HTMLParser{}, nil
	case ".pdf":
		return &PDFParser{}, nil
	case ".docx":
		return &DOCXParser{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}
