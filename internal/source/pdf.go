package source

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/dgallion1/docsect/internal/classify"
	pdflib "github.com/ledongthuc/pdf"
)

// PDFParser handles PDF files. It extracts glyph-level typographic data
// with the Go library, falling back to pdftotext when the library yields
// nothing at all.
type PDFParser struct {
	FallbackPdftotext bool
}

func (p *PDFParser) Parse(r io.Reader, filename string) ([]Page, error) {
	// ledongthuc/pdf requires a ReadSeeker+size, so we write to a temp file.
	tmp, err := os.CreateTemp("", "docsect-pdf-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	tmp.Close()

	pages, err := extractPDFPages(tmpPath)
	if (err != nil || emptyPages(pages)) && p.FallbackPdftotext {
		pages, err = extractPdftotext(tmpPath)
	}
	if err != nil {
		return nil, fmt.Errorf("extract pdf: %w", err)
	}
	return pages, nil
}

// extractPDFPages reads glyphs, plain text, and table grids per page.
func extractPDFPages(path string) ([]Page, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var pages []Page
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		content := page.Content()
		glyphs := make([]classify.Glyph, 0, len(content.Text))
		for _, t := range content.Text {
			glyphs = append(glyphs, classify.Glyph{
				Text:     t.S,
				Size:     t.FontSize,
				FontName: t.Font,
				// ledongthuc measures Y from the page bottom; negate so
				// smaller Top means higher on the page.
				Top: -t.Y,
			})
		}

		var textLines []string
		if text, err := page.GetPlainText(nil); err == nil {
			textLines = strings.Split(text, "\n")
		}

		pages = append(pages, Page{
			Number:    i,
			Glyphs:    glyphs,
			TextLines: textLines,
			Tables:    ExtractTables(content.Text),
		})
	}
	return pages, nil
}

// extractPdftotext shells out to pdftotext and splits on form feeds,
// yielding text-only pages for the fallback classifier.
func extractPdftotext(path string) ([]Page, error) {
	cmd := exec.Command("pdftotext", "-layout", path, "-")
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("pdftotext: %w", err)
	}

	var pages []Page
	for i, pageText := range strings.Split(string(out), "\f") {
		if strings.TrimSpace(pageText) == "" {
			continue
		}
		pages = append(pages, Page{
			Number:    i + 1,
			TextLines: strings.Split(pageText, "\n"),
		})
	}
	return pages, nil
}

// emptyPages reports whether extraction produced no content at all.
func emptyPages(pages []Page) bool {
	for _, p := range pages {
		if len(p.Glyphs) > 0 {
			return false
		}
		for _, l := range p.TextLines {
			if strings.TrimSpace(l) != "" {
				return false
			}
		}
	}
	return true
}
