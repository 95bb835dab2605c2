// Package classify labels lines of page content as headers or body text
// using typographic signals when glyph-level data is available, falling
// back to plain-text heuristics when it is not.
package classify

import (
	"math"
	"sort"
	"strings"
)

// Glyph is one positioned character as reported by the page-extraction
// layer. Size <= 0 means the extractor did not report a font size.
type Glyph struct {
	Text     string
	Size     float64
	FontName string
	Top      float64
}

// Line is one visual line of a page with its structural role.
type Line struct {
	Text   string
	Header bool
}

// Glyphs reconstructs visual lines from glyph records and classifies each
// as header or body. Returns nil when no glyph reports a font size; the
// caller should fall back to PlainText for that page.
func Glyphs(glyphs []Glyph) []Line {
	if len(glyphs) == 0 {
		return nil
	}

	// Group glyphs into visual lines by quantized vertical position,
	// preserving emission order within a line.
	groups := make(map[float64][]Glyph)
	for _, g := range glyphs {
		key := math.Round(g.Top*10) / 10
		groups[key] = append(groups[key], g)
	}

	median, ok := medianSize(glyphs)
	if !ok {
		return nil
	}

	keys := make([]float64, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Float64s(keys)

	var lines []Line
	for _, k := range keys {
		group := groups[k]

		var sb strings.Builder
		for _, g := range group {
			sb.WriteString(g.Text)
		}
		text := strings.TrimSpace(sb.String())
		if len(text) < 2 {
			continue
		}

		var sum float64
		bold := false
		for _, g := range group {
			if g.Size > 0 {
				sum += g.Size
			} else {
				sum += median
			}
			if strings.Contains(g.FontName, "Bold") {
				bold = true
			}
		}
		mean := sum / float64(len(group))

		header := byRelativeSize(mean, median) ||
			byBoldEmphasis(text, bold, mean, median) ||
			byNumbering(text)

		lines = append(lines, Line{Text: text, Header: header})
	}
	return lines
}

// PlainText classifies trimmed text lines without typographic data.
// prefixes are organizational keyword prefixes (e.g. a guideline series
// name) that mark a short line as a header. Lower precision than the
// glyph path; a documented degradation.
func PlainText(raw []string, prefixes []string) []Line {
	var lines []Line
	for _, l := range raw {
		text := strings.TrimSpace(l)
		if text == "" {
			continue
		}
		header := byAllCaps(text) || byNumbering(text) || byKeywordPrefix(text, prefixes)
		lines = append(lines, Line{Text: text, Header: header})
	}
	return lines
}

// medianSize computes the page-level typographic baseline: the upper
// median of all known glyph sizes.
func medianSize(glyphs []Glyph) (float64, bool) {
	var sizes []float64
	for _, g := range glyphs {
		if g.Size > 0 {
			sizes = append(sizes, g.Size)
		}
	}
	if len(sizes) == 0 {
		return 0, false
	}
	sort.Float64s(sizes)
	return sizes[len(sizes)/2], true
}
