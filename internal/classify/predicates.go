package classify

import (
	"regexp"
	"strings"
	"unicode"
)

// Header detection predicates. Each is independently testable and the
// classifier ORs them together.

var (
	// Literal alternation is deliberately case-sensitive: mixed-case
	// forms like "chapter 3" do not match.
	chapterRe = regexp.MustCompile(`^(Chapter|Section|CHAPTER|SECTION)\s+\d`)

	// Decimal-numbered heading, e.g. "12.3 Title" or "4. Overview".
	numberedRe = regexp.MustCompile(`^\d+\.\d*\s+[A-Z]`)
)

// byRelativeSize fires when a line's mean font size is at least 15%
// above the page median.
func byRelativeSize(mean, median float64) bool {
	return mean > median*1.15
}

// byBoldEmphasis fires for bold lines at or above the median size,
// as long as the line is short enough to plausibly be a heading.
func byBoldEmphasis(text string, bold bool, mean, median float64) bool {
	return bold && mean >= median && len(text) < 200
}

// byNumbering matches chapter/section numbering patterns.
func byNumbering(text string) bool {
	return chapterRe.MatchString(text) || numberedRe.MatchString(text)
}

// byAllCaps fires for fully uppercase lines of heading-like length.
func byAllCaps(text string) bool {
	if len(text) <= 5 || len(text) >= 200 {
		return false
	}
	return isAllCaps(text)
}

// byKeywordPrefix fires for short lines starting with a configured
// organizational prefix such as a guideline series name.
func byKeywordPrefix(text string, prefixes []string) bool {
	if len(text) >= 150 {
		return false
	}
	for _, p := range prefixes {
		if p != "" && strings.HasPrefix(text, p) {
			return true
		}
	}
	return false
}

// isAllCaps reports whether s contains at least one letter and no
// lowercase letters.
func isAllCaps(s string) bool {
	hasUpper := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasUpper = true
		}
	}
	return hasUpper
}
