package assemble

import (
	"regexp"
	"strings"
)

// Sentence boundary: terminal punctuation followed by whitespace. A
// heuristic, not a sentence model; abbreviations and decimal numbers can
// cause false splits.
var sentenceBoundary = regexp.MustCompile(`[.!?]\s+`)

// SplitLongText breaks text into ordered fragments of at most maxLen
// characters, cut at sentence boundaries. A single sentence longer than
// maxLen becomes its own oversized fragment; content is never truncated
// or dropped.
func SplitLongText(text string, maxLen int) []string {
	sentences := splitSentences(text)

	var chunks []string
	var current []string
	currentLen := 0

	for _, s := range sentences {
		if currentLen+len(s) > maxLen && len(current) > 0 {
			chunks = append(chunks, strings.Join(current, " "))
			current = []string{s}
			currentLen = len(s)
		} else {
			current = append(current, s)
			currentLen += len(s) + 1
		}
	}
	if len(current) > 0 {
		chunks = append(chunks, strings.Join(current, " "))
	}
	return chunks
}

// splitSentences cuts text after terminal punctuation, consuming the
// separating whitespace. The punctuation stays with its sentence.
func splitSentences(text string) []string {
	matches := sentenceBoundary.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return []string{text}
	}

	var out []string
	last := 0
	for _, m := range matches {
		out = append(out, text[last:m[0]+1])
		last = m[1]
	}
	if last < len(text) {
		out = append(out, text[last:])
	}
	return out
}
