package source

import (
	"bufio"
	"io"
)

// TextParser handles plain text files. Plain text has no typographic
// data, so its lines go through the fallback classifier.
type TextParser struct{}

func (p *TextParser) Parse(r io.Reader, filename string) ([]Page, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, nil
	}

	return []Page{{Number: 1, TextLines: lines}}, nil
}
