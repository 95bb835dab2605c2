package source

import (
	"bytes"
	"io"
	"strings"

	"github.com/dgallion1/docsect/internal/classify"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownParser handles Markdown files using goldmark. Headings carry
// explicit structure, so lines come out pre-classified.
type MarkdownParser struct{}

func (p *MarkdownParser) Parse(r io.Reader, filename string) ([]Page, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	reader := text.NewReader(src)
	doc := md.Parser().Parse(reader)

	var lines []classify.Line
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			title := strings.TrimSpace(string(node.Text(src)))
			if title != "" {
				lines = append(lines, classify.Line{Text: title, Header: true})
			}
		default:
			t := extractMarkdownText(n, src)
			for _, l := range strings.Split(t, "\n") {
				l = strings.TrimSpace(l)
				if l != "" {
					lines = append(lines, classify.Line{Text: l})
				}
			}
		}
	}

	if len(lines) == 0 {
		return nil, nil
	}
	return []Page{{Number: 1, Lines: lines}}, nil
}

// extractMarkdownText gets the text content of a goldmark AST node.
func extractMarkdownText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	if n.Type() == ast.TypeBlock {
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			buf.Write(line.Value(src))
		}
	}
	// Also handle inline children.
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Value(src))
			if t.HardLineBreak() || t.SoftLineBreak() {
				buf.WriteByte('\n')
			}
		} else {
			// Recurse for nested inlines.
			buf.WriteString(extractMarkdownText(c, src))
		}
	}
	return strings.TrimSpace(buf.String())
}
