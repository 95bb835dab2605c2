package source

import (
	"strings"
	"testing"
)

func TestHTMLParser(t *testing.T) {
	input := `<html><head><title>ignored</title><style>p{color:red}</style></head>
<body>
<nav>Home | About</nav>
<h1>Clinical Guideline</h1>
<p>First recommendation paragraph.</p>
<h2>Dosing</h2>
<ul><li>Adjust for renal function.</li></ul>
<script>console.log("skip me")</script>
<footer>copyright</footer>
</body></html>`

	pages, err := (&HTMLParser{}).Parse(strings.NewReader(input), "page.html")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(pages))
	}

	lines := pages[0].Lines
	var got []string
	for _, l := range lines {
		marker := "body"
		if l.Header {
			marker = "header"
		}
		got = append(got, marker+":"+l.Text)
	}

	want := []string{
		"header:Clinical Guideline",
		"body:First recommendation paragraph.",
		"header:Dosing",
		"body:Adjust for renal function.",
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d lines, got %q", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestHTMLParser_NoContent(t *testing.T) {
	pages, err := (&HTMLParser{}).Parse(strings.NewReader("<html><body><script>x()</script></body></html>"), "empty.html")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if pages != nil {
		t.Errorf("expected no pages, got %d", len(pages))
	}
}
