package parser

import (
	"strings"
	"testing"
)

func TestHTMLParser_RenderedText(t *testing.T) {
	input := `<html><head><title>32019L0790</title><style>p { color: red }</style></head>
<body><p class="oj-normal">HAS ADOPTED THIS DIRECTIVE:</p>
<p>Member States <b>shall</b> comply.</p><script>var x = 1;</script>
<p>Done at Brussels</p></body></html>`
	p := &HTMLParser{}
	text, err := p.Parse(strings.NewReader(input), "32019L0790.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(text, "HAS ADOPTED THIS DIRECTIVE:\nMember States shall comply.\nDone at Brussels") {
		t.Errorf("unexpected text %q", text)
	}
	if strings.Contains(text, "var x") || strings.Contains(text, "color") {
		t.Errorf("expected script and style content to be skipped, got %q", text)
	}
	if !strings.HasPrefix(text, "32019L0790") {
		t.Errorf("expected title text first, got %q", text)
	}
}

func TestHTMLParser_MalformedMarkup(t *testing.T) {
	p := &HTMLParser{}
	text, err := p.Parse(strings.NewReader("<p>unclosed <div>operators must act"), "x.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "unclosed operators must act" {
		t.Errorf("unexpected text %q", text)
	}
}

func TestPDFParser_InvalidInput(t *testing.T) {
	p := &PDFParser{}
	if _, err := p.Parse(strings.NewReader("not a pdf"), "bad.pdf"); err == nil {
		t.Fatal("expected error for invalid pdf")
	}
}

func TestForFile(t *testing.T) {
	cases := map[string]string{
		"32016R0679.pdf":  "*parser.PDFParser",
		"32016R0679.PDF":  "*parser.PDFParser",
		"32019L0790.html": "*parser.HTMLParser",
	}
	for name, want := range cases {
		p, err := ForFile(name, Options{})
		if err != nil {
			t.Fatalf("ForFile(%q): unexpected error: %v", name, err)
		}
		if got := typeName(p); got != want {
			t.Errorf("ForFile(%q) = %s, want %s", name, got, want)
		}
	}
	for _, name := range []string{"notes.txt", "page.htm", "act.docx", "noext"} {
		if _, err := ForFile(name, Options{}); err == nil {
			t.Errorf("ForFile(%q): expected error", name)
		}
	}
}

func TestIsSupportedExtension(t *testing.T) {
	if !IsSupportedExtension("a.Html") || !IsSupportedExtension("b.pdf") {
		t.Error("expected pdf and html to be supported")
	}
	if IsSupportedExtension("c.md") {
		t.Error("expected md to be unsupported")
	}
}

func typeName(p Parser) string {
	switch p.(type) {
	case *PDFParser:
		return "*parser.PDFParser"
	case *HTMLParser:
		return "*parser.HTMLParser"
	}
	return "unknown"
}
