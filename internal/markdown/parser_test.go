package markdown

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/goliatone/go-glossary/pkg/interfaces"
)

func TestGoldmarkParserRendersDefaults(t *testing.T) {
	parser := NewGoldmarkParser(interfaces.ParseOptions{})

	html, err := parser.Parse([]byte("# Heading\n\nSome **bold** text."))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	out := string(html)
	if !strings.Contains(out, "<h1") {
		t.Fatalf("expected heading element, got %q", out)
	}
	if !strings.Contains(out, "<strong>bold</strong>") {
		t.Fatalf("expected bold rendering, got %q", out)
	}
}

func TestGoldmarkParserSafeModeStripsRawHTML(t *testing.T) {
	parser := NewGoldmarkParser(interfaces.ParseOptions{})

	html, err := parser.ParseWithOptions([]byte("<div>raw</div>"), interfaces.ParseOptions{SafeMode: true})
	if err != nil {
		t.Fatalf("ParseWithOptions: %v", err)
	}
	if strings.Contains(string(html), "<div>") {
		t.Fatalf("expected raw HTML suppressed in safe mode, got %q", string(html))
	}
}

func TestGoldmarkParserExtensionSelection(t *testing.T) {
	parser := NewGoldmarkParser(interfaces.ParseOptions{Extensions: []string{"strikethrough"}})

	html, err := parser.Parse([]byte("~~gone~~"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !strings.Contains(string(html), "<del>gone</del>") {
		t.Fatalf("expected strikethrough rendering, got %q", string(html))
	}
}

func TestLoaderDiscoverFixtures(t *testing.T) {
	loader := NewLoader(os.DirFS("testdata"), LoaderConfig{Pattern: "*.md", Recursive: true})

	results, err := loader.LoadDirectory(context.Background(), ".", LoadParams{})
	if err != nil {
		t.Fatalf("LoadDirectory: %v", err)
	}
	if len(results) == 0 {
		t.Fatal("expected at least one fixture document")
	}
	if results[0].Document.FrontMatter.Term == "" {
		t.Fatalf("expected parsed frontmatter, got %#v", results[0].Document.FrontMatter)
	}
}
