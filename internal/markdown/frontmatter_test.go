package markdown

import (
	"os"
	"strings"
	"testing"
	"time"
)

func TestParseFrontMatter(t *testing.T) {
	data := readFixture(t, "testdata/white-ice.md")

	fm, body, err := ParseFrontMatter(data)
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}

	if fm.Term != "White ice" {
		t.Fatalf("FrontMatter Term mismatch, got %q", fm.Term)
	}
	if fm.Slug != "white-ice" {
		t.Fatalf("FrontMatter Slug mismatch, got %q", fm.Slug)
	}
	if fm.Status != "vernacular" {
		t.Fatalf("FrontMatter Status mismatch, got %q", fm.Status)
	}
	if len(fm.Tags) != 2 || fm.Tags[0] != "sea-ice" {
		t.Fatalf("FrontMatter Tags mismatch: %#v", fm.Tags)
	}
	if fm.Author != "Jane Researcher" {
		t.Fatalf("FrontMatter Author mismatch, got %q", fm.Author)
	}
	if _, ok := fm.Custom["see_also"]; !ok {
		t.Fatalf("FrontMatter Custom see_also missing: %#v", fm.Custom)
	}
	if len(body) == 0 || !strings.Contains(string(body), "# White ice") {
		t.Fatalf("Markdown body not returned correctly: %q", string(body))
	}
}

func TestBuildDocument(t *testing.T) {
	data := readFixture(t, "testdata/white-ice.md")
	modified := time.Now().UTC()

	doc, err := BuildDocument("testdata/white-ice.md", data, modified)
	if err != nil {
		t.Fatalf("BuildDocument: %v", err)
	}

	if doc.FilePath != "testdata/white-ice.md" {
		t.Fatalf("expected FilePath to be set, got %q", doc.FilePath)
	}
	if doc.LastModified != modified {
		t.Fatalf("expected LastModified to equal the provided timestamp")
	}
	if len(doc.Body) == 0 {
		t.Fatalf("expected Body to contain markdown content")
	}
	if len(doc.Checksum) == 0 {
		t.Fatalf("expected Checksum to be populated")
	}
	if len(doc.BodyHTML) != 0 {
		t.Fatalf("expected BodyHTML to be empty until rendered")
	}
}

func TestParseFrontMatterWithoutDelimiters(t *testing.T) {
	fm, body, err := ParseFrontMatter([]byte("Just a definition.\n"))
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}
	if fm.Term != "" {
		t.Fatalf("expected empty term, got %q", fm.Term)
	}
	if !strings.Contains(string(body), "Just a definition.") {
		t.Fatalf("expected body passthrough, got %q", string(body))
	}
}

func readFixture(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read fixture %s: %v", path, err)
	}
	return data
}
