package links

import (
	"context"
	"testing"

	"github.com/goliatone/go-glossary/term"
	urlkit "github.com/goliatone/go-urlkit"
)

func newRouteManager() *urlkit.RouteManager {
	return urlkit.NewRouteManager(&urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{
				Name:    "glossary",
				BaseURL: "https://example.com",
				Paths: map[string]string{
					"term": "/term/:slug",
				},
			},
		},
	})
}

func TestURLKitResolverBuildsPermalink(t *testing.T) {
	resolver := NewURLKitResolver(URLKitResolverOptions{
		Manager: newRouteManager(),
		Group:   "glossary",
		Route:   "term",
	})

	url, err := resolver.Resolve(context.Background(), &term.Term{Slug: "white-ice"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if url != "https://example.com/term/white-ice" {
		t.Fatalf("unexpected permalink %q", url)
	}
}

func TestURLKitResolverMissingGroup(t *testing.T) {
	resolver := NewURLKitResolver(URLKitResolverOptions{
		Manager: newRouteManager(),
		Group:   "unknown",
	})

	_, err := resolver.Resolve(context.Background(), &term.Term{Slug: "white-ice"})
	if err == nil {
		t.Fatal("expected missing group error")
	}
}

func TestURLKitResolverWithoutManager(t *testing.T) {
	resolver := NewURLKitResolver(URLKitResolverOptions{})

	url, err := resolver.Resolve(context.Background(), &term.Term{Slug: "white-ice"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if url != "" {
		t.Fatalf("expected empty permalink, got %q", url)
	}
}
