package glossary_test

import (
	"errors"
	"testing"

	glossary "github.com/goliatone/go-glossary"
)

func TestConfigValidateStorageDriverUnknown(t *testing.T) {
	cfg := glossary.DefaultConfig()
	cfg.Storage.Driver = "oracle"

	if err := cfg.Validate(); !errors.Is(err, glossary.ErrStorageDriverUnknown) {
		t.Fatalf("expected ErrStorageDriverUnknown, got %v", err)
	}
}

func TestConfigValidateMarkdownRequiresFeature(t *testing.T) {
	cfg := glossary.DefaultConfig()
	cfg.Markdown.Enabled = true
	cfg.Features.Markdown = false

	if err := cfg.Validate(); !errors.Is(err, glossary.ErrMarkdownFeatureRequired) {
		t.Fatalf("expected ErrMarkdownFeatureRequired, got %v", err)
	}
}

func TestConfigValidateMarkdownRequiresContentDir(t *testing.T) {
	cfg := glossary.DefaultConfig()
	cfg.Markdown.Enabled = true
	cfg.Features.Markdown = true
	cfg.Markdown.ContentDir = "  "

	if err := cfg.Validate(); !errors.Is(err, glossary.ErrMarkdownContentDirRequired) {
		t.Fatalf("expected ErrMarkdownContentDirRequired, got %v", err)
	}
}

func TestConfigValidatePermalinksRequireRouteConfig(t *testing.T) {
	cfg := glossary.DefaultConfig()
	cfg.Features.Permalinks = true
	cfg.Links.RouteConfig = nil

	if err := cfg.Validate(); !errors.Is(err, glossary.ErrPermalinksRouteConfigRequired) {
		t.Fatalf("expected ErrPermalinksRouteConfigRequired, got %v", err)
	}
}

func TestConfigValidateLoggingProviderUnknown(t *testing.T) {
	cfg := glossary.DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Provider = "zap"

	if err := cfg.Validate(); !errors.Is(err, glossary.ErrLoggingProviderUnknown) {
		t.Fatalf("expected ErrLoggingProviderUnknown, got %v", err)
	}
}

func TestConfigValidateDefaultsPass(t *testing.T) {
	cfg := glossary.DefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned unexpected error: %v", err)
	}
}
