package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"

	urlkit "github.com/goliatone/go-urlkit"
)

// ErrStorageDriverUnknown indicates a storage driver outside the supported set.
var ErrStorageDriverUnknown = errors.New("glossary config: storage driver is invalid")

// ErrMarkdownFeatureRequired ensures markdown import stays behind its feature flag.
var ErrMarkdownFeatureRequired = errors.New("glossary config: markdown feature must be enabled to configure markdown import")
var ErrMarkdownContentDirRequired = errors.New("glossary config: markdown content directory is required when markdown is enabled")
var ErrPermalinksRouteConfigRequired = errors.New("glossary config: permalinks feature requires link route configuration")
var ErrDiagnosticsSampleInvalid = errors.New("glossary config: diagnostics sample size must be zero or positive")
var ErrLoggingProviderRequired = errors.New("glossary config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("glossary config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("glossary config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("glossary config: logging format is invalid")

// Config aggregates feature flags and adapter bindings for the glossary module.
// Fields intentionally use simple types so host applications can extend them later.
type Config struct {
	Enabled     bool
	Storage     StorageConfig
	Cache       CacheConfig
	Logging     LoggingConfig
	Markdown    MarkdownConfig
	Links       LinksConfig
	Diagnostics DiagnosticsConfig
	Features    Features
}

// Supported storage drivers.
const (
	StorageDriverSQLite   = "sqlite"
	StorageDriverPostgres = "postgres"
)

// StorageConfig captures persistence bindings for the term repository.
type StorageConfig struct {
	Driver string
	DSN    string
}

// CacheConfig captures cache behaviour. The cache itself is toggled through
// Features.Cache.
type CacheConfig struct {
	DefaultTTL time.Duration
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// MarkdownConfig controls the markdown glossary importer.
type MarkdownConfig struct {
	Enabled    bool
	ContentDir string
	Pattern    string
	Recursive  bool
	Extensions []string
}

// LinksConfig captures routing configuration for term permalink resolution.
type LinksConfig struct {
	RouteConfig *urlkit.Config
	Terms       TermLinkConfig
}

// TermLinkConfig configures the go-urlkit based permalink resolver.
type TermLinkConfig struct {
	Group     string
	Route     string
	SlugParam string
}

// DiagnosticsConfig captures defaults for the database diagnostics report.
type DiagnosticsConfig struct {
	// Probes lists term strings checked for existence on every report.
	Probes []string
	// SampleSize bounds the "first N terms" section of the report.
	SampleSize int
	// Contains is the default case-insensitive substring probe.
	Contains string
}

// Features toggles module functionality.
type Features struct {
	Cache      bool
	Logger     bool
	Markdown   bool
	Permalinks bool
}

// DefaultConfig returns the baseline configuration used by New when hosts do
// not supply their own.
func DefaultConfig() Config {
	return Config{
		Enabled: true,
		Storage: StorageConfig{
			Driver: StorageDriverSQLite,
		},
		Cache: CacheConfig{
			DefaultTTL: time.Minute,
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
			Format:   "",
		},
		Markdown: MarkdownConfig{
			ContentDir: "glossary",
			Pattern:    "*.md",
			Recursive:  true,
		},
		Diagnostics: DiagnosticsConfig{
			Probes:     []string{},
			SampleSize: 10,
			Contains:   "",
		},
		Features: Features{
			Cache: true,
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if driver := normalizeDriver(cfg.Storage.Driver); driver != "" && !isSupportedDriver(driver) {
		return fmt.Errorf("%w: %s", ErrStorageDriverUnknown, cfg.Storage.Driver)
	}
	if cfg.Markdown.Enabled {
		if !cfg.Features.Markdown {
			return ErrMarkdownFeatureRequired
		}
		if strings.TrimSpace(cfg.Markdown.ContentDir) == "" {
			return ErrMarkdownContentDirRequired
		}
	}
	if cfg.Features.Permalinks && cfg.Links.RouteConfig == nil {
		return ErrPermalinksRouteConfigRequired
	}
	if cfg.Diagnostics.SampleSize < 0 {
		return ErrDiagnosticsSampleInvalid
	}
	if cfg.Features.Logger {
		provider := normalizeProvider(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

func normalizeDriver(driver string) string {
	return strings.ToLower(strings.TrimSpace(driver))
}

func isSupportedDriver(driver string) bool {
	switch driver {
	case StorageDriverSQLite, "sqlite3", StorageDriverPostgres:
		return true
	default:
		return false
	}
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
