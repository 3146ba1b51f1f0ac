package di

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-glossary/internal/diagnostics"
	"github.com/goliatone/go-glossary/internal/importer"
	"github.com/goliatone/go-glossary/internal/logging/gologger"
	"github.com/goliatone/go-glossary/internal/migrations"
	"github.com/goliatone/go-glossary/internal/runtimeconfig"
	"github.com/goliatone/go-glossary/internal/terms"
	"github.com/goliatone/go-glossary/pkg/testsupport"
	urlkit "github.com/goliatone/go-urlkit"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
)

func TestNewContainerDefaultsToMemoryRepository(t *testing.T) {
	container, err := NewContainer(runtimeconfig.DefaultConfig())
	if err != nil {
		t.Fatalf("NewContainer returned error: %v", err)
	}

	if _, ok := container.TermRepository().(*terms.MemoryTermRepository); !ok {
		t.Fatalf("expected memory repository, got %T", container.TermRepository())
	}
	if container.TermService() == nil {
		t.Fatal("expected term service to be configured")
	}
	if container.DiagnosticsService() == nil {
		t.Fatal("expected diagnostics service to be configured")
	}
	if container.Importer() == nil {
		t.Fatal("expected importer to be configured")
	}
}

func TestNewContainerRejectsInvalidConfig(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Storage.Driver = "oracle"

	if _, err := NewContainer(cfg); err == nil {
		t.Fatal("expected invalid driver error")
	}
}

func TestNewContainerWithBunDB(t *testing.T) {
	sqlDB, err := testsupport.NewSQLiteMemoryDB()
	if err != nil {
		t.Fatalf("new sqlite db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	db := bun.NewDB(sqlDB, sqlitedialect.New())
	db.SetMaxOpenConns(1)

	ctx := context.Background()
	if err := migrations.Setup(ctx, db); err != nil {
		t.Fatalf("setup schema: %v", err)
	}

	container, err := NewContainer(runtimeconfig.DefaultConfig(), WithBunDB(db))
	if err != nil {
		t.Fatalf("NewContainer returned error: %v", err)
	}

	if _, ok := container.TermRepository().(*terms.BunTermRepository); !ok {
		t.Fatalf("expected bun repository, got %T", container.TermRepository())
	}

	if _, err := container.TermService().Create(ctx, terms.CreateTermRequest{TermString: "White ice"}); err != nil {
		t.Fatalf("create through bun-backed service: %v", err)
	}

	ok, err := container.TermService().Exists(ctx, "White ice")
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if !ok {
		t.Fatal("expected term to persist through bun repository")
	}
}

func TestContainerAppliesDiagnosticsDefaults(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Diagnostics.Probes = []string{"White ice"}
	cfg.Diagnostics.SampleSize = 1
	cfg.Diagnostics.Contains = "ice"

	container, err := NewContainer(cfg)
	if err != nil {
		t.Fatalf("NewContainer returned error: %v", err)
	}

	ctx := context.Background()
	for _, seed := range []string{"White ice", "Nilas"} {
		if _, err := container.TermService().Create(ctx, terms.CreateTermRequest{TermString: seed}); err != nil {
			t.Fatalf("seed %q: %v", seed, err)
		}
	}

	report, err := container.DiagnosticsService().Run(ctx, diagnostics.ReportOptions{})
	if err != nil {
		t.Fatalf("run diagnostics: %v", err)
	}

	if len(report.Probes) != 1 || report.Probes[0].TermString != "White ice" || !report.Probes[0].Exists {
		t.Fatalf("expected configured probe to run, got %+v", report.Probes)
	}
	if len(report.Sample) != 1 {
		t.Fatalf("expected configured sample size 1, got %d", len(report.Sample))
	}
	if !report.HasContains || report.ContainsCount != 1 {
		t.Fatalf("expected configured contains probe, got %+v", report)
	}
}

func TestContainerCacheKeyedOnFeatureFlag(t *testing.T) {
	container, err := NewContainer(runtimeconfig.DefaultConfig())
	if err != nil {
		t.Fatalf("NewContainer returned error: %v", err)
	}
	if container.cacheService == nil {
		t.Fatal("expected cache service when cache feature enabled")
	}

	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Cache = false

	container, err = NewContainer(cfg)
	if err != nil {
		t.Fatalf("NewContainer returned error: %v", err)
	}
	if container.cacheService != nil {
		t.Fatal("expected no cache service when cache feature disabled")
	}
}

func TestContainerMarkdownContentDirBindsFilesystem(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "white-ice.md"), []byte("---\nterm: White ice\n---\nBody.\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Markdown = true
	cfg.Markdown.Enabled = true
	cfg.Markdown.ContentDir = dir

	container, err := NewContainer(cfg)
	if err != nil {
		t.Fatalf("NewContainer returned error: %v", err)
	}
	if container.MarkdownFS() == nil {
		t.Fatal("expected markdown filesystem bound from content dir")
	}

	ctx := context.Background()
	result, err := container.Importer().Sync(ctx, importer.ImportOptions{})
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	if result.Created != 1 {
		t.Fatalf("expected 1 imported term, got %d", result.Created)
	}

	ok, err := container.TermService().Exists(ctx, "White ice")
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if !ok {
		t.Fatal("expected imported term to exist")
	}
}

func TestConfigureLoggerProviderUsesGoLoggerAdapter(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Provider = "gologger"
	cfg.Logging.Level = "debug"
	cfg.Logging.Format = "json"

	container, err := NewContainer(cfg)
	if err != nil {
		t.Fatalf("NewContainer returned error: %v", err)
	}

	provider, ok := container.loggerProvider.(*gologger.Provider)
	if !ok {
		t.Fatalf("expected go-logger provider, got %T", container.loggerProvider)
	}

	logger := provider.GetLogger("glossary.test")
	if logger == nil {
		t.Fatal("expected logger from go-logger provider, got nil")
	}
}

func TestContainerPermalinkWiring(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Permalinks = true
	cfg.Links.RouteConfig = &urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{
				Name:    "glossary",
				BaseURL: "https://example.com",
				Paths: map[string]string{
					"term": "/term/:slug",
				},
			},
		},
	}
	cfg.Links.Terms.Group = "glossary"
	cfg.Links.Terms.Route = "term"

	container, err := NewContainer(cfg)
	if err != nil {
		t.Fatalf("NewContainer returned error: %v", err)
	}
	if container.RouteManager() == nil {
		t.Fatal("expected route manager to be configured")
	}

	ctx := context.Background()
	created, err := container.TermService().Create(ctx, terms.CreateTermRequest{TermString: "White ice"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Permalink != "https://example.com/term/white-ice" {
		t.Fatalf("expected decorated permalink, got %q", created.Permalink)
	}
}
