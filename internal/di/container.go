package di

import (
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/goliatone/go-glossary/internal/diagnostics"
	"github.com/goliatone/go-glossary/internal/importer"
	"github.com/goliatone/go-glossary/internal/links"
	"github.com/goliatone/go-glossary/internal/logging"
	"github.com/goliatone/go-glossary/internal/logging/console"
	"github.com/goliatone/go-glossary/internal/logging/gologger"
	glossarymd "github.com/goliatone/go-glossary/internal/markdown"
	"github.com/goliatone/go-glossary/internal/runtimeconfig"
	"github.com/goliatone/go-glossary/internal/terms"
	"github.com/goliatone/go-glossary/pkg/interfaces"
	repocache "github.com/goliatone/go-repository-cache/cache"
	urlkit "github.com/goliatone/go-urlkit"
	"github.com/uptrace/bun"
)

// Container wires module dependencies. In-memory repositories back every
// service until a host supplies a bun.DB.
type Container struct {
	Config runtimeconfig.Config

	bunDB         *bun.DB
	cacheTTL      time.Duration
	cacheService  repocache.CacheService
	keySerializer repocache.KeySerializer

	loggerProvider interfaces.LoggerProvider

	termRepo          terms.TermRepository
	permalinkResolver terms.PermalinkResolver
	routeManager      *urlkit.RouteManager
	clock             func() time.Time

	markdownFS     fs.FS
	markdownParser interfaces.MarkdownParser

	termSvc terms.Service
	diagSvc diagnostics.Service
	imp     *importer.Importer
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithBunDB binds the container to a bun database connection.
func WithBunDB(db *bun.DB) Option {
	return func(c *Container) {
		c.bunDB = db
	}
}

// WithCache overrides the default repository cache bindings.
func WithCache(service repocache.CacheService, serializer repocache.KeySerializer) Option {
	return func(c *Container) {
		c.cacheService = service
		c.keySerializer = serializer
	}
}

// WithLoggerProvider overrides the default logger provider.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithTermRepository overrides the default term repository binding.
func WithTermRepository(repo terms.TermRepository) Option {
	return func(c *Container) {
		c.termRepo = repo
	}
}

// WithTermService overrides the default term service binding.
func WithTermService(svc terms.Service) Option {
	return func(c *Container) {
		c.termSvc = svc
	}
}

// WithDiagnosticsService overrides the default diagnostics service binding.
func WithDiagnosticsService(svc diagnostics.Service) Option {
	return func(c *Container) {
		c.diagSvc = svc
	}
}

// WithImporter overrides the default glossary importer binding.
func WithImporter(imp *importer.Importer) Option {
	return func(c *Container) {
		c.imp = imp
	}
}

// WithMarkdownFS binds the filesystem used for Markdown glossary imports.
func WithMarkdownFS(filesystem fs.FS) Option {
	return func(c *Container) {
		c.markdownFS = filesystem
	}
}

// WithMarkdownParser overrides the default Markdown parser binding.
func WithMarkdownParser(parser interfaces.MarkdownParser) Option {
	return func(c *Container) {
		c.markdownParser = parser
	}
}

// WithPermalinkResolver overrides the default permalink resolver binding.
func WithPermalinkResolver(resolver terms.PermalinkResolver) Option {
	return func(c *Container) {
		c.permalinkResolver = resolver
	}
}

// WithClock overrides the clock used to stamp records.
func WithClock(clock func() time.Time) Option {
	return func(c *Container) {
		c.clock = clock
	}
}

// NewContainer creates a container with the provided configuration.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cacheTTL := cfg.Cache.DefaultTTL
	if cacheTTL <= 0 {
		cacheTTL = time.Minute
	}

	c := &Container{
		Config:   cfg,
		cacheTTL: cacheTTL,
		termRepo: terms.NewMemoryTermRepository(),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	if err := c.configureLoggerProvider(); err != nil {
		return nil, err
	}
	c.configureCacheDefaults()
	c.configureRepositories()
	c.configureLinks()
	c.configureMarkdown()

	if c.termSvc == nil {
		serviceOpts := []terms.ServiceOption{
			terms.WithLogger(logging.TermsLogger(c.loggerProvider)),
		}
		if c.permalinkResolver != nil {
			serviceOpts = append(serviceOpts, terms.WithPermalinkResolver(c.permalinkResolver))
		}
		if c.clock != nil {
			serviceOpts = append(serviceOpts, terms.WithClock(c.clock))
		}
		c.termSvc = terms.NewService(c.termRepo, serviceOpts...)
	}

	if c.diagSvc == nil {
		c.diagSvc = diagnostics.NewService(c.termSvc,
			diagnostics.WithLogger(logging.DiagnosticsLogger(c.loggerProvider)),
			diagnostics.WithDefaults(diagnostics.ReportOptions{
				Probes:     cfg.Diagnostics.Probes,
				SampleSize: cfg.Diagnostics.SampleSize,
				Contains:   cfg.Diagnostics.Contains,
			}),
		)
	}

	if c.imp == nil {
		c.imp = importer.NewImporter(importer.Config{
			Terms:      c.termSvc,
			Parser:     c.markdownParser,
			Logger:     logging.ImporterLogger(c.loggerProvider),
			Filesystem: c.markdownFS,
			Loader: glossarymd.LoaderConfig{
				Pattern:   cfg.Markdown.Pattern,
				Recursive: cfg.Markdown.Recursive,
			},
		})
	}

	return c, nil
}

func (c *Container) configureLoggerProvider() error {
	if c.loggerProvider != nil {
		return nil
	}
	if !c.Config.Features.Logger {
		return nil
	}

	switch strings.ToLower(strings.TrimSpace(c.Config.Logging.Provider)) {
	case "gologger":
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     c.Config.Logging.Level,
			Format:    c.Config.Logging.Format,
			AddSource: c.Config.Logging.AddSource,
			Focus:     c.Config.Logging.Focus,
		})
		if err != nil {
			return err
		}
		c.loggerProvider = provider
	default:
		minLevel := consoleLevel(c.Config.Logging.Level)
		c.loggerProvider = console.NewProvider(console.Options{
			MinLevel: &minLevel,
		})
	}
	return nil
}

func (c *Container) configureCacheDefaults() {
	if !c.Config.Features.Cache {
		return
	}

	if c.cacheService == nil {
		cfg := repocache.DefaultConfig()
		if c.cacheTTL > 0 {
			cfg.TTL = c.cacheTTL
		}
		service, err := repocache.NewCacheService(cfg)
		if err == nil {
			c.cacheService = service
		}
	}

	if c.cacheService != nil && c.keySerializer == nil {
		c.keySerializer = repocache.NewDefaultKeySerializer()
	}
}

func (c *Container) configureRepositories() {
	if c.bunDB == nil {
		return
	}
	c.termRepo = terms.NewBunTermRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)
}

func (c *Container) configureLinks() {
	if c.permalinkResolver != nil {
		return
	}
	if !c.Config.Features.Permalinks {
		return
	}

	linksCfg := c.Config.Links
	if linksCfg.RouteConfig == nil {
		return
	}

	manager := urlkit.NewRouteManager(linksCfg.RouteConfig)
	c.routeManager = manager

	c.permalinkResolver = links.NewURLKitResolver(links.URLKitResolverOptions{
		Manager:   manager,
		Group:     strings.TrimSpace(linksCfg.Terms.Group),
		Route:     strings.TrimSpace(linksCfg.Terms.Route),
		SlugParam: strings.TrimSpace(linksCfg.Terms.SlugParam),
	})
}

func (c *Container) configureMarkdown() {
	if c.markdownParser == nil {
		c.markdownParser = glossarymd.NewGoldmarkParser(interfaces.ParseOptions{
			Extensions: c.Config.Markdown.Extensions,
		})
	}

	if c.markdownFS == nil && c.Config.Features.Markdown && c.Config.Markdown.Enabled {
		if dir := strings.TrimSpace(c.Config.Markdown.ContentDir); dir != "" {
			c.markdownFS = os.DirFS(dir)
		}
	}
}

// TermRepository exposes the configured term repository.
func (c *Container) TermRepository() terms.TermRepository {
	return c.termRepo
}

// TermService returns the configured term service.
func (c *Container) TermService() terms.Service {
	return c.termSvc
}

// DiagnosticsService returns the configured diagnostics service.
func (c *Container) DiagnosticsService() diagnostics.Service {
	return c.diagSvc
}

// Importer returns the configured glossary importer.
func (c *Container) Importer() *importer.Importer {
	return c.imp
}

// MarkdownFS exposes the filesystem bound for glossary imports, when any.
func (c *Container) MarkdownFS() fs.FS {
	return c.markdownFS
}

// LoggerProvider exposes the configured logger provider. May be nil when the
// logger feature is disabled and no provider was supplied.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

// RouteManager exposes the urlkit route manager, when permalinks are enabled.
func (c *Container) RouteManager() *urlkit.RouteManager {
	return c.routeManager
}

// BunDB exposes the bound database connection, when any.
func (c *Container) BunDB() *bun.DB {
	return c.bunDB
}

func consoleLevel(level string) console.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return console.LevelTrace
	case "debug":
		return console.LevelDebug
	case "warn", "warning":
		return console.LevelWarn
	case "error":
		return console.LevelError
	case "fatal":
		return console.LevelFatal
	default:
		return console.LevelInfo
	}
}
