package glossary

import (
	"github.com/goliatone/go-glossary/internal/di"
	"github.com/goliatone/go-glossary/internal/diagnostics"
	"github.com/goliatone/go-glossary/internal/importer"
	"github.com/goliatone/go-glossary/internal/markdown"
	"github.com/goliatone/go-glossary/internal/terms"
	"github.com/goliatone/go-glossary/pkg/interfaces"
	"github.com/goliatone/go-glossary/term"
)

// Term exports the glossary term record.
type Term = term.Term

// Status exports the term moderation status type.
type Status = term.Status

// TermService exports the term service contract for consumers of the package.
type TermService = terms.Service

// CreateTermRequest exports the term creation payload.
type CreateTermRequest = terms.CreateTermRequest

// UpdateTermRequest exports the term update payload.
type UpdateTermRequest = terms.UpdateTermRequest

// UpdateTermStatusRequest exports the moderation transition payload.
type UpdateTermStatusRequest = terms.UpdateTermStatusRequest

// ListOptions exports the term listing options.
type ListOptions = terms.ListOptions

// DiagnosticsService exports the diagnostics service contract.
type DiagnosticsService = diagnostics.Service

// ReportOptions exports the diagnostics report options.
type ReportOptions = diagnostics.ReportOptions

// Report exports the diagnostics report.
type Report = diagnostics.Report

// Importer exports the Markdown glossary importer.
type Importer = importer.Importer

// ImportOptions exports the importer run options.
type ImportOptions = importer.ImportOptions

// ImportResult exports the importer run summary.
type ImportResult = importer.Result

// LoaderConfig exports the Markdown discovery configuration used by ImportFS.
type LoaderConfig = markdown.LoaderConfig

// Logger exports the logging contract used across the module.
type Logger = interfaces.Logger

// LoggerProvider exports the logger provider contract.
type LoggerProvider = interfaces.LoggerProvider

// Module represents the top level glossary runtime façade.
type Module struct {
	container *di.Container
}

// New constructs a glossary module using the provided configuration and
// optional DI overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Terms returns the configured term service.
func (m *Module) Terms() TermService {
	return m.container.TermService()
}

// Diagnostics returns the configured diagnostics service.
func (m *Module) Diagnostics() DiagnosticsService {
	return m.container.DiagnosticsService()
}

// Import returns the configured Markdown glossary importer.
func (m *Module) Import() *Importer {
	return m.container.Importer()
}

// Logging returns the configured logger provider. May be nil when the logger
// feature is disabled and no provider was supplied.
func (m *Module) Logging() LoggerProvider {
	return m.container.LoggerProvider()
}
