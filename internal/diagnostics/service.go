package diagnostics

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-glossary/internal/logging"
	"github.com/goliatone/go-glossary/internal/terms"
	"github.com/goliatone/go-glossary/pkg/interfaces"
)

// DefaultSampleSize bounds the listing section when callers do not choose one.
const DefaultSampleSize = 10

// ReportOptions selects which read-only checks a report run performs.
type ReportOptions struct {
	// Probes are term strings checked for exact-match existence.
	Probes []string
	// SampleSize caps the listing section. Zero falls back to DefaultSampleSize.
	SampleSize int
	// Contains, when set, counts terms whose term string contains the needle
	// case-insensitively.
	Contains string
}

// Service runs read-only inspection queries against the term store.
type Service interface {
	Run(ctx context.Context, opts ReportOptions) (*Report, error)
}

// Option customises the diagnostics service.
type Option func(*service)

// WithLogger overrides the module logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithDefaults seeds report options used when a run leaves fields unset.
func WithDefaults(defaults ReportOptions) Option {
	return func(s *service) {
		s.defaults = defaults
	}
}

type service struct {
	terms    terms.Service
	logger   interfaces.Logger
	defaults ReportOptions
}

// NewService builds a diagnostics service over the supplied term service.
func NewService(termService terms.Service, opts ...Option) Service {
	svc := &service{
		terms:  termService,
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(svc)
		}
	}
	return svc
}

func (s *service) Run(ctx context.Context, opts ReportOptions) (*Report, error) {
	if s.terms == nil {
		return nil, fmt.Errorf("diagnostics: term service is required")
	}

	opts = s.applyDefaults(opts)

	sampleSize := opts.SampleSize
	if sampleSize <= 0 {
		sampleSize = DefaultSampleSize
	}

	report := &Report{
		SampleSize: sampleSize,
		Contains:   strings.TrimSpace(opts.Contains),
	}

	for _, probe := range opts.Probes {
		probe = strings.TrimSpace(probe)
		if probe == "" {
			continue
		}
		exists, err := s.terms.Exists(ctx, probe)
		if err != nil {
			return nil, fmt.Errorf("diagnostics: probe %q: %w", probe, err)
		}
		report.Probes = append(report.Probes, ProbeResult{
			TermString: probe,
			Exists:     exists,
		})
	}

	total, err := s.terms.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("diagnostics: count terms: %w", err)
	}
	report.Total = total

	sample, _, err := s.terms.List(ctx, terms.ListOptions{Limit: sampleSize})
	if err != nil {
		return nil, fmt.Errorf("diagnostics: list terms: %w", err)
	}
	report.Sample = sample

	if report.Contains != "" {
		matches, err := s.terms.Search(ctx, report.Contains)
		if err != nil {
			return nil, fmt.Errorf("diagnostics: search %q: %w", report.Contains, err)
		}
		report.ContainsMatches = matches
		report.ContainsCount = len(matches)
		report.HasContains = true
	}

	s.logger.Debug("diagnostics report complete",
		"probes", len(report.Probes),
		"total", report.Total,
		"sampled", len(report.Sample),
	)

	return report, nil
}

func (s *service) applyDefaults(opts ReportOptions) ReportOptions {
	if len(opts.Probes) == 0 {
		opts.Probes = s.defaults.Probes
	}
	if opts.SampleSize <= 0 {
		opts.SampleSize = s.defaults.SampleSize
	}
	if strings.TrimSpace(opts.Contains) == "" {
		opts.Contains = s.defaults.Contains
	}
	return opts
}
