package terms

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goliatone/go-glossary/internal/logging"
	"github.com/goliatone/go-glossary/internal/validation"
	"github.com/goliatone/go-glossary/pkg/interfaces"
	glossaryterm "github.com/goliatone/go-glossary/term"
	"github.com/google/uuid"
)

// Service exposes glossary term use-cases.
type Service interface {
	Create(ctx context.Context, req CreateTermRequest) (*Term, error)
	Get(ctx context.Context, id uuid.UUID) (*Term, error)
	GetBySlug(ctx context.Context, slug string) (*Term, error)
	GetByTermString(ctx context.Context, termString string) (*Term, error)
	Exists(ctx context.Context, termString string) (bool, error)
	List(ctx context.Context, opts ListOptions) ([]*Term, int, error)
	Count(ctx context.Context) (int, error)
	Search(ctx context.Context, needle string) ([]*Term, error)
	Update(ctx context.Context, req UpdateTermRequest) (*Term, error)
	UpdateStatus(ctx context.Context, req UpdateTermStatusRequest) (*Term, error)
	Delete(ctx context.Context, id uuid.UUID, deletedBy uuid.UUID) error
}

// CreateTermRequest captures the information required to create a term.
type CreateTermRequest struct {
	ID             uuid.UUID
	TermString     string
	Slug           string
	Definition     string
	DefinitionHTML *string
	Examples       *string
	Status         Status
	Tags           []string
	Metadata       map[string]any
	CreatedBy      uuid.UUID
	UpdatedBy      uuid.UUID
}

// UpdateTermRequest captures mutable term fields. Nil pointers leave the
// stored value untouched.
type UpdateTermRequest struct {
	ID             uuid.UUID
	TermString     *string
	Definition     *string
	DefinitionHTML *string
	Examples       *string
	Tags           []string
	Metadata       map[string]any
	UpdatedBy      uuid.UUID
}

// UpdateTermStatusRequest moves a term along the moderation ladder.
type UpdateTermStatusRequest struct {
	ID        uuid.UUID
	Status    Status
	UpdatedBy uuid.UUID
}

// TermRepository abstracts storage operations for term entities.
type TermRepository interface {
	Create(ctx context.Context, record *Term) (*Term, error)
	Update(ctx context.Context, record *Term) (*Term, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Term, error)
	GetBySlug(ctx context.Context, slug string) (*Term, error)
	GetByTermString(ctx context.Context, termString string) (*Term, error)
	List(ctx context.Context, opts ListOptions) ([]*Term, int, error)
	Count(ctx context.Context) (int, error)
	SearchContains(ctx context.Context, needle string) ([]*Term, error)
}

// PermalinkResolver derives the public URL for a term, when configured.
type PermalinkResolver interface {
	Resolve(ctx context.Context, record *Term) (string, error)
}

// ServiceOption configures the service at construction time.
type ServiceOption func(*service)

// WithClock overrides the clock used to stamp records.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *service) {
		s.now = clock
	}
}

type IDGenerator func() uuid.UUID

func WithIDGenerator(generator IDGenerator) ServiceOption {
	return func(s *service) {
		if generator != nil {
			s.id = generator
		}
	}
}

// WithLogger injects the logger used by the service. Defaults to a no-op logger.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithPermalinkResolver wires the resolver used to decorate terms with URLs.
func WithPermalinkResolver(resolver PermalinkResolver) ServiceOption {
	return func(s *service) {
		s.permalinks = resolver
	}
}

// WithMetadataSchema overrides the JSON schema applied to term metadata.
func WithMetadataSchema(schema map[string]any) ServiceOption {
	return func(s *service) {
		s.metadataSchema = schema
	}
}

// service implements Service.
type service struct {
	terms          TermRepository
	now            func() time.Time
	id             IDGenerator
	logger         interfaces.Logger
	permalinks     PermalinkResolver
	metadataSchema map[string]any
}

// NewService constructs a term service with the required dependencies.
func NewService(terms TermRepository, opts ...ServiceOption) Service {
	s := &service{
		terms:          terms,
		now:            time.Now,
		id:             uuid.New,
		logger:         logging.NoOp(),
		metadataSchema: TermMetadataSchema,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Create orchestrates creation of a new glossary term.
func (s *service) Create(ctx context.Context, req CreateTermRequest) (*Term, error) {
	termString := strings.TrimSpace(req.TermString)
	if termString == "" {
		return nil, glossaryterm.ErrTermStringRequired
	}

	slug := strings.TrimSpace(req.Slug)
	if slug == "" {
		derived, err := glossaryterm.NormalizeSlug(termString)
		if err != nil {
			return nil, glossaryterm.ErrSlugInvalid
		}
		slug = derived
	}
	if !glossaryterm.IsValidSlug(slug) {
		return nil, glossaryterm.ErrSlugInvalid
	}

	status := req.Status
	if status == "" {
		status = glossaryterm.DefaultStatus
	}
	if !status.IsValid() {
		return nil, glossaryterm.ErrStatusInvalid
	}

	if err := s.validateMetadata(req.Metadata); err != nil {
		return nil, err
	}

	if existing, err := s.terms.GetBySlug(ctx, slug); err == nil && existing != nil {
		return nil, glossaryterm.ErrSlugExists
	} else if err != nil {
		var notFound *NotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	if existing, err := s.terms.GetByTermString(ctx, termString); err == nil && existing != nil {
		return nil, glossaryterm.ErrTermExists
	} else if err != nil {
		var notFound *NotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	now := s.now()
	id := req.ID
	if id == uuid.Nil {
		id = s.id()
	}

	record := &Term{
		ID:             id,
		TermString:     termString,
		Slug:           slug,
		Definition:     req.Definition,
		DefinitionHTML: req.DefinitionHTML,
		Examples:       req.Examples,
		Status:         status,
		Tags:           append([]string(nil), req.Tags...),
		Metadata:       cloneMap(req.Metadata),
		CreatedBy:      req.CreatedBy,
		UpdatedBy:      req.UpdatedBy,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := s.terms.Create(ctx, record)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("term created", "term", created.TermString, "slug", created.Slug, "status", created.Status.String())
	return s.decorate(ctx, created), nil
}

// Get retrieves a term by identifier.
func (s *service) Get(ctx context.Context, id uuid.UUID) (*Term, error) {
	if id == uuid.Nil {
		return nil, glossaryterm.ErrTermIDRequired
	}
	record, err := s.terms.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.decorate(ctx, record), nil
}

// GetBySlug retrieves a term by its slug.
func (s *service) GetBySlug(ctx context.Context, slug string) (*Term, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, glossaryterm.ErrSlugRequired
	}
	record, err := s.terms.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return s.decorate(ctx, record), nil
}

// GetByTermString retrieves a term by its exact term string.
func (s *service) GetByTermString(ctx context.Context, termString string) (*Term, error) {
	termString = strings.TrimSpace(termString)
	if termString == "" {
		return nil, glossaryterm.ErrTermStringRequired
	}
	record, err := s.terms.GetByTermString(ctx, termString)
	if err != nil {
		return nil, err
	}
	return s.decorate(ctx, record), nil
}

// Exists reports whether a term with the exact term string is present.
func (s *service) Exists(ctx context.Context, termString string) (bool, error) {
	_, err := s.GetByTermString(ctx, termString)
	if err == nil {
		return true, nil
	}
	var notFound *NotFoundError
	if errors.As(err, &notFound) {
		return false, nil
	}
	return false, err
}

// List returns terms plus the total count of matches before pagination.
func (s *service) List(ctx context.Context, opts ListOptions) ([]*Term, int, error) {
	records, total, err := s.terms.List(ctx, opts)
	if err != nil {
		return nil, 0, err
	}
	for i, record := range records {
		records[i] = s.decorate(ctx, record)
	}
	return records, total, nil
}

// Count reports the number of live terms in the vocabulary.
func (s *service) Count(ctx context.Context) (int, error) {
	return s.terms.Count(ctx)
}

// Search returns live terms whose term string case-insensitively contains needle.
func (s *service) Search(ctx context.Context, needle string) ([]*Term, error) {
	records, err := s.terms.SearchContains(ctx, needle)
	if err != nil {
		return nil, err
	}
	for i, record := range records {
		records[i] = s.decorate(ctx, record)
	}
	return records, nil
}

// Update applies partial changes to a term.
func (s *service) Update(ctx context.Context, req UpdateTermRequest) (*Term, error) {
	if req.ID == uuid.Nil {
		return nil, glossaryterm.ErrTermIDRequired
	}

	record, err := s.terms.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.TermString != nil {
		trimmed := strings.TrimSpace(*req.TermString)
		if trimmed == "" {
			return nil, glossaryterm.ErrTermStringRequired
		}
		record.TermString = trimmed
	}
	if req.Definition != nil {
		record.Definition = *req.Definition
	}
	if req.DefinitionHTML != nil {
		record.DefinitionHTML = req.DefinitionHTML
	}
	if req.Examples != nil {
		record.Examples = req.Examples
	}
	if req.Tags != nil {
		record.Tags = append([]string(nil), req.Tags...)
	}
	if req.Metadata != nil {
		if err := s.validateMetadata(req.Metadata); err != nil {
			return nil, err
		}
		record.Metadata = cloneMap(req.Metadata)
	}

	record.UpdatedBy = req.UpdatedBy
	record.UpdatedAt = s.now()

	updated, err := s.terms.Update(ctx, record)
	if err != nil {
		return nil, err
	}
	return s.decorate(ctx, updated), nil
}

// UpdateStatus moves a term along the moderation ladder, enforcing allowed
// transitions.
func (s *service) UpdateStatus(ctx context.Context, req UpdateTermStatusRequest) (*Term, error) {
	if req.ID == uuid.Nil {
		return nil, glossaryterm.ErrTermIDRequired
	}
	if !req.Status.IsValid() {
		return nil, glossaryterm.ErrStatusInvalid
	}

	record, err := s.terms.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if !record.Status.CanTransitionTo(req.Status) {
		return nil, glossaryterm.ErrStatusTransition
	}

	record.Status = req.Status
	record.UpdatedBy = req.UpdatedBy
	record.UpdatedAt = s.now()

	updated, err := s.terms.Update(ctx, record)
	if err != nil {
		return nil, err
	}

	s.logger.Info("term status updated", "term", updated.TermString, "status", updated.Status.String())
	return s.decorate(ctx, updated), nil
}

// Delete soft-deletes a term.
func (s *service) Delete(ctx context.Context, id uuid.UUID, deletedBy uuid.UUID) error {
	if id == uuid.Nil {
		return glossaryterm.ErrTermIDRequired
	}

	record, err := s.terms.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if record.DeletedAt != nil {
		return nil
	}

	now := s.now()
	record.DeletedAt = &now
	record.UpdatedBy = deletedBy
	record.UpdatedAt = now

	_, err = s.terms.Update(ctx, record)
	return err
}

func (s *service) validateMetadata(metadata map[string]any) error {
	if len(metadata) == 0 {
		return nil
	}
	if err := validation.ValidatePayload(s.metadataSchema, metadata); err != nil {
		return fmt.Errorf("%w: %v", glossaryterm.ErrMetadataInvalid, err)
	}
	return nil
}

func (s *service) decorate(ctx context.Context, record *Term) *Term {
	if record == nil {
		return nil
	}
	if s.permalinks != nil {
		if url, err := s.permalinks.Resolve(ctx, record); err == nil && url != "" {
			record.Permalink = url
		}
	}
	return record
}
