package terms

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// MemoryTermRepository is an in-memory implementation for scaffolding and tests.
// Insertion order is preserved so listings behave like the SQL-backed repository.
type MemoryTermRepository struct {
	mu        sync.RWMutex
	terms     map[uuid.UUID]*Term
	order     []uuid.UUID
	slugIndex map[string]uuid.UUID
}

// NewMemoryTermRepository creates an empty in-memory term repository.
func NewMemoryTermRepository() *MemoryTermRepository {
	return &MemoryTermRepository{
		terms:     make(map[uuid.UUID]*Term),
		slugIndex: make(map[string]uuid.UUID),
	}
}

// Create inserts the supplied term.
func (m *MemoryTermRepository) Create(_ context.Context, record *Term) (*Term, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := cloneTerm(record)
	m.terms[copied.ID] = copied
	m.order = append(m.order, copied.ID)
	m.slugIndex[copied.Slug] = copied.ID
	return cloneTerm(copied), nil
}

// Update replaces the stored term with the supplied record.
func (m *MemoryTermRepository) Update(_ context.Context, record *Term) (*Term, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.terms[record.ID]
	if !ok {
		return nil, &NotFoundError{Resource: "term", Key: record.ID.String()}
	}
	delete(m.slugIndex, existing.Slug)

	copied := cloneTerm(record)
	m.terms[copied.ID] = copied
	m.slugIndex[copied.Slug] = copied.ID
	return cloneTerm(copied), nil
}

// GetByID retrieves a term by identifier.
func (m *MemoryTermRepository) GetByID(_ context.Context, id uuid.UUID) (*Term, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.terms[id]
	if !ok {
		return nil, &NotFoundError{Resource: "term", Key: id.String()}
	}
	return cloneTerm(rec), nil
}

// GetBySlug retrieves a term by slug, returning NotFoundError when absent.
func (m *MemoryTermRepository) GetBySlug(_ context.Context, slug string) (*Term, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.slugIndex[slug]
	if !ok {
		return nil, &NotFoundError{Resource: "term", Key: slug}
	}
	return cloneTerm(m.terms[id]), nil
}

// GetByTermString retrieves a live term by its exact term string.
func (m *MemoryTermRepository) GetByTermString(_ context.Context, termString string) (*Term, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, id := range m.order {
		rec := m.terms[id]
		if rec == nil || rec.DeletedAt != nil {
			continue
		}
		if rec.TermString == termString {
			return cloneTerm(rec), nil
		}
	}
	return nil, &NotFoundError{Resource: "term", Key: termString}
}

// List returns terms in insertion order, honouring the supplied options.
func (m *MemoryTermRepository) List(_ context.Context, opts ListOptions) ([]*Term, int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	matched := make([]*Term, 0, len(m.order))
	for _, id := range m.order {
		rec := m.terms[id]
		if rec == nil {
			continue
		}
		if !matchesListOptions(rec, opts) {
			continue
		}
		matched = append(matched, rec)
	}

	total := len(matched)
	if opts.Offset > 0 {
		if opts.Offset >= total {
			return []*Term{}, total, nil
		}
		matched = matched[opts.Offset:]
	}
	if opts.Limit > 0 && opts.Limit < len(matched) {
		matched = matched[:opts.Limit]
	}

	out := make([]*Term, 0, len(matched))
	for _, rec := range matched {
		out = append(out, cloneTerm(rec))
	}
	return out, total, nil
}

// Count reports the number of live terms.
func (m *MemoryTermRepository) Count(_ context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	total := 0
	for _, rec := range m.terms {
		if rec.DeletedAt == nil {
			total++
		}
	}
	return total, nil
}

// SearchContains returns live terms whose term string case-insensitively
// contains the needle, ordered by term string.
func (m *MemoryTermRepository) SearchContains(_ context.Context, needle string) ([]*Term, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	lowered := strings.ToLower(strings.TrimSpace(needle))
	out := []*Term{}
	for _, id := range m.order {
		rec := m.terms[id]
		if rec == nil || rec.DeletedAt != nil {
			continue
		}
		if strings.Contains(strings.ToLower(rec.TermString), lowered) {
			out = append(out, cloneTerm(rec))
		}
	}
	sortTermsByString(out)
	return out, nil
}

func matchesListOptions(rec *Term, opts ListOptions) bool {
	if !opts.IncludeDeleted && rec.DeletedAt != nil {
		return false
	}
	if len(opts.Statuses) == 0 {
		return true
	}
	for _, status := range opts.Statuses {
		if rec.Status == status {
			return true
		}
	}
	return false
}

func sortTermsByString(records []*Term) {
	sort.Slice(records, func(i, j int) bool {
		return records[i].TermString < records[j].TermString
	})
}

func cloneTerm(src *Term) *Term {
	if src == nil {
		return nil
	}

	copied := *src
	if len(src.Tags) > 0 {
		copied.Tags = append([]string(nil), src.Tags...)
	}
	if len(src.Metadata) > 0 {
		copied.Metadata = cloneMap(src.Metadata)
	}
	return &copied
}

func cloneMap(src map[string]any) map[string]any {
	if src == nil {
		return nil
	}
	copied := make(map[string]any, len(src))
	for key, value := range src {
		copied[key] = value
	}
	return copied
}
