package terms

import (
	"context"
	"fmt"
	"strings"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	repositorycache "github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// BunTermRepository persists terms through go-repository-bun with optional
// read-through caching. Aggregate queries (count, substring search) go through
// bun directly because they do not map onto the generic repository contract.
type BunTermRepository struct {
	db   *bun.DB
	repo repository.Repository[*Term]
}

func NewBunTermRepository(db *bun.DB) *BunTermRepository {
	return NewBunTermRepositoryWithCache(db, nil, nil)
}

// NewBunTermRepositoryWithCache constructs a TermRepository with optional caching.
func NewBunTermRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, keySerializer cache.KeySerializer) *BunTermRepository {
	base := NewTermRepository(db)
	wrapped := wrapWithCache(base, cacheService, keySerializer)
	return &BunTermRepository{db: db, repo: wrapped}
}

func (r *BunTermRepository) Create(ctx context.Context, record *Term) (*Term, error) {
	created, err := r.repo.Create(ctx, record)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *BunTermRepository) Update(ctx context.Context, record *Term) (*Term, error) {
	updated, err := r.repo.Update(ctx, record,
		repository.UpdateByID(record.ID.String()),
		repository.UpdateColumns(
			"term_string",
			"slug",
			"definition",
			"definition_html",
			"examples",
			"status",
			"tags",
			"metadata",
			"updated_by",
			"updated_at",
			"deleted_at",
		),
	)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *BunTermRepository) GetByID(ctx context.Context, id uuid.UUID) (*Term, error) {
	result, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, "term", id.String())
	}
	return result, nil
}

func (r *BunTermRepository) GetBySlug(ctx context.Context, slug string) (*Term, error) {
	result, err := r.repo.GetByIdentifier(ctx, slug)
	if err != nil {
		return nil, mapRepositoryError(err, "term", slug)
	}
	return result, nil
}

// GetByTermString resolves a term by its exact, case-sensitive term string.
func (r *BunTermRepository) GetByTermString(ctx context.Context, termString string) (*Term, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.term_string = ?", termString)
		}),
		repository.SelectRawProcessor(excludeDeleted),
		repository.SelectPaginate(1, 0),
	)
	if err != nil {
		return nil, mapRepositoryError(err, "term", termString)
	}
	if len(records) == 0 {
		return nil, &NotFoundError{Resource: "term", Key: termString}
	}
	return records[0], nil
}

func (r *BunTermRepository) List(ctx context.Context, opts ListOptions) ([]*Term, int, error) {
	total, err := r.count(ctx, opts)
	if err != nil {
		return nil, 0, err
	}

	ordered := repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
		return applyListFilters(q, opts).Order("t.created_at ASC")
	})

	if opts.Limit > 0 || opts.Offset > 0 {
		limit := opts.Limit
		if limit <= 0 {
			limit = total
		}
		records, _, err := r.repo.List(ctx, ordered, repository.SelectPaginate(limit, opts.Offset))
		if err != nil {
			return nil, 0, err
		}
		return records, total, nil
	}

	records, _, err := r.repo.List(ctx, ordered)
	if err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

func (r *BunTermRepository) Count(ctx context.Context) (int, error) {
	return r.count(ctx, ListOptions{})
}

// SearchContains returns live terms whose term string contains the needle,
// compared case-insensitively.
func (r *BunTermRepository) SearchContains(ctx context.Context, needle string) ([]*Term, error) {
	like := "%" + strings.ToLower(strings.TrimSpace(needle)) + "%"
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("LOWER(?TableAlias.term_string) LIKE ?", like)
		}),
		repository.SelectRawProcessor(excludeDeleted),
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Order("t.term_string ASC")
		}),
	)
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *BunTermRepository) count(ctx context.Context, opts ListOptions) (int, error) {
	query := r.db.NewSelect().Model((*Term)(nil))
	query = applyListFilters(query, opts)
	total, err := query.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("term repository count: %w", err)
	}
	return total, nil
}

func applyListFilters(q *bun.SelectQuery, opts ListOptions) *bun.SelectQuery {
	if !opts.IncludeDeleted {
		q = excludeDeleted(q)
	}
	if statuses := opts.statusStrings(); len(statuses) > 0 {
		q = q.Where("t.status IN (?)", bun.In(statuses))
	}
	return q
}

func excludeDeleted(q *bun.SelectQuery) *bun.SelectQuery {
	return q.Where("t.deleted_at IS NULL")
}

func mapRepositoryError(err error, resource, key string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{
			Resource: resource,
			Key:      key,
		}
	}
	return fmt.Errorf("%s repository error: %w", resource, err)
}

func wrapWithCache[T any](base repository.Repository[T], cacheService cache.CacheService, keySerializer cache.KeySerializer) repository.Repository[T] {
	if cacheService == nil || keySerializer == nil {
		return base
	}
	return repositorycache.New(base, cacheService, keySerializer)
}
