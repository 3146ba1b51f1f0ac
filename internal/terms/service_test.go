package terms_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goliatone/go-glossary/internal/terms"
	glossaryterm "github.com/goliatone/go-glossary/term"
	"github.com/google/uuid"
)

func newServiceWithStore(t *testing.T) (terms.Service, *terms.MemoryTermRepository) {
	t.Helper()
	store := terms.NewMemoryTermRepository()
	svc := terms.NewService(store, terms.WithClock(func() time.Time {
		return time.Unix(0, 0)
	}))
	return svc, store
}

func TestServiceCreateSuccess(t *testing.T) {
	svc, _ := newServiceWithStore(t)

	ctx := context.Background()
	created, err := svc.Create(ctx, terms.CreateTermRequest{
		TermString: "White ice",
		Definition: "Newly formed ice of high albedo.",
		Tags:       []string{"sea-ice"},
		CreatedBy:  uuid.New(),
		UpdatedBy:  uuid.New(),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if created.TermString != "White ice" {
		t.Fatalf("expected term string %q got %q", "White ice", created.TermString)
	}
	if created.Slug != "white-ice" {
		t.Fatalf("expected derived slug %q got %q", "white-ice", created.Slug)
	}
	if created.Status != glossaryterm.StatusVernacular {
		t.Fatalf("expected default status %q got %q", glossaryterm.StatusVernacular, created.Status)
	}
	if created.ID == uuid.Nil {
		t.Fatal("expected generated term id")
	}
}

func TestServiceCreateRequiresTermString(t *testing.T) {
	svc, _ := newServiceWithStore(t)

	_, err := svc.Create(context.Background(), terms.CreateTermRequest{TermString: "   "})
	if !errors.Is(err, glossaryterm.ErrTermStringRequired) {
		t.Fatalf("expected ErrTermStringRequired, got %v", err)
	}
}

func TestServiceCreateRejectsDuplicateSlug(t *testing.T) {
	svc, _ := newServiceWithStore(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, terms.CreateTermRequest{TermString: "Young ice"}); err != nil {
		t.Fatalf("seed create: %v", err)
	}

	_, err := svc.Create(ctx, terms.CreateTermRequest{TermString: "YOUNG ice", Slug: "young-ice"})
	if !errors.Is(err, glossaryterm.ErrSlugExists) {
		t.Fatalf("expected ErrSlugExists, got %v", err)
	}
}

func TestServiceCreateRejectsDuplicateTermString(t *testing.T) {
	svc, _ := newServiceWithStore(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, terms.CreateTermRequest{TermString: "Grease ice"}); err != nil {
		t.Fatalf("seed create: %v", err)
	}

	_, err := svc.Create(ctx, terms.CreateTermRequest{TermString: "Grease ice", Slug: "grease-ice-2"})
	if !errors.Is(err, glossaryterm.ErrTermExists) {
		t.Fatalf("expected ErrTermExists, got %v", err)
	}
}

func TestServiceCreateRejectsUnknownStatus(t *testing.T) {
	svc, _ := newServiceWithStore(t)

	_, err := svc.Create(context.Background(), terms.CreateTermRequest{
		TermString: "Pancake ice",
		Status:     glossaryterm.Status("pending"),
	})
	if !errors.Is(err, glossaryterm.ErrStatusInvalid) {
		t.Fatalf("expected ErrStatusInvalid, got %v", err)
	}
}

func TestServiceCreateRejectsInvalidMetadata(t *testing.T) {
	svc, _ := newServiceWithStore(t)

	_, err := svc.Create(context.Background(), terms.CreateTermRequest{
		TermString: "Frazil ice",
		Metadata: map[string]any{
			"see_also": "not-a-list",
		},
	})
	if !errors.Is(err, glossaryterm.ErrMetadataInvalid) {
		t.Fatalf("expected ErrMetadataInvalid, got %v", err)
	}
}

func TestServiceExists(t *testing.T) {
	svc, _ := newServiceWithStore(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, terms.CreateTermRequest{TermString: "White ice"}); err != nil {
		t.Fatalf("seed create: %v", err)
	}

	ok, err := svc.Exists(ctx, "White ice")
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if !ok {
		t.Fatal("expected White ice to exist")
	}

	ok, err = svc.Exists(ctx, "Black ice")
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if ok {
		t.Fatal("expected Black ice to be absent")
	}
}

func TestServiceExistsIsCaseSensitive(t *testing.T) {
	svc, _ := newServiceWithStore(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, terms.CreateTermRequest{TermString: "White ice"}); err != nil {
		t.Fatalf("seed create: %v", err)
	}

	ok, err := svc.Exists(ctx, "white ICE")
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if ok {
		t.Fatal("exact-match lookup must not fold case")
	}
}

func TestServiceCountMatchesRows(t *testing.T) {
	svc, _ := newServiceWithStore(t)
	ctx := context.Background()

	seeds := []string{"White ice", "Young ice", "Nilas"}
	for _, seed := range seeds {
		if _, err := svc.Create(ctx, terms.CreateTermRequest{TermString: seed}); err != nil {
			t.Fatalf("seed %q: %v", seed, err)
		}
	}

	total, err := svc.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if total != len(seeds) {
		t.Fatalf("expected count %d got %d", len(seeds), total)
	}
}

func TestServiceSearchIsCaseInsensitiveSuperset(t *testing.T) {
	svc, _ := newServiceWithStore(t)
	ctx := context.Background()

	seeds := []string{"White ice", "Young ICE", "Iceberg", "Nilas", "Polynya"}
	for _, seed := range seeds {
		if _, err := svc.Create(ctx, terms.CreateTermRequest{TermString: seed}); err != nil {
			t.Fatalf("seed %q: %v", seed, err)
		}
	}

	matches, err := svc.Search(ctx, "ice")
	if err != nil {
		t.Fatalf("search: %v", err)
	}

	found := map[string]bool{}
	for _, match := range matches {
		found[match.TermString] = true
	}
	for _, want := range []string{"White ice", "Young ICE", "Iceberg"} {
		if !found[want] {
			t.Fatalf("expected %q in search results, got %v", want, found)
		}
	}
	if found["Nilas"] || found["Polynya"] {
		t.Fatalf("unexpected non-matching rows in results: %v", found)
	}
}

func TestServiceListHonoursLimit(t *testing.T) {
	svc, _ := newServiceWithStore(t)
	ctx := context.Background()

	for _, seed := range []string{"a", "b", "c", "d"} {
		if _, err := svc.Create(ctx, terms.CreateTermRequest{TermString: seed}); err != nil {
			t.Fatalf("seed %q: %v", seed, err)
		}
	}

	records, total, err := svc.List(ctx, terms.ListOptions{Limit: 2})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 rows got %d", len(records))
	}
	if total != 4 {
		t.Fatalf("expected total 4 got %d", total)
	}
	if records[0].TermString != "a" || records[1].TermString != "b" {
		t.Fatalf("expected insertion order, got %q %q", records[0].TermString, records[1].TermString)
	}
}

func TestServiceUpdateStatusFollowsModerationLadder(t *testing.T) {
	svc, _ := newServiceWithStore(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, terms.CreateTermRequest{TermString: "Fast ice"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	promoted, err := svc.UpdateStatus(ctx, terms.UpdateTermStatusRequest{
		ID:     created.ID,
		Status: glossaryterm.StatusCanonical,
	})
	if err != nil {
		t.Fatalf("promote: %v", err)
	}
	if promoted.Status != glossaryterm.StatusCanonical {
		t.Fatalf("expected canonical got %q", promoted.Status)
	}

	_, err = svc.UpdateStatus(ctx, terms.UpdateTermStatusRequest{
		ID:     created.ID,
		Status: glossaryterm.StatusVernacular,
	})
	if !errors.Is(err, glossaryterm.ErrStatusTransition) {
		t.Fatalf("expected ErrStatusTransition, got %v", err)
	}
}

func TestServiceDeleteHidesTermFromLookups(t *testing.T) {
	svc, _ := newServiceWithStore(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, terms.CreateTermRequest{TermString: "Brash ice"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(ctx, created.ID, uuid.New()); err != nil {
		t.Fatalf("delete: %v", err)
	}

	ok, err := svc.Exists(ctx, "Brash ice")
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if ok {
		t.Fatal("soft-deleted term must not resolve by term string")
	}

	total, err := svc.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if total != 0 {
		t.Fatalf("expected count 0 after delete, got %d", total)
	}
}
