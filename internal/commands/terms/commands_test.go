package termcmd_test

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	goerrors "github.com/goliatone/go-errors"
	termcmd "github.com/goliatone/go-glossary/internal/commands/terms"
	"github.com/goliatone/go-glossary/internal/importer"
	"github.com/goliatone/go-glossary/internal/terms"
	glossaryterm "github.com/goliatone/go-glossary/term"
	"github.com/google/uuid"
)

func newTermService(t *testing.T) terms.Service {
	t.Helper()
	return terms.NewService(terms.NewMemoryTermRepository())
}

func TestCreateTermCommandValidation(t *testing.T) {
	handler := termcmd.NewCreateTermHandler(newTermService(t), nil)

	err := handler.Execute(context.Background(), termcmd.CreateTermCommand{})
	if err == nil {
		t.Fatal("expected validation error for empty term string")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
}

func TestCreateTermCommandCreatesTerm(t *testing.T) {
	svc := newTermService(t)
	handler := termcmd.NewCreateTermHandler(svc, nil)

	err := handler.Execute(context.Background(), termcmd.CreateTermCommand{
		TermString: "White ice",
		CreatedBy:  uuid.New(),
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	ok, err := svc.Exists(context.Background(), "White ice")
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if !ok {
		t.Fatal("expected created term to exist")
	}
}

func TestUpdateTermStatusCommand(t *testing.T) {
	svc := newTermService(t)
	created, err := svc.Create(context.Background(), terms.CreateTermRequest{TermString: "Young ice"})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	handler := termcmd.NewUpdateTermStatusHandler(svc, nil)
	err = handler.Execute(context.Background(), termcmd.UpdateTermStatusCommand{
		TermID:    created.ID,
		Status:    string(glossaryterm.StatusCanonical),
		UpdatedBy: uuid.New(),
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	record, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if record.Status != glossaryterm.StatusCanonical {
		t.Fatalf("expected canonical status, got %q", record.Status)
	}
}

func TestUpdateTermStatusCommandRejectsBadTransition(t *testing.T) {
	svc := newTermService(t)
	created, err := svc.Create(context.Background(), terms.CreateTermRequest{
		TermString: "Nilas",
		Status:     glossaryterm.StatusArchived,
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	handler := termcmd.NewUpdateTermStatusHandler(svc, nil)
	err = handler.Execute(context.Background(), termcmd.UpdateTermStatusCommand{
		TermID:    created.ID,
		Status:    string(glossaryterm.StatusCanonical),
		UpdatedBy: uuid.New(),
	})
	if err == nil {
		t.Fatal("expected transition error")
	}
	if !errors.Is(err, glossaryterm.ErrStatusTransition) {
		t.Fatalf("expected ErrStatusTransition, got %v", err)
	}
}

func TestImportGlossaryCommand(t *testing.T) {
	svc := newTermService(t)
	imp := importer.NewImporter(importer.Config{Terms: svc})
	handler := termcmd.NewImportGlossaryHandler(imp, nil)

	fsys := fstest.MapFS{
		"white-ice.md": &fstest.MapFile{Data: []byte("---\nterm: White ice\n---\nDefinition body.\n")},
	}

	err := handler.Execute(context.Background(), termcmd.ImportGlossaryCommand{
		Filesystem: fsys,
		AuthorID:   uuid.New(),
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	total, err := svc.Count(context.Background())
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if total != 1 {
		t.Fatalf("expected 1 imported term, got %d", total)
	}
}

func TestImportGlossaryCommandRequiresFilesystem(t *testing.T) {
	imp := importer.NewImporter(importer.Config{Terms: newTermService(t)})
	handler := termcmd.NewImportGlossaryHandler(imp, nil)

	err := handler.Execute(context.Background(), termcmd.ImportGlossaryCommand{})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
}
