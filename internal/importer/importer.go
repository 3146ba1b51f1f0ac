package importer

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/google/uuid"

	"github.com/goliatone/go-glossary/internal/identity"
	"github.com/goliatone/go-glossary/internal/logging"
	"github.com/goliatone/go-glossary/internal/markdown"
	"github.com/goliatone/go-glossary/internal/terms"
	"github.com/goliatone/go-glossary/pkg/interfaces"
	glossaryterm "github.com/goliatone/go-glossary/term"
)

var (
	ErrTermServiceRequired = errors.New("glossary importer: term service is required")
	ErrTermStringMissing   = errors.New("glossary importer: frontmatter term is required")
	ErrFilesystemRequired  = errors.New("glossary importer: filesystem is required")
)

// Config encapsulates the dependencies required to persist glossary documents.
// Filesystem and Loader seed the defaults used by Sync.
type Config struct {
	Terms      terms.Service
	Parser     interfaces.MarkdownParser
	Logger     interfaces.Logger
	Filesystem fs.FS
	Loader     markdown.LoaderConfig
}

// Importer turns parsed glossary documents into term records.
type Importer struct {
	terms  terms.Service
	parser interfaces.MarkdownParser
	logger interfaces.Logger
	fs     fs.FS
	loader markdown.LoaderConfig
}

// NewImporter builds an Importer from the supplied configuration.
func NewImporter(cfg Config) *Importer {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Importer{
		terms:  cfg.Terms,
		parser: cfg.Parser,
		logger: logger,
		fs:     cfg.Filesystem,
		loader: cfg.Loader,
	}
}

// ImportOptions controls a single import run.
type ImportOptions struct {
	// DryRun reports what would change without touching storage.
	DryRun bool
	// AuthorID stamps created and updated records.
	AuthorID uuid.UUID
	// SkipDrafts leaves documents marked draft untouched.
	SkipDrafts bool
}

// FileError pairs a document path with the failure it produced.
type FileError struct {
	Path string
	Err  error
}

func (e FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e FileError) Unwrap() error {
	return e.Err
}

// Result summarises an import run. Errors holds per-file failures; a partial
// run still reports the records it managed to apply.
type Result struct {
	Created int
	Updated int
	Skipped int
	TermIDs []uuid.UUID
	Errors  []FileError
}

// Err folds per-file failures into a single error, or nil when the run was clean.
func (r *Result) Err() error {
	if len(r.Errors) == 0 {
		return nil
	}
	collected := make([]error, 0, len(r.Errors))
	for _, fileErr := range r.Errors {
		collected = append(collected, fileErr)
	}
	return errors.Join(collected...)
}

// ImportDocument upserts a single glossary document.
func (i *Importer) ImportDocument(ctx context.Context, doc *interfaces.Document, opts ImportOptions) (*Result, error) {
	return i.ImportDocuments(ctx, []*interfaces.Document{doc}, opts)
}

// ImportDocuments upserts the supplied documents, accumulating per-file errors
// rather than aborting the run.
func (i *Importer) ImportDocuments(ctx context.Context, docs []*interfaces.Document, opts ImportOptions) (*Result, error) {
	if i.terms == nil {
		return nil, ErrTermServiceRequired
	}

	result := &Result{}
	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if err := i.applyDocument(ctx, doc, opts, result); err != nil {
			path := ""
			if doc != nil {
				path = doc.FilePath
			}
			result.Errors = append(result.Errors, FileError{Path: path, Err: err})
		}
	}

	i.logger.Info("glossary import complete",
		"created", result.Created,
		"updated", result.Updated,
		"skipped", result.Skipped,
		"failed", len(result.Errors),
	)

	return result, nil
}

// Sync imports glossary documents from the configured filesystem using the
// configured discovery settings.
func (i *Importer) Sync(ctx context.Context, opts ImportOptions) (*Result, error) {
	return i.ImportFS(ctx, i.fs, i.loader, opts)
}

// ImportFS discovers glossary files in the supplied filesystem and imports them.
func (i *Importer) ImportFS(ctx context.Context, filesystem fs.FS, cfg markdown.LoaderConfig, opts ImportOptions) (*Result, error) {
	if filesystem == nil {
		return nil, ErrFilesystemRequired
	}

	loader := markdown.NewLoader(filesystem, cfg)
	loaded, err := loader.LoadDirectory(ctx, ".", markdown.LoadParams{})
	if err != nil {
		return nil, fmt.Errorf("glossary importer: load documents: %w", err)
	}

	docs := make([]*interfaces.Document, 0, len(loaded))
	for _, item := range loaded {
		docs = append(docs, item.Document)
	}
	return i.ImportDocuments(ctx, docs, opts)
}

func (i *Importer) applyDocument(ctx context.Context, doc *interfaces.Document, opts ImportOptions, result *Result) error {
	if doc == nil {
		return errors.New("glossary importer: nil document")
	}

	termString := strings.TrimSpace(doc.FrontMatter.Term)
	if termString == "" {
		return ErrTermStringMissing
	}

	if opts.SkipDrafts && doc.FrontMatter.Draft {
		result.Skipped++
		return nil
	}

	slug := strings.TrimSpace(doc.FrontMatter.Slug)
	if slug == "" {
		derived, err := glossaryterm.NormalizeSlug(termString)
		if err != nil {
			return fmt.Errorf("glossary importer: derive slug for %q: %w", termString, err)
		}
		slug = derived
	}

	definition := string(doc.Body)
	definitionHTML, err := i.renderHTML(doc)
	if err != nil {
		return err
	}

	metadata := buildMetadata(doc)

	existing, err := i.terms.GetBySlug(ctx, slug)
	if err != nil && !glossaryterm.IsNotFound(err) {
		return fmt.Errorf("glossary importer: lookup %s: %w", slug, err)
	}

	if existing == nil {
		if opts.DryRun {
			result.Skipped++
			return nil
		}

		created, createErr := i.terms.Create(ctx, terms.CreateTermRequest{
			ID:             identity.TermUUID(slug),
			TermString:     termString,
			Slug:           slug,
			Definition:     definition,
			DefinitionHTML: definitionHTML,
			Examples:       optionalString(doc.FrontMatter.Examples),
			Status:         glossaryterm.Status(strings.TrimSpace(doc.FrontMatter.Status)),
			Tags:           doc.FrontMatter.Tags,
			Metadata:       metadata,
			CreatedBy:      opts.AuthorID,
			UpdatedBy:      opts.AuthorID,
		})
		if createErr != nil {
			return fmt.Errorf("glossary importer: create %s: %w", slug, createErr)
		}
		result.Created++
		result.TermIDs = append(result.TermIDs, created.ID)
		return nil
	}

	if !documentChanged(existing, termString, definition, definitionHTML) {
		result.Skipped++
		result.TermIDs = append(result.TermIDs, existing.ID)
		return nil
	}

	if opts.DryRun {
		result.Skipped++
		result.TermIDs = append(result.TermIDs, existing.ID)
		return nil
	}

	updated, updateErr := i.terms.Update(ctx, terms.UpdateTermRequest{
		ID:             existing.ID,
		TermString:     &termString,
		Definition:     &definition,
		DefinitionHTML: definitionHTML,
		Examples:       optionalString(doc.FrontMatter.Examples),
		Tags:           doc.FrontMatter.Tags,
		Metadata:       metadata,
		UpdatedBy:      opts.AuthorID,
	})
	if updateErr != nil {
		return fmt.Errorf("glossary importer: update %s: %w", slug, updateErr)
	}
	result.Updated++
	result.TermIDs = append(result.TermIDs, updated.ID)
	return nil
}

func (i *Importer) renderHTML(doc *interfaces.Document) (*string, error) {
	if i.parser == nil || len(doc.Body) == 0 {
		return nil, nil
	}
	rendered, err := i.parser.Parse(doc.Body)
	if err != nil {
		return nil, fmt.Errorf("glossary importer: render %s: %w", doc.FilePath, err)
	}
	html := string(rendered)
	return &html, nil
}

func buildMetadata(doc *interfaces.Document) map[string]any {
	metadata := map[string]any{}
	for key, value := range doc.FrontMatter.Custom {
		metadata[key] = value
	}
	metadata["source"] = doc.FilePath
	if author := strings.TrimSpace(doc.FrontMatter.Author); author != "" {
		metadata["attribution"] = author
	}
	return metadata
}

func documentChanged(existing *glossaryterm.Term, termString, definition string, definitionHTML *string) bool {
	if existing.TermString != termString {
		return true
	}
	if existing.Definition != definition {
		return true
	}
	if definitionHTML != nil {
		if existing.DefinitionHTML == nil || *existing.DefinitionHTML != *definitionHTML {
			return true
		}
	}
	return false
}

func optionalString(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
