package termcmd

import (
	"context"
	"io/fs"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-glossary/internal/commands"
	"github.com/goliatone/go-glossary/internal/importer"
	"github.com/goliatone/go-glossary/internal/logging"
	"github.com/goliatone/go-glossary/internal/markdown"
	"github.com/goliatone/go-glossary/pkg/interfaces"
	"github.com/google/uuid"
)

const importGlossaryMessageType = "glossary.import"

// ImportGlossaryCommand requests a Markdown glossary import run.
type ImportGlossaryCommand struct {
	Filesystem fs.FS     `json:"-"`
	Pattern    string    `json:"pattern,omitempty"`
	Recursive  bool      `json:"recursive,omitempty"`
	DryRun     bool      `json:"dry_run,omitempty"`
	SkipDrafts bool      `json:"skip_drafts,omitempty"`
	AuthorID   uuid.UUID `json:"author_id"`
}

// Type implements command.Message.
func (ImportGlossaryCommand) Type() string { return importGlossaryMessageType }

// Validate ensures the command carries a source filesystem.
func (m ImportGlossaryCommand) Validate() error {
	errs := validation.Errors{}
	if m.Filesystem == nil {
		errs["filesystem"] = validation.NewError("glossary.import.filesystem_required", "filesystem is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ImportGlossaryHandler runs glossary imports through the importer using the
// shared command handler foundation.
type ImportGlossaryHandler struct {
	inner *commands.Handler[ImportGlossaryCommand]
}

// NewImportGlossaryHandler constructs a handler wired to the provided importer.
func NewImportGlossaryHandler(imp *importer.Importer, logger interfaces.Logger, opts ...commands.HandlerOption[ImportGlossaryCommand]) *ImportGlossaryHandler {
	exec := func(ctx context.Context, msg ImportGlossaryCommand) error {
		result, err := imp.ImportFS(ctx, msg.Filesystem, markdown.LoaderConfig{
			Pattern:   msg.Pattern,
			Recursive: msg.Recursive,
		}, importer.ImportOptions{
			DryRun:     msg.DryRun,
			SkipDrafts: msg.SkipDrafts,
			AuthorID:   msg.AuthorID,
		})
		if err != nil {
			return err
		}
		if runErr := result.Err(); runErr != nil {
			return runErr
		}

		logging.WithFields(commands.EnsureLogger(logger), map[string]any{
			"created": result.Created,
			"updated": result.Updated,
			"skipped": result.Skipped,
		}).Info("glossary.command.import.completed")
		return nil
	}

	handlerOpts := []commands.HandlerOption[ImportGlossaryCommand]{
		commands.WithLogger[ImportGlossaryCommand](logger),
		commands.WithOperation[ImportGlossaryCommand]("glossary.import"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ImportGlossaryHandler{
		inner: commands.NewHandler[ImportGlossaryCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[ImportGlossaryCommand].Execute.
func (h *ImportGlossaryHandler) Execute(ctx context.Context, msg ImportGlossaryCommand) error {
	return h.inner.Execute(ctx, msg)
}
