package termcmd

import (
	"context"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-glossary/internal/commands"
	"github.com/goliatone/go-glossary/internal/logging"
	"github.com/goliatone/go-glossary/internal/terms"
	"github.com/goliatone/go-glossary/pkg/interfaces"
	glossaryterm "github.com/goliatone/go-glossary/term"
	"github.com/google/uuid"
)

const createTermMessageType = "glossary.term.create"

// CreateTermCommand requests creation of a glossary term.
type CreateTermCommand struct {
	TermString string         `json:"term_string"`
	Slug       string         `json:"slug,omitempty"`
	Definition string         `json:"definition,omitempty"`
	Examples   string         `json:"examples,omitempty"`
	Status     string         `json:"status,omitempty"`
	Tags       []string       `json:"tags,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	CreatedBy  uuid.UUID      `json:"created_by"`
}

// Type implements command.Message.
func (CreateTermCommand) Type() string { return createTermMessageType }

// Validate ensures the command carries the required fields.
func (m CreateTermCommand) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(m.TermString) == "" {
		errs["term_string"] = validation.NewError("glossary.term.create.term_string_required", "term_string is required")
	}
	if m.Status != "" && !glossaryterm.Status(m.Status).IsValid() {
		errs["status"] = validation.NewError("glossary.term.create.status_invalid", "status is not a recognised moderation state")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CreateTermHandler creates terms through the term service using the shared
// command handler foundation.
type CreateTermHandler struct {
	inner *commands.Handler[CreateTermCommand]
}

// NewCreateTermHandler constructs a handler wired to the provided term service.
func NewCreateTermHandler(service terms.Service, logger interfaces.Logger, opts ...commands.HandlerOption[CreateTermCommand]) *CreateTermHandler {
	exec := func(ctx context.Context, msg CreateTermCommand) error {
		req := terms.CreateTermRequest{
			TermString: msg.TermString,
			Slug:       msg.Slug,
			Definition: msg.Definition,
			Status:     glossaryterm.Status(msg.Status),
			Tags:       msg.Tags,
			Metadata:   msg.Metadata,
			CreatedBy:  msg.CreatedBy,
			UpdatedBy:  msg.CreatedBy,
		}
		if examples := strings.TrimSpace(msg.Examples); examples != "" {
			req.Examples = &examples
		}

		created, err := service.Create(ctx, req)
		if err != nil {
			return err
		}

		logging.WithFields(commands.EnsureLogger(logger), map[string]any{
			"term_id": created.ID,
			"slug":    created.Slug,
		}).Info("glossary.command.create.completed")
		return nil
	}

	handlerOpts := []commands.HandlerOption[CreateTermCommand]{
		commands.WithLogger[CreateTermCommand](logger),
		commands.WithOperation[CreateTermCommand]("term.create"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &CreateTermHandler{
		inner: commands.NewHandler[CreateTermCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[CreateTermCommand].Execute.
func (h *CreateTermHandler) Execute(ctx context.Context, msg CreateTermCommand) error {
	return h.inner.Execute(ctx, msg)
}
