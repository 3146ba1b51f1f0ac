package termcmd

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-glossary/internal/commands"
	"github.com/goliatone/go-glossary/internal/logging"
	"github.com/goliatone/go-glossary/internal/terms"
	"github.com/goliatone/go-glossary/pkg/interfaces"
	glossaryterm "github.com/goliatone/go-glossary/term"
	"github.com/google/uuid"
)

const updateTermStatusMessageType = "glossary.term.status.update"

// UpdateTermStatusCommand moves a term along the moderation ladder.
type UpdateTermStatusCommand struct {
	TermID    uuid.UUID `json:"term_id"`
	Status    string    `json:"status"`
	UpdatedBy uuid.UUID `json:"updated_by"`
}

// Type implements command.Message.
func (UpdateTermStatusCommand) Type() string { return updateTermStatusMessageType }

// Validate ensures the command carries the required identifiers.
func (m UpdateTermStatusCommand) Validate() error {
	errs := validation.Errors{}
	if m.TermID == uuid.Nil {
		errs["term_id"] = validation.NewError("glossary.term.status.update.term_id_required", "term_id is required")
	}
	if !glossaryterm.Status(m.Status).IsValid() {
		errs["status"] = validation.NewError("glossary.term.status.update.status_invalid", "status is not a recognised moderation state")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateTermStatusHandler applies moderation transitions via the term service
// using the shared command handler foundation.
type UpdateTermStatusHandler struct {
	inner *commands.Handler[UpdateTermStatusCommand]
}

// NewUpdateTermStatusHandler constructs a handler wired to the provided term service.
func NewUpdateTermStatusHandler(service terms.Service, logger interfaces.Logger, opts ...commands.HandlerOption[UpdateTermStatusCommand]) *UpdateTermStatusHandler {
	exec := func(ctx context.Context, msg UpdateTermStatusCommand) error {
		updated, err := service.UpdateStatus(ctx, terms.UpdateTermStatusRequest{
			ID:        msg.TermID,
			Status:    glossaryterm.Status(msg.Status),
			UpdatedBy: msg.UpdatedBy,
		})
		if err != nil {
			return err
		}

		logging.WithFields(commands.EnsureLogger(logger), map[string]any{
			"term_id": updated.ID,
			"status":  updated.Status.String(),
		}).Info("glossary.command.status.completed")
		return nil
	}

	handlerOpts := []commands.HandlerOption[UpdateTermStatusCommand]{
		commands.WithLogger[UpdateTermStatusCommand](logger),
		commands.WithOperation[UpdateTermStatusCommand]("term.status.update"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &UpdateTermStatusHandler{
		inner: commands.NewHandler[UpdateTermStatusCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[UpdateTermStatusCommand].Execute.
func (h *UpdateTermStatusHandler) Execute(ctx context.Context, msg UpdateTermStatusCommand) error {
	return h.inner.Execute(ctx, msg)
}
