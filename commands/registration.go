// Package commands exposes the glossary command handlers to host
// applications so they can be registered with CLI, cron, or dispatcher
// integrations.
package commands

import (
	"errors"

	glossarycmd "github.com/goliatone/go-glossary/internal/commands"
	termcmd "github.com/goliatone/go-glossary/internal/commands/terms"
	"github.com/goliatone/go-glossary/internal/di"
	"github.com/goliatone/go-glossary/pkg/interfaces"
)

// CommandRegistry records command handlers so hosts can expose them via CLI or cron.
type CommandRegistry interface {
	RegisterCommand(handler any) error
}

// CommandDispatcher subscribes command handlers to a dispatcher implementation.
type CommandDispatcher interface {
	RegisterCommand(handler any) (CommandSubscription, error)
}

// CommandSubscription allows hosts to tear down dispatcher subscriptions.
type CommandSubscription interface {
	Unsubscribe()
}

// RegistrationOptions configures how handlers are registered during construction.
type RegistrationOptions struct {
	Registry       CommandRegistry
	Dispatcher     CommandDispatcher
	LoggerProvider interfaces.LoggerProvider
}

// RegistrationResult captures the constructed command handlers and any dispatcher subscriptions.
type RegistrationResult struct {
	Handlers      []any
	Subscriptions []CommandSubscription
}

// RegisterContainerCommands builds the command handlers exposed by the provided
// container and optionally registers them with registry/dispatcher integrations.
func RegisterContainerCommands(container *di.Container, opts RegistrationOptions) (*RegistrationResult, error) {
	if container == nil {
		return &RegistrationResult{}, nil
	}

	cfg := container.Config

	provider := opts.LoggerProvider
	if provider == nil {
		provider = container.LoggerProvider()
	}

	result := &RegistrationResult{
		Handlers:      make([]any, 0),
		Subscriptions: make([]CommandSubscription, 0),
	}

	var errs error

	register := func(handler any) {
		if handler == nil {
			return
		}
		result.Handlers = append(result.Handlers, handler)

		if opts.Registry != nil {
			if err := opts.Registry.RegisterCommand(handler); err != nil {
				errs = errors.Join(errs, err)
			}
		}

		if opts.Dispatcher != nil {
			subscription, err := opts.Dispatcher.RegisterCommand(handler)
			if err != nil {
				errs = errors.Join(errs, err)
			} else if subscription != nil {
				result.Subscriptions = append(result.Subscriptions, subscription)
			}
		}
	}

	loggerFor := func(module string) interfaces.Logger {
		return glossarycmd.CommandLogger(provider, module)
	}

	// Term commands.
	if service := container.TermService(); service != nil {
		termsLogger := loggerFor("terms")
		register(termcmd.NewCreateTermHandler(service, termsLogger))
		register(termcmd.NewUpdateTermStatusHandler(service, termsLogger))
	}

	// Markdown import commands.
	if imp := container.Importer(); imp != nil && cfg.Features.Markdown {
		register(termcmd.NewImportGlossaryHandler(imp, loggerFor("import")))
	}

	return result, errs
}
