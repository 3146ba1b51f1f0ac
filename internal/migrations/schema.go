// Package migrations provisions the glossary schema for hosts that do not
// bring their own migration tooling.
package migrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/goliatone/go-glossary/term"
)

var indexStatements = []string{
	"CREATE UNIQUE INDEX IF NOT EXISTS idx_terms_slug_unique ON terms(slug) WHERE deleted_at IS NULL",
	"CREATE INDEX IF NOT EXISTS idx_terms_term_string_ci ON terms(LOWER(term_string))",
	"CREATE INDEX IF NOT EXISTS idx_terms_status ON terms(status)",
}

// Setup creates the terms table and supporting indexes when missing. It is
// idempotent so hosts can run it on every start.
func Setup(ctx context.Context, db *bun.DB) error {
	if db == nil {
		return fmt.Errorf("migrations: database is required")
	}

	if _, err := db.NewCreateTable().Model((*term.Term)(nil)).IfNotExists().Exec(ctx); err != nil {
		return fmt.Errorf("migrations: create terms table: %w", err)
	}

	for _, stmt := range indexStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrations: %s: %w", stmt, err)
		}
	}

	return nil
}
