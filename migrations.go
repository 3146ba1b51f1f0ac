package glossary

import (
	"context"

	"github.com/goliatone/go-glossary/internal/migrations"
	"github.com/uptrace/bun"
)

// SetupSchema creates the glossary tables and indexes when missing. It is
// idempotent so hosts can run it on every start.
func SetupSchema(ctx context.Context, db *bun.DB) error {
	return migrations.Setup(ctx, db)
}
