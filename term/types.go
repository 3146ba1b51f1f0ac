package term

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Term is the canonical record for a glossary entry.
type Term struct {
	bun.BaseModel `bun:"table:terms,alias:t"`

	ID             uuid.UUID      `bun:",pk,type:uuid" json:"id"`
	TermString     string         `bun:"term_string,notnull" json:"term_string"`
	Slug           string         `bun:"slug,notnull" json:"slug"`
	Definition     string         `bun:"definition" json:"definition"`
	DefinitionHTML *string        `bun:"definition_html" json:"definition_html,omitempty"`
	Examples       *string        `bun:"examples" json:"examples,omitempty"`
	Status         Status         `bun:"status,notnull,default:'vernacular'" json:"status"`
	Tags           []string       `bun:"tags,type:jsonb" json:"tags,omitempty"`
	Metadata       map[string]any `bun:"metadata,type:jsonb" json:"metadata,omitempty"`
	CreatedBy      uuid.UUID      `bun:"created_by,type:uuid" json:"created_by"`
	UpdatedBy      uuid.UUID      `bun:"updated_by,type:uuid" json:"updated_by"`
	DeletedAt      *time.Time     `bun:"deleted_at,nullzero" json:"deleted_at,omitempty"`
	CreatedAt      time.Time      `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt      time.Time      `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`

	Permalink string `bun:"-" json:"permalink,omitempty"`
}

// MetadataSchema captures the JSON schema used to validate term metadata payloads.
var MetadataSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"source": map[string]any{
			"type": []any{"string", "null"},
		},
		"see_also": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
		"attribution": map[string]any{
			"type": []any{"string", "null"},
		},
		"custom": map[string]any{
			"type":                 "object",
			"additionalProperties": true,
		},
	},
	"additionalProperties": true,
}
