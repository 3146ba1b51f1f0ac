package terms

import glossaryterm "github.com/goliatone/go-glossary/term"

type (
	Term          = glossaryterm.Term
	Status        = glossaryterm.Status
	NotFoundError = glossaryterm.NotFoundError
)

var TermMetadataSchema = glossaryterm.MetadataSchema
