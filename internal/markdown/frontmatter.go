package markdown

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/adrg/frontmatter"

	"github.com/goliatone/go-glossary/pkg/interfaces"
)

// ParseFrontMatter extracts glossary metadata and the Markdown definition body
// from the provided source bytes. It returns the structured frontmatter, the
// body without delimiters, and any error encountered.
func ParseFrontMatter(source []byte) (interfaces.FrontMatter, []byte, error) {
	var meta frontMatterEnvelope

	reader := bytes.NewReader(source)
	body, err := frontmatter.Parse(reader, &meta)
	if err != nil {
		return interfaces.FrontMatter{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	return envelopeToFrontMatter(meta), body, nil
}

// BuildDocument assembles an interfaces.Document from the supplied file path,
// raw content, and modification time. BodyHTML is intentionally left empty so
// callers can render lazily.
func BuildDocument(path string, source []byte, modified time.Time) (*interfaces.Document, error) {
	frontMatter, body, err := ParseFrontMatter(source)
	if err != nil {
		return nil, err
	}

	checksum := sha256.Sum256(source)

	return &interfaces.Document{
		FilePath:     path,
		FrontMatter:  frontMatter,
		Body:         body,
		LastModified: modified,
		Checksum:     checksum[:],
	}, nil
}

type frontMatterEnvelope struct {
	Term     string         `yaml:"term"`
	Slug     string         `yaml:"slug"`
	Status   string         `yaml:"status"`
	Examples string         `yaml:"examples"`
	Tags     []string       `yaml:"tags"`
	Author   string         `yaml:"author"`
	Date     time.Time      `yaml:"date"`
	Draft    bool           `yaml:"draft"`
	Custom   map[string]any `yaml:",inline"`
}

func envelopeToFrontMatter(env frontMatterEnvelope) interfaces.FrontMatter {
	return interfaces.FrontMatter{
		Term:     env.Term,
		Slug:     env.Slug,
		Status:   env.Status,
		Examples: env.Examples,
		Tags:     append([]string(nil), env.Tags...),
		Author:   env.Author,
		Date:     env.Date,
		Draft:    env.Draft,
		Custom:   cloneMap(env.Custom),
	}
}

func cloneMap(input map[string]any) map[string]any {
	if input == nil {
		return map[string]any{}
	}

	out := make(map[string]any, len(input))
	for key, value := range input {
		out[key] = value
	}
	return out
}
