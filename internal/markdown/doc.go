// Package markdown implements glossary ingestion from Markdown files: parsing
// and metadata extraction, filesystem discovery, and HTML rendering of term
// definitions.
package markdown
