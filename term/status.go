package term

import (
	"fmt"
	"strings"
)

// Status represents the moderation state of a glossary term.
type Status string

const (
	// StatusVernacular marks a freshly contributed term awaiting review.
	StatusVernacular Status = "vernacular"
	// StatusCanonical marks a term promoted by the moderation process.
	StatusCanonical Status = "canonical"
	// StatusDeprecated marks a term that reviewers rejected or superseded.
	StatusDeprecated Status = "deprecated"
	// StatusArchived marks a term removed from the active vocabulary.
	StatusArchived Status = "archived"
)

// DefaultStatus is assigned when a term is created without an explicit status.
const DefaultStatus = StatusVernacular

// String renders the persisted status value.
func (s Status) String() string {
	return string(s)
}

// IsValid reports whether the status is one of the known moderation states.
func (s Status) IsValid() bool {
	switch s {
	case StatusVernacular, StatusCanonical, StatusDeprecated, StatusArchived:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether the moderation ladder allows moving to next.
// Any state may be archived; archived terms are terminal.
func (s Status) CanTransitionTo(next Status) bool {
	if s == next {
		return false
	}
	if next == StatusArchived {
		return s != StatusArchived
	}
	switch s {
	case StatusVernacular:
		return next == StatusCanonical || next == StatusDeprecated
	case StatusCanonical:
		return next == StatusDeprecated
	default:
		return false
	}
}

// ParseStatus coerces arbitrary input into a known status value.
func ParseStatus(input string) (Status, error) {
	normalized := Status(strings.ToLower(strings.TrimSpace(input)))
	if normalized == "" {
		return DefaultStatus, nil
	}
	if !normalized.IsValid() {
		return "", fmt.Errorf("%w: %s", ErrStatusInvalid, input)
	}
	return normalized, nil
}
