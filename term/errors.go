package term

import (
	"errors"
	"fmt"
)

var (
	ErrTermStringRequired = errors.New("term: term string is required")
	ErrSlugRequired       = errors.New("term: slug is required")
	ErrSlugInvalid        = errors.New("term: slug contains invalid characters")
	ErrSlugExists         = errors.New("term: slug already exists")
	ErrTermExists         = errors.New("term: term string already exists")
	ErrTermIDRequired     = errors.New("term: term id required")
	ErrStatusInvalid      = errors.New("term: status invalid")
	ErrStatusTransition   = errors.New("term: status transition invalid")
	ErrMetadataInvalid    = errors.New("term: metadata invalid")
)

// NotFoundError captures lookups that matched no term.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
}

// IsNotFound reports whether err wraps a NotFoundError.
func IsNotFound(err error) bool {
	var notFound *NotFoundError
	return errors.As(err, &notFound)
}
