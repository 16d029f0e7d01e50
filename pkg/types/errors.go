package types

import (
	"errors"
	"fmt"
)

// Document and section errors.
var (
	ErrMalformedDocument = errors.New("malformed project document")
	ErrUnknownSection    = errors.New("unknown section")
)

// Entity construction errors.
var (
	ErrMissingAttribute = errors.New("missing required attribute")
	ErrInvalidAttribute = errors.New("invalid attribute value")
)

// ValidationError identifies the entity that failed validation. The
// validator is fail-fast, so this is always the first offender in
// registry order.
type ValidationError struct {
	Section Section
	Name    string
	Err     error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s/%s: %v", e.Section, e.Name, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
