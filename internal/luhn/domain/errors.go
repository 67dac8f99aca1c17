package domain

import (
	"fmt"

	"github.com/allisson/luhn/internal/errors"
)

var (
	// ErrUnknownIssuer indicates an issuer name outside the fixed rule set.
	ErrUnknownIssuer = errors.Wrap(errors.ErrNotFound, "unknown issuer")

	// ErrInvalidPrefix indicates a generator prefix that cannot fit the issuer's length.
	ErrInvalidPrefix = errors.Wrap(errors.ErrInvalidInput, "invalid number prefix")
)

// ParseError reports a range bound that is not a decimal integer in the int64 range.
type ParseError struct {
	Field string
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %s %q: %v", e.Field, e.Input, e.Err)
}

// Unwrap returns the underlying strconv error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is lets callers match a ParseError against errors.ErrInvalidInput.
func (e *ParseError) Is(target error) bool {
	return target == errors.ErrInvalidInput
}
