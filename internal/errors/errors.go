// Package errors provides the sentinel errors shared by every luhn package.
// Domain packages wrap these so callers can classify a failure with errors.Is
// without knowing which layer produced it.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput indicates the input could not be interpreted, such as a range
	// bound that is not a decimal integer.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound indicates a lookup produced no result.
	ErrNotFound = errors.New("not found")
)

// Wrap wraps an error with additional context while preserving the error chain.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}
