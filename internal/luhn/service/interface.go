// Package service implements the Luhn checksum and its consumers: validation,
// issuer classification, range counting and test number generation.
package service

import (
	"context"

	"github.com/allisson/luhn/internal/luhn/domain"
)

// Validator decides whether an arbitrary input is a valid card number.
type Validator interface {
	IsValid(text string) bool
	Explain(text string) domain.ValidationResult
}

// RangeCounter counts the valid numbers of a closed integer range.
type RangeCounter interface {
	Count(ctx context.Context, r domain.Range) (int64, error)
}

// NumberGenerator produces random numbers that pass validation for an issuer.
type NumberGenerator interface {
	Generate(issuer domain.Issuer) (string, error)
}
