// Package usecase exposes the public card number operations: validation, check
// digit generation, issuer classification, range counting and number generation.
package usecase

import (
	"context"

	"github.com/allisson/luhn/internal/luhn/domain"
)

// LuhnUseCase defines the card number operations offered to the CLI.
type LuhnUseCase interface {
	// Validate normalizes number and reports whether it is a valid card number.
	// Malformed input is reported as invalid, never as an error.
	Validate(ctx context.Context, number string) domain.ValidationResult

	// CheckDigit computes the check digit that completes partial. It returns
	// domain.NoCheckDigit when the weighted sum is already a multiple of 10.
	CheckDigit(ctx context.Context, partial string) domain.CheckResult

	// Classify returns the issuer whose numbering rule matches number.
	Classify(ctx context.Context, number string) (domain.Issuer, bool)

	// CountRange counts the valid numbers between start and end inclusive.
	// A bound that does not parse fails with *domain.ParseError. A start greater
	// than end counts 0.
	CountRange(ctx context.Context, start, end string) (int64, error)

	// Generate returns input.Count random valid numbers of input.Issuer.
	Generate(ctx context.Context, input *GenerateInput) ([]string, error)
}
