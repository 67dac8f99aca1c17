package usecase

import (
	"context"
	"log/slog"

	apperrors "github.com/allisson/luhn/internal/errors"
	"github.com/allisson/luhn/internal/luhn/domain"
	"github.com/allisson/luhn/internal/luhn/service"
)

// luhnUseCase implements LuhnUseCase on top of the luhn services.
type luhnUseCase struct {
	validator    service.Validator
	rangeCounter service.RangeCounter
	generator    service.NumberGenerator
	logger       *slog.Logger
}

// NewLuhnUseCase creates a new LuhnUseCase.
func NewLuhnUseCase(
	validator service.Validator,
	rangeCounter service.RangeCounter,
	generator service.NumberGenerator,
	logger *slog.Logger,
) LuhnUseCase {
	return &luhnUseCase{
		validator:    validator,
		rangeCounter: rangeCounter,
		generator:    generator,
		logger:       logger,
	}
}

// Validate reports whether number is a valid card number.
func (l *luhnUseCase) Validate(ctx context.Context, number string) domain.ValidationResult {
	result := l.validator.Explain(number)

	l.logger.DebugContext(ctx, "number validated",
		slog.String("number", result.Masked()),
		slog.Bool("valid", result.Valid),
		slog.String("reason", string(result.Reason)),
	)

	return result
}

// CheckDigit computes the check digit for the digits of partial.
func (l *luhnUseCase) CheckDigit(ctx context.Context, partial string) domain.CheckResult {
	return service.CheckDigit(domain.Normalize(partial))
}

// Classify returns the issuer of number.
func (l *luhnUseCase) Classify(ctx context.Context, number string) (domain.Issuer, bool) {
	return service.Classify(number)
}

// CountRange parses both bounds and counts the valid numbers between them.
func (l *luhnUseCase) CountRange(ctx context.Context, start, end string) (int64, error) {
	r, err := domain.ParseRange(start, end)
	if err != nil {
		return 0, err
	}

	if r.Empty() {
		l.logger.WarnContext(ctx, "range start is greater than end, nothing to count",
			slog.Int64("start", r.Start),
			slog.Int64("end", r.End),
		)
		return 0, nil
	}

	count, err := l.rangeCounter.Count(ctx, r)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to count range")
	}

	return count, nil
}

// Generate validates input and draws the requested amount of numbers.
func (l *luhnUseCase) Generate(ctx context.Context, input *GenerateInput) ([]string, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	issuer, err := domain.ParseIssuer(input.Issuer)
	if err != nil {
		return nil, err
	}

	numbers := make([]string, 0, input.Count)
	for i := 0; i < input.Count; i++ {
		number, err := l.generator.Generate(issuer)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to generate number")
		}
		numbers = append(numbers, number)
	}

	return numbers, nil
}
