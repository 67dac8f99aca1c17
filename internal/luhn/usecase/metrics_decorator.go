package usecase

import (
	"context"
	"time"

	"github.com/allisson/luhn/internal/luhn/domain"
	"github.com/allisson/luhn/internal/metrics"
)

const metricsDomain = "luhn"

// luhnUseCaseWithMetrics decorates LuhnUseCase with metrics instrumentation.
type luhnUseCaseWithMetrics struct {
	next    LuhnUseCase
	metrics metrics.BusinessMetrics
}

// NewLuhnUseCaseWithMetrics wraps a LuhnUseCase with metrics recording.
func NewLuhnUseCaseWithMetrics(useCase LuhnUseCase, m metrics.BusinessMetrics) LuhnUseCase {
	return &luhnUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Validate records metrics for validations. The status is "valid" or "invalid".
func (l *luhnUseCaseWithMetrics) Validate(ctx context.Context, number string) domain.ValidationResult {
	start := time.Now()
	result := l.next.Validate(ctx, number)

	status := "valid"
	if !result.Valid {
		status = "invalid"
	}

	l.record(ctx, "validate", start, status)
	return result
}

// CheckDigit records metrics for check digit generation. The status is "success"
// or "no_check_digit".
func (l *luhnUseCaseWithMetrics) CheckDigit(ctx context.Context, partial string) domain.CheckResult {
	start := time.Now()
	result := l.next.CheckDigit(ctx, partial)

	status := "success"
	if !result.Found() {
		status = "no_check_digit"
	}

	l.record(ctx, "check_digit", start, status)
	return result
}

// Classify records metrics for issuer classification. The status is "matched"
// or "unmatched".
func (l *luhnUseCaseWithMetrics) Classify(ctx context.Context, number string) (domain.Issuer, bool) {
	start := time.Now()
	issuer, ok := l.next.Classify(ctx, number)

	status := "matched"
	if !ok {
		status = "unmatched"
	}

	l.record(ctx, "classify", start, status)
	return issuer, ok
}

// CountRange records metrics for range counting operations.
func (l *luhnUseCaseWithMetrics) CountRange(ctx context.Context, startRange, endRange string) (int64, error) {
	start := time.Now()
	count, err := l.next.CountRange(ctx, startRange, endRange)

	l.record(ctx, "count_range", start, errorStatus(err))
	l.metrics.RecordNumbers(ctx, metricsDomain, "count_range", count)
	return count, err
}

// Generate records metrics for number generation operations.
func (l *luhnUseCaseWithMetrics) Generate(ctx context.Context, input *GenerateInput) ([]string, error) {
	start := time.Now()
	numbers, err := l.next.Generate(ctx, input)

	l.record(ctx, "generate", start, errorStatus(err))
	l.metrics.RecordNumbers(ctx, metricsDomain, "generate", int64(len(numbers)))
	return numbers, err
}

func (l *luhnUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, status string) {
	l.metrics.RecordOperation(ctx, metricsDomain, operation, status)
	l.metrics.RecordDuration(ctx, metricsDomain, operation, time.Since(start), status)
}

func errorStatus(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
