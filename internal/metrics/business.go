package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// BusinessMetrics records what the card number operations did.
type BusinessMetrics interface {
	// RecordOperation counts one operation with its status.
	// Operation examples: "validate", "check_digit", "count_range"
	// Status examples: "success", "error", "valid", "invalid"
	RecordOperation(ctx context.Context, domain, operation, status string)

	// RecordDuration records the duration of an operation in seconds as a histogram.
	RecordDuration(ctx context.Context, domain, operation string, duration time.Duration, status string)

	// RecordNumbers adds n to the count of valid numbers an operation produced,
	// such as the numbers found by a range scan or drawn by the generator.
	RecordNumbers(ctx context.Context, domain, operation string, n int64)
}

type businessMetrics struct {
	operationCounter metric.Int64Counter
	durationHisto    metric.Float64Histogram
	numbersCounter   metric.Int64Counter
}

// NewBusinessMetrics creates a BusinessMetrics backed by meters of meterProvider.
// The namespace parameter is used as a prefix for all metric names (e.g., "luhn").
func NewBusinessMetrics(meterProvider metric.MeterProvider, namespace string) (BusinessMetrics, error) {
	meter := meterProvider.Meter(namespace)

	operationCounter, err := meter.Int64Counter(
		fmt.Sprintf("%s_operations_total", namespace),
		metric.WithDescription("Total number of card number operations"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create operation counter: %w", err)
	}

	durationHisto, err := meter.Float64Histogram(
		fmt.Sprintf("%s_operation_duration_seconds", namespace),
		metric.WithDescription("Duration of card number operations in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create duration histogram: %w", err)
	}

	numbersCounter, err := meter.Int64Counter(
		fmt.Sprintf("%s_valid_numbers_total", namespace),
		metric.WithDescription("Valid card numbers found or generated"),
		metric.WithUnit("{number}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create numbers counter: %w", err)
	}

	return &businessMetrics{
		operationCounter: operationCounter,
		durationHisto:    durationHisto,
		numbersCounter:   numbersCounter,
	}, nil
}

func (b *businessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	b.operationCounter.Add(ctx, 1, withLabels(domain, operation, status))
}

func (b *businessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	b.durationHisto.Record(ctx, duration.Seconds(), withLabels(domain, operation, status))
}

func (b *businessMetrics) RecordNumbers(ctx context.Context, domain, operation string, n int64) {
	if n <= 0 {
		return
	}
	b.numbersCounter.Add(ctx, n, metric.WithAttributes(
		attribute.String("domain", domain),
		attribute.String("operation", operation),
	))
}

func withLabels(domain, operation, status string) metric.MeasurementOption {
	return metric.WithAttributes(
		attribute.String("domain", domain),
		attribute.String("operation", operation),
		attribute.String("status", status),
	)
}

// NoOpBusinessMetrics is a no-op implementation of BusinessMetrics for when metrics are disabled.
type NoOpBusinessMetrics struct{}

// NewNoOpBusinessMetrics creates a no-op BusinessMetrics implementation.
func NewNoOpBusinessMetrics() BusinessMetrics {
	return &NoOpBusinessMetrics{}
}

// RecordOperation does nothing.
func (n *NoOpBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {}

// RecordDuration does nothing.
func (n *NoOpBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
}

// RecordNumbers does nothing.
func (n *NoOpBusinessMetrics) RecordNumbers(ctx context.Context, domain, operation string, count int64) {}
