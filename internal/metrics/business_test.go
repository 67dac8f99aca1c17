package metrics

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertBizMetricLine checks that the Prometheus output contains a business metric
// matching the given name, partial label pattern, and value. Uses regex to handle
// extra OTel scope labels injected by the Prometheus exporter.
func assertBizMetricLine(t *testing.T, output, name, labels, value string) {
	t.Helper()
	pattern := name + `\{[^}]*` + labels + `[^}]*\} ` + value
	assert.Regexp(t, pattern, output)
}

// exportText writes the provider's metrics to a temporary textfile and returns it.
func exportText(t *testing.T, provider *Provider) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "metrics.prom")
	require.NoError(t, provider.WriteTextfile(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(content)
}

func TestNewBusinessMetrics(t *testing.T) {
	provider, err := NewProvider()
	require.NoError(t, err)

	bm, err := NewBusinessMetrics(provider.MeterProvider(), "test_app")
	require.NoError(t, err)
	assert.NotNil(t, bm)
}

func TestBusinessMetrics_RecordNumbers(t *testing.T) {
	provider, err := NewProvider()
	require.NoError(t, err)

	bm, err := NewBusinessMetrics(provider.MeterProvider(), "numbers_test")
	require.NoError(t, err)

	ctx := context.Background()
	bm.RecordNumbers(ctx, "luhn", "count_range", 90)
	bm.RecordNumbers(ctx, "luhn", "count_range", 10)
	bm.RecordNumbers(ctx, "luhn", "generate", 0)

	output := exportText(t, provider)
	assertBizMetricLine(t, output, `numbers_test_valid_numbers_total`, `operation="count_range"`, `100`)
	assert.NotContains(t, output, `operation="generate"`)
}

func TestNewNoOpBusinessMetrics(t *testing.T) {
	noOpMetrics := NewNoOpBusinessMetrics()

	assert.IsType(t, &NoOpBusinessMetrics{}, noOpMetrics)

	t.Run("NoOp_DoesNotPanic", func(t *testing.T) {
		ctx := context.Background()
		noOpMetrics.RecordOperation(ctx, "luhn", "validate", "valid")
		noOpMetrics.RecordDuration(ctx, "luhn", "validate", time.Millisecond, "valid")
		noOpMetrics.RecordNumbers(ctx, "luhn", "count_range", 5)
	})
}

func TestBusinessMetrics_Integration(t *testing.T) {
	provider, err := NewProvider()
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	bm, err := NewBusinessMetrics(provider.MeterProvider(), "integration_test")
	require.NoError(t, err)

	ctx := context.Background()

	bm.RecordOperation(ctx, "luhn", "validate", "valid")
	bm.RecordOperation(ctx, "luhn", "validate", "valid")
	bm.RecordOperation(ctx, "luhn", "validate", "invalid")
	bm.RecordOperation(ctx, "luhn", "count_range", "error")

	bm.RecordDuration(ctx, "luhn", "validate", 5*time.Microsecond, "valid")
	bm.RecordDuration(ctx, "luhn", "validate", 7*time.Microsecond, "valid")
	bm.RecordDuration(ctx, "luhn", "count_range", 2*time.Second, "error")

	output := exportText(t, provider)

	assertBizMetricLine(
		t,
		output,
		`integration_test_operations_total`,
		`domain="luhn".*operation="validate".*status="valid"`,
		`2`,
	)
	assertBizMetricLine(
		t,
		output,
		`integration_test_operations_total`,
		`domain="luhn".*operation="validate".*status="invalid"`,
		`1`,
	)
	assertBizMetricLine(
		t,
		output,
		`integration_test_operations_total`,
		`domain="luhn".*operation="count_range".*status="error"`,
		`1`,
	)
	assertBizMetricLine(
		t,
		output,
		`integration_test_operation_duration_seconds_count`,
		`domain="luhn".*operation="validate".*status="valid"`,
		`2`,
	)
}
