package service

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/luhn/internal/luhn/domain"
)

// acceptAllValidator accepts every candidate.
type acceptAllValidator struct{}

func (acceptAllValidator) IsValid(string) bool { return true }

func (acceptAllValidator) Explain(string) domain.ValidationResult {
	return domain.ValidationResult{Valid: true}
}

// stringValidator hides IsValidDigits so the counter formats every candidate
// as a string.
type stringValidator struct {
	Validator
}

func TestRangeCounter_Count(t *testing.T) {
	tests := []struct {
		name          string
		start         int64
		end           int64
		requireIssuer bool
		expected      int64
	}{
		{name: "Success_MasterCardWindow", start: 5500005555555551, end: 5500005555555559, expected: 1},
		{
			name:          "Success_MasterCardWindowWithIssuer",
			start:         5500005555555551,
			end:           5500005555555559,
			requireIssuer: true,
			expected:      1,
		},
		{name: "Success_SingleValid", start: 4444444444444448, end: 4444444444444448, expected: 1},
		{name: "Success_SingleInvalid", start: 4444444444444449, end: 4444444444444449, expected: 0},
		{name: "Success_ThousandVisa", start: 4111111111111100, end: 4111111111112099, expected: 90},
		{
			name:          "Success_ThousandVisaWithIssuer",
			start:         4111111111111100,
			end:           4111111111112099,
			requireIssuer: true,
			expected:      90,
		},
		{name: "Success_Thousand13Digits", start: 1000000000000, end: 1000000000999, expected: 90},
		{
			name:          "Success_Thousand13DigitsWithIssuer",
			start:         1000000000000,
			end:           1000000000999,
			requireIssuer: true,
			expected:      0,
		},
		{name: "Success_TooShort", start: 0, end: 999, expected: 0},
		{name: "Empty_Reversed", start: 5500005555555559, end: 5500005555555551, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counter := NewRangeCounter(NewValidator(tt.requireIssuer), 4, 64)

			count, err := counter.Count(context.Background(), domain.Range{Start: tt.start, End: tt.end})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, count)
		})
	}
}

func TestRangeCounter_ChunkingIsExhaustive(t *testing.T) {
	r := domain.Range{Start: -50, End: 1000}

	for _, chunkSize := range []uint64{1, 7, 64, 1051, 5000} {
		for _, workers := range []int{1, 3, 16} {
			counter := NewRangeCounter(acceptAllValidator{}, workers, chunkSize)

			count, err := counter.Count(context.Background(), r)
			require.NoError(t, err)
			assert.Equal(t, int64(1051), count, "chunk %d workers %d", chunkSize, workers)
		}
	}
}

func TestRangeCounter_Int64Bounds(t *testing.T) {
	counter := NewRangeCounter(acceptAllValidator{}, 2, 3)

	count, err := counter.Count(context.Background(), domain.Range{Start: math.MaxInt64 - 9, End: math.MaxInt64})
	require.NoError(t, err)
	assert.Equal(t, int64(10), count)

	count, err = counter.Count(context.Background(), domain.Range{Start: math.MinInt64, End: math.MinInt64 + 4})
	require.NoError(t, err)
	assert.Equal(t, int64(5), count)
}

func TestRangeCounter_InvalidSettings(t *testing.T) {
	counter := NewRangeCounter(NewValidator(false), 0, 0)

	count, err := counter.Count(context.Background(), domain.Range{Start: 5500005555555551, End: 5500005555555559})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestRangeCounter_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	counter := NewRangeCounter(NewValidator(false), 4, 1024)

	count, err := counter.Count(ctx, domain.Range{Start: 0, End: math.MaxInt64})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int64(0), count)
}

func TestRangeCounter_DigitPathMatchesStringPath(t *testing.T) {
	ranges := []domain.Range{
		{Start: 4111111111111100, End: 4111111111112099},
		{Start: -5500005555556559, End: -5500005555555551},
		{Start: -999, End: 999},
	}

	for _, requireIssuer := range []bool{false, true} {
		v := NewValidator(requireIssuer)
		for _, r := range ranges {
			fast, err := NewRangeCounter(v, 4, 128).Count(context.Background(), r)
			require.NoError(t, err)

			slow, err := NewRangeCounter(stringValidator{v}, 4, 128).Count(context.Background(), r)
			require.NoError(t, err)

			assert.Equal(t, slow, fast, "range %d..%d requireIssuer=%t", r.Start, r.End, requireIssuer)
		}
	}
}
