package commands

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/allisson/luhn/internal/luhn/domain"
	luhnMocks "github.com/allisson/luhn/internal/luhn/usecase/mocks"
)

func TestRunCheckDigit(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.DiscardHandler)

	t.Run("text-output", func(t *testing.T) {
		mockUseCase := &luhnMocks.MockLuhnUseCase{}
		mockUseCase.On("CheckDigit", ctx, "601101601101601").Return(domain.NewCheckDigit(1))

		var out bytes.Buffer
		err := RunCheckDigit(ctx, mockUseCase, logger, &out, "601101601101601", "text")

		require.NoError(t, err)
		require.Equal(t, "1\n", out.String())
		mockUseCase.AssertExpectations(t)
	})

	t.Run("no-check-digit", func(t *testing.T) {
		mockUseCase := &luhnMocks.MockLuhnUseCase{}
		mockUseCase.On("CheckDigit", ctx, "510510510510510").Return(domain.NoCheckDigit)

		var out bytes.Buffer
		err := RunCheckDigit(ctx, mockUseCase, logger, &out, "510510510510510", "text")

		require.NoError(t, err)
		require.Equal(t, "Luhn check failed\n", out.String())
	})

	t.Run("json-output", func(t *testing.T) {
		mockUseCase := &luhnMocks.MockLuhnUseCase{}
		mockUseCase.On("CheckDigit", ctx, "41111111111").Return(domain.NewCheckDigit(7))

		var out bytes.Buffer
		err := RunCheckDigit(ctx, mockUseCase, logger, &out, "41111111111", "json")

		require.NoError(t, err)
		require.Contains(t, out.String(), `"check_digit": "7"`)
		require.Contains(t, out.String(), `"found": true`)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("invalid-format", func(t *testing.T) {
		mockUseCase := &luhnMocks.MockLuhnUseCase{}
		err := RunCheckDigit(ctx, mockUseCase, logger, &bytes.Buffer{}, "41111111111", "xml")

		require.Error(t, err)
		mockUseCase.AssertNotCalled(t, "CheckDigit")
	})
}
