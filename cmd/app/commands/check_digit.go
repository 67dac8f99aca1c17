package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	luhnUseCase "github.com/allisson/luhn/internal/luhn/usecase"
)

// RunCheckDigit computes the check digit of a partial card number.
// A body without a check digit prints "Luhn check failed" and is not an error.
func RunCheckDigit(
	ctx context.Context,
	useCase luhnUseCase.LuhnUseCase,
	logger *slog.Logger,
	writer io.Writer,
	partial string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	result := useCase.CheckDigit(ctx, partial)

	logger.Debug("check digit computed", slog.Bool("found", result.Found()))

	if format == "json" {
		return writeJSON(writer, map[string]any{
			"partial":     partial,
			"check_digit": result.String(),
			"found":       result.Found(),
		})
	}

	_, err := fmt.Fprintln(writer, result.String())
	return err
}
