package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	luhnUseCase "github.com/allisson/luhn/internal/luhn/usecase"
)

// RunGenerate prints count random test numbers for issuer.
func RunGenerate(
	ctx context.Context,
	useCase luhnUseCase.LuhnUseCase,
	logger *slog.Logger,
	writer io.Writer,
	issuer string,
	count int,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	numbers, err := useCase.Generate(ctx, &luhnUseCase.GenerateInput{Issuer: issuer, Count: count})
	if err != nil {
		return fmt.Errorf("failed to generate numbers: %w", err)
	}

	logger.Info("numbers generated", slog.String("issuer", issuer), slog.Int("count", len(numbers)))

	if format == "json" {
		return writeJSON(writer, map[string]any{
			"issuer":  issuer,
			"numbers": numbers,
		})
	}

	for _, number := range numbers {
		if _, err := fmt.Fprintln(writer, number); err != nil {
			return err
		}
	}
	return nil
}
