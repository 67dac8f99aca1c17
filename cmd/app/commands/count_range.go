package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	luhnUseCase "github.com/allisson/luhn/internal/luhn/usecase"
)

// RunCountRange counts the valid card numbers between start and end inclusive.
// The scan honours ctx, so an interrupt stops it early with an error.
func RunCountRange(
	ctx context.Context,
	useCase luhnUseCase.LuhnUseCase,
	logger *slog.Logger,
	writer io.Writer,
	start, end string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	logger.Info("counting range", slog.String("start", start), slog.String("end", end))

	began := time.Now()
	count, err := useCase.CountRange(ctx, start, end)
	if err != nil {
		return fmt.Errorf("failed to count range: %w", err)
	}

	logger.Info("range counted",
		slog.Int64("count", count),
		slog.Duration("elapsed", time.Since(began)),
	)

	if format == "json" {
		return writeJSON(writer, map[string]any{
			"start": start,
			"end":   end,
			"count": count,
		})
	}

	_, err = fmt.Fprintf(writer, "%d valid number(s) between %s and %s\n", count, start, end)
	return err
}
