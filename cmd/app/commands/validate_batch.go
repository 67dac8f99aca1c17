package commands

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	luhnUseCase "github.com/allisson/luhn/internal/luhn/usecase"
)

// BatchSummary totals a batch validation run.
type BatchSummary struct {
	Total   int `json:"total"`
	Valid   int `json:"valid"`
	Invalid int `json:"invalid"`
}

// RunValidateBatch reads one card number per line from reader and writes a
// result per line as it goes, followed by a summary. Blank lines are skipped and
// lines of any length are read whole.
// In json format every result and the summary is a single-line JSON object.
func RunValidateBatch(
	ctx context.Context,
	useCase luhnUseCase.LuhnUseCase,
	logger *slog.Logger,
	reader io.Reader,
	writer io.Writer,
	format string,
) (BatchSummary, error) {
	var summary BatchSummary
	if err := validateFormat(format); err != nil {
		return summary, err
	}

	encoder := json.NewEncoder(writer)
	lines := bufio.NewReader(reader)
	for {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		raw, readErr := lines.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return summary, fmt.Errorf("failed to read input: %w", readErr)
		}

		if line := strings.TrimSpace(raw); line != "" {
			result := useCase.Validate(ctx, line)
			summary.Total++
			if result.Valid {
				summary.Valid++
			} else {
				summary.Invalid++
			}

			o := newValidationOutput(line, result)
			var err error
			if format == "json" {
				err = encoder.Encode(o)
			} else {
				_, err = fmt.Fprintln(writer, o.text())
			}
			if err != nil {
				return summary, fmt.Errorf("failed to write result: %w", err)
			}
		}

		if readErr != nil {
			break
		}
	}

	logger.Info("batch validation completed",
		slog.Int("total", summary.Total),
		slog.Int("valid", summary.Valid),
		slog.Int("invalid", summary.Invalid),
	)

	if format == "json" {
		return summary, encoder.Encode(map[string]BatchSummary{"summary": summary})
	}

	_, err := fmt.Fprintf(writer, "%d number(s): %d valid, %d invalid\n", summary.Total, summary.Valid, summary.Invalid)
	return summary, err
}
