package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	luhnUseCase "github.com/allisson/luhn/internal/luhn/usecase"
)

// classification is the rendering of one issuer lookup. Issuer is null in JSON
// when no rule matched.
type classification struct {
	Input  string  `json:"input"`
	Issuer *string `json:"issuer"`
	Name   string  `json:"name,omitempty"`
}

// RunClassify prints the issuer of each number, or "none".
func RunClassify(
	ctx context.Context,
	useCase luhnUseCase.LuhnUseCase,
	logger *slog.Logger,
	writer io.Writer,
	numbers []string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}
	if len(numbers) == 0 {
		return fmt.Errorf("at least one card number is required")
	}

	results := make([]classification, 0, len(numbers))
	for _, number := range numbers {
		c := classification{Input: number}
		if issuer, ok := useCase.Classify(ctx, number); ok {
			id := issuer.String()
			c.Issuer = &id
			c.Name = issuer.DisplayName()
		}
		results = append(results, c)
	}

	logger.Debug("classification completed", slog.Int("numbers", len(numbers)))

	if format == "json" {
		return writeJSON(writer, map[string]any{"results": results})
	}

	for _, c := range results {
		name := "none"
		if c.Issuer != nil {
			name = c.Name
		}
		if _, err := fmt.Fprintf(writer, "%s: %s\n", c.Input, name); err != nil {
			return err
		}
	}
	return nil
}
