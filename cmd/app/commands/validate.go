package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/allisson/luhn/internal/luhn/domain"
	luhnUseCase "github.com/allisson/luhn/internal/luhn/usecase"
)

// validationOutput is the rendering of one validation.
type validationOutput struct {
	Input  string `json:"input"`
	Number string `json:"number"`
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
	Issuer string `json:"issuer,omitempty"`
}

func newValidationOutput(input string, result domain.ValidationResult) validationOutput {
	return validationOutput{
		Input:  input,
		Number: result.Normalized.String(),
		Valid:  result.Valid,
		Reason: string(result.Reason),
		Issuer: string(result.Issuer),
	}
}

// text renders the validation as a single line.
func (o validationOutput) text() string {
	if !o.Valid {
		return fmt.Sprintf("%s: invalid (%s)", o.Input, o.Reason)
	}
	if o.Issuer != "" {
		return fmt.Sprintf("%s: valid (%s)", o.Input, domain.Issuer(o.Issuer).DisplayName())
	}
	return fmt.Sprintf("%s: valid", o.Input)
}

// RunValidate validates each number and writes one result per number.
// Invalid numbers are reported, not returned as errors.
func RunValidate(
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

	outputs := make([]validationOutput, 0, len(numbers))
	valid := 0
	for _, number := range numbers {
		result := useCase.Validate(ctx, number)
		if result.Valid {
			valid++
		}
		outputs = append(outputs, newValidationOutput(number, result))
	}

	logger.Info("validation completed",
		slog.Int("numbers", len(numbers)),
		slog.Int("valid", valid),
	)

	if format == "json" {
		return writeJSON(writer, map[string]any{"results": outputs})
	}

	for _, o := range outputs {
		if _, err := fmt.Fprintln(writer, o.text()); err != nil {
			return err
		}
	}
	return nil
}
