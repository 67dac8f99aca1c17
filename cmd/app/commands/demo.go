package commands

import (
	"context"
	"fmt"
	"io"

	luhnUseCase "github.com/allisson/luhn/internal/luhn/usecase"
)

// demoNumbers are well-known test numbers, one per issuer rule.
var demoNumbers = []string{
	"4444444444444448",
	"5500005555555559",
	"371449635398431",
	"36438936438936",
	"3566003566003566",
	"6011016011016011",
}

// RunDemo prints the results of a few canned calls of every operation.
func RunDemo(ctx context.Context, useCase luhnUseCase.LuhnUseCase, writer io.Writer) error {
	for _, number := range demoNumbers {
		if _, err := fmt.Fprintf(writer, "validate %s: %t\n", number, useCase.Validate(ctx, number).Valid); err != nil {
			return err
		}
	}

	for _, partial := range []string{"601101601101601", "1234567890355"} {
		if _, err := fmt.Fprintf(writer, "check-digit %s: %s\n", partial, useCase.CheckDigit(ctx, partial)); err != nil {
			return err
		}
	}

	issuer, ok := useCase.Classify(ctx, demoNumbers[2])
	name := "none"
	if ok {
		name = issuer.DisplayName()
	}
	if _, err := fmt.Fprintf(writer, "classify %s: %s\n", demoNumbers[2], name); err != nil {
		return err
	}

	count, err := useCase.CountRange(ctx, "5500005555555551", "5500005555555559")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(writer, "count-range 5500005555555551 5500005555555559: %d\n", count)
	return err
}
