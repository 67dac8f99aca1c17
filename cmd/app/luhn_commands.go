package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/allisson/luhn/cmd/app/commands"
	"github.com/allisson/luhn/internal/app"
)

func getLuhnCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:      "validate",
			Usage:     "Validate card numbers against the Luhn checksum",
			ArgsUsage: "<number> [number...]",
			Flags:     []cli.Flag{formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withContainer(ctx, func(container *app.Container) error {
					useCase, err := container.LuhnUseCase()
					if err != nil {
						return err
					}
					return commands.RunValidate(
						ctx,
						useCase,
						container.Logger(),
						commands.DefaultIO().Writer,
						cmd.Args().Slice(),
						cmd.String("format"),
					)
				})
			},
		},
		{
			Name:      "check-digit",
			Usage:     "Compute the check digit for a partial card number",
			ArgsUsage: "<partial>",
			Flags:     []cli.Flag{formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				if cmd.Args().Len() != 1 {
					return fmt.Errorf("exactly one partial number is required")
				}
				return withContainer(ctx, func(container *app.Container) error {
					useCase, err := container.LuhnUseCase()
					if err != nil {
						return err
					}
					return commands.RunCheckDigit(
						ctx,
						useCase,
						container.Logger(),
						commands.DefaultIO().Writer,
						cmd.Args().First(),
						cmd.String("format"),
					)
				})
			},
		},
		{
			Name:  "count-range",
			Usage: "Count the valid card numbers in a closed range",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "start",
					Aliases:  []string{"s"},
					Required: true,
					Usage:    "First number of the range",
				},
				&cli.StringFlag{
					Name:     "end",
					Aliases:  []string{"e"},
					Required: true,
					Usage:    "Last number of the range (inclusive)",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withContainer(ctx, func(container *app.Container) error {
					useCase, err := container.LuhnUseCase()
					if err != nil {
						return err
					}
					return commands.RunCountRange(
						ctx,
						useCase,
						container.Logger(),
						commands.DefaultIO().Writer,
						cmd.String("start"),
						cmd.String("end"),
						cmd.String("format"),
					)
				})
			},
		},
		{
			Name:      "classify",
			Usage:     "Match card numbers against the issuer numbering rules",
			ArgsUsage: "<number> [number...]",
			Flags:     []cli.Flag{formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withContainer(ctx, func(container *app.Container) error {
					useCase, err := container.LuhnUseCase()
					if err != nil {
						return err
					}
					return commands.RunClassify(
						ctx,
						useCase,
						container.Logger(),
						commands.DefaultIO().Writer,
						cmd.Args().Slice(),
						cmd.String("format"),
					)
				})
			},
		},
		{
			Name:  "generate",
			Usage: "Generate random test card numbers for an issuer",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "issuer",
					Aliases:  []string{"i"},
					Required: true,
					Usage:    "Issuer (visa, mastercard, amex, diners, discover, jcb)",
				},
				&cli.IntFlag{
					Name:    "count",
					Aliases: []string{"n"},
					Value:   1,
					Usage:   "How many numbers to generate",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withContainer(ctx, func(container *app.Container) error {
					useCase, err := container.LuhnUseCase()
					if err != nil {
						return err
					}
					return commands.RunGenerate(
						ctx,
						useCase,
						container.Logger(),
						commands.DefaultIO().Writer,
						cmd.String("issuer"),
						cmd.Int("count"),
						cmd.String("format"),
					)
				})
			},
		},
		{
			Name:  "validate-batch",
			Usage: "Validate newline-separated card numbers from a file or stdin",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "input",
					Aliases: []string{"in"},
					Value:   "-",
					Usage:   "Input file, or '-' for stdin",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				input, closeInput, err := openInput(cmd.String("input"))
				if err != nil {
					return err
				}
				defer closeInput()

				return withContainer(ctx, func(container *app.Container) error {
					useCase, err := container.LuhnUseCase()
					if err != nil {
						return err
					}
					_, err = commands.RunValidateBatch(
						ctx,
						useCase,
						container.Logger(),
						input,
						commands.DefaultIO().Writer,
						cmd.String("format"),
					)
					return err
				})
			},
		},
		{
			Name:  "demo",
			Usage: "Print a few sample calls of every operation",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withContainer(ctx, func(container *app.Container) error {
					useCase, err := container.LuhnUseCase()
					if err != nil {
						return err
					}
					return commands.RunDemo(ctx, useCase, commands.DefaultIO().Writer)
				})
			},
		},
	}
}
