package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/allisson/luhn/cmd/app/commands"
	"github.com/allisson/luhn/internal/app"
	"github.com/allisson/luhn/internal/config"
)

func getCommands() []*cli.Command {
	return getLuhnCommands()
}

// formatFlag is the --format flag shared by every command.
func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   "text",
		Usage:   "Output format: 'text' or 'json'",
	}
}

// withContainer loads and validates the configuration, builds the container and
// hands it to fn. The container is shut down when fn returns.
func withContainer(ctx context.Context, fn func(container *app.Container) error) (err error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	container := app.NewContainer(cfg)
	defer func() {
		if shutdownErr := container.Shutdown(context.WithoutCancel(ctx)); shutdownErr != nil && err == nil {
			err = shutdownErr
		}
	}()

	return fn(container)
}

// openInput returns the command reader for "" or "-" and the named file otherwise.
func openInput(path string) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		return commands.DefaultIO().Reader, func() {}, nil
	}
	f, err := os.Open(path) //nolint:gosec
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open input: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}
