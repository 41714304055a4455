package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/vk/dialsim/internal/app"
	"github.com/vk/dialsim/internal/cli"
	"github.com/vk/dialsim/internal/config"
	"github.com/vk/dialsim/internal/hcl"
	"github.com/vk/dialsim/internal/yamlconf"
)

// Exit code for runs that completed but missed an expected value.
const exitExpectationFailed = 3

// main is the entrypoint for the dialsim application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Stdout, os.Stderr, os.Args[1:])
	stop()

	if err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newLoader registers every supported run-file format.
func newLoader() config.Loader {
	return config.NewMultiLoader().
		Register(hcl.NewLoader(), ".hcl").
		Register(yamlconf.NewLoader(), ".yaml", ".yml")
}

// run encapsulates the main application logic for easier testing and error handling.
func run(ctx context.Context, outW, errW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	dialApp, err := app.NewApp(outW, errW, appConfig, newLoader())
	if err != nil {
		return err
	}

	if err := dialApp.Run(ctx); err != nil {
		if errors.Is(err, app.ErrExpectationFailed) {
			return &cli.ExitError{Code: exitExpectationFailed, Message: err.Error()}
		}
		return err
	}
	return nil
}
