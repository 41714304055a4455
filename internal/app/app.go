package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/dialsim/internal/config"
	"github.com/vk/dialsim/internal/ctxlog"
	"github.com/vk/dialsim/internal/input"
	"github.com/vk/dialsim/internal/report"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	logger *slog.Logger
	config *Config
	model  *config.Model
	report *report.Writer
}

// NewApp builds an App: it configures an isolated logger on logW, loads
// the run files through loader, adds one implicit run per input and
// validates the result. The report is written to outW.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader) (*App, error) {
	logger, err := newLogger(cfg, logW)
	if err != nil {
		return nil, err
	}
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model := &config.Model{}
	if len(cfg.RunFiles) > 0 {
		loaded, err := loader.Load(ctx, cfg.RunFiles...)
		if err != nil {
			return nil, fmt.Errorf("failed to load run files: %w", err)
		}
		model.Merge(loaded)
		logger.Debug("Run files loaded.", "runs", len(loaded.Runs))
	}
	for _, in := range cfg.Inputs {
		model.Runs = append(model.Runs, implicitRun(in, cfg.Rules))
	}

	if err := model.Validate(); err != nil {
		return nil, fmt.Errorf("invalid run configuration: %w", err)
	}
	logger.Debug("Run configuration validated.", "runs", len(model.Runs))

	format, err := report.ParseFormat(cfg.Output)
	if err != nil {
		return nil, err
	}

	return &App{
		logger: logger,
		config: cfg,
		model:  model,
		report: report.NewWriter(outW, format, !cfg.NoColor),
	}, nil
}

// implicitRun wraps an input given on the command line. It is named after
// its path.
func implicitRun(path string, rules []string) *config.Run {
	name := path
	if path == input.StdinPath {
		name = "stdin"
	}
	return &config.Run{Name: name, Input: path, Rules: rules}
}

// Runs returns the runs the App will execute, in order. This is primarily for testing.
func (a *App) Runs() []*config.Run {
	return a.model.Runs
}
