package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/davecgh/go-spew/spew"
	"github.com/vk/dialsim/internal/config"
	"github.com/vk/dialsim/internal/ctxlog"
	"github.com/vk/dialsim/internal/dial"
	"github.com/vk/dialsim/internal/input"
	"github.com/vk/dialsim/internal/report"
)

// ErrExpectationFailed is returned by Run after the report has been
// written when at least one result differs from its expected value.
var ErrExpectationFailed = errors.New("expectation failed")

// Run executes every run in order and writes the report. The first run
// that fails aborts the whole invocation before anything is reported.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "runs", len(a.model.Runs))

	var results []report.Result
	for _, run := range a.model.Runs {
		if err := ctx.Err(); err != nil {
			return err
		}
		runResults, err := a.execute(ctx, run)
		if err != nil {
			return fmt.Errorf("run %q failed: %w", run.Name, err)
		}
		results = append(results, runResults...)
	}

	if err := a.report.Write(results); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	failed := 0
	for _, r := range results {
		if !r.Passed() {
			failed++
		}
	}
	if failed > 0 {
		a.logger.Warn("Some results did not match their expectation.", "failed", failed, "total", len(results))
		return fmt.Errorf("%w: %d of %d results", ErrExpectationFailed, failed, len(results))
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// execute reads and parses one input once, then counts it under every
// selected rule.
func (a *App) execute(ctx context.Context, run *config.Run) ([]report.Result, error) {
	ctx = ctxlog.With(ctx, "run", run.Name)
	logger := ctxlog.FromContext(ctx)

	lines, err := input.ReadLines(run.Input)
	if err != nil {
		return nil, err
	}
	cmds, err := dial.Parse(lines)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", run.Input, err)
	}
	logger.Debug("Input parsed.", "input", run.Input, "lines", len(lines), "commands", len(cmds))
	if logger.Enabled(ctx, slog.LevelDebug) {
		logger.Debug("Parsed commands.", "dump", spew.Sdump(cmds))
	}

	rules, err := run.SelectedRules()
	if err != nil {
		return nil, err
	}

	results := make([]report.Result, 0, len(rules))
	for _, rule := range rules {
		var opts []dial.Option
		if a.config.Trace {
			opts = append(opts, dial.WithObserver(traceObserver(logger, rule)))
		}

		hits, err := dial.Count(rule, cmds, dial.Start, opts...)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", rule, err)
		}

		res := report.Result{Run: run.Name, Rule: rule, Hits: hits}
		if want, ok := run.Expected(rule); ok {
			res.Expected = &want
		}
		logger.Info("Rule evaluated.", "rule", rule.String(), "hits", hits)
		results = append(results, res)
	}
	return results, nil
}

func traceObserver(logger *slog.Logger, rule dial.Rule) func(dial.Event) {
	return func(e dial.Event) {
		logger.Info("Command applied.",
			"rule", rule.String(),
			"index", e.Index,
			"command", e.Command.String(),
			"position", e.Position,
			"hits", e.Hits,
		)
	}
}
