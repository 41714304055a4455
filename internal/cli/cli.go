package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/dialsim/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments against the process environment.
// It returns a populated Config, a boolean indicating if the program should
// exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	return ParseWithEnv(args, output, nil)
}

// ParseWithEnv is Parse with an explicit environment; nil means the
// process environment.
func ParseWithEnv(args []string, output io.Writer, environ map[string]string) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	defaults, err := loadEnv(environ)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	flagSet := flag.NewFlagSet("dialsim", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
dialsim - counts how often a rotating dial comes to rest on zero.

Usage:
  dialsim [options] [INPUT ...]

Arguments:
  INPUT
    File with one rotation per line (e.g. L68, R14). Use "-" for stdin.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", strings.Join(defaults.Config, ","), "Comma-separated run files (.hcl, .yaml) or directories. Env: DIALSIM_CONFIG.")
	cFlag := flagSet.String("c", "", "Run files (shorthand for -config).")
	ruleFlag := flagSet.String("rule", defaults.Rule, "Counting rules for INPUT files: 'coarse', 'fine', 'all' or a comma list. Env: DIALSIM_RULE.")
	outputFlag := flagSet.String("output", defaults.Output, "Report format. Options: 'text' or 'json'. Env: DIALSIM_OUTPUT.")
	logFormatFlag := flagSet.String("log-format", defaults.LogFormat, "Log output format. Options: 'text' or 'json'. Env: DIALSIM_LOG_FORMAT.")
	logLevelFlag := flagSet.String("log-level", defaults.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'. Env: DIALSIM_LOG_LEVEL.")
	noColorFlag := flagSet.Bool("no-color", defaults.NoColor || defaults.NoColorStd != "", "Disable colored report output. Env: DIALSIM_NO_COLOR, NO_COLOR.")
	traceFlag := flagSet.Bool("trace", false, "Log the dial position after every command.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	runFiles := splitList(*configFlag)
	runFiles = append(runFiles, splitList(*cFlag)...)
	inputs := flagSet.Args()

	if len(inputs) == 0 && len(runFiles) == 0 {
		slog.Debug("No input or run file provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	config, err := app.NewConfig(app.Config{
		Inputs:    inputs,
		RunFiles:  runFiles,
		Rules:     splitList(*ruleFlag),
		Output:    strings.ToLower(*outputFlag),
		LogFormat: *logFormatFlag,
		LogLevel:  *logLevelFlag,
		NoColor:   *noColorFlag,
		Trace:     *traceFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

// splitList splits a comma-separated flag value, dropping empty items.
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
