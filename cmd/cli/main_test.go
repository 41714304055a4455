package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/dialsim/internal/cli"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestRun_Success(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := writeTemp(t, "input.txt", "R50\nL25\n\nR150\n")
	args := []string{"--no-color", path}
	out, logs := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), out, logs, args)

	// --- Assert ---
	require.NoError(t, err)
	require.Contains(t, out.String(), "coarse  1\n")
	require.Contains(t, out.String(), "fine    3\n")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	args := []string{"-h"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), out, &bytes.Buffer{}, args)

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	args := []string{"--this-is-not-a-valid-flag"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), out, &bytes.Buffer{}, args)

	// --- Assert ---
	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_MalformedInput(t *testing.T) {
	t.Parallel()

	path := writeTemp(t, "input.txt", "R50\nX5\n")

	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{path})

	require.Error(t, err)
	var exitErr *cli.ExitError
	require.False(t, errors.As(err, &exitErr), "run failures map to the default exit code")
	require.Contains(t, err.Error(), "line 2: invalid format")
}

func TestRun_ExpectationExitCode(t *testing.T) {
	t.Parallel()

	input := writeTemp(t, "input.txt", "R50\n")
	runFile := filepath.Join(filepath.Dir(input), "runs.hcl")
	require.NoError(t, os.WriteFile(runFile, []byte(`
run "wrong" {
  input  = "input.txt"
  rules  = ["coarse"]
  expect = { coarse = 2 }
}`), 0600))

	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{"-config", runFile, "--no-color"})

	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr))
	require.Equal(t, exitExpectationFailed, exitErr.Code)
}

func TestRun_InvalidRunFile(t *testing.T) {
	t.Parallel()

	runFile := writeTemp(t, "runs.hcl", `run "x" {`)

	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{"-c", runFile})

	// Run-file failures are not flag errors: main exits 1 for them.
	require.Error(t, err)
	var exitErr *cli.ExitError
	require.False(t, errors.As(err, &exitErr))
	require.Contains(t, err.Error(), "failed to parse HCL file")
}

func TestRun_InvalidRunConfiguration(t *testing.T) {
	t.Parallel()

	runFile := writeTemp(t, "runs.yaml", "runs:\n  - name: x\n    input: a.txt\n    rules: [sideways]\n")

	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{"-c", runFile})

	require.Error(t, err)
	var exitErr *cli.ExitError
	require.False(t, errors.As(err, &exitErr))
	require.Contains(t, err.Error(), "invalid run configuration")
}
