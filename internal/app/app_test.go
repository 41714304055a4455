package app

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/dialsim/internal/config"
	"github.com/vk/dialsim/internal/dial"
	"github.com/vk/dialsim/internal/hcl"
	"github.com/vk/dialsim/internal/yamlconf"
)

const exampleInput = "L68\nL30\nR48\nL5\nR60\nL55\nL1\nL99\nR14\nL82\n"

func testLoader() config.Loader {
	return config.NewMultiLoader().
		Register(hcl.NewLoader(), ".hcl").
		Register(yamlconf.NewLoader(), ".yaml", ".yml")
}

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		full := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0o600))
	}
	return dir
}

// setupApp builds an App with captured report and log output.
func setupApp(t *testing.T, cfg Config) (*App, *bytes.Buffer, *bytes.Buffer, error) {
	t.Helper()
	out, logs := &bytes.Buffer{}, &bytes.Buffer{}

	validated, err := NewConfig(cfg)
	if err != nil {
		return nil, out, logs, err
	}
	validated.NoColor = true
	a, err := NewApp(out, logs, validated, testLoader())

	t.Cleanup(func() {
		if os.Getenv("DIALSIM_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
		}
	})
	return a, out, logs, err
}

func TestNewConfig(t *testing.T) {
	testCases := []struct {
		name      string
		cfg       Config
		expectErr bool
		check     func(t *testing.T, cfg *Config)
	}{
		{
			name: "defaults",
			cfg:  Config{Inputs: []string{"in.txt"}},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "text", cfg.Output)
				assert.Equal(t, "text", cfg.LogFormat)
				assert.Equal(t, "info", cfg.LogLevel)
				assert.Nil(t, cfg.Rules)
			},
		},
		{
			name: "all rules collapses to nil",
			cfg:  Config{Inputs: []string{"in.txt"}, Rules: []string{"fine", "ALL"}},
			check: func(t *testing.T, cfg *Config) {
				assert.Nil(t, cfg.Rules)
			},
		},
		{
			name: "explicit rules are kept",
			cfg:  Config{RunFiles: []string{"runs.hcl"}, Rules: []string{" Fine ", ""}},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, []string{"fine"}, cfg.Rules)
			},
		},
		{name: "nothing to do", cfg: Config{}, expectErr: true},
		{name: "bad rule", cfg: Config{Inputs: []string{"x"}, Rules: []string{"up"}}, expectErr: true},
		{name: "bad output", cfg: Config{Inputs: []string{"x"}, Output: "xml"}, expectErr: true},
		{name: "bad log format", cfg: Config{Inputs: []string{"x"}, LogFormat: "yaml"}, expectErr: true},
		{name: "bad log level", cfg: Config{Inputs: []string{"x"}, LogLevel: "verbose"}, expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := NewConfig(tc.cfg)
			if tc.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			tc.check(t, cfg)
		})
	}
}

func TestApp_RunImplicitInput(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := writeFiles(t, map[string]string{"example.txt": exampleInput})
	path := filepath.Join(dir, "example.txt")
	a, out, logs, err := setupApp(t, Config{Inputs: []string{path}})
	require.NoError(t, err)

	// --- Act ---
	err = a.Run(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	assert.Contains(t, out.String(), "coarse  3\n")
	assert.Contains(t, out.String(), "fine    6\n")
	assert.Contains(t, logs.String(), "Rule evaluated.")
	assert.NotContains(t, logs.String(), "Command applied.")
}

func TestApp_RunFiles(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		files      map[string]string
		expectFail bool
		checkOut   func(t *testing.T, out string)
	}{
		{
			name: "hcl expectations met",
			files: map[string]string{
				"example.txt": exampleInput,
				"runs.hcl": `
run "example" {
  input  = "example.txt"
  expect = { coarse = 3, fine = 6 }
}`,
			},
			checkOut: func(t *testing.T, out string) {
				assert.Equal(t, "example  coarse  3  ok\nexample  fine    6  ok\n", out)
			},
		},
		{
			name: "yaml expectation missed",
			files: map[string]string{
				"inputs/example.txt": exampleInput,
				"runs.yaml": `
runs:
  - name: example
    input: inputs/example.txt
    rules: [part2]
    expect: {part2: 7}
`,
			},
			expectFail: true,
			checkOut: func(t *testing.T, out string) {
				assert.Equal(t, "example  fine  6  FAIL (want 7)\n", out)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			dir := writeFiles(t, tc.files)
			a, out, _, err := setupApp(t, Config{RunFiles: []string{dir}})
			require.NoError(t, err)

			err = a.Run(context.Background())

			if tc.expectFail {
				require.ErrorIs(t, err, ErrExpectationFailed)
			} else {
				require.NoError(t, err)
			}
			tc.checkOut(t, out.String())
		})
	}
}

func TestApp_RunParseErrorAbortsWithoutReport(t *testing.T) {
	t.Parallel()

	dir := writeFiles(t, map[string]string{
		"good.txt": "R50\n",
		"bad.txt":  "R50\n\nX5\n",
	})
	a, out, _, err := setupApp(t, Config{Inputs: []string{
		filepath.Join(dir, "good.txt"),
		filepath.Join(dir, "bad.txt"),
	}})
	require.NoError(t, err)

	err = a.Run(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, dial.ErrInvalidFormat)
	var derr *dial.Error
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, 3, derr.Line)
	assert.Contains(t, err.Error(), "bad.txt: line 3: invalid format")
	assert.Empty(t, out.String(), "no partial report")
}

func TestApp_RunTraceAndDebugDump(t *testing.T) {
	t.Parallel()

	dir := writeFiles(t, map[string]string{"in.txt": "R50\nL25\n"})
	a, _, logs, err := setupApp(t, Config{
		Inputs:   []string{filepath.Join(dir, "in.txt")},
		Rules:    []string{"coarse"},
		LogLevel: "debug",
		Trace:    true,
	})
	require.NoError(t, err)

	require.NoError(t, a.Run(context.Background()))

	assert.Contains(t, logs.String(), "Command applied.")
	assert.Contains(t, logs.String(), "command=L25")
	assert.Contains(t, logs.String(), "dial.Command")
}

func TestApp_RunCancelled(t *testing.T) {
	t.Parallel()

	dir := writeFiles(t, map[string]string{"in.txt": "R50\n"})
	a, out, _, err := setupApp(t, Config{Inputs: []string{filepath.Join(dir, "in.txt")}})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, a.Run(ctx), context.Canceled)
	assert.Empty(t, out.String())
}

func TestNewApp_Errors(t *testing.T) {
	t.Parallel()

	t.Run("duplicate implicit inputs", func(t *testing.T) {
		_, _, _, err := setupApp(t, Config{Inputs: []string{"a.txt", "a.txt"}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid run configuration")
	})

	t.Run("missing run file", func(t *testing.T) {
		_, _, _, err := setupApp(t, Config{RunFiles: []string{filepath.Join(t.TempDir(), "nope.hcl")}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load run files")
	})

	t.Run("stdin run is named", func(t *testing.T) {
		a, _, _, err := setupApp(t, Config{Inputs: []string{"-"}})
		require.NoError(t, err)
		require.Len(t, a.Runs(), 1)
		assert.Equal(t, "stdin", a.Runs()[0].Name)
	})
}
