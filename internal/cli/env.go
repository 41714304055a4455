package cli

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// envDefaults are read before flags are parsed and become flag defaults,
// so an explicit flag always wins over the environment.
type envDefaults struct {
	Config    []string `env:"DIALSIM_CONFIG" envSeparator:","`
	Rule      string   `env:"DIALSIM_RULE" envDefault:"all"`
	Output    string   `env:"DIALSIM_OUTPUT" envDefault:"text"`
	LogLevel  string   `env:"DIALSIM_LOG_LEVEL" envDefault:"info"`
	LogFormat string   `env:"DIALSIM_LOG_FORMAT" envDefault:"text"`
	NoColor   bool     `env:"DIALSIM_NO_COLOR"`
	// NO_COLOR is the cross-tool convention; any non-empty value disables color.
	NoColorStd string `env:"NO_COLOR"`
}

// loadEnv parses environ, or the process environment when environ is nil.
func loadEnv(environ map[string]string) (envDefaults, error) {
	var d envDefaults
	if err := env.ParseWithOptions(&d, env.Options{Environment: environ}); err != nil {
		return envDefaults{}, fmt.Errorf("parse env: %w", err)
	}
	return d, nil
}
