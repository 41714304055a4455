package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vk/dialsim/internal/dial"
	"github.com/vk/dialsim/internal/report"
)

// AllRules is the rule selector that picks every counting rule.
const AllRules = "all"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Inputs   []string // input files, "-" for stdin; each becomes an implicit run
	RunFiles []string // .hcl / .yaml run files or directories
	Rules    []string // rules for implicit runs; empty or "all" selects every rule

	Output    string
	LogFormat string
	LogLevel  string
	NoColor   bool
	Trace     bool
}

// NewConfig validates cfg and returns a normalized copy.
func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.Inputs) == 0 && len(cfg.RunFiles) == 0 {
		return nil, errors.New("at least one input or run file is required")
	}

	var rules []string
	for _, name := range cfg.Rules {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		if name == AllRules {
			rules = nil
			break
		}
		if _, err := dial.ParseRule(name); err != nil {
			return nil, err
		}
		rules = append(rules, name)
	}
	cfg.Rules = rules

	if cfg.Output == "" {
		cfg.Output = string(report.FormatText)
	}
	if _, err := report.ParseFormat(cfg.Output); err != nil {
		return nil, err
	}

	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	switch cfg.LogFormat {
	case "":
		cfg.LogFormat = "text"
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", cfg.LogFormat)
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if _, err := parseLevel(cfg.LogLevel); err != nil {
		return nil, err
	}

	return &cfg, nil
}
