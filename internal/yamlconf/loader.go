// Package yamlconf provides the YAML implementation of config.Loader.
//
//	runs:
//	  - name: example
//	    input: example.txt
//	    rules: [coarse, fine]
//	    expect: {coarse: 3, fine: 6}
package yamlconf

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vk/dialsim/internal/config"
	"github.com/vk/dialsim/internal/ctxlog"
	"gopkg.in/yaml.v3"
)

type fileRoot struct {
	Runs []runEntry `yaml:"runs"`
}

type runEntry struct {
	Name   string            `yaml:"name"`
	Input  string            `yaml:"input"`
	Rules  []string          `yaml:"rules"`
	Expect map[string]uint64 `yaml:"expect"`
}

// Loader reads YAML run files.
type Loader struct{}

// NewLoader creates a new YAML run-file loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load implements config.Loader. Unknown keys are rejected.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	model := &config.Model{}

	for _, path := range paths {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read YAML file %s: %w", path, err)
		}

		var root fileRoot
		dec := yaml.NewDecoder(bytes.NewReader(raw))
		dec.KnownFields(true)
		if err := dec.Decode(&root); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to decode YAML file %s: %w", path, err)
		}

		for _, e := range root.Runs {
			model.Runs = append(model.Runs, &config.Run{
				Name:   e.Name,
				Input:  e.Input,
				Rules:  e.Rules,
				Expect: e.Expect,
				Source: path,
			})
		}
		logger.Debug("YAML file loaded.", "file", path, "runs", len(root.Runs))
	}
	return model, nil
}
