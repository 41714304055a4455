package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/dialsim/internal/config"
	"github.com/vk/dialsim/internal/ctxlog"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL run-file loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses each path as an HCL run file and merges the runs it declares
// in file order.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	model := &config.Model{}
	parser := hclparse.NewParser()

	for _, file := range paths {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, block := range root.Runs {
			run, err := l.translateRun(block, file)
			if err != nil {
				return nil, fmt.Errorf("%s: run %q: %w", file, block.Name, err)
			}
			model.Runs = append(model.Runs, run)
		}
	}

	logger.Debug("HCL loading complete.", "runs", len(model.Runs))
	return model, nil
}
