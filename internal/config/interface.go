package config

import (
	"context"
)

// Loader is the interface for a format-specific run-file loader.
type Loader interface {
	// Load reads every run file under the given paths and returns the
	// merged, unvalidated model.
	Load(ctx context.Context, paths ...string) (*Model, error)
}
