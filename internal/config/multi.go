package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vk/dialsim/internal/ctxlog"
	"github.com/vk/dialsim/internal/fsutil"
)

// MultiLoader dispatches every run file to the Loader registered for its
// extension. Directories are searched recursively.
type MultiLoader struct {
	loaders map[string]Loader
}

// NewMultiLoader creates an empty MultiLoader.
func NewMultiLoader() *MultiLoader {
	return &MultiLoader{loaders: make(map[string]Loader)}
}

// Register binds loader to one or more file extensions, e.g. ".hcl".
func (m *MultiLoader) Register(loader Loader, extensions ...string) *MultiLoader {
	for _, ext := range extensions {
		m.loaders[strings.ToLower(ext)] = loader
	}
	return m
}

// Extensions returns the registered extensions in sorted order.
func (m *MultiLoader) Extensions() []string {
	exts := make([]string, 0, len(m.loaders))
	for ext := range m.loaders {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// Load implements Loader. Relative run inputs are resolved against the
// directory of their run file.
func (m *MultiLoader) Load(ctx context.Context, paths ...string) (*Model, error) {
	logger := ctxlog.FromContext(ctx)
	model := &Model{}

	files, err := m.findRunFiles(paths)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered run files.", "count", len(files))

	for _, file := range files {
		loader, ok := m.loaders[strings.ToLower(filepath.Ext(file))]
		if !ok {
			return nil, fmt.Errorf("unsupported run file %s: extension must be one of %s", file, strings.Join(m.Extensions(), ", "))
		}
		fileModel, err := loader.Load(ctx, file)
		if err != nil {
			return nil, err
		}
		for _, run := range fileModel.Runs {
			run.ResolveInput()
		}
		logger.Debug("Run file loaded.", "file", file, "runs", len(fileModel.Runs))
		model.Merge(fileModel)
	}
	return model, nil
}

// findRunFiles expands directories and de-duplicates the result while
// keeping first-seen order.
func (m *MultiLoader) findRunFiles(paths []string) ([]string, error) {
	var files []string
	seen := make(map[string]struct{})
	add := func(p string) {
		if _, dup := seen[p]; !dup {
			seen[p] = struct{}{}
			files = append(files, p)
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("error accessing run file %s: %w", path, err)
		}
		if !info.IsDir() {
			add(path)
			continue
		}
		found, err := fsutil.FindFilesByExtension(path, m.Extensions()...)
		if err != nil {
			return nil, fmt.Errorf("error searching %s for run files: %w", path, err)
		}
		for _, f := range found {
			add(f)
		}
	}
	return files, nil
}
