// Package input reads rotation command sources into ordered lines.
package input

import (
	"fmt"
	"io"
	"os"

	"github.com/bitfield/script"
)

// StdinPath is the path that selects standard input.
const StdinPath = "-"

// ReadLines returns every line of the file at path, or of standard input
// when path is StdinPath. Line terminators are stripped; blank lines are
// kept so that line numbers in parse errors match the source.
func ReadLines(path string) ([]string, error) {
	if path == "" {
		return nil, fmt.Errorf("input path cannot be empty")
	}
	if path == StdinPath {
		return Lines(os.Stdin)
	}
	lines, err := script.File(path).Slice()
	if err != nil {
		return nil, fmt.Errorf("failed to read input %s: %w", path, err)
	}
	return lines, nil
}

// Lines reads every line from r, the way ReadLines reads standard input.
func Lines(r io.Reader) ([]string, error) {
	lines, err := script.NewPipe().WithReader(r).Slice()
	if err != nil {
		return nil, fmt.Errorf("failed to read input %s: %w", StdinPath, err)
	}
	return lines, nil
}
