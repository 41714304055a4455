// Package report renders run results for the terminal or for machines.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/gookit/color"

	"github.com/vk/dialsim/internal/dial"
)

// Format selects the report encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("invalid output format %q: must be 'text' or 'json'", s)
	}
}

// Result is the hit count of one rule over one run.
type Result struct {
	Run      string    `json:"run"`
	Rule     dial.Rule `json:"rule"`
	Hits     uint64    `json:"hits"`
	Expected *uint64   `json:"expected,omitempty"`
}

// Passed reports whether the result meets its expectation. Results
// without an expectation always pass.
func (r Result) Passed() bool {
	return r.Expected == nil || *r.Expected == r.Hits
}

// Writer renders results in a fixed format.
type Writer struct {
	out    io.Writer
	format Format
	color  bool
}

// NewWriter creates a Writer. useColor only affects the text format.
func NewWriter(out io.Writer, format Format, useColor bool) *Writer {
	return &Writer{out: out, format: format, color: useColor}
}

// Write renders all results at once.
func (w *Writer) Write(results []Result) error {
	switch w.format {
	case FormatJSON:
		return w.writeJSON(results)
	case FormatText:
		return w.writeText(results)
	default:
		return fmt.Errorf("unsupported output format %q", w.format)
	}
}

func (w *Writer) writeJSON(results []Result) error {
	if results == nil {
		results = []Result{}
	}
	enc := json.NewEncoder(w.out)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

// writeText prints one aligned row per result: run, rule, hits and, when
// an expectation exists, a status column.
func (w *Writer) writeText(results []Result) error {
	tw := tabwriter.NewWriter(w.out, 0, 0, 2, ' ', 0)
	for _, r := range results {
		row := fmt.Sprintf("%s\t%s\t%d", r.Run, r.Rule, r.Hits)
		if r.Expected != nil {
			row += "\t" + w.status(r)
		}
		if _, err := fmt.Fprintln(tw, row); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func (w *Writer) status(r Result) string {
	if r.Passed() {
		return w.paint(color.Green, "ok")
	}
	return w.paint(color.Red, fmt.Sprintf("FAIL (want %d)", *r.Expected))
}

func (w *Writer) paint(c color.Color, s string) string {
	if !w.color {
		return s
	}
	return c.Sprint(s)
}
