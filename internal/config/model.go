package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/vk/dialsim/internal/dial"
)

// Model is the merged content of every loaded run file.
type Model struct {
	Runs []*Run
}

// Run is one named simulation: an input source and the rules to apply.
type Run struct {
	Name   string
	Input  string            // file path or "-" for stdin
	Rules  []string          // empty selects every rule
	Expect map[string]uint64 // rule name -> expected hits
	Source string            // run file the run was declared in, empty for implicit runs
}

// Merge appends the runs of other to m.
func (m *Model) Merge(other *Model) {
	if other == nil {
		return
	}
	m.Runs = append(m.Runs, other.Runs...)
}

// ResolveInput makes a relative input path relative to the directory of
// the run file that declared it. Stdin and absolute paths are unchanged.
func (r *Run) ResolveInput() {
	if r.Source == "" || r.Input == "-" || r.Input == "" || filepath.IsAbs(r.Input) {
		return
	}
	r.Input = filepath.Join(filepath.Dir(r.Source), r.Input)
}

// SelectedRules parses the run's rule names; an empty list selects every rule.
func (r *Run) SelectedRules() ([]dial.Rule, error) {
	if len(r.Rules) == 0 {
		return dial.Rules(), nil
	}
	rules := make([]dial.Rule, 0, len(r.Rules))
	seen := make(map[dial.Rule]struct{})
	for _, name := range r.Rules {
		rule, err := dial.ParseRule(name)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[rule]; dup {
			continue
		}
		seen[rule] = struct{}{}
		rules = append(rules, rule)
	}
	return rules, nil
}

// Expected returns the expected hit count for rule, if one was declared.
func (r *Run) Expected(rule dial.Rule) (uint64, bool) {
	for name, want := range r.Expect {
		if parsed, err := dial.ParseRule(name); err == nil && parsed == rule {
			return want, true
		}
	}
	return 0, false
}

// Validate checks every run: unique non-empty names, an input, known rule
// names and expectation keys. All problems are reported together.
func (m *Model) Validate() error {
	var errs []error
	names := make(map[string]string)

	for i, r := range m.Runs {
		where := r.Source
		if where == "" {
			where = "command line"
		}
		if r.Name == "" {
			errs = append(errs, fmt.Errorf("%s: run #%d has no name", where, i+1))
			continue
		}
		if prev, dup := names[r.Name]; dup {
			errs = append(errs, fmt.Errorf("%s: run %q already declared in %s", where, r.Name, prev))
		} else {
			names[r.Name] = where
		}
		if r.Input == "" {
			errs = append(errs, fmt.Errorf("%s: run %q has no input", where, r.Name))
		}
		if _, err := r.SelectedRules(); err != nil {
			errs = append(errs, fmt.Errorf("%s: run %q: %w", where, r.Name, err))
		}
		expected := make(map[dial.Rule]string)
		for key := range r.Expect {
			rule, err := dial.ParseRule(key)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: run %q expect: %w", where, r.Name, err))
				continue
			}
			if other, dup := expected[rule]; dup {
				errs = append(errs, fmt.Errorf("%s: run %q expects %s twice (%q and %q)", where, r.Name, rule, other, key))
			}
			expected[rule] = key
		}
	}
	return errors.Join(errs...)
}
