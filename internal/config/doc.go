// Package config defines the format-agnostic model of a run file, along
// with the Loader interface that format-specific packages implement.
//
// A run file declares named runs: an input source, the counting rules to
// apply to it and, optionally, the hit counts each rule is expected to
// produce. Concrete loaders for HCL and YAML live in separate packages;
// MultiLoader picks one per file extension.
package config
