// Package app contains the application lifecycle: it turns a validated
// Config into a list of runs, executes each run against the dial
// simulator, checks expectations and writes the report. It is decoupled
// from any specific entrypoint like a CLI.
package app
