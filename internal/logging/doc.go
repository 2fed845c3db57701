// Package logging assembles structured slog loggers and formatting helpers
// used across Punini.
//
// It owns the configurable console/JSON handlers and centralizes level and
// output plumbing so the scanner, player engine, and TUI emit log lines with
// the same shape. When the interactive interface owns the terminal, loggers
// built with FileOnly keep escape output clean by writing exclusively to the
// log file. The package also provides a no-op logger for tests and wiring
// code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup.
package logging
