// Package logging constructs the slog loggers used across the converter:
// a compact console handler for interactive use and a JSON handler for
// machine consumption, with shared attribute helpers.
package logging
