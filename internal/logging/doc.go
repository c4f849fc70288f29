// Package logging builds the structured slog loggers used across ladle.
//
// Output goes to a file (config log_dir/ladle.log) in text or JSON form, or is
// discarded when no path is configured. Components derive child loggers with
// NewComponentLogger so every line carries a component attribute, and request
// scoped lines add request_id.
package logging
