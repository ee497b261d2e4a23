// Package logging builds the slog loggers used by the CLI and the organizer.
//
// Two output formats are supported: a compact console format for interactive
// runs and JSON for log collectors. Attr helper aliases keep call sites terse
// and NewNop supplies a discard logger for tests.
package logging
