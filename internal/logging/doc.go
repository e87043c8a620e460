// Package logging assembles the structured slog loggers used by samewords.
//
// It owns the console and JSON handlers, level parsing, and output plumbing.
// Logs are written to stderr (and optionally a file) so that stdout carries
// only search results. Helpers attach a per-run session identifier and a
// component name to every record, and a no-op logger is available for tests
// and wiring code that cannot fail.
package logging
