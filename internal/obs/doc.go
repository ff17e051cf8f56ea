// Package obs provides the CLI's tick-level structured logging, built on
// the standard library's log/slog (the same structured-logging idiom
// the teacher pack uses for per-tick telemetry) rather than a
// hand-rolled formatter.
package obs
