// Package logging provides structured diagnostics for the page-context plugin.
//
// This package wraps Go's log/slog to provide JSON-formatted logs with
// context propagation support. The bridge client takes a Logger as an
// injected collaborator, so every diagnostic it emits (absorbed retrieval
// failures, discarded payloads, listener panics) is a structured event
// rather than free text.
//
// # Features
//
//   - JSON-formatted structured logging via slog
//   - Configurable log levels (DEBUG, INFO, WARN, ERROR)
//   - Context propagation (owner ID, client instance ID, page ID)
//   - An in-memory capture sink so tests assert on emitted events
//
// # Thread Safety
//
// All types in this package are safe for concurrent use.
package logging
