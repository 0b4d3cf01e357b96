// Package logging provides a minimal logging interface and adapters for the
// execution engine.
//
// The Logger interface defines the standard structured logging methods
// (Debug, Info, Warn, Error) that the engine and runners use for
// observability. The package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - NoOpLogger for silent operation (testing, minimal setups)
//   - EngineLogger with domain helpers for generation calls and executions
//
// Usage:
//
//	logger := logging.NewEngineLogger(logging.LogLevelInfo, "text", false)
//	eng := engine.New(client, func(o *engine.Options) { o.Logger = logger })
//
// The interface is intentionally minimal so any structured logger can be
// plugged in without vendor lock-in.
package logging
