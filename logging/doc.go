// Package logging provides a minimal logging interface and adapters for the
// metrics evaluator.
//
// The Logger interface defines the standard slog-style methods (Debug, Info,
// Warn, Error taking a message plus key/value pairs). This package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - NewLogger building a JSON or text slog handler from a LoggerConfig
//   - NoOpLogger for silent operation (default, tests)
//
// Usage:
//
//	logger := logging.NewLogger(&logging.LoggerConfig{Level: logging.LogLevelDebug, Format: "text", Output: os.Stderr})
//	ev := evaluation.New(func(o *evaluation.Options) { o.Logger = logger })
package logging
