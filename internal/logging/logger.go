// Package logging defines the structured-logging interface the server and
// its services log through. The concrete implementation wraps slog, but
// callers only see Logger.
package logging

import "context"

// Logger is a context-aware, structured logger. Variadic args are key-value
// pairs:
//
//	log.Info(ctx, "http server listening", "addr", addr)
type Logger interface {
	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs an unusual but non-fatal condition.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs a failure.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always carries the given key-value
	// pairs, typically used to tag a component ("module", "httpapi").
	With(args ...any) Logger
}
