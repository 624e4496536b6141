// Package ctxlog carries a slog.Logger through context.Context so every
// layer logs with the attributes accumulated by its caller.
package ctxlog

import (
	"context"
	"log/slog"
)

// key is unexported so no other package can collide with our context key.
type key struct{}

var loggerKey = key{}

// WithLogger returns a child context carrying the given logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext extracts the logger from a context, falling back to the
// process-wide default when the context carries none (e.g. in tests).
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
