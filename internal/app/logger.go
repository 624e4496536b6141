package app

import (
	"fmt"
	"io"
	"log/slog"
)

// newLogger builds the app's isolated slog.Logger writing to outW. It never
// touches the global logger, so tests can run apps side by side with
// captured output. Empty level and format strings take the defaults "info"
// and "text"; any other unrecognized value was supposed to be rejected by
// cli.Parse and panics here as a programmer error.
func newLogger(levelStr, formatStr string, outW io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info", "":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		panic(fmt.Sprintf("unknown log level %q", levelStr))
	}

	opts := &slog.HandlerOptions{Level: level}
	switch formatStr {
	case "json":
		return slog.New(slog.NewJSONHandler(outW, opts))
	case "text", "":
		return slog.New(slog.NewTextHandler(outW, opts))
	default:
		panic(fmt.Sprintf("unknown log format %q", formatStr))
	}
}
