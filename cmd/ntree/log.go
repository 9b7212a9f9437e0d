package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// setupSlog installs a text or JSON handler at the given level as the default logger.
func setupSlog(out io.Writer, level, format string) (*slog.Logger, error) {
	var hopts slog.HandlerOptions

	switch strings.ToLower(level) {
	case "debug":
		hopts.Level = slog.LevelDebug
	case "", "info":
		hopts.Level = slog.LevelInfo
	case "warn":
		hopts.Level = slog.LevelWarn
	case "error":
		hopts.Level = slog.LevelError
	default:
		return nil, fmt.Errorf("unknown log level: %#v", level)
	}

	var handler slog.Handler
	switch strings.ToLower(format) {
	case "", "text":
		handler = slog.NewTextHandler(out, &hopts)
	case "json":
		handler = slog.NewJSONHandler(out, &hopts)
	default:
		return nil, fmt.Errorf("unknown log format: %#v", format)
	}

	logger := slog.New(handler).With("system", "ntree")
	slog.SetDefault(logger)

	return logger, nil
}
