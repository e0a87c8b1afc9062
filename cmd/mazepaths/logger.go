package main

import (
	"fmt"
	"io"
	"log/slog"
)

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// newLogger builds the CLI logger from the --log-level and --log-format
// values. Search progress goes to w, never to the report stream.
func newLogger(levelStr, formatStr string, w io.Writer) (*slog.Logger, error) {
	level, ok := logLevels[levelStr]
	if !ok {
		return nil, fmt.Errorf("%w: --log-level %q", errBadFlagValue, levelStr)
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	switch formatStr {
	case "text":
		return slog.New(slog.NewTextHandler(w, handlerOpts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, handlerOpts)), nil
	default:
		return nil, fmt.Errorf("%w: --log-format %q", errBadFlagValue, formatStr)
	}
}
