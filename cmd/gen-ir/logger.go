package main

import (
	"io"
	"log/slog"
)

// newLogger builds the diagnostics logger. It does not touch the global
// default logger; every consumer receives this instance explicitly. The
// level controls whether soft-failure diagnostics are observable, never
// whether they occur.
func newLogger(levelStr string, w io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
