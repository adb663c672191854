package utils

import (
	"log/slog"
	"os"
)

// NewLogger returns the process-wide logger. The "text" format is meant for
// local development, anything else logs JSON for log collectors.
func NewLogger(format string) *slog.Logger {
	var handler slog.Handler
	switch format {
	case "text":
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	default:
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	return slog.New(handler)
}
