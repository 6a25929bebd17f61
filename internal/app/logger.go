package app

import (
	"io"
	"log/slog"
	"strings"
)

// LogFormatJSON selects the JSON handler; anything else logs as text.
const LogFormatJSON = "json"

// parseLevel accepts the names understood by slog ("debug", "WARN",
// "info+2", ...). Unknown input falls back to info.
func parseLevel(levelStr string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(levelStr))); err != nil {
		return slog.LevelInfo
	}
	return level
}

// newLogger creates and configures a new slog.Logger instance. It does not
// set the global logger, so every App logs through its own writer.
func newLogger(levelStr, formatStr string, logW io.Writer) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{Level: parseLevel(levelStr)}

	if strings.EqualFold(formatStr, LogFormatJSON) {
		return slog.New(slog.NewJSONHandler(logW, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(logW, handlerOpts))
}
