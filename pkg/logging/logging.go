// Package logging configures colored structured logging with tint.
//
// Usage:
//
//	logging.Setup()                             // level from LOG_LEVEL env
//	logging.SetupWithLevel(slog.LevelDebug)     // explicit level override
//	logging.SetupWithWriter(file, level)        // log somewhere other than stderr
//
// Environment variables:
//
//	LOG_LEVEL: debug, info, warn, error (default: info)
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Setup configures colored logging at the level specified by LOG_LEVEL env var
// (default: INFO).
func Setup() {
	SetupWithLevel(ParseLevel(os.Getenv("LOG_LEVEL")))
}

// SetupWithLevel configures colored logging to stderr at the given level.
func SetupWithLevel(level slog.Level) {
	SetupWithWriter(os.Stderr, level)
}

// SetupWithWriter configures logging to w. Colors are only used when w is a
// terminal, so log files stay free of escape codes.
func SetupWithWriter(w io.Writer, level slog.Level) {
	slog.SetDefault(slog.New(NewHandler(w, level)))
}

// NewHandler returns the tint handler used by Setup.
func NewHandler(w io.Writer, level slog.Level) slog.Handler {
	return tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		AddSource:  true,
		NoColor:    !isTerminal(w),
	})
}

// ParseLevel maps debug, warn and error to their slog levels; anything else is INFO.
func ParseLevel(value string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
