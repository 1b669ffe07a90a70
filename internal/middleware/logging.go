package middleware

import (
	"log/slog"
	"time"

	"github.com/mmynk/tipcalculator/internal/form"
)

// LoggingHandler wraps a form handler so every input event is logged.
// It logs the event kind, the resulting tip, and how long the recompute took.
// Field text is logged only at debug level.
func LoggingHandler(next form.Handler) form.Handler {
	return func(ev form.Event) string {
		start := time.Now()

		result := next(ev)

		slog.Debug("Form event",
			"event", ev.Kind.String(),
			"text", ev.Text,
			"flag", ev.Flag,
			"result", result,
			"duration_us", time.Since(start).Microseconds(),
		)

		return result
	}
}
