// Package logging configures the process-wide slog logger.
package logging

import (
	"context"
	"log/slog"
	"os"
	"runtime"
	"strings"
)

const serviceName = "timegrid"

// Setup installs the default logger. LOG_LEVEL picks the threshold
// (DEBUG/INFO/WARN/ERROR, default INFO); LOG_FORMAT=text switches the
// JSON output to the text handler for local runs. Records at ERROR and
// above carry a stack trace.
func Setup() {
	opts := &slog.HandlerOptions{
		Level:     levelFromEnv(),
		AddSource: true,
	}

	var h slog.Handler
	if strings.EqualFold(os.Getenv("LOG_FORMAT"), "text") {
		h = slog.NewTextHandler(os.Stdout, opts)
	} else {
		h = slog.NewJSONHandler(os.Stdout, opts)
	}
	h = h.WithAttrs([]slog.Attr{slog.String("service", serviceName)})
	slog.SetDefault(slog.New(traced(h)))
}

func levelFromEnv() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(os.Getenv("LOG_LEVEL"))); err != nil {
		return slog.LevelInfo
	}
	return level
}

// Fatal logs at ERROR and exits with code 1.
func Fatal(msg string, args ...any) {
	slog.Error(msg, args...)
	os.Exit(1)
}

// traceHandler decorates records at or above its threshold with the
// goroutine's stack trace.
type traceHandler struct {
	slog.Handler
	threshold slog.Level
}

func traced(h slog.Handler) *traceHandler {
	return &traceHandler{Handler: h, threshold: slog.LevelError}
}

func (h *traceHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= h.threshold {
		buf := make([]byte, 8192)
		r.AddAttrs(slog.String("stacktrace", string(buf[:runtime.Stack(buf, false)])))
	}
	return h.Handler.Handle(ctx, r)
}

func (h *traceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &traceHandler{Handler: h.Handler.WithAttrs(attrs), threshold: h.threshold}
}

func (h *traceHandler) WithGroup(name string) slog.Handler {
	return &traceHandler{Handler: h.Handler.WithGroup(name), threshold: h.threshold}
}
