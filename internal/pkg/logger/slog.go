package logger

import (
	"context"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/lmittmann/tint"
)

type contextKey string

const RequestIDKey contextKey = "request_id"

const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// StackTraceHandler is a handler that adds stack trace to error records
// and extracts request_id from context
type StackTraceHandler struct {
	slog.Handler
}

func (h *StackTraceHandler) Handle(ctx context.Context, r slog.Record) error {
	if ctx != nil {
		if reqID, ok := ctx.Value(RequestIDKey).(string); ok {
			r.AddAttrs(slog.String("request_id", reqID))
		}
	}

	if r.Level >= slog.LevelError {
		buf := make([]byte, 4096)
		n := runtime.Stack(buf, false)
		r.AddAttrs(slog.String("stack_trace", string(buf[:n])))
	}
	return h.Handler.Handle(ctx, r)
}

func (h *StackTraceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &StackTraceHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *StackTraceHandler) WithGroup(name string) slog.Handler {
	return &StackTraceHandler{Handler: h.Handler.WithGroup(name)}
}

// InitStructuredLogger initialize structured logger. format "console" gives a
// colored text output for local runs, anything else is JSON.
func InitStructuredLogger(level slog.Leveler, format string) {
	addSource := level.Level() == slog.LevelDebug

	var base slog.Handler
	if format == FormatConsole {
		base = tint.NewHandler(os.Stdout, &tint.Options{
			Level:      level,
			AddSource:  addSource,
			TimeFormat: time.DateTime,
		})
	} else {
		base = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level:     level,
			AddSource: addSource,
		})
	}

	slog.SetDefault(slog.New(&StackTraceHandler{Handler: base}))
}
