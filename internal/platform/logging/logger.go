// Package logging builds the process-wide slog logger.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"survey-distance-service/internal/config"
	"survey-distance-service/internal/platform/obs"

	"gopkg.in/natefinch/lumberjack.v2"
)

// RequestIDHandler decorates a slog.Handler with the request ID carried by the context.
type RequestIDHandler struct {
	slog.Handler
}

func (h *RequestIDHandler) Handle(ctx context.Context, r slog.Record) error {
	if id := obs.RequestID(ctx); id != "" {
		r.AddAttrs(slog.String(string(obs.RequestIDKey), id))
	}
	return h.Handler.Handle(ctx, r)
}

func (h *RequestIDHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &RequestIDHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *RequestIDHandler) WithGroup(name string) slog.Handler {
	return &RequestIDHandler{Handler: h.Handler.WithGroup(name)}
}

// New returns a logger for cfg. The closer is
// non-nil only when logging to a rotated file.
func New(cfg config.LogConfig, service string) (*slog.Logger, io.Closer) {
	var (
		w      io.Writer
		closer io.Closer
	)

	switch {
	case cfg.File != "":
		lj := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		}
		w, closer = lj, lj
	case cfg.Output == "stderr":
		w = os.Stderr
	default:
		w = os.Stdout
	}

	return NewWithWriter(w, cfg, service), closer
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(w io.Writer, cfg config.LogConfig, service string) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: ParseLevel(cfg.Level),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				a.Key = "timestamp"
			}
			return a
		},
	}

	var h slog.Handler
	if cfg.Format == "text" {
		h = slog.NewTextHandler(w, opts)
	} else {
		h = slog.NewJSONHandler(w, opts)
	}

	return slog.New(&RequestIDHandler{Handler: h}).With(slog.String("service", service))
}

// Init builds the logger and installs it as slog's default.
func Init(cfg config.LogConfig, service string) (*slog.Logger, io.Closer) {
	logger, closer := New(cfg, service)
	slog.SetDefault(logger)
	return logger, closer
}

func ParseLevel(level string) slog.Level {
	switch level {
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
