package renderer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/df07/go-mirror-raytracer/pkg/core"
)

// DefaultLogger implements core.Logger by writing plain lines to w
type DefaultLogger struct {
	w io.Writer
}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Fprintf(dl.w, format, args...)
}

// NewDefaultLogger creates a logger writing to w, or to stdout when w is nil
func NewDefaultLogger(w io.Writer) core.Logger {
	if w == nil {
		w = os.Stdout
	}
	return &DefaultLogger{w: w}
}

// SlogLogger forwards Printf calls to a structured logger at info level
type SlogLogger struct {
	logger *slog.Logger
}

// NewSlogLogger adapts l to core.Logger. A nil l uses slog.Default().
func NewSlogLogger(l *slog.Logger) core.Logger {
	if l == nil {
		l = slog.Default()
	}
	return &SlogLogger{logger: l}
}

func (sl *SlogLogger) Printf(format string, args ...interface{}) {
	if !sl.logger.Enabled(context.Background(), slog.LevelInfo) {
		return
	}
	sl.logger.Info(strings.TrimRight(fmt.Sprintf(format, args...), "\n"))
}

// nopHandler is a slog.Handler that silently discards all log records.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// NewNopLogger returns a logger that discards everything
func NewNopLogger() core.Logger {
	return &SlogLogger{logger: slog.New(nopHandler{})}
}
