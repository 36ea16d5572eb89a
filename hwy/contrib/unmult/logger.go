package unmult

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards all records. Enabled reports false so callers skip
// formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var nopLogger = slog.New(nopHandler{})

// loggerPtr holds the active logger; nil means silent. It is read during
// package initialization, so the zero value must be usable.
var loggerPtr atomic.Pointer[slog.Logger]

// SetLogger configures the logger used by this package. By default nothing
// is logged. Pass nil to restore the silent default. Safe for concurrent use.
//
// Kernel resolution is logged at [slog.LevelDebug].
func SetLogger(l *slog.Logger) {
	loggerPtr.Store(l)
}

// Logger returns the current package logger.
func Logger() *slog.Logger {
	if l := loggerPtr.Load(); l != nil {
		return l
	}
	return nopLogger
}
