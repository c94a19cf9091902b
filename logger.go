package fontdata

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record. It backs the package logger until SetLogger is called.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var nopLogger = slog.New(nopHandler{})

// logger is read by Collection methods from multiple goroutines.
var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(nopLogger)
}

// SetLogger sets the logger used by the package, by default nothing is logged. Pass nil to disable logging again.
//
// Debug is used for parsed descriptors carrying foreign platform fields and for fonts added to a Collection, Warn
// for collection lookups that fall back to a different style.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = nopLogger
	}
	logger.Store(l)
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return logger.Load()
}
