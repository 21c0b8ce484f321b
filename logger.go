package chart

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards every record. Enabled reports false so callers skip
// building attributes altogether.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for chart and its sub-packages.
// By default nothing is logged. Pass nil to restore the silent default.
//
// Log levels used by chart:
//   - [slog.LevelDebug]: skipped sub-operations (degenerate geometry,
//     canvas fill/stroke errors, cubic-to-linear fallback)
//   - [slog.LevelWarn]: configuration mistakes that disable a feature for
//     the frame (gradient line without positions)
//
// Example:
//
//	chart.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
//
// SetLogger is safe for concurrent use.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the logger used by chart. Sub-packages call it to share
// one configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
