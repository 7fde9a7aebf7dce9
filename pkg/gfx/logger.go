package gfx

import (
	"log/slog"
	"sync/atomic"
)

func newNopLogger() *slog.Logger { return slog.New(slog.DiscardHandler) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger used by gfx. By default nothing is logged.
// Pass nil to restore the silent default.
//
// Shader compiler and linker diagnostics are reported at [slog.LevelWarn],
// pipeline lifecycle at [slog.LevelDebug].
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
