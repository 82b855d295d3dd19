package replay

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// silentHandler drops every record. Enabled reports false, so a disabled
// call site never builds its attributes.
type silentHandler struct{}

func (silentHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (silentHandler) Handle(context.Context, slog.Record) error { return nil }
func (h silentHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h silentHandler) WithGroup(string) slog.Handler           { return h }

// silent is shared by every package until SetLogger installs a real one.
var silent = slog.New(silentHandler{})

// current is read on every log call. The engine logs from the goroutine
// that drives gestures and the clock, while preview.Pool workers log from
// their own goroutines, so the pointer is swapped and loaded atomically.
var current atomic.Pointer[slog.Logger]

func init() { current.Store(silent) }

// SetLogger routes the log output of replay and its sub-packages to l.
// Nothing is logged until it is called; nil silences logging again.
//
// SetLogger may be called while a session is running. Records already
// being written by a pool worker finish on the previous logger.
//
// Levels:
//   - Debug: opened events, appended samples, written frames
//   - Info: engine creation, playback restarts, cleared tracks, gestures
//     cut short by a tool switch or a rewind
//   - Warn: recordings stopped at the range end, leaked payloads, pointer
//     input on unknown entities
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	current.Store(l)
}

// Logger returns the logger installed by SetLogger.
func Logger() *slog.Logger {
	return current.Load()
}
