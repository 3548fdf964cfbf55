package vidframe

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record. Enabled reports false, so disabled log
// calls never format their attributes.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var silent = slog.New(nopHandler{})

// activeLogger is read by New when a Renderer is created.
var activeLogger atomic.Pointer[slog.Logger]

func init() {
	activeLogger.Store(silent)
}

// SetLogger sets the logger picked up by Renderers created afterwards and by
// the encoders they start. A Renderer keeps the logger it was created with.
// Passing nil silences logging again, which is the default.
//
// Records written:
//   - [slog.LevelDebug]: layout metrics, every frame started and finished
//   - [slog.LevelInfo]: encoder format and path, intro frame count
//   - [slog.LevelWarn]: a frame whose variable reference is not on screen
//
// Example:
//
//	// Progress of a long render on stderr
//	vidframe.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
//	defer vidframe.SetLogger(nil)
//
//	r, err := vidframe.New("fib.mp4", cfg)
//
// Use [WithLogger] to give a single Renderer its own logger instead.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	activeLogger.Store(l)
}

// Logger returns the logger set by [SetLogger].
func Logger() *slog.Logger {
	return activeLogger.Load()
}
