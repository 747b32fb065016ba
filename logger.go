package curve3d

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discardHandler drops every record and reports every level as disabled,
// so callers skip attribute formatting entirely.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (h discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h discardHandler) WithGroup(string) slog.Handler           { return h }

var discard = slog.New(discardHandler{})

// active holds the configured logger; nil means silent.
var active atomic.Pointer[slog.Logger]

// SetLogger routes log output of curve3d and its internal packages to l.
// Nothing is logged by default. Passing nil silences the package again.
// Safe for concurrent use.
//
// Records are emitted at [slog.LevelDebug] only: length sampling,
// out-of-range point edits that were ignored, arc table eviction and
// preview rendering.
//
//	curve3d.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	active.Store(l)
}

// Logger returns the logger set by SetLogger, or a discarding logger.
func Logger() *slog.Logger {
	if l := active.Load(); l != nil {
		return l
	}
	return discard
}

func debugEnabled() bool {
	return Logger().Enabled(context.Background(), slog.LevelDebug)
}
