// Package log wraps log/slog with a process-wide logger whose level is
// driven by the CLI's -v count. Diagnostics always go to stderr so they
// never mix with report output.
package log

import (
	"io"
	"log/slog"
	"os"
	"sync/atomic"
)

var (
	logger atomic.Pointer[slog.Logger]
	level  = new(slog.LevelVar)
)

func init() {
	level.Set(slog.LevelWarn)
	logger.Store(slog.New(NewHandler(HandlerOptions{Level: level, Output: os.Stderr})))
}

// InitWithOutput configures the global logger to write to w. It is called
// once per command run with the command's stderr.
func InitWithOutput(verbosity int, format string, w io.Writer) {
	level.Set(VerbosityToLevel(verbosity))
	l := slog.New(NewHandler(HandlerOptions{Level: level, Format: format, Output: w}))
	logger.Store(l)
}

// VerbosityToLevel maps a -v count to a slog level.
func VerbosityToLevel(v int) slog.Level {
	switch {
	case v <= 0:
		return slog.LevelWarn
	case v == 1:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}

func Warn(msg string, args ...any) { logger.Load().Warn(msg, args...) }

// Component returns a logger tagged with component name.
func Component(name string) *slog.Logger {
	return logger.Load().With("component", name)
}
