// Package logx holds pslog helpers shared by the tabstate commands.
package logx

import (
	"context"
	"fmt"
	"io"
	"strings"

	"pkt.systems/pslog"
)

type contextKey int

const sourceKey contextKey = iota

// Level is a log verbosity accepted on the command line and in config.
type Level string

const (
	LevelTrace Level = "trace"
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelError Level = "error"
	LevelQuiet Level = "quiet"
)

// Levels lists the accepted level names.
func Levels() []Level {
	return []Level{LevelTrace, LevelDebug, LevelInfo, LevelError, LevelQuiet}
}

// ParseLevel normalizes a level name.
func ParseLevel(value string) (Level, error) {
	level := Level(strings.ToLower(strings.TrimSpace(value)))
	for _, known := range Levels() {
		if level == known {
			return level, nil
		}
	}
	return "", fmt.Errorf("unsupported log level %q", value)
}

// NewLogger builds a console logger at level writing to w. LevelQuiet
// discards everything.
func NewLogger(w io.Writer, level Level) pslog.Logger {
	if level == LevelQuiet {
		w = io.Discard
	}
	return pslog.NewWithOptions(w, options(level))
}

func options(level Level) pslog.Options {
	opts := pslog.Options{Mode: pslog.ModeConsole, MinLevel: pslog.ErrorLevel}
	switch level {
	case LevelTrace:
		opts.MinLevel = pslog.TraceLevel
	case LevelDebug:
		opts.MinLevel = pslog.DebugLevel
	case LevelInfo:
		opts.MinLevel = pslog.InfoLevel
	}
	return opts
}

// Ctx returns the logger bound to the provided context.
func Ctx(ctx context.Context) pslog.Logger {
	return pslog.Ctx(ctx)
}

// WithSource annotates the logger with the tab state file being processed.
func WithSource(ctx context.Context, source string) pslog.Logger {
	log := pslog.Ctx(ctx)
	if source == "" {
		return log
	}
	if current, ok := ctx.Value(sourceKey).(string); ok && current == source {
		return log
	}
	return log.With("source", source)
}

// ContextWithSource attaches the logger and source marker to the context.
func ContextWithSource(ctx context.Context, log pslog.Logger, source string) context.Context {
	ctx = pslog.ContextWithLogger(ctx, log)
	if source == "" {
		return ctx
	}
	return context.WithValue(ctx, sourceKey, source)
}
