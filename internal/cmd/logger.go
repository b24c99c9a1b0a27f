package cmd

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

// LevelAnalysis sits between info and warn: one line per completed extraction.
const LevelAnalysis = slog.Level(2)

func newSlogger(w io.Writer, format string, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey {
				if lvl, ok := a.Value.Any().(slog.Level); ok && lvl == LevelAnalysis {
					return slog.String(slog.LevelKey, "ANALYSIS")
				}
			}
			return a
		},
	}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// slogAdapter satisfies features.Logger on top of slog.
type slogAdapter struct {
	l *slog.Logger
}

func (a slogAdapter) Log(level, stage, message, detail string) {
	a.l.Log(context.Background(), parseLevel(level), message, "stage", stage, "detail", detail)
}

func parseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	case "ANALYSIS":
		return LevelAnalysis
	default:
		return slog.LevelInfo
	}
}
