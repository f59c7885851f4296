// Package logx configures the process logger.
package logx

import (
	"io"
	"log/slog"
)

// New returns a text logger writing to w. verbose enables debug records.
func New(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Setup installs New(w, verbose) as the slog default and returns it.
func Setup(w io.Writer, verbose bool) *slog.Logger {
	l := New(w, verbose)
	slog.SetDefault(l)
	return l
}

// Discard is a logger that drops everything, for tests.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
