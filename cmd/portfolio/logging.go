package main

import (
	"io"
	"log/slog"
)

// newLogger returns a text logger on w. Info by default, Debug with
// verbose, Error only with quiet. quiet wins when both are set.
func newLogger(w io.Writer, f commonFlags) *slog.Logger {
	level := slog.LevelInfo
	switch {
	case f.quiet:
		level = slog.LevelError
	case f.verbose:
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
