package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
)

// NewLogger returns a structured slog.Logger with the given level. A terminal
// gets the text handler, anything else (pipes, files) gets JSON. Every record
// carries the run id so interleaved logs of several runs can be told apart.
func NewLogger(level slog.Leveler) *slog.Logger {
	return newLogger(os.Stdout, isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()), level)
}

func newLogger(w io.Writer, terminal bool, level slog.Leveler) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if terminal {
		h = slog.NewTextHandler(w, opts)
	} else {
		h = slog.NewJSONHandler(w, opts)
	}
	return slog.New(h).With(slog.String("run", uuid.NewString()))
}
