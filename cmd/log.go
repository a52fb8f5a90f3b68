package cmd

import (
	"io"
	"log/slog"
	"os"
)

var logger = newLogger(os.Stderr, os.Getenv("HOSTNET_DEBUG"))

// newLogger returns a text logger that only shows debug output when debug is
// set to something other than "" or "0".
func newLogger(w io.Writer, debug string) *slog.Logger {
	level := slog.LevelWarn
	if debug != "" && debug != "0" {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
