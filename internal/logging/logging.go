// Package logging configures the diagnostic logger used by the CLI. Logs go to
// stderr so stdout carries nothing but command output.
package logging

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// Level is the shared log level. Diagnostics stay quiet unless verbose.
var Level = func() *slog.LevelVar {
	l := new(slog.LevelVar)
	l.Set(slog.LevelWarn)
	return l
}()

// Setup installs the default slog logger writing to w. Terminals get tint's
// colored output, anything else gets JSON.
func Setup(w io.Writer, verbose bool) {
	if verbose {
		Level.Set(slog.LevelDebug)
	} else {
		Level.Set(slog.LevelWarn)
	}
	slog.SetDefault(slog.New(NewHandler(w)))
}

// NewHandler picks the handler for w.
func NewHandler(w io.Writer) slog.Handler {
	if f, ok := w.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return tint.NewHandler(w, &tint.Options{
			Level:      Level,
			TimeFormat: time.TimeOnly,
		})
	}
	return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: Level})
}
