// Package logging builds the zerolog logger used for diagnostics.
//
// Loggers are plain values handed to the components that need them; nothing
// here touches the zerolog global logger.
package logging

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// New returns a console logger writing to w. Warnings and errors are always
// shown; verbose enables debug output.
func New(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	console := zerolog.ConsoleWriter{
		Out:          w,
		NoColor:      !isTerminal(w),
		PartsExclude: []string{zerolog.TimestampFieldName},
	}

	return zerolog.New(console).Level(level)
}

// Component returns a child logger tagged with the given component name.
func Component(logger zerolog.Logger, name string) zerolog.Logger {
	return logger.With().Str("component", name).Logger()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
