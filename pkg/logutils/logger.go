// Package logutils constructs the zerolog logger shared by the CLI commands.
package logutils

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New returns a logger writing human-readable output to w at the given level.
// Level is one of: debug, info, warn, error, fatal.
func New(level string, w io.Writer) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Logger{}, err
	}

	if w == nil {
		w = os.Stderr
	}

	out := zerolog.ConsoleWriter{Out: w}
	return zerolog.New(out).With().Timestamp().Logger().Level(lvl), nil
}
