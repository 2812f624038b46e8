// Package logging provides the leveled console logger shared by all
// components. The logger is constructed once from the --verbose/--quiet flags
// and passed explicitly into each component rather than held as process-global
// state, so components stay independently testable.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger writes human-oriented progress output for a single invocation.
type Logger struct {
	zl zerolog.Logger
}

// New builds a Logger for the given verbosity flags. Quiet wins over verbose
// and suppresses everything below error level; the CLI layer rejects the
// combination before constructing a Logger, so the precedence here only
// matters for direct library use.
func New(verbose, quiet bool, out io.Writer) *Logger {
	if out == nil {
		out = os.Stderr
	}

	level := zerolog.InfoLevel
	switch {
	case quiet:
		level = zerolog.ErrorLevel
	case verbose:
		level = zerolog.DebugLevel
	}

	console := zerolog.ConsoleWriter{
		Out:          out,
		PartsExclude: []string{zerolog.TimestampFieldName},
	}

	return &Logger{zl: zerolog.New(console).Level(level)}
}

// Nop returns a logger that discards everything. Used by tests.
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

// Info reports a progress step. Suppressed in quiet mode.
func (l *Logger) Info(format string, args ...any) {
	l.zl.Info().Msgf(format, args...)
}

// Debug reports detail shown only in verbose mode.
func (l *Logger) Debug(format string, args ...any) {
	l.zl.Debug().Msgf(format, args...)
}

// Warn reports a non-fatal condition. Suppressed in quiet mode.
func (l *Logger) Warn(format string, args ...any) {
	l.zl.Warn().Msgf(format, args...)
}

// Error reports a failure. Always shown.
func (l *Logger) Error(format string, args ...any) {
	l.zl.Error().Msgf(format, args...)
}
