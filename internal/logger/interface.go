package logger

import (
	"codeberg.org/mutker/goresult/errs"
	"codeberg.org/mutker/goresult/internal/errors"
)

// Logger defines the interface for logging operations.
type Logger interface {
	Debug() *LogEvent
	Info() *LogEvent
	Warn() *LogEvent
	Error() *LogEvent
	ErrorWithCode(err errors.Error) *LogEvent
	ErrorWithErr(e errs.Err) *LogEvent
	ErrorWithContext(err errors.Error, component, operation string) *LogEvent
}
