package logger

import (
	"io"
	"os"
	"syscall"
	"time"

	"codeberg.org/mutker/goresult/errs"
	"codeberg.org/mutker/goresult/internal/errors"
	"github.com/rs/zerolog"
)

var log = zerolog.New(io.Discard)

type LogLevel int8

const (
	DebugLevel LogLevel = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

type LogEvent struct {
	*zerolog.Event
}

func (e *LogEvent) Msg(msg string) {
	e.Event.Msg(msg)
}

func (e *LogEvent) Send() {
	e.Event.Send()
}

// Init initializes the logger based on the given configuration
func Init(debug, verbose, isService bool) {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}

	if isService {
		output.TimeFormat = ""
		output.FormatTimestamp = func(_ interface{}) string {
			return ""
		}
	}

	log = zerolog.New(output).With().Timestamp().Logger()

	SetLogLevel(WarnLevel) // Default log level

	if debug {
		SetLogLevel(DebugLevel)
	} else if verbose {
		SetLogLevel(InfoLevel)
	}
}

// SetLogLevel sets the global log level
func SetLogLevel(level LogLevel) {
	zerolog.SetGlobalLevel(zerolog.Level(level))
}

// ParseLevel maps a configured level name to a LogLevel
func ParseLevel(name string) (LogLevel, bool) {
	switch name {
	case "debug":
		return DebugLevel, true
	case "info":
		return InfoLevel, true
	case "warning", "warn":
		return WarnLevel, true
	case "error":
		return ErrorLevel, true
	default:
		return WarnLevel, false
	}
}

// IsService checks if the application is running as a service
func IsService() bool {
	if _, err := os.Stdin.Stat(); err != nil {
		return true
	}
	if os.Getenv("SERVICE_NAME") != "" || os.Getenv("INVOCATION_ID") != "" {
		return true
	}
	if os.Getppid() == 1 {
		return true
	}

	return syscall.Getpgrp() == syscall.Getpid()
}

// Debug logs a debug message
func Debug() *LogEvent {
	return &LogEvent{log.Debug()}
}

// Info logs an info message
func Info() *LogEvent {
	return &LogEvent{log.Info()}
}

// Warn logs a warning message
func Warn() *LogEvent {
	return &LogEvent{log.Warn()}
}

// Error logs an error message
func Error() *LogEvent {
	return &LogEvent{log.Error()}
}

// ErrorWithCode logs an error message with a specific error code
func ErrorWithCode(err errors.Error) *LogEvent {
	return withCode(log.Error(), err)
}

// ErrorWithErr logs an errs.Err with its code, category and description
func ErrorWithErr(e errs.Err) *LogEvent {
	return withErr(log.Error(), e)
}

// Default returns a Logger backed by the package-level logger
func Default() Logger {
	return &global{}
}

// New returns a Logger writing JSON lines to w, independent of Init
func New(w io.Writer) Logger {
	return &instance{log: zerolog.New(w).With().Timestamp().Logger()}
}

func withCode(ev *zerolog.Event, err errors.Error) *LogEvent {
	return &LogEvent{ev.
		Str("error_code", string(err.Code())).
		Str("error_message", err.Message()).
		AnErr("error", err.Unwrap())}
}

func withErr(ev *zerolog.Event, e errs.Err) *LogEvent {
	return &LogEvent{ev.
		Str("error_code", e.Code()).
		Str("error_category", e.Category().String()).
		Str("error_description", e.Description()).
		AnErr("error", e.Cause())}
}

func withContext(ev *zerolog.Event, err errors.Error, component, operation string) *LogEvent {
	return withCode(ev.Str("component", component).Str("operation", operation), err)
}

type global struct{}

func (*global) Debug() *LogEvent                         { return Debug() }
func (*global) Info() *LogEvent                          { return Info() }
func (*global) Warn() *LogEvent                          { return Warn() }
func (*global) Error() *LogEvent                         { return Error() }
func (*global) ErrorWithCode(err errors.Error) *LogEvent { return ErrorWithCode(err) }
func (*global) ErrorWithErr(e errs.Err) *LogEvent        { return ErrorWithErr(e) }
func (*global) ErrorWithContext(err errors.Error, component, operation string) *LogEvent {
	return withContext(log.Error(), err, component, operation)
}

type instance struct {
	log zerolog.Logger
}

func (l *instance) Debug() *LogEvent                         { return &LogEvent{l.log.Debug()} }
func (l *instance) Info() *LogEvent                          { return &LogEvent{l.log.Info()} }
func (l *instance) Warn() *LogEvent                          { return &LogEvent{l.log.Warn()} }
func (l *instance) Error() *LogEvent                         { return &LogEvent{l.log.Error()} }
func (l *instance) ErrorWithCode(err errors.Error) *LogEvent { return withCode(l.log.Error(), err) }
func (l *instance) ErrorWithErr(e errs.Err) *LogEvent        { return withErr(l.log.Error(), e) }
func (l *instance) ErrorWithContext(err errors.Error, component, operation string) *LogEvent {
	return withContext(l.log.Error(), err, component, operation)
}
