package errors

import "codeberg.org/mutker/goresult/errs"

// Common error codes
const (
	// System errors
	ErrInternal        ErrorCode = "internal_error"
	ErrInvalidArgument ErrorCode = "invalid_argument"

	// Configuration errors
	ErrInvalidConfig ErrorCode = "invalid_configuration"
	ErrBindFlags     ErrorCode = "bind_flags_failed"
	ErrReadConfig    ErrorCode = "read_config_failed"

	// Logging errors
	ErrInvalidLogLevel ErrorCode = "invalid_log_level"

	// Initialization errors
	ErrInitFailed     ErrorCode = "initialization_failed"
	ErrShutdownFailed ErrorCode = "shutdown_failed"

	// Resource errors
	ErrResourceNotFound ErrorCode = "resource_not_found"
	ErrResourceExists   ErrorCode = "resource_exists"

	// Operation errors
	ErrOperationFailed ErrorCode = "operation_failed"
	ErrTimeout         ErrorCode = "operation_timeout"
)

// Common error messages
var errorMessages = map[ErrorCode]string{
	ErrInternal:         "Internal error occurred",
	ErrInvalidArgument:  "Invalid argument provided",
	ErrInvalidConfig:    "Invalid configuration",
	ErrBindFlags:        "Failed to bind flags",
	ErrReadConfig:       "Failed to read config file",
	ErrInvalidLogLevel:  "Invalid log level",
	ErrInitFailed:       "Initialization failed",
	ErrShutdownFailed:   "Shutdown failed",
	ErrResourceNotFound: "Resource not found",
	ErrResourceExists:   "Resource already exists",
	ErrOperationFailed:  "Operation failed",
	ErrTimeout:          "Operation timed out",
}

// Codes without an entry map to errs.CategoryUnexpected
var errorCategories = map[ErrorCode]errs.Category{
	ErrInvalidArgument:  errs.CategoryValidation,
	ErrInvalidConfig:    errs.CategoryValidation,
	ErrInvalidLogLevel:  errs.CategoryValidation,
	ErrResourceNotFound: errs.CategoryNotFound,
	ErrResourceExists:   errs.CategoryConflict,
	ErrOperationFailed:  errs.CategoryFailure,
	ErrTimeout:          errs.CategoryFailure,
}

// GetErrorMessage returns the message for a given error code
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}

	return string(code)
}

// Category returns the errs.Category a code is reported under
func Category(code ErrorCode) errs.Category {
	if c, ok := errorCategories[code]; ok {
		return c
	}

	return errs.CategoryUnexpected
}
