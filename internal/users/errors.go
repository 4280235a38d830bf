package users

import (
	"codeberg.org/mutker/goresult/errs"
	"codeberg.org/mutker/goresult/internal/errors"
)

const (
	// Configuration Errors
	ErrInvalidConfig = errors.ErrInvalidConfig
	ErrInvalidDBPath = errors.ErrorCode("users_invalid_db_path")

	// Schema Errors
	ErrSchemaInitFailed       = errors.ErrorCode("users_schema_init_failed")
	ErrSchemaValidationFailed = errors.ErrorCode("users_schema_validation_failed")
	ErrSchemaMigrationFailed  = errors.ErrorCode("users_schema_migration_failed")

	// Storage Errors
	ErrStorageAccess = errors.ErrorCode("users_storage_access_failed")
	ErrStorageInit   = errors.ErrInitFailed
	ErrStorageClose  = errors.ErrShutdownFailed
	ErrRecordMissing = errors.ErrResourceNotFound
	ErrRecordExists  = errors.ErrResourceExists

	// Operation Errors
	ErrInvalidID        = errors.ErrInvalidArgument
	ErrOperationTimeout = errors.ErrTimeout
)

// Errors reported to callers through results
var (
	ErrMissingName = errs.Validation(
		errs.WithCode("MissingName"),
		errs.WithDescription("Firstname or lastname is missing"),
	)
	ErrUnderage = errs.Validation(
		errs.WithCode("Underage"),
		errs.WithDescription("The user is underage"),
	)
	ErrUserNotFound = errs.NotFound(
		errs.WithCode("User.NotFound"),
		errs.WithDescription("User not found"),
	)
	ErrUserExists = errs.Conflict(
		errs.WithCode("User.Exists"),
		errs.WithDescription("User already exists"),
	)
)

// toErr maps a repository error onto the Err reported to callers
func toErr(err error) errs.Err {
	switch {
	case errors.HasCode(err, ErrRecordMissing):
		return errs.New(ErrUserNotFound.Code(), ErrUserNotFound.Description(),
			errs.WithCategory(ErrUserNotFound.Category()),
			errs.WithCause(err),
		)
	case errors.HasCode(err, ErrRecordExists):
		return errs.New(ErrUserExists.Code(), ErrUserExists.Description(),
			errs.WithCategory(ErrUserExists.Category()),
			errs.WithCause(err),
		)
	default:
		return errors.ToErr(err)
	}
}
