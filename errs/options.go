package errs

// Option configures an Err during construction
type Option func(*Err)

// WithCode overrides the code
func WithCode(code string) Option { return func(e *Err) { e.code = code } }

// WithDescription overrides the description
func WithDescription(description string) Option {
	return func(e *Err) { e.description = description }
}

// WithCategory sets the category. Category constructors ignore it.
func WithCategory(c Category) Option { return func(e *Err) { e.category = c } }

// WithCause sets the underlying cause returned by Unwrap
func WithCause(cause error) Option { return func(e *Err) { e.cause = cause } }

func newCategory(c Category, opts []Option) Err {
	code, description := Default(c)
	e := New(code, description, opts...)
	e.category = c

	return e
}

// Failure creates a Failure Err with code "General.Failure" unless overridden
func Failure(opts ...Option) Err { return newCategory(CategoryFailure, opts) }

// Unexpected creates an Unexpected Err with code "General.Unexpected" unless overridden
func Unexpected(opts ...Option) Err { return newCategory(CategoryUnexpected, opts) }

// Validation creates a Validation Err with code "General.Validation" unless overridden
func Validation(opts ...Option) Err { return newCategory(CategoryValidation, opts) }

// Conflict creates a Conflict Err with code "General.Conflict" unless overridden
func Conflict(opts ...Option) Err { return newCategory(CategoryConflict, opts) }

// NotFound creates a NotFound Err with code "General.NotFound" unless overridden
func NotFound(opts ...Option) Err { return newCategory(CategoryNotFound, opts) }

// Unauthorized creates an Unauthorized Err with code "General.UnAuthorized" unless overridden
func Unauthorized(opts ...Option) Err { return newCategory(CategoryUnauthorized, opts) }
