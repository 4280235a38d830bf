// Package errs provides Err, an immutable, categorized error record, and
// constructors for the common categories.
//
// An Err carries a stable machine-readable code (e.g. "User.NotFound"),
// a human-readable description, a Category and, when it was produced from a
// lower-level failure, the underlying cause. Err implements error and
// supports errors.Is / errors.As through Is and Unwrap.
package errs

import (
	"errors"
	"fmt"
	"reflect"
)

// Err is a structured, categorized error. The zero value is an Err with no
// code, no description and CategoryNone. Err values are not comparable
// with ==; use errors.Is, which compares code and category.
type Err struct {
	_ [0]func()

	code        string
	description string
	category    Category
	cause       error
}

// New creates an Err with the given code and description. The category is
// left unset and the cause absent unless provided through options.
func New(code, description string, opts ...Option) Err {
	e := Err{
		code:        code,
		description: description,
	}
	for _, o := range opts {
		o(&e)
	}

	return e
}

// Catch converts an already-produced error into an Unexpected Err. The code
// is the runtime type name of fault, the description its message, and the
// cause fault itself. A nil fault yields the Unexpected defaults.
func Catch(fault error) Err {
	if fault == nil {
		return Unexpected()
	}

	return Err{
		code:        typeName(fault),
		description: fault.Error(),
		category:    CategoryUnexpected,
		cause:       fault,
	}
}

func (e Err) Code() string        { return e.code }
func (e Err) Description() string { return e.description }
func (e Err) Category() Category  { return e.category }
func (e Err) Cause() error        { return e.cause }

// Error implements the error interface
func (e Err) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.code, e.description, e.cause)
	}

	return fmt.Sprintf("%s: %s", e.code, e.description)
}

func (e Err) Unwrap() error {
	return e.cause
}

// Is reports whether target is an Err with the same code and category.
// Descriptions and causes are not compared.
func (e Err) Is(target error) bool {
	switch t := target.(type) {
	case Err:
		return e.code == t.code && e.category == t.category
	case *Err:
		return t != nil && e.code == t.code && e.category == t.category
	default:
		return false
	}
}

// As returns the first Err found in the chain of err
func As(err error) (Err, bool) {
	var e Err
	if errors.As(err, &e) {
		return e, true
	}

	var pe *Err
	if errors.As(err, &pe) && pe != nil {
		return *pe, true
	}

	return Err{}, false
}

// CategoryOf returns the category of the first Err in the chain of err,
// or CategoryNone when there is none.
func CategoryOf(err error) Category {
	if e, ok := As(err); ok {
		return e.category
	}

	return CategoryNone
}

func typeName(v any) string {
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if name := t.Name(); name != "" {
		return name
	}

	return t.String()
}
