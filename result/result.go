// Package result provides Result, a container holding exactly one of a
// success value or a categorized errs.Err.
//
// A fallible operation returns a Result instead of a bare error; the caller
// branches on it with IsError or Match:
//
//	res := users.CreateUser("John", "Doe", 22)
//	res.Match(
//		func(u users.User) { fmt.Println("created", u.FirstName) },
//		func(e errs.Err) { fmt.Println(e.Code(), e.Description()) },
//	)
//
// The error list is kept list-shaped for future multi-error results, but
// every constructor in this package populates at most one entry.
package result

import (
	"codeberg.org/mutker/goresult/errs"
	"go.uber.org/multierr"
)

// Result holds either a value of type T or the errors describing why there
// is none. The zero Result is a success carrying the zero T.
type Result[T any] struct {
	value  T
	errors []errs.Err
}

// FromValue creates a success Result. An errs.Err passed as the value
// (directly or as a non-nil *errs.Err) is treated as FromError.
func FromValue[T any](v T) Result[T] {
	switch e := any(v).(type) {
	case errs.Err:
		return FromError[T](e)
	case *errs.Err:
		if e != nil {
			return FromError[T](*e)
		}
	}

	return Result[T]{value: v}
}

// FromError creates a failure Result holding e
func FromError[T any](e errs.Err) Result[T] {
	return Result[T]{errors: []errs.Err{e}}
}

// IsError reports whether the Result holds an error
func (r Result[T]) IsError() bool {
	return len(r.errors) > 0
}

// Errors returns a copy of the error list, nil on success
func (r Result[T]) Errors() []errs.Err {
	if len(r.errors) == 0 {
		return nil
	}

	out := make([]errs.Err, len(r.errors))
	copy(out, r.errors)

	return out
}

// FirstError returns the first error, if any
func (r Result[T]) FirstError() (errs.Err, bool) {
	if len(r.errors) == 0 {
		return errs.Err{}, false
	}

	return r.errors[0], true
}

// Value returns the success value. On an error Result it returns the zero
// value and false; it never panics.
func (r Result[T]) Value() (T, bool) {
	if r.IsError() {
		var zero T
		return zero, false
	}

	return r.value, true
}

// ValueOr returns the success value, or fallback on an error Result
func (r Result[T]) ValueOr(fallback T) T {
	if r.IsError() {
		return fallback
	}

	return r.value
}

// Match calls onError with the first error if the Result is an error, and
// onSuccess with the value otherwise. Exactly one branch runs, before Match
// returns. A nil callback for the selected branch does nothing.
func (r Result[T]) Match(onSuccess func(T), onError func(errs.Err)) {
	if first, ok := r.FirstError(); ok {
		if onError != nil {
			onError(first)
		}
		return
	}

	if onSuccess != nil {
		onSuccess(r.value)
	}
}

// Err returns nil on success and the combined errors otherwise
func (r Result[T]) Err() error {
	if len(r.errors) == 0 {
		return nil
	}

	combined := make([]error, 0, len(r.errors))
	for _, e := range r.errors {
		combined = append(combined, e)
	}

	return multierr.Combine(combined...)
}

// Get unpacks the Result into the conventional (value, error) pair
func (r Result[T]) Get() (T, error) {
	v, _ := r.Value()
	return v, r.Err()
}
