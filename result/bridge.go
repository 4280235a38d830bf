package result

import (
	"fmt"

	"codeberg.org/mutker/goresult/errs"
)

// PanicError carries a value recovered from a panic inside Try
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap returns the panic value when it is itself an error
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}

	return nil
}

// From adapts a (value, error) pair. A nil error yields a success Result.
// An error carrying an errs.Err in its chain yields that Err; any other
// error is captured with errs.Catch.
func From[T any](v T, err error) Result[T] {
	if err == nil {
		return FromValue(v)
	}

	if e, ok := errs.As(err); ok {
		return FromError[T](e)
	}

	return FromError[T](errs.Catch(err))
}

// Try runs fn and converts its outcome with From. A panic inside fn is
// recovered and captured as an Unexpected Err wrapping a *PanicError.
func Try[T any](fn func() (T, error)) (res Result[T]) {
	defer func() {
		if r := recover(); r != nil {
			res = FromError[T](errs.Catch(&PanicError{Value: r}))
		}
	}()

	v, err := fn()

	return From(v, err)
}
