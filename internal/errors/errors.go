package errors

import (
	"errors"
	"fmt"

	"codeberg.org/mutker/goresult/errs"
)

// Basic error check functions from standard library
var (
	Is = errors.Is
	As = errors.As
)

// appError implements the Error interface
type appError struct {
	code    ErrorCode
	message string
	err     error
	data    any
}

func (e *appError) Error() string {
	msg := e.Message()

	if e.data != nil {
		return fmt.Sprintf("%s: %v", msg, e.data)
	}

	if e.err != nil {
		return fmt.Sprintf("%s: %v", msg, e.err)
	}

	return msg
}

func (e *appError) Code() ErrorCode {
	return e.code
}

// Message returns the explicit message or the default one for the code
func (e *appError) Message() string {
	if e.message == "" {
		return GetErrorMessage(e.code)
	}

	return e.message
}

func (e *appError) WithMessage(msg string) Error {
	return &appError{
		code:    e.code,
		message: msg,
		err:     e.err,
		data:    e.data,
	}
}

func (e *appError) WithData(data any) Error {
	return &appError{
		code:    e.code,
		message: e.message,
		err:     e.err,
		data:    data,
	}
}

func (e *appError) GetData() any {
	return e.data
}

func (e *appError) Unwrap() error {
	return e.err
}

func (e *appError) Err() errs.Err {
	return errs.New(string(e.code), e.Error(),
		errs.WithCategory(Category(e.code)),
		errs.WithCause(e),
	)
}

type defaultFactory struct{}

func (*defaultFactory) New(code ErrorCode) Error {
	return &appError{
		code: code,
	}
}

func (*defaultFactory) Wrap(code ErrorCode, err error) Error {
	return &appError{
		code: code,
		err:  err,
	}
}

func (*defaultFactory) WithMessage(code ErrorCode, msg string) Error {
	return &appError{
		code:    code,
		message: msg,
	}
}

func (*defaultFactory) WithData(code ErrorCode, data any) Error {
	return &appError{
		code: code,
		data: data,
	}
}

// New creates a Factory instance for error creation
func New() Factory {
	return &defaultFactory{}
}

// ToErr converts any error into an errs.Err. An errs.Err already in the
// chain wins over an application error; anything else is captured with
// errs.Catch. A nil error yields the zero Err.
func ToErr(err error) errs.Err {
	if err == nil {
		return errs.Err{}
	}

	if e, ok := errs.As(err); ok {
		return e
	}

	var appErr Error
	if errors.As(err, &appErr) {
		return appErr.Err()
	}

	return errs.Catch(err)
}

// HasCode reports whether err carries an application error with the given code
func HasCode(err error, code ErrorCode) bool {
	var appErr Error
	return errors.As(err, &appErr) && appErr.Code() == code
}
