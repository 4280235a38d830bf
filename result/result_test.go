package result_test

import (
	"errors"
	"fmt"
	"testing"

	"codeberg.org/mutker/goresult/errs"
	"codeberg.org/mutker/goresult/result"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct {
	X, Y int
}

func TestFromValue(t *testing.T) {
	testCases := []struct {
		name  string
		check func(t *testing.T)
	}{
		{"int", func(t *testing.T) { assertSuccess(t, result.FromValue(42), 42) }},
		{"zero int", func(t *testing.T) { assertSuccess(t, result.FromValue(0), 0) }},
		{"string", func(t *testing.T) { assertSuccess(t, result.FromValue("hello"), "hello") }},
		{"struct", func(t *testing.T) { assertSuccess(t, result.FromValue(point{1, 2}), point{1, 2}) }},
		{"nil pointer", func(t *testing.T) { assertSuccess[*point](t, result.FromValue[*point](nil), nil) }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, tc.check)
	}
}

func assertSuccess[T any](t *testing.T, res result.Result[T], want T) {
	t.Helper()

	assert.False(t, res.IsError())
	assert.Empty(t, res.Errors())
	assert.NoError(t, res.Err())

	_, ok := res.FirstError()
	assert.False(t, ok)

	got, ok := res.Value()
	assert.True(t, ok)
	assert.Equal(t, want, got)
}

func TestFromError(t *testing.T) {
	e := errs.Validation(errs.WithCode("Invalid.Age"))
	res := result.FromError[int](e)

	assert.True(t, res.IsError())
	require.Len(t, res.Errors(), 1)
	assert.Equal(t, e, res.Errors()[0])

	first, ok := res.FirstError()
	require.True(t, ok)
	assert.Equal(t, e, first)

	v, ok := res.Value()
	assert.False(t, ok)
	assert.Zero(t, v)
	assert.Equal(t, 7, res.ValueOr(7))
}

func TestFromValueRedirectsErr(t *testing.T) {
	e := errs.Conflict()

	res := result.FromValue(e)
	assert.True(t, res.IsError())
	first, _ := res.FirstError()
	assert.Equal(t, e, first)

	ptr := result.FromValue(&e)
	assert.True(t, ptr.IsError())

	var nilErr *errs.Err
	assert.False(t, result.FromValue(nilErr).IsError())
}

func TestZeroResultIsSuccess(t *testing.T) {
	var res result.Result[string]

	assert.False(t, res.IsError())
	v, ok := res.Value()
	assert.True(t, ok)
	assert.Empty(t, v)
}

func TestErrorsReturnsCopy(t *testing.T) {
	res := result.FromError[int](errs.Failure())

	list := res.Errors()
	list[0] = errs.NotFound()

	first, _ := res.FirstError()
	assert.Equal(t, errs.CategoryFailure, first.Category())
}

func TestMatch(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var successCalls, errorCalls int
		var got string

		result.FromValue("John").Match(
			func(v string) { successCalls++; got = v },
			func(errs.Err) { errorCalls++ },
		)

		assert.Equal(t, 1, successCalls)
		assert.Equal(t, 0, errorCalls)
		assert.Equal(t, "John", got)
	})

	t.Run("error", func(t *testing.T) {
		var successCalls, errorCalls int
		var got errs.Err
		e := errs.New("MissingName", "Firstname or lastname is missing")

		result.FromError[string](e).Match(
			func(string) { successCalls++ },
			func(err errs.Err) { errorCalls++; got = err },
		)

		assert.Equal(t, 0, successCalls)
		assert.Equal(t, 1, errorCalls)
		assert.Equal(t, e, got)
	})

	t.Run("nil callbacks", func(t *testing.T) {
		assert.NotPanics(t, func() {
			result.FromValue(1).Match(nil, nil)
			result.FromError[int](errs.Failure()).Match(nil, nil)
		})
	})

	t.Run("callback panic propagates", func(t *testing.T) {
		assert.PanicsWithValue(t, "boom", func() {
			result.FromValue(1).Match(func(int) { panic("boom") }, nil)
		})
	})
}

func TestErrAndGet(t *testing.T) {
	e := errs.NotFound(errs.WithCode("User.NotFound"))

	v, err := result.FromError[int](e).Get()
	assert.Zero(t, v)
	require.Error(t, err)
	assert.ErrorIs(t, err, e)
	assert.Equal(t, errs.CategoryNotFound, errs.CategoryOf(err))

	v, err = result.FromValue(3).Get()
	assert.NoError(t, err)
	assert.Equal(t, 3, v)
}

func TestFrom(t *testing.T) {
	res := result.From(5, nil)
	assert.False(t, res.IsError())

	sentinel := errs.Unauthorized(errs.WithCode("Token.Expired"))
	res = result.From(0, fmt.Errorf("auth: %w", sentinel))
	first, ok := res.FirstError()
	require.True(t, ok)
	assert.Equal(t, "Token.Expired", first.Code())
	assert.Equal(t, errs.CategoryUnauthorized, first.Category())

	plain := errors.New("disk full")
	res = result.From(0, plain)
	first, ok = res.FirstError()
	require.True(t, ok)
	assert.Equal(t, "errorString", first.Code())
	assert.Equal(t, "disk full", first.Description())
	assert.Equal(t, errs.CategoryUnexpected, first.Category())
	assert.Same(t, plain, first.Cause())
}

func TestTry(t *testing.T) {
	t.Run("value", func(t *testing.T) {
		res := result.Try(func() (string, error) { return "ok", nil })
		assert.Equal(t, "ok", res.ValueOr(""))
	})

	t.Run("error", func(t *testing.T) {
		res := result.Try(func() (string, error) { return "", errs.Conflict() })
		first, ok := res.FirstError()
		require.True(t, ok)
		assert.Equal(t, errs.CategoryConflict, first.Category())
	})

	t.Run("panic", func(t *testing.T) {
		res := result.Try(func() (string, error) { panic("kaboom") })

		first, ok := res.FirstError()
		require.True(t, ok)
		assert.Equal(t, "PanicError", first.Code())
		assert.Equal(t, "panic: kaboom", first.Description())
		assert.Equal(t, errs.CategoryUnexpected, first.Category())

		var pe *result.PanicError
		require.ErrorAs(t, first, &pe)
		assert.Equal(t, "kaboom", pe.Value)
	})

	t.Run("panic with error", func(t *testing.T) {
		cause := errors.New("nil map write")
		res := result.Try(func() (int, error) { panic(cause) })

		assert.ErrorIs(t, res.Err(), cause)
	})
}
