package eithr

import (
	"fmt"
	"testing"
)

// Result represents a computation that either succeeded with a value of type
// T or failed with an error. It is an Either with the conventional reading
// fixed: the left side holds the failure, the right side holds the success
// ("right is right").
type Result[T any] struct {
	Either[error, T]
}

// Ok creates a new Result with a success value.
//
// Ok : T -> Result[T].
func Ok[T any](val T) Result[T] {
	return Result[T]{Either: NewRight[error, T](val)}
}

// Err creates a new Result with an error.
//
// Err : error -> Result[T].
func Err[T any](err error) Result[T] {
	return Result[T]{Either: NewLeft[error, T](err)}
}

// Errf creates a new Result with a new formatted error string.
func Errf[T any](errString string, args ...any) Result[T] {
	return Result[T]{
		Either: NewLeft[error, T](fmt.Errorf(errString, args...)),
	}
}

// NewResult wraps a standard Go return pair into a Result. A non-nil error
// wins and becomes an Err, otherwise the value becomes an Ok.
//
// NewResult : (T, error) -> Result[T].
func NewResult[T any](val T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}

	return Ok(val)
}

// ResultFromEither reinterprets an error-on-the-left Either as a Result. It
// is the inverse of reading the Result's embedded Either, so the two
// conversions round-trip losslessly.
//
// ResultFromEither : Either[error, T] -> Result[T].
func ResultFromEither[T any](e Either[error, T]) Result[T] {
	return Result[T]{Either: e}
}

// Unpack extracts the value or error from the Result, restoring the
// customary Go return shape.
func (r Result[T]) Unpack() (T, error) {
	var zero T

	if r.IsErr() {
		return zero, r.left
	}

	return r.right, nil
}

// IsOk returns true if the Result is a success value.
func (r Result[T]) IsOk() bool {
	return r.IsRight()
}

// IsErr returns true if the Result is an error.
func (r Result[T]) IsErr() bool {
	return r.IsLeft()
}

// Map applies a function to the success value if it exists.
func (r Result[T]) Map(f func(T) T) Result[T] {
	if r.IsOk() {
		return Ok(f(r.right))
	}

	return r
}

// MapErr applies a function to the error value if it exists.
func (r Result[T]) MapErr(f func(error) error) Result[T] {
	if r.IsErr() {
		return Err[T](f(r.left))
	}

	return r
}

// OkToSome returns the success value as an Option, dropping the error if
// there was one.
func (r Result[T]) OkToSome() Option[T] {
	return r.Right()
}

// WhenOk executes the given function if the Result is a success.
func (r Result[T]) WhenOk(f func(T)) {
	r.WhenRight(f)
}

// WhenErr executes the given function if the Result is an error.
func (r Result[T]) WhenErr(f func(error)) {
	r.WhenLeft(f)
}

// UnwrapOr returns the success value or a default value if it's an error.
func (r Result[T]) UnwrapOr(defaultValue T) T {
	return r.UnwrapRightOr(defaultValue)
}

// UnwrapOrElse returns the success value or computes a value from a function
// if it's an error.
func (r Result[T]) UnwrapOrElse(f func() T) T {
	return r.Right().UnwrapOrFunc(f)
}

// UnwrapOrFail returns the success value or fails the test if it's an error.
func (r Result[T]) UnwrapOrFail(t *testing.T) T {
	t.Helper()

	return r.Right().UnwrapOrFail(t)
}

// FlatMap applies a function that returns a Result to the success value if it
// exists.
func (r Result[T]) FlatMap(f func(T) Result[T]) Result[T] {
	if r.IsOk() {
		return f(r.right)
	}

	return r
}

// AndThen is an alias for FlatMap. This along with OrElse can be used to do
// Railway Oriented Programming (ROP) by chaining successive computational
// operations from a single result type.
func (r Result[T]) AndThen(f func(T) Result[T]) Result[T] {
	return r.FlatMap(f)
}

// OrElse returns the original Result if it is a success, otherwise it returns
// the provided alternative Result. This along with AndThen can be used to do
// Railway Oriented Programming (ROP).
func (r Result[T]) OrElse(f func() Result[T]) Result[T] {
	if r.IsOk() {
		return r
	}

	return f()
}

// FlatMap applies a function that returns a Result[B] to the success value if
// it exists.
func FlatMap[A, B any](r Result[A], f func(A) Result[B]) Result[B] {
	if r.IsOk() {
		return f(r.right)
	}

	return Err[B](r.left)
}

// AndThen is an alias for FlatMap. This along with OrElse can be used to do
// Railway Oriented Programming (ROP).
func AndThen[A, B any](r Result[A], f func(A) Result[B]) Result[B] {
	return FlatMap(r, f)
}

// MapOk transforms a pure function A -> B into one that will operate on the
// success side of a Result.
//
// MapOk : (A -> B) -> Result[A] -> Result[B].
func MapOk[A, B any](f func(A) B) func(Result[A]) Result[B] {
	return func(r Result[A]) Result[B] {
		return ResultFromEither(MapRight[error, A](f)(r.Either))
	}
}
