package eithr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Option represents a value which may or may not be there. This is very often
// preferable to nil-able pointers.
type Option[A any] struct {
	isSome bool
	some   A
}

// Some trivially injects a value into an optional context.
//
// Some : A -> Option[A].
func Some[A any](a A) Option[A] {
	return Option[A]{
		isSome: true,
		some:   a,
	}
}

// None trivially constructs an empty option.
//
// None : Option[A].
func None[A any]() Option[A] {
	return Option[A]{}
}

// OptionFromPtr constructs an option from a pointer.
//
// OptionFromPtr : *A -> Option[A].
func OptionFromPtr[A any](a *A) Option[A] {
	if a == nil {
		return None[A]()
	}

	return Some[A](*a)
}

// ElimOption is the universal Option eliminator. It can be used to safely
// handle all possible values inside the Option by supplying two continuations.
//
// ElimOption : (Option[A], () -> B, A -> B) -> B.
func ElimOption[A, B any](o Option[A], b func() B, f func(A) B) B {
	if o.isSome {
		return f(o.some)
	}

	return b()
}

// IsSome returns true if the Option contains a value.
//
// IsSome : Option[A] -> bool.
func (o Option[A]) IsSome() bool {
	return o.isSome
}

// IsNone returns true if the Option is empty.
//
// IsNone : Option[A] -> bool.
func (o Option[A]) IsNone() bool {
	return !o.isSome
}

// UnwrapOr is used to extract a value from an option, and we supply the
// default value in the case when the Option is empty.
//
// UnwrapOr : (Option[A], A) -> A.
func (o Option[A]) UnwrapOr(a A) A {
	if o.isSome {
		return o.some
	}

	return a
}

// UnwrapOrFunc is used to extract a value from an option, and we supply a
// thunk to be evaluated in the case when the Option is empty.
func (o Option[A]) UnwrapOrFunc(f func() A) A {
	return ElimOption(o, f, func(a A) A { return a })
}

// UnwrapOrFail is used to extract a value from an option within a test
// context. If the option is None, then the test fails.
func (o Option[A]) UnwrapOrFail(t *testing.T) A {
	t.Helper()

	require.True(t, o.isSome, "Option[%T] was None()", o.some)

	return o.some
}

// UnsafeFromSome can be used to extract the internal value. This will panic
// if the value is None() though.
func (o Option[A]) UnsafeFromSome() A {
	if o.isSome {
		return o.some
	}

	panic("Option was None()")
}

// WhenSome is used to conditionally perform a side-effecting function that
// accepts a value of the type that parameterizes the option.
//
// WhenSome : (Option[A], A -> ()) -> ().
func (o Option[A]) WhenSome(f func(A)) {
	if o.isSome {
		f(o.some)
	}
}

// WhenNone is used to conditionally perform a side-effecting thunk when the
// Option is empty.
//
// WhenNone : (Option[A], () -> ()) -> ().
func (o Option[A]) WhenNone(f func()) {
	if !o.isSome {
		f()
	}
}

// MapOption transforms a pure function A -> B into one that will operate
// inside the Option context.
//
// MapOption : (A -> B) -> Option[A] -> Option[B].
func MapOption[A, B any](f func(A) B) func(Option[A]) Option[B] {
	return func(o Option[A]) Option[B] {
		if o.isSome {
			return Some(f(o.some))
		}

		return None[B]()
	}
}

// Alt chooses the left Option if it is full, otherwise it chooses the right
// option. This can be useful in a long chain if you want to choose between
// many different ways of producing the needed value.
//
// Alt : Option[A] -> Option[A] -> Option[A].
func (o Option[A]) Alt(o2 Option[A]) Option[A] {
	if o.isSome {
		return o
	}

	return o2
}

// SomeToLeft converts an Option into an Either by treating a present value as
// the left side. The caller supplies the right payload to use when the Option
// is empty, since an absent Option carries no value of its own.
//
// SomeToLeft : (Option[O], R) -> Either[O, R].
func SomeToLeft[O, R any](o Option[O], r R) Either[O, R] {
	if o.isSome {
		return NewLeft[O, R](o.some)
	}

	return NewRight[O, R](r)
}

// SomeToRight converts an Option into an Either by treating a present value
// as the right side. The caller supplies the left payload to use when the
// Option is empty.
//
// SomeToRight : (Option[O], L) -> Either[L, O].
func SomeToRight[O, L any](o Option[O], l L) Either[L, O] {
	if o.isSome {
		return NewRight[L, O](o.some)
	}

	return NewLeft[L, O](l)
}

// SomeToOk converts an Option into a Result with the caller's own error. If
// the Option contains a Some, the supplied error is ignored and the value
// becomes an Ok.
//
// SomeToOk : (Option[A], error) -> Result[A].
func (o Option[A]) SomeToOk(err error) Result[A] {
	return Result[A]{SomeToRight(o, err)}
}
