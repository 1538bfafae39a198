package eithr

import "fmt"

// Either is a sum of exactly two alternatives: a value of type L held in the
// Left variant, or a value of type R held in the Right variant. Exactly one
// side is ever populated. The zero value is Left of L's zero value, so Left
// doubles as the default case.
//
// Either values are immutable value data: every combinator returns a new
// Either and never mutates its receiver. Two Eithers compare equal with ==
// exactly when they hold the same variant and equal contained values,
// provided L and R are comparable.
type Either[L any, R any] struct {
	isRight bool
	left    L
	right   R
}

// NewLeft returns an Either with a left value.
//
// NewLeft : L -> Either[L, R].
func NewLeft[L any, R any](l L) Either[L, R] {
	return Either[L, R]{left: l}
}

// NewRight returns an Either with a right value.
//
// NewRight : R -> Either[L, R].
func NewRight[L any, R any](r R) Either[L, R] {
	return Either[L, R]{isRight: true, right: r}
}

// IsLeft returns true if the Either is left.
func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

// IsRight returns true if the Either is right.
func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// Left projects the Either onto its left side, returning the contained value
// if the Either is left and None otherwise. The projection is deliberately
// lossy: a right value, if present, is dropped rather than reported as an
// error.
//
// Left : Either[L, R] -> Option[L].
func (e Either[L, R]) Left() Option[L] {
	if e.isRight {
		return None[L]()
	}

	return Some(e.left)
}

// Right projects the Either onto its right side, returning the contained
// value if the Either is right and None otherwise. Like Left, the projection
// drops the other side by design.
//
// Right : Either[L, R] -> Option[R].
func (e Either[L, R]) Right() Option[R] {
	if e.isRight {
		return Some(e.right)
	}

	return None[R]()
}

// UnwrapLeft extracts the left value. It panics if the Either is right:
// calling it on the wrong variant is a logic bug at the call site, not a
// recoverable condition. Use Left or UnwrapLeftOr for a total alternative.
func (e Either[L, R]) UnwrapLeft() L {
	if e.isRight {
		panic("Either was Right()")
	}

	return e.left
}

// UnwrapRight extracts the right value. It panics if the Either is left. The
// same fail-fast contract as UnwrapLeft applies.
func (e Either[L, R]) UnwrapRight() R {
	if !e.isRight {
		panic("Either was Left()")
	}

	return e.right
}

// UnwrapLeftOr extracts the left value, falling back to the supplied default
// when the Either is right.
//
// UnwrapLeftOr : (Either[L, R], L) -> L.
func (e Either[L, R]) UnwrapLeftOr(l L) L {
	if e.isRight {
		return l
	}

	return e.left
}

// UnwrapRightOr extracts the right value, falling back to the supplied
// default when the Either is left.
//
// UnwrapRightOr : (Either[L, R], R) -> R.
func (e Either[L, R]) UnwrapRightOr(r R) R {
	if e.isRight {
		return e.right
	}

	return r
}

// WhenLeft executes the given function if the Either is left.
func (e Either[L, R]) WhenLeft(f func(L)) {
	if !e.isRight {
		f(e.left)
	}
}

// WhenRight executes the given function if the Either is right.
func (e Either[L, R]) WhenRight(f func(R)) {
	if e.isRight {
		f(e.right)
	}
}

// Swap exchanges the roles of the two sides without touching the contained
// value. Swapping twice gives back the original Either.
//
// Swap : Either[L, R] -> Either[R, L].
func (e Either[L, R]) Swap() Either[R, L] {
	if e.isRight {
		return NewLeft[R, L](e.right)
	}

	return NewRight[R, L](e.left)
}

// String renders the Either as Left(v) or Right(v).
func (e Either[L, R]) String() string {
	if e.isRight {
		return fmt.Sprintf("Right(%v)", e.right)
	}

	return fmt.Sprintf("Left(%v)", e.left)
}
