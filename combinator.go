package eithr

// ElimEither is the universal Either eliminator. It collapses the Either into
// a single value of a common type by applying whichever continuation matches
// the populated side; the other continuation is never invoked. Every other
// consuming operation on Either can be expressed in terms of ElimEither and
// the constructors.
//
// ElimEither : (Either[L, R], L -> O, R -> O) -> O.
func ElimEither[L, R, O any](e Either[L, R], f func(L) O, g func(R) O) O {
	if e.isRight {
		return g(e.right)
	}

	return f(e.left)
}

// MapLeft transforms a pure function L -> O into one that will operate on the
// left side of an Either, passing a right value through untouched.
//
// MapLeft : (L -> O) -> Either[L, R] -> Either[O, R].
func MapLeft[L, R, O any](f func(L) O) func(Either[L, R]) Either[O, R] {
	return func(e Either[L, R]) Either[O, R] {
		if e.isRight {
			return NewRight[O, R](e.right)
		}

		return NewLeft[O, R](f(e.left))
	}
}

// MapRight transforms a pure function R -> O into one that will operate on
// the right side of an Either, passing a left value through untouched.
//
// MapRight : (R -> O) -> Either[L, R] -> Either[L, O].
func MapRight[L, R, O any](f func(R) O) func(Either[L, R]) Either[L, O] {
	return func(e Either[L, R]) Either[L, O] {
		if e.isRight {
			return NewRight[L, O](f(e.right))
		}

		return NewLeft[L, O](e.left)
	}
}

// MapBoth maps over both sides of an Either at once. Exactly one of the two
// functions runs, chosen by the populated variant.
//
// MapBoth : (L -> L2, R -> R2) -> Either[L, R] -> Either[L2, R2].
func MapBoth[L, R, L2, R2 any](fl func(L) L2,
	fr func(R) R2) func(Either[L, R]) Either[L2, R2] {

	return func(e Either[L, R]) Either[L2, R2] {
		if e.isRight {
			return NewRight[L2, R2](fr(e.right))
		}

		return NewLeft[L2, R2](fl(e.left))
	}
}

// AndThenLeft transforms a left-producing computation L -> Either[O, R] into
// one that will chain off the left side of an Either. A right value passes
// through untouched; a left value may be redirected to either side by f.
//
// AndThenLeft : (L -> Either[O, R]) -> Either[L, R] -> Either[O, R].
func AndThenLeft[L, R, O any](
	f func(L) Either[O, R]) func(Either[L, R]) Either[O, R] {

	return func(e Either[L, R]) Either[O, R] {
		if e.isRight {
			return NewRight[O, R](e.right)
		}

		return f(e.left)
	}
}

// AndThenRight transforms a right-producing computation R -> Either[L, O]
// into one that will chain off the right side of an Either. A left value
// passes through untouched.
//
// AndThenRight : (R -> Either[L, O]) -> Either[L, R] -> Either[L, O].
func AndThenRight[L, R, O any](
	f func(R) Either[L, O]) func(Either[L, R]) Either[L, O] {

	return func(e Either[L, R]) Either[L, O] {
		if e.isRight {
			return f(e.right)
		}

		return NewLeft[L, O](e.left)
	}
}

// MapLeft applies f to the left value, leaving a right value untouched. The
// method form cannot change the type of its side; use the package-level
// MapLeft for that.
func (e Either[L, R]) MapLeft(f func(L) L) Either[L, R] {
	if e.isRight {
		return e
	}

	return NewLeft[L, R](f(e.left))
}

// MapRight applies f to the right value, leaving a left value untouched. The
// method form cannot change the type of its side; use the package-level
// MapRight for that.
func (e Either[L, R]) MapRight(f func(R) R) Either[L, R] {
	if e.isRight {
		return NewRight[L, R](f(e.right))
	}

	return e
}

// AndThenLeft chains a left-to-Either computation off the left side, leaving
// a right value untouched. See the package-level AndThenLeft for the
// type-changing form.
func (e Either[L, R]) AndThenLeft(f func(L) Either[L, R]) Either[L, R] {
	if e.isRight {
		return e
	}

	return f(e.left)
}

// AndThenRight chains a right-to-Either computation off the right side,
// leaving a left value untouched. See the package-level AndThenRight for the
// type-changing form.
func (e Either[L, R]) AndThenRight(f func(R) Either[L, R]) Either[L, R] {
	if e.isRight {
		return f(e.right)
	}

	return e
}
