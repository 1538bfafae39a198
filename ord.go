package eithr

import "golang.org/x/exp/constraints"

// EqualEither reports structural equality: both Eithers hold the same variant
// and equal contained values. It spells out the semantics that == already has
// for comparable sides, for call sites that want the intent visible.
//
// EqualEither : (Either[L, R], Either[L, R]) -> bool.
func EqualEither[L, R comparable](x, y Either[L, R]) bool {
	if x.isRight != y.isRight {
		return false
	}

	if x.isRight {
		return x.right == y.right
	}

	return x.left == y.left
}

// CompareEither orders Eithers with every Left before every Right, and two
// values of the same variant by their contained values. It returns -1, 0 or
// +1 in the manner of cmp.Compare.
//
// CompareEither : (Either[L, R], Either[L, R]) -> int.
func CompareEither[L, R constraints.Ordered](x, y Either[L, R]) int {
	switch {
	case !x.isRight && y.isRight:
		return -1

	case x.isRight && !y.isRight:
		return 1

	case x.isRight:
		return compareOrdered(x.right, y.right)

	default:
		return compareOrdered(x.left, y.left)
	}
}

func compareOrdered[A constraints.Ordered](a, b A) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Copyable is a generic interface for a type that's able to return a deep
// copy of itself.
type Copyable[T any] interface {
	Copy() T
}

// CopyEither deep-copies the contained value, returning it in the same
// variant.
//
// CopyEither : Either[L, R] -> Either[L, R].
func CopyEither[L Copyable[L], R Copyable[R]](e Either[L, R]) Either[L, R] {
	return ElimEither(
		e,
		func(l L) Either[L, R] { return NewLeft[L, R](l.Copy()) },
		func(r R) Either[L, R] { return NewRight[L, R](r.Copy()) },
	)
}

// CopyOption deep-copies the contained value of a full Option; an empty
// Option stays empty.
//
// CopyOption : Option[A] -> Option[A].
func CopyOption[A Copyable[A]](o Option[A]) Option[A] {
	return MapOption(func(a A) A { return a.Copy() })(o)
}
