package eithr

import "iter"

// Seq views the Option as a sequence of zero or one values, for use with
// range-over-func consumers and iter.Seq pipelines.
//
// Seq : Option[A] -> iter.Seq[A].
func (o Option[A]) Seq() iter.Seq[A] {
	return func(yield func(A) bool) {
		if o.isSome {
			yield(o.some)
		}
	}
}

// LeftSeq views the left side of the Either as a sequence of zero or one
// values. A right Either yields nothing.
//
// LeftSeq : Either[L, R] -> iter.Seq[L].
func (e Either[L, R]) LeftSeq() iter.Seq[L] {
	return e.Left().Seq()
}

// RightSeq views the right side of the Either as a sequence of zero or one
// values. A left Either yields nothing.
//
// RightSeq : Either[L, R] -> iter.Seq[R].
func (e Either[L, R]) RightSeq() iter.Seq[R] {
	return e.Right().Seq()
}
