/*
Package eithr provides a generic two-sided sum type, Either[L, R], together
with the functorial and monadic combinators over it, plus the two abstractions
it most often trades values with: Option[A], a value that may be absent, and
Result[T], a computation that either produced a T or failed with an error.

An Either holds exactly one value, in exactly one of its two variants, Left or
Right. Unlike Result, the type itself does not privilege either side; reading
Left as "the error" is a convention of the calling code. Where this package
does fix a convention — the Result interop — Right carries the success value.

Type-changing combinators are package-level functions in curried form, so they
compose cleanly:

	double := eithr.MapRight[string](func(n int) int { return n * 2 })
	e := double(eithr.NewRight[string](21))

	label := eithr.ElimEither(
		e,
		func(name string) string { return "name: " + name },
		func(id int) string { return "id: " + strconv.Itoa(id) },
	)

Type-preserving variants of the same combinators exist as methods for
dot-chained pipelines. All operations are pure and total, with two deliberate
exceptions: UnwrapLeft and UnwrapRight panic when called on the wrong variant,
a fail-fast contract for programmer misuse rather than a recoverable error.
*/
package eithr
