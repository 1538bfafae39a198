package eithr

import (
	"strconv"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"
)

func TestPropMapIdentity(t *testing.T) {
	id := func(x int) int { return x }

	f := func(i int, isRight bool) bool {
		e := mkEither(i, isRight)

		return MapLeft[int, int](id)(e) == e &&
			MapRight[int, int](id)(e) == e &&
			e.MapLeft(id) == e &&
			e.MapRight(id) == e
	}

	require.NoError(t, quick.Check(f, nil))
}

func TestPropMapComposition(t *testing.T) {
	inc := func(x int) int { return x + 1 }
	tpl := func(x int) int { return x * 3 }
	comp := func(x int) int { return tpl(inc(x)) }

	f := func(i int, isRight bool) bool {
		e := mkEither(i, isRight)

		left := MapLeft[int, int](comp)(e) ==
			MapLeft[int, int](tpl)(MapLeft[int, int](inc)(e))
		right := MapRight[int, int](comp)(e) ==
			MapRight[int, int](tpl)(MapRight[int, int](inc)(e))

		return left && right
	}

	require.NoError(t, quick.Check(f, nil))
}

func TestPropMapTouchesOnlyActiveSide(t *testing.T) {
	f := func(i int, isRight bool) bool {
		e := mkEither(i, isRight)

		var calls int
		count := func(x int) int { calls++; return x }

		MapLeft[int, int](count)(e)
		MapRight[int, int](count)(e)
		MapBoth(count, count)(e)

		// Each of the three combinators above runs the counter at
		// most once, and MapBoth exactly once.
		return calls == 2
	}

	require.NoError(t, quick.Check(f, nil))
}

func TestMapBoth(t *testing.T) {
	toStr := strconv.Itoa
	double := func(x int) int { return x * 2 }
	both := MapBoth(toStr, double)

	require.Equal(
		t, NewLeft[string, int]("3"), both(NewLeft[int, int](3)),
	)
	require.Equal(
		t, NewRight[string, int](6), both(NewRight[int, int](3)),
	)
}

func TestPropAndThenLeftIdentity(t *testing.T) {
	f := func(i int) bool {
		halve := func(x int) Either[int, int] {
			if x%2 == 0 {
				return NewLeft[int, int](x / 2)
			}

			return NewRight[int, int](x)
		}

		// Chaining off a fresh Left is the same as calling the
		// continuation directly, and a Right passes through.
		left := AndThenLeft(halve)(NewLeft[int, int](i)) == halve(i)
		right := AndThenLeft(halve)(NewRight[int, int](i)) ==
			NewRight[int, int](i)

		rightID := AndThenRight(halve)(NewRight[int, int](i)) ==
			halve(i)
		leftID := AndThenRight(halve)(NewLeft[int, int](i)) ==
			NewLeft[int, int](i)

		return left && right && rightID && leftID
	}

	require.NoError(t, quick.Check(f, nil))
}

func TestPropAndThenAssociativity(t *testing.T) {
	fn1 := func(x int) Either[int, int] {
		if x < 0 {
			return NewRight[int, int](x)
		}

		return NewLeft[int, int](x + 1)
	}
	fn2 := func(x int) Either[int, int] {
		if x%3 == 0 {
			return NewRight[int, int](x)
		}

		return NewLeft[int, int](x * 2)
	}

	f := func(i int, isRight bool) bool {
		e := mkEither(i, isRight)

		nested := AndThenLeft(fn2)(AndThenLeft(fn1)(e))
		fused := AndThenLeft(func(x int) Either[int, int] {
			return AndThenLeft(fn2)(fn1(x))
		})(e)

		return nested == fused
	}

	require.NoError(t, quick.Check(f, nil))
}

func TestElimEitherDeterminism(t *testing.T) {
	var lefts, rights int
	onLeft := func(x int) string { lefts++; return "L" }
	onRight := func(x int) string { rights++; return "R" }

	require.Equal(
		t, "L", ElimEither(NewLeft[int, int](1), onLeft, onRight),
	)
	require.Equal(t, 1, lefts)
	require.Equal(t, 0, rights)

	require.Equal(
		t, "R", ElimEither(NewRight[int, int](1), onLeft, onRight),
	)
	require.Equal(t, 1, lefts)
	require.Equal(t, 1, rights)
}

// TestEitherPipeline walks one value through the full combinator surface the
// way calling code would.
func TestEitherPipeline(t *testing.T) {
	e := NewRight[int, int](10)

	inc := func(x int) int { return x + 1 }
	double := func(x int) int { return x * 2 }

	// Mapping the inactive side leaves the Either untouched.
	require.Equal(t, e, e.MapLeft(inc))

	require.Equal(t, NewRight[int, int](20), e.MapRight(double))

	folded := ElimEither(
		e,
		func(int) string { return "L" },
		func(r int) string { return "R:" + strconv.Itoa(r) },
	)
	require.Equal(t, "R:10", folded)
}
