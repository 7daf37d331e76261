// Package shrink - numeric shrinkers and their bisection series.
//
// Integers and floats shrink along a bisection series: an ordered path
// from 0 (or a declared floor) toward the original magnitude, each step
// halving the remaining distance. The series approaches the target
// strictly monotonically, never repeats and never overshoots, giving
// O(log n) candidates per value.
//
// Negative values get one extra leading candidate — the sign flip — then
// the mirrored series, so -1000 shrinks through 1000, 0, -500, -750, …
package shrink

import (
	"github.com/propcheck/simplify/lazyseq"
	"golang.org/x/exp/constraints"
)

// Float series tuning. The stop epsilon ends the bisection once the
// remaining interval is narrower than 1e-4; the nudge epsilon is added to
// the final low bound to emit one last near-target candidate, suppressed
// when the target is exactly the nudge value itself.
//
// These literals are load-bearing: shrinking floats with magnitude near
// 1e-6 behaves inconsistently around the sentinel equality below, and
// changing either constant changes every float shrink path.
const (
	floatStopEpsilon  = 1.0e-4
	floatNudgeEpsilon = 1.0e-6
)

// Int shrinks an integer toward zero along the bisection series.
//
// Int(7) yields 0, 3, 5, 6; Int(-7) yields 7, 0, -3, -5, -6. Zero yields
// nothing. Works for every integer kind; the negative branch is
// unreachable for unsigned kinds. Negating the minimum value of a signed
// kind overflows, mirroring two's-complement negation — callers shrinking
// math.MinInt64 get its overflowed mirror as first candidate.
func Int[I constraints.Integer]() Shrinker[I] {
	return func(n I) lazyseq.Seq[I] {
		if n < 0 {
			return lazyseq.Cons(-n, lazyseq.Map(negate[I], seriesInt(0, -n)))
		}
		return seriesInt(0, n)
	}
}

// AtLeastInt shrinks an integer toward min instead of zero. The series
// floor is max(0, min); the sign-flip branch applies only to negative
// values that do not undercut min.
func AtLeastInt[I constraints.Integer](min I) Shrinker[I] {
	return func(n I) lazyseq.Seq[I] {
		if n < 0 && n >= min {
			return lazyseq.Cons(-n, lazyseq.Map(negate[I], seriesInt(0, -n)))
		}
		floor := min
		if floor < 0 {
			floor = 0
		}
		return seriesInt(floor, n)
	}
}

// Float shrinks a float toward zero along the bisection series, ending
// with a near-target nudge candidate (see the epsilon constants).
func Float[F constraints.Float]() Shrinker[F] {
	return func(n F) lazyseq.Seq[F] {
		if n < 0 {
			return lazyseq.Cons(-n, lazyseq.Map(negate[F], seriesFloat(0, -n)))
		}
		return seriesFloat(0, n)
	}
}

// AtLeastFloat shrinks a float toward min instead of zero, mirroring
// AtLeastInt.
func AtLeastFloat[F constraints.Float](min F) Shrinker[F] {
	return func(n F) lazyseq.Seq[F] {
		if n < 0 && n >= min {
			return lazyseq.Cons(-n, lazyseq.Map(negate[F], seriesFloat(0, -n)))
		}
		floor := min
		if floor < 0 {
			floor = 0
		}
		return seriesFloat(floor, n)
	}
}

// seriesInt yields low, then the series from the midpoint to high —
// the path 0, …, high-1 with the gap halving each step.
//
// Termination: the low..high interval strictly shrinks every step.
func seriesInt[I constraints.Integer](low, high I) lazyseq.Seq[I] {
	return lazyseq.Defer(func() lazyseq.Seq[I] {
		switch {
		case low >= high:
			return lazyseq.Empty[I]()
		case low == high-1:
			return lazyseq.Singleton(low)
		default:
			// Integer midpoint, biased toward low.
			return lazyseq.Cons(low, seriesInt(low+(high-low)/2, high))
		}
	})
}

// seriesFloat is the float analogue of seriesInt. The interval has no
// exact "one apart" stop, so the recursion ends once it narrows below
// floatStopEpsilon, emitting one extra near-low candidate unless high is
// exactly the nudge sentinel.
func seriesFloat[F constraints.Float](low, high F) lazyseq.Seq[F] {
	return lazyseq.Defer(func() lazyseq.Seq[F] {
		if low >= high-floatStopEpsilon {
			if high != floatNudgeEpsilon {
				return lazyseq.Singleton(low + floatNudgeEpsilon)
			}
			return lazyseq.Empty[F]()
		}
		return lazyseq.Cons(low, seriesFloat(low+(high-low)/2, high))
	})
}

func negate[N constraints.Integer | constraints.Float](v N) N {
	return -v
}
