// Package shrink - shrinkers for structured types.
//
// The sequence shrinker is the workhorse: a ddmin-style removal family
// (delete ever-smaller contiguous chunks, biggest first) followed by an
// in-place element-shrink family. Slices and immutable lists reuse it
// through Convert bijections. Tuples enumerate single-component shrinks
// before simultaneous ones, so the driver isolates the failing component
// whenever a single-component step suffices.
package shrink

import (
	"github.com/benbjohnson/immutable"

	"github.com/propcheck/simplify/lazyseq"
)

// MaybeOf shrinks Just values first to Nothing, then to Just of each
// shrunk inner value. Nothing is already minimal.
func MaybeOf[T any](elem Shrinker[T]) Shrinker[Maybe[T]] {
	return func(m Maybe[T]) lazyseq.Seq[Maybe[T]] {
		if !m.IsJust {
			return lazyseq.Empty[Maybe[T]]()
		}
		return lazyseq.Cons(Nothing[T](), lazyseq.Map(Just[T], elem(m.Val)))
	}
}

// ResultOf shrinks Ok values with okShrink and Err values with errShrink.
// A Result never crosses sides: Ok stays Ok, Err stays Err.
func ResultOf[E, V any](errShrink Shrinker[E], okShrink Shrinker[V]) Shrinker[Result[E, V]] {
	return func(r Result[E, V]) lazyseq.Seq[Result[E, V]] {
		if r.IsOk {
			return lazyseq.Map(Ok[E, V], okShrink(r.Val))
		}
		return lazyseq.Map(Err[E, V], errShrink(r.Err))
	}
}

// SeqOf shrinks a lazy sequence: first the removal family (delete one
// contiguous chunk of k elements for k = n, n/2, n/4, …, 1), then the
// element-shrink family (simplify one element in place, front to back).
//
// The removal family is the classic ddmin reduction: big cuts first, with
// smaller cuts recovering from an over-aggressive one. Every candidate is
// strictly shorter than the input or equal-length with one element
// simplified, so repeated shrinking terminates.
func SeqOf[T any](elem Shrinker[T]) Shrinker[lazyseq.Seq[T]] {
	return func(l lazyseq.Seq[T]) lazyseq.Seq[lazyseq.Seq[T]] {
		n := l.Length()
		chunks := lazyseq.Iterate(n,
			func(k int) int { return k / 2 },
			func(k int) bool { return k > 0 })
		removals := lazyseq.FlatMap(func(k int) lazyseq.Seq[lazyseq.Seq[T]] {
			return removes(k, n, l)
		}, chunks)
		return lazyseq.Append(removals, shrinkOne(elem, l))
	}
}

// removes enumerates every way to delete one contiguous block of k
// elements from l (length n), sliding the block in steps of k. Yields the
// tail-cut first, then cuts deeper in the sequence with the kept prefix
// reattached.
//
// Termination: n strictly decreases by k each recursion and the k > n
// guard ends the walk.
func removes[T any](k, n int, l lazyseq.Seq[T]) lazyseq.Seq[lazyseq.Seq[T]] {
	return lazyseq.Defer(func() lazyseq.Seq[lazyseq.Seq[T]] {
		switch {
		case k > n:
			return lazyseq.Empty[lazyseq.Seq[T]]()
		case l.IsEmpty():
			return lazyseq.Singleton(lazyseq.Empty[T]())
		default:
			first := lazyseq.Take(k, l)
			rest := lazyseq.Drop(k, l)
			reattach := func(r lazyseq.Seq[T]) lazyseq.Seq[T] {
				return lazyseq.Append(first, r)
			}
			return lazyseq.Cons(rest, lazyseq.Map(reattach, removes(k, n-k, rest)))
		}
	})
}

// shrinkOne yields every sequence obtained by simplifying exactly one
// element in place: all shrinks of the head paired with the untouched
// tail, then the head paired with every one-element shrink of the tail.
func shrinkOne[T any](elem Shrinker[T], l lazyseq.Seq[T]) lazyseq.Seq[lazyseq.Seq[T]] {
	return lazyseq.Defer(func() lazyseq.Seq[lazyseq.Seq[T]] {
		head, tail, ok := l()
		if !ok {
			return lazyseq.Empty[lazyseq.Seq[T]]()
		}
		headShrunk := lazyseq.Map(func(h T) lazyseq.Seq[T] {
			return lazyseq.Cons(h, tail)
		}, elem(head))
		tailShrunk := lazyseq.Map(func(t lazyseq.Seq[T]) lazyseq.Seq[T] {
			return lazyseq.Cons(head, t)
		}, shrinkOne(elem, tail))
		return lazyseq.Append(headShrunk, tailShrunk)
	})
}

// SliceOf shrinks a slice with the sequence shrinker, converted through
// the slice ↔ sequence bijection.
func SliceOf[T any](elem Shrinker[T]) Shrinker[[]T] {
	return Convert(
		func(s lazyseq.Seq[T]) []T { return s.ToSlice() },
		lazyseq.FromSlice[T],
		SeqOf(elem),
	)
}

// ListOf shrinks an immutable.List with the sequence shrinker, converted
// through the list ↔ sequence bijection.
func ListOf[T any](elem Shrinker[T]) Shrinker[*immutable.List[T]] {
	return Convert(
		lazyseq.ToList[T],
		lazyseq.FromList[T],
		SeqOf(elem),
	)
}

// PairOf shrinks a 2-tuple in priority order: second component alone,
// first component alone, then both simultaneously (pointwise, as long as
// the shorter component series).
//
// Single-component steps come first because they are smaller moves and
// isolate which component drives the failure; the simultaneous family is
// the fallback when no lone change keeps the predicate satisfied.
func PairOf[A, B any](sa Shrinker[A], sb Shrinker[B]) Shrinker[Pair[A, B]] {
	return func(p Pair[A, B]) lazyseq.Seq[Pair[A, B]] {
		a, b := p.First, p.Second
		secondOnly := lazyseq.Map(func(v B) Pair[A, B] {
			return Pair[A, B]{First: a, Second: v}
		}, sb(b))
		firstOnly := lazyseq.Map(func(v A) Pair[A, B] {
			return Pair[A, B]{First: v, Second: b}
		}, sa(a))
		both := lazyseq.Map2(func(x A, y B) Pair[A, B] {
			return Pair[A, B]{First: x, Second: y}
		}, sa(a), sb(b))
		return lazyseq.Append(secondOnly, lazyseq.Append(firstOnly, both))
	}
}

// TripleOf shrinks a 3-tuple in priority order: each component alone
// (third, second, first), each pair simultaneously (second+third,
// first+third, first+second), then all three at once.
func TripleOf[A, B, C any](sa Shrinker[A], sb Shrinker[B], sc Shrinker[C]) Shrinker[Triple[A, B, C]] {
	return func(t Triple[A, B, C]) lazyseq.Seq[Triple[A, B, C]] {
		a, b, c := t.First, t.Second, t.Third
		mk := func(x A, y B, z C) Triple[A, B, C] {
			return Triple[A, B, C]{First: x, Second: y, Third: z}
		}
		thirdOnly := lazyseq.Map(func(z C) Triple[A, B, C] { return mk(a, b, z) }, sc(c))
		secondOnly := lazyseq.Map(func(y B) Triple[A, B, C] { return mk(a, y, c) }, sb(b))
		firstOnly := lazyseq.Map(func(x A) Triple[A, B, C] { return mk(x, b, c) }, sa(a))
		secondThird := lazyseq.Map2(func(y B, z C) Triple[A, B, C] { return mk(a, y, z) }, sb(b), sc(c))
		firstThird := lazyseq.Map2(func(x A, z C) Triple[A, B, C] { return mk(x, b, z) }, sa(a), sc(c))
		firstSecond := lazyseq.Map2(func(x A, y B) Triple[A, B, C] { return mk(x, y, c) }, sa(a), sb(b))
		all := lazyseq.Map3(func(x A, y B, z C) Triple[A, B, C] { return mk(x, y, z) }, sa(a), sb(b), sc(c))

		out := all
		for _, fam := range []lazyseq.Seq[Triple[A, B, C]]{firstSecond, firstThird, secondThird, firstOnly, secondOnly, thirdOnly} {
			out = lazyseq.Append(fam, out)
		}
		return out
	}
}
