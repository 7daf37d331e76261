// Package shrink - combinators that build shrinkers from shrinkers.
//
// Every combinator preserves the Shrinker contract (finite, no self-loop,
// no cycles) given inputs that obey it; Convert additionally relies on a
// caller-supplied bijection law it cannot check.
package shrink

import "github.com/propcheck/simplify/lazyseq"

// Convert adapts a Shrinker[A] into a Shrinker[B] through a bijection:
// into maps A to B, from maps B back to A.
//
// Caller obligation: into(from(b)) == b for every b. The law is not
// verified at runtime — a pair that does not round-trip silently yields
// meaningless candidates.
func Convert[A, B any](into func(A) B, from func(B) A, s Shrinker[A]) Shrinker[B] {
	return func(value B) lazyseq.Seq[B] {
		return lazyseq.Map(into, s(from(value)))
	}
}

// KeepIf discards every candidate of s that fails pred. Filtering may leave
// a shrinker with no candidates at all; that simply ends the walk early.
func KeepIf[T any](pred func(T) bool, s Shrinker[T]) Shrinker[T] {
	return func(value T) lazyseq.Seq[T] {
		return lazyseq.Filter(pred, s(value))
	}
}

// DropIf discards every candidate of s that satisfies pred.
func DropIf[T any](pred func(T) bool, s Shrinker[T]) Shrinker[T] {
	return KeepIf(func(v T) bool { return !pred(v) }, s)
}

// Merge combines two independent shrink strategies for the same type:
// all candidates of a, then all candidates of b, with duplicates removed
// by value equality, first occurrence preserved.
func Merge[T comparable](a, b Shrinker[T]) Shrinker[T] {
	return func(value T) lazyseq.Seq[T] {
		return lazyseq.Unique(lazyseq.Append(a(value), b(value)))
	}
}

// MergeFunc is Merge for types that are not comparable; eq decides
// candidate equality.
func MergeFunc[T any](eq func(x, y T) bool, a, b Shrinker[T]) Shrinker[T] {
	return func(value T) lazyseq.Seq[T] {
		return lazyseq.UniqueFunc(eq, lazyseq.Append(a(value), b(value)))
	}
}
