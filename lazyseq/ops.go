// Package lazyseq - combinators over Seq.
//
// All combinators are package-level generic functions (methods cannot
// introduce new type parameters). Each one defers its step with Defer, so
// composing combinators never forces the underlying sequence; only the
// consumer's demand does.
//
// Goals:
//   - Laziness: no combinator forces more of its input than the caller
//     forces of its output (Unique/UniqueFunc force exactly one extra
//     element per duplicate skipped).
//   - Finiteness preservation: every combinator here yields a finite
//     sequence when given finite inputs; Iterate is the only constructor
//     whose finiteness depends on its predicate.
package lazyseq

// Append concatenates a and b: all elements of a, then all of b.
//
// Complexity: O(1) per forced element.
func Append[T any](a, b Seq[T]) Seq[T] {
	return Defer(func() Seq[T] {
		head, tail, ok := a()
		if !ok {
			return b
		}
		return Cons(head, Append(tail, b))
	})
}

// Map applies f to every element of s.
func Map[A, B any](f func(A) B, s Seq[A]) Seq[B] {
	return Defer(func() Seq[B] {
		head, tail, ok := s()
		if !ok {
			return Empty[B]()
		}
		return Cons(f(head), Map(f, tail))
	})
}

// Map2 zips a and b pointwise through f. The result ends as soon as either
// input ends (length = min of the two).
func Map2[A, B, C any](f func(A, B) C, a Seq[A], b Seq[B]) Seq[C] {
	return Defer(func() Seq[C] {
		ha, ta, ok := a()
		if !ok {
			return Empty[C]()
		}
		hb, tb, ok := b()
		if !ok {
			return Empty[C]()
		}
		return Cons(f(ha, hb), Map2(f, ta, tb))
	})
}

// Map3 zips a, b and c pointwise through f. The result ends as soon as any
// input ends.
func Map3[A, B, C, D any](f func(A, B, C) D, a Seq[A], b Seq[B], c Seq[C]) Seq[D] {
	return Defer(func() Seq[D] {
		ha, ta, ok := a()
		if !ok {
			return Empty[D]()
		}
		hb, tb, ok := b()
		if !ok {
			return Empty[D]()
		}
		hc, tc, ok := c()
		if !ok {
			return Empty[D]()
		}
		return Cons(f(ha, hb, hc), Map3(f, ta, tb, tc))
	})
}

// AndMap applies a sequence of functions to a sequence of arguments
// pointwise: result[i] = fs[i](xs[i]). Together with Map this gives the
// usual applicative chain for building compound values out of
// independently shrunk components.
func AndMap[A, B any](fs Seq[func(A) B], xs Seq[A]) Seq[B] {
	return Map2(func(f func(A) B, x A) B { return f(x) }, fs, xs)
}

// FlatMap applies f to every element of s and concatenates the results in
// order.
func FlatMap[A, B any](f func(A) Seq[B], s Seq[A]) Seq[B] {
	return Defer(func() Seq[B] {
		head, tail, ok := s()
		if !ok {
			return Empty[B]()
		}
		return Append(f(head), FlatMap(f, tail))
	})
}

// Filter keeps only the elements of s satisfying pred.
func Filter[T any](pred func(T) bool, s Seq[T]) Seq[T] {
	return Defer(func() Seq[T] {
		for {
			head, tail, ok := s()
			if !ok {
				return Empty[T]()
			}
			if pred(head) {
				return Cons(head, Filter(pred, tail))
			}
			s = tail
		}
	})
}

// Unique drops every element equal to an earlier element, preserving the
// order of first occurrence.
//
// Memory: one map entry per distinct element forced so far.
func Unique[T comparable](s Seq[T]) Seq[T] {
	return uniqueSeen(s, make(map[T]struct{}))
}

// uniqueSeen shares one seen-set along the whole walk; memoization in Defer
// guarantees each cell records its element exactly once.
func uniqueSeen[T comparable](s Seq[T], seen map[T]struct{}) Seq[T] {
	return Defer(func() Seq[T] {
		for {
			head, tail, ok := s()
			if !ok {
				return Empty[T]()
			}
			if _, dup := seen[head]; !dup {
				seen[head] = struct{}{}
				return Cons(head, uniqueSeen(tail, seen))
			}
			s = tail
		}
	})
}

// UniqueFunc is Unique for element types that are not comparable; eq
// decides equality. Quadratic in the number of distinct elements.
func UniqueFunc[T any](eq func(a, b T) bool, s Seq[T]) Seq[T] {
	var seen []T
	var walk func(s Seq[T]) Seq[T]
	walk = func(s Seq[T]) Seq[T] {
		return Defer(func() Seq[T] {
			for {
				head, tail, ok := s()
				if !ok {
					return Empty[T]()
				}
				dup := false
				for _, prev := range seen {
					if eq(prev, head) {
						dup = true
						break
					}
				}
				if !dup {
					seen = append(seen, head)
					return Cons(head, walk(tail))
				}
				s = tail
			}
		})
	}
	return walk(s)
}

// Take keeps the first n elements of s (fewer if s is shorter).
func Take[T any](n int, s Seq[T]) Seq[T] {
	return Defer(func() Seq[T] {
		if n <= 0 {
			return Empty[T]()
		}
		head, tail, ok := s()
		if !ok {
			return Empty[T]()
		}
		return Cons(head, Take(n-1, tail))
	})
}

// Drop skips the first n elements of s (all of them if s is shorter).
func Drop[T any](n int, s Seq[T]) Seq[T] {
	return Defer(func() Seq[T] {
		for n > 0 {
			_, tail, ok := s()
			if !ok {
				return Empty[T]()
			}
			s = tail
			n--
		}
		return s
	})
}

// TakeWhile keeps the longest prefix of s whose elements satisfy pred.
func TakeWhile[T any](pred func(T) bool, s Seq[T]) Seq[T] {
	return Defer(func() Seq[T] {
		head, tail, ok := s()
		if !ok || !pred(head) {
			return Empty[T]()
		}
		return Cons(head, TakeWhile(pred, tail))
	})
}

// Iterate yields seed, next(seed), next(next(seed)), … for as long as the
// while predicate holds for the value about to be yielded. A predicate that
// never fails produces an infinite sequence — callers own termination.
func Iterate[T any](seed T, next func(T) T, while func(T) bool) Seq[T] {
	return Defer(func() Seq[T] {
		if !while(seed) {
			return Empty[T]()
		}
		return Cons(seed, Iterate(next(seed), next, while))
	})
}
