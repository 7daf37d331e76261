// Package lazyseq provides a demand-driven, memoized, finite sequence
// primitive — the candidate stream that every shrinker in this library
// produces and the driver consumes one element at a time.
//
// 🚀 What is lazyseq?
//
//	A Seq[T] is a possibly empty sequence whose elements are computed only
//	when forced. Forcing a Seq yields its head, its tail, and an ok flag:
//
//		head, tail, ok := s()
//
//	ok == false means the sequence is exhausted (head and tail are then
//	meaningless). Cells built with Defer cache the result of their first
//	forcing, so walking a sequence twice never recomputes an element.
//
// ✨ Key features:
//   - Cons cells + explicit thunks — no language-level laziness required
//   - Memoized forcing via Defer — each cell is computed at most once
//   - Package-level combinators: Append, Map, Map2, Map3, AndMap, FlatMap,
//     Filter, Unique, Take, Drop, TakeWhile, Iterate
//   - Bridges: FromSlice/ToSlice and FromList/ToList (immutable.List)
//
// ⚙️ Usage:
//
//	import "github.com/propcheck/simplify/lazyseq"
//
//	halves := lazyseq.Iterate(8, func(k int) int { return k / 2 },
//		func(k int) bool { return k > 0 })
//	fmt.Println(halves.ToSlice()) // [8 4 2 1]
//
// Finiteness contract:
//
//	Nothing in this package prevents an infinite sequence (Iterate with an
//	always-true predicate happily diverges when fully forced). Shrinkers
//	built on lazyseq are required by convention to produce finite
//	sequences; see the shrink package docs.
//
// Performance:
//
//   - Forcing an element: O(1) amortized over the combinator stack
//   - Memory: one cell per forced element; unforced tails cost nothing
//
// See examples in example_test.go.
package lazyseq
