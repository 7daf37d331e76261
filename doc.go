// Package simplify is a value-simplification ("shrinking") engine for
// property-based testing — given a randomly generated value that makes a
// test fail, it lazily proposes successively simpler candidates until a
// minimal failing example is found.
//
// 🚀 What is simplify?
//
//	A small, pure library that brings together:
//		• Lazy sequences: demand-driven, memoized candidate streams
//		• Primitive shrinkers: bool, ordering, integers, floats, runes, strings
//		• Compound shrinkers: optionals, results, sequences, slices, tuples
//		• Combinators: Convert, KeepIf/DropIf, Merge — build shrinkers from shrinkers
//		• A greedy driver: Shrink walks candidate chains until none survive
//
// ✨ Why choose simplify?
//
//   - Predictable – every shrinker yields a finite, cycle-free sequence
//   - Lazy – candidates are computed one at a time, only when demanded
//   - Pure Go – no goroutines, no locks, no I/O; safe to call from anywhere
//   - Composable – shrinkers are plain function values, trivially combined
//
// Under the hood, everything is organized under two subpackages:
//
//	lazyseq/ — the demand-driven sequence primitive (Cons cells + memoized thunks)
//	shrink/  — Shrinker type, combinators, primitive & compound shrinkers, driver
//
// Quick sketch of a shrinking run:
//
//	-1000 → -500 → -250 → … → -2 → -1
//
//	each step is the first candidate that still fails the property.
//
// Dive into the package docs of lazyseq and shrink for the full API and the
// termination rules every shrinker must obey.
//
//	go get github.com/propcheck/simplify/shrink
package simplify
