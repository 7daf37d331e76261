// Package shrink reduces failing property-test inputs to minimal failing
// examples. A Shrinker[T] maps a value to a finite lazy sequence of simpler
// candidates; Shrink greedily walks candidate chains for as long as the
// caller's predicate keeps accepting.
//
// 🚀 What is shrink?
//
//	The simplification half of a property-based testing loop. A generator
//	(not part of this library) finds some failing input; shrink turns it
//	into a small one:
//
//		minimal := shrink.Shrink(stillFails, shrink.Int[int](), failing)
//
// ✨ Key features:
//   - Primitive shrinkers: Bool, Order, Int, AtLeastInt, Float,
//     AtLeastFloat, Char, AtLeastChar, Character, String
//   - Compound shrinkers: MaybeOf, ResultOf, SeqOf, SliceOf, ListOf,
//     PairOf, TripleOf
//   - Combinators: Convert (bijection adaptation), KeepIf/DropIf
//     (filtering), Merge/MergeFunc (strategy union with dedup)
//   - Greedy, depth-first driver with guaranteed termination for every
//     shrinker in this package
//
// ⚙️ Usage:
//
//	import "github.com/propcheck/simplify/shrink"
//
//	stillFails := func(xs []int) bool { return sum(xs) > 100 }
//	small := shrink.Shrink(stillFails, shrink.SliceOf(shrink.Int[int]()), input)
//
// Shrinker contract:
//
//	Every Shrinker must be a pure function whose output sequence is finite,
//	never contains the input itself, and never leads back to an earlier
//	value when applied repeatedly. The driver does not police this — a
//	cyclic or infinite shrinker makes Shrink loop. All shrinkers in this
//	package obey the contract; combinators preserve it except where their
//	docs state a caller obligation (see Convert).
//
// Guarantees & limits:
//
//   - The result of Shrink satisfies the predicate, or is the original
//     value when no candidate ever did.
//   - The walk is greedy and local: the result is minimal along the chain
//     explored, not globally minimal.
//
// See examples in example_test.go.
package shrink
