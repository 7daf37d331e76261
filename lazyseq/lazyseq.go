// Package lazyseq - core cell representation and constructors.
//
// This file defines the Seq type and the three ways to build one:
// Empty, Cons and Defer. Everything else in the package is a combinator
// over these.
//
// Goals:
//   - Purity: a Seq closes over immutable state only; forcing has no
//     observable side effects beyond filling a memo cell.
//   - Memoization: Defer caches the cell produced by its builder, so a
//     sequence walked through two references never rebuilds a cell.
//   - Safety: no panics, no locking — the package is single-goroutine by
//     contract (shrinking is synchronous).
package lazyseq

// Seq is a demand-driven sequence of T. Forcing (calling) it returns the
// head element, the tail sequence and ok=true, or ok=false when exhausted.
//
// A Seq built by this package is immutable: forcing it any number of times
// yields the same elements in the same order.
type Seq[T any] func() (head T, tail Seq[T], ok bool)

// Empty returns the sequence with no elements.
//
// Complexity: O(1).
func Empty[T any]() Seq[T] {
	return func() (T, Seq[T], bool) {
		var zero T
		return zero, nil, false
	}
}

// Cons prepends head to tail. The head is already computed; laziness, when
// needed, lives in the tail (typically a Defer cell).
//
// Complexity: O(1).
func Cons[T any](head T, tail Seq[T]) Seq[T] {
	return func() (T, Seq[T], bool) {
		return head, tail, true
	}
}

// Singleton returns the one-element sequence [v].
//
// Complexity: O(1).
func Singleton[T any](v T) Seq[T] {
	return Cons(v, Empty[T]())
}

// Defer suspends the construction of a sequence until it is first forced,
// then memoizes the result. build runs at most once; the cell it returns is
// reused by every subsequent forcing.
//
// Defer is the thunk of the classic {Empty | Cons(head, thunk)} encoding:
// recursive combinators wrap their step in Defer so that unvisited parts of
// a sequence are never computed.
func Defer[T any](build func() Seq[T]) Seq[T] {
	var memo Seq[T]
	return func() (T, Seq[T], bool) {
		if memo == nil {
			memo = build()
		}
		return memo()
	}
}

// IsEmpty reports whether s has no elements. Forces the first cell.
//
// Complexity: O(1).
func (s Seq[T]) IsEmpty() bool {
	_, _, ok := s()
	return !ok
}

// Length forces the entire sequence and returns its element count.
// Diverges on an infinite sequence.
//
// Complexity: O(n).
func (s Seq[T]) Length() int {
	n := 0
	for {
		_, tail, ok := s()
		if !ok {
			return n
		}
		n++
		s = tail
	}
}
