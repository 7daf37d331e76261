// Package shrink - Shrinker type and the simplification driver.
//
// Goals:
//   - Shrinkers as plain values: a Shrinker is a func, storable and
//     composable like any other configuration.
//   - Greedy, depth-first search: the first accepted candidate wins and
//     the search restarts from it; siblings of an accepted candidate are
//     abandoned, siblings of a rejected one are still tried in order.
//   - Termination by construction: the driver adds no cycle detection;
//     finiteness and progress are each shrinker's obligation.
package shrink

import "github.com/propcheck/simplify/lazyseq"

// Shrinker proposes simpler candidates for a value, most aggressive first.
//
// Contract (not enforced at runtime): the returned sequence is finite,
// never yields the input value itself, and repeated application can never
// revisit a value. See the package docs.
type Shrinker[T any] func(value T) lazyseq.Seq[T]

// Shrink returns the most-simplified value reachable from value along a
// chain of candidates each accepted by keepShrinking, or value itself when
// no candidate is ever accepted.
//
// The walk forces one candidate at a time. A rejected candidate is
// discarded and its next sibling is tried; an accepted candidate becomes
// the new current value and the frontier restarts as s(candidate) — the
// remaining siblings of the accepted candidate are never visited.
//
// Complexity: O(steps · candidates-per-step); memory is bounded by one
// frontier generation thanks to lazy forcing.
func Shrink[T any](keepShrinking func(T) bool, s Shrinker[T], value T) T {
	frontier := s(value)
	for {
		candidate, rest, ok := frontier()
		if !ok {
			return value
		}
		if keepShrinking(candidate) {
			value = candidate
			frontier = s(candidate)
		} else {
			frontier = rest
		}
	}
}
