// Package lazyseq - conversions between Seq and native sequence types.
//
// Two bridges are provided: Go slices and immutable.List. Both directions
// are used by the shrink package to derive slice/list shrinkers from the
// shared sequence shrinker via a round-trip bijection.
package lazyseq

import "github.com/benbjohnson/immutable"

// FromSlice wraps items in a Seq. The slice is indexed lazily and is not
// copied; callers must not mutate it afterwards.
//
// Complexity: O(1) per forced element.
func FromSlice[T any](items []T) Seq[T] {
	var at func(i int) Seq[T]
	at = func(i int) Seq[T] {
		return func() (T, Seq[T], bool) {
			if i >= len(items) {
				var zero T
				return zero, nil, false
			}
			return items[i], at(i + 1), true
		}
	}
	return at(0)
}

// ToSlice forces the entire sequence into a fresh slice. Returns nil for an
// empty sequence.
//
// Complexity: O(n).
func (s Seq[T]) ToSlice() []T {
	var out []T
	for {
		head, tail, ok := s()
		if !ok {
			return out
		}
		out = append(out, head)
		s = tail
	}
}

// FromList wraps an immutable.List in a Seq, indexed lazily. A nil list is
// treated as empty.
//
// Complexity: O(log n) per forced element (immutable.List access cost).
func FromList[T any](l *immutable.List[T]) Seq[T] {
	if l == nil {
		return Empty[T]()
	}
	var at func(i int) Seq[T]
	at = func(i int) Seq[T] {
		return func() (T, Seq[T], bool) {
			if i >= l.Len() {
				var zero T
				return zero, nil, false
			}
			return l.Get(i), at(i + 1), true
		}
	}
	return at(0)
}

// ToList forces the entire sequence into an immutable.List.
//
// Complexity: O(n).
func ToList[T any](s Seq[T]) *immutable.List[T] {
	b := immutable.NewListBuilder[T]()
	for {
		head, tail, ok := s()
		if !ok {
			return b.List()
		}
		b.Append(head)
		s = tail
	}
}
