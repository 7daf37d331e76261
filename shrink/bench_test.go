package shrink_test

import (
	"testing"

	"github.com/propcheck/simplify/shrink"
)

// benchmarkShrink runs the driver to completion with an all-accepting
// predicate, the worst case for restart count.
func benchmarkShrink[T any](b *testing.B, s shrink.Shrinker[T], start T) {
	keep := func(T) bool { return true }

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = shrink.Shrink(keep, s, start)
	}
}

// BenchmarkShrink_IntLarge measures the bisection walk from a large
// magnitude.
func BenchmarkShrink_IntLarge(b *testing.B) {
	benchmarkShrink(b, shrink.Int[int](), 1<<40)
}

// BenchmarkShrink_Slice64 measures the ddmin walk over a 64-element
// slice with element shrinking enabled.
func BenchmarkShrink_Slice64(b *testing.B) {
	input := make([]int, 64)
	for i := range input {
		input[i] = i * 3
	}
	benchmarkShrink(b, shrink.SliceOf(shrink.Int[int]()), input)
}

// BenchmarkShrink_String measures shrinking a mixed string through the
// convert + sequence + character stack.
func BenchmarkShrink_String(b *testing.B) {
	benchmarkShrink(b, shrink.String(), "the quick brown fox jumps over the lazy dog")
}

// BenchmarkSliceOf_FirstCandidate measures the cost of proposing (not
// walking) candidates: force only the head of the frontier.
func BenchmarkSliceOf_FirstCandidate(b *testing.B) {
	s := shrink.SliceOf(shrink.Int[int]())
	input := make([]int, 1024)
	for i := range input {
		input[i] = i
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, ok := s(input)()
		if !ok {
			b.Fatal("expected at least one candidate")
		}
	}
}
