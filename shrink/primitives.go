// Package shrink - shrinkers for the remaining atomic types.
//
// Booleans and orderings shrink along a fixed one-directional ranking so
// they can never cycle. Runes and strings are derived from the integer
// shrinker through Convert bijections (code point ↔ rune, string ↔ rune
// slice) rather than implemented from scratch.
package shrink

import "github.com/propcheck/simplify/lazyseq"

// NoShrink never proposes candidates: every value is already minimal.
// Useful as a placeholder element shrinker and as the identity for Merge.
func NoShrink[T any]() Shrinker[T] {
	return func(T) lazyseq.Seq[T] {
		return lazyseq.Empty[T]()
	}
}

// Bool shrinks true to false and leaves false alone. One-directional, so
// repeated shrinking can never cycle.
func Bool() Shrinker[bool] {
	return func(b bool) lazyseq.Seq[bool] {
		if b {
			return lazyseq.Singleton(false)
		}
		return lazyseq.Empty[bool]()
	}
}

// Order shrinks a comparison outcome along the fixed simplicity ranking
// Greater > Less > Equal: Greater yields Equal then Less, Less yields
// Equal, Equal yields nothing. The ranking is a design choice (Equal is
// the least informative outcome), not a magnitude ordering.
func Order() Shrinker[Ordering] {
	return func(o Ordering) lazyseq.Seq[Ordering] {
		switch o {
		case Greater:
			return lazyseq.Cons(Equal, lazyseq.Singleton(Less))
		case Less:
			return lazyseq.Singleton(Equal)
		default:
			return lazyseq.Empty[Ordering]()
		}
	}
}

// Char shrinks a rune by shrinking its code point toward zero. Candidates
// for letters pass through control codes; prefer Character when shrinking
// printable text.
func Char() Shrinker[rune] {
	return Convert(codeToRune, runeToCode, Int[int]())
}

// AtLeastChar shrinks a rune by shrinking its code point toward min's code
// point.
func AtLeastChar(min rune) Shrinker[rune] {
	return Convert(codeToRune, runeToCode, AtLeastInt(int(min)))
}

// Character shrinks a rune toward the space character (U+0020), treating
// space as the simplest character and keeping control codes out of the
// candidate set.
func Character() Shrinker[rune] {
	return AtLeastChar(' ')
}

// String shrinks a string as a sequence of characters: first by removing
// chunks of runes, then by simplifying individual runes toward space.
func String() Shrinker[string] {
	return Convert(
		func(rs []rune) string { return string(rs) },
		func(s string) []rune { return []rune(s) },
		SliceOf(Character()),
	)
}

func codeToRune(code int) rune { return rune(code) }

func runeToCode(r rune) int { return int(r) }
