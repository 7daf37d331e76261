package shrink_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/propcheck/simplify/shrink"
)

// TestBool_OneDirectional verifies true shrinks to false and false is
// minimal, so repeated shrinking can never cycle.
func TestBool_OneDirectional(t *testing.T) {
	bools := shrink.Bool()

	assert.Equal(t, []bool{false}, bools(true).ToSlice(), "true yields exactly [false]")
	assert.Empty(t, bools(false).ToSlice(), "false is minimal")

	got := shrink.Shrink(always[bool], bools, true)
	assert.False(t, got, "driving bool shrinks lands on false and stays there")
}

// TestOrder_Ranking verifies the fixed simplicity ranking
// Greater > Less > Equal.
func TestOrder_Ranking(t *testing.T) {
	orders := shrink.Order()

	assert.Equal(t, []shrink.Ordering{shrink.Equal, shrink.Less}, orders(shrink.Greater).ToSlice(),
		"Greater yields Equal then Less")
	assert.Equal(t, []shrink.Ordering{shrink.Equal}, orders(shrink.Less).ToSlice(),
		"Less yields Equal")
	assert.Empty(t, orders(shrink.Equal).ToSlice(), "Equal is minimal")

	got := shrink.Shrink(always[shrink.Ordering], orders, shrink.Greater)
	assert.Equal(t, shrink.Equal, got, "full shrink bottoms out at Equal")
}

// TestNoShrink_AlwaysEmpty verifies NoShrink proposes nothing for any
// value.
func TestNoShrink_AlwaysEmpty(t *testing.T) {
	assert.Empty(t, shrink.NoShrink[int]()(9).ToSlice(), "ints are left alone")
	assert.Empty(t, shrink.NoShrink[[]string]()([]string{"a"}).ToSlice(), "slices are left alone")
}

// TestChar_CodePointRoundTrip verifies the Convert-derived rune shrinker:
// every candidate is the rune of the matching integer-series value.
func TestChar_CodePointRoundTrip(t *testing.T) {
	chars := shrink.Char()
	ints := shrink.Int[int]()

	for _, r := range []rune{'a', 'Z', '0', 'é'} {
		got := chars(r).ToSlice()
		wantInts := ints(int(r)).ToSlice()
		require.Equalf(t, len(wantInts), len(got), "candidate count for %q", r)
		for i, c := range got {
			assert.Equalf(t, rune(wantInts[i]), c, "candidate %d for %q must decode to the series value", i, r)
		}
	}
}

// TestAtLeastChar_Floor verifies candidates never go below the floor rune.
func TestAtLeastChar_Floor(t *testing.T) {
	candidates := shrink.AtLeastChar('A')('z').ToSlice()

	require.NotEmpty(t, candidates, "'z' must have candidates above 'A'")
	assert.Equal(t, 'A', candidates[0], "series starts at the floor")
	for _, c := range candidates {
		assert.GreaterOrEqualf(t, c, 'A', "candidate %q must not undercut the floor", c)
	}
}

// TestCharacter_SpaceIsSimplest verifies Character anchors at U+0020 and
// never proposes control codes.
func TestCharacter_SpaceIsSimplest(t *testing.T) {
	chars := shrink.Character()

	assert.Equal(t, []rune{' ', '@', 'P', 'X', '\\', '^', '_', '`'}, chars('a').ToSlice(),
		"series for 'a' from the space floor")
	assert.Empty(t, chars(' ').ToSlice(), "space is minimal")

	got := shrink.Shrink(always[rune], chars, 'z')
	assert.Equal(t, ' ', got, "full shrink bottoms out at space")
}

// TestString_RemovalFirst verifies strings shrink by cutting runes before
// simplifying them.
func TestString_RemovalFirst(t *testing.T) {
	strs := shrink.String()

	candidates := strs("ab").ToSlice()
	require.GreaterOrEqual(t, len(candidates), 4, "need removal and element candidates")
	assert.Equal(t, []string{"", "b", "a", " b"}, candidates[:4],
		"whole-string cut, single-rune cuts, then first rune simplified")

	assert.Empty(t, strs("").ToSlice(), "empty string is minimal")

	got := shrink.Shrink(always[string], strs, "ab")
	assert.Equal(t, "", got, "full shrink empties the string")
}

// TestString_PredicateBound verifies a length-preserving predicate forces
// the walk into per-rune simplification.
func TestString_PredicateBound(t *testing.T) {
	twoRunes := func(s string) bool { return len([]rune(s)) == 2 }

	got := shrink.Shrink(twoRunes, shrink.String(), "zz")
	assert.Equal(t, "  ", got, "both runes simplify down to spaces")
}
