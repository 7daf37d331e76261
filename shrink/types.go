// Package shrink - value types shrunk by the compound shrinkers.
//
// Go has no built-in optional, either or tuple types, so the compound
// shrinkers in this package operate on the small value types below. They
// are plain comparable structs (for comparable type parameters), so they
// work with Merge and with map-backed dedup out of the box.
package shrink

// Ordering is a three-way comparison result, as returned by a comparator.
type Ordering int8

// The three comparison outcomes. The shrink-simplicity ranking used by
// Order is Greater > Less > Equal: Equal is the simplest outcome.
const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

// String returns "Less", "Equal" or "Greater".
func (o Ordering) String() string {
	switch o {
	case Less:
		return "Less"
	case Greater:
		return "Greater"
	default:
		return "Equal"
	}
}

// Maybe is an optional value: either Just a value or Nothing.
type Maybe[T any] struct {
	Val    T
	IsJust bool
}

// Just wraps v in a present Maybe.
func Just[T any](v T) Maybe[T] {
	return Maybe[T]{Val: v, IsJust: true}
}

// Nothing returns the absent Maybe.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// Result is either an Ok value or an Err value.
type Result[E, V any] struct {
	Err  E
	Val  V
	IsOk bool
}

// Ok wraps v in a successful Result.
func Ok[E, V any](v V) Result[E, V] {
	return Result[E, V]{Val: v, IsOk: true}
}

// Err wraps e in a failed Result.
func Err[E, V any](e E) Result[E, V] {
	return Result[E, V]{Err: e}
}

// Pair is a 2-tuple.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Triple is a 3-tuple.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}
