// Package dist models finite discrete distributions as single-method
// sampling capabilities over a random.Source. A Distribution is a pure
// value: sampling never mutates it, and only the Source carries state.
package dist

import (
	"fmt"

	"github.com/matanlurey/gambit/random"
)

// Distribution produces one value of type T per sample from the given
// Source. Callers hold only this capability and never branch on the
// concrete variant behind it.
//
// Invariant: Sample is a pure function of the Source's observable draws and
// performs the minimum number of draws the variant needs (zero for Always,
// one for element, string, and weighted distributions).
type Distribution[T any] interface {
	Sample(src random.Source) T
}

// always returns a fixed value and never consults the source.
type always[T any] struct {
	value T
}

// Always returns a Distribution that yields value on every sample without
// consuming any randomness.
func Always[T any](value T) Distribution[T] {
	return always[T]{value: value}
}

// Sample returns the fixed value. The source is never consulted.
func (a always[T]) Sample(random.Source) T {
	return a.value
}

// elements draws uniformly from an ordered, non-empty sequence.
type elements[T any] struct {
	elems []T
}

// FromElements returns a Distribution drawing uniformly from elems.
//
// Precondition: elems must be non-empty.
// Postcondition: each sample consumes exactly one Intn(len(elems)) draw.
func FromElements[T any](elems []T) (Distribution[T], error) {
	if len(elems) == 0 {
		return nil, fmt.Errorf("dist: element distribution must have at least one element")
	}
	// Copy so later mutation of the caller's slice cannot reach the
	// distribution.
	held := make([]T, len(elems))
	copy(held, elems)
	return elements[T]{elems: held}, nil
}

// MustElements is FromElements but panics on error. Useful for
// package-level fixtures.
func MustElements[T any](elems []T) Distribution[T] {
	d, err := FromElements(elems)
	if err != nil {
		panic("dist: MustElements: " + err.Error())
	}
	return d
}

// Sample draws one uniform index and returns the element there.
func (e elements[T]) Sample(src random.Source) T {
	return e.elems[src.Intn(len(e.elems))]
}

// FromString returns a Distribution drawing one rune uniformly from s.
// Callers map runes to strings themselves; see NextString.
//
// Precondition: s must be non-empty.
func FromString(s string) (Distribution[rune], error) {
	if s == "" {
		return nil, fmt.Errorf("dist: character distribution must have at least one character")
	}
	return FromElements([]rune(s))
}

// MustString is FromString but panics on error.
func MustString(s string) Distribution[rune] {
	d, err := FromString(s)
	if err != nil {
		panic("dist: MustString: " + err.Error())
	}
	return d
}

// funcDist delegates sampling entirely to a caller-supplied function.
type funcDist[T any] struct {
	fn func(random.Source) T
}

// FromFunc wraps fn as a Distribution. The function decides how many draws
// to consume.
//
// Precondition: fn must be non-nil.
func FromFunc[T any](fn func(random.Source) T) Distribution[T] {
	if fn == nil {
		panic("dist: FromFunc called with nil function")
	}
	return funcDist[T]{fn: fn}
}

// Sample delegates to the wrapped function.
func (f funcDist[T]) Sample(src random.Source) T {
	return f.fn(src)
}

// Alphanumeric draws uniformly from the 62 alphanumeric characters:
// lowercase letters, then uppercase letters, then digits, in exactly that
// order. The ordering is part of the contract; it fixes the index-to-rune
// mapping that golden tests depend on.
var Alphanumeric = MustString("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")
