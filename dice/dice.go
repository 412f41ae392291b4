// Package dice provides immutable dice and dice-pool value types layered on
// gambit distributions. A Dice is a distribution over single-die results; a
// Pool is a distribution over multi-die results.
package dice

import (
	"fmt"
	"strconv"

	"github.com/matanlurey/gambit/dist"
	"github.com/matanlurey/gambit/random"
)

// Dice is a single die, identified solely by its side count. Two Dice with
// the same side count are the same logical die: the type is comparable and
// safe to use as a map key.
//
// Precondition: a Dice must come from New, MustNew, or one of the preset
// values below; the zero value is not a valid die.
type Dice struct {
	sides int
}

// The canonical polyhedral dice.
var (
	D4   = Dice{sides: 4}
	D6   = Dice{sides: 6}
	D8   = Dice{sides: 8}
	D10  = Dice{sides: 10}
	D12  = Dice{sides: 12}
	D20  = Dice{sides: 20}
	D100 = Dice{sides: 100}
)

var _ dist.Distribution[Result] = Dice{}

// New returns a die with the given side count.
//
// Precondition: sides >= 1.
func New(sides int) (Dice, error) {
	if sides < 1 {
		return Dice{}, fmt.Errorf("dice: side count must be >= 1, got %d", sides)
	}
	return Dice{sides: sides}, nil
}

// MustNew is New but panics on error. Useful for package-level constants.
func MustNew(sides int) Dice {
	d, err := New(sides)
	if err != nil {
		panic("dice: MustNew: " + err.Error())
	}
	return d
}

// Sides returns the die's side count.
func (d Dice) Sides() int {
	return d.sides
}

// String renders the die as "d<sides>", e.g. "d6".
func (d Dice) String() string {
	return "d" + strconv.Itoa(d.sides)
}

// Sample rolls the die once, consuming exactly one Intn(sides) draw.
//
// Postcondition: the result's value is in [1, sides].
func (d Dice) Sample(src random.Source) Result {
	return Result{die: d, value: src.Intn(d.sides) + 1}
}

// Times returns a Pool of count copies of this die.
//
// Precondition: count >= 1.
func (d Dice) Times(count int) (Pool, error) {
	return NewPool(count, d)
}

// Result is an immutable (die, face value) pair from a single roll.
type Result struct {
	die   Dice
	value int
}

// NewResult builds a Result directly, enforcing the face-value range. The
// public sampling path can never violate the range; this guards direct
// construction.
//
// Precondition: value in [1, die.Sides()].
func NewResult(die Dice, value int) (Result, error) {
	if value < 1 || value > die.sides {
		return Result{}, fmt.Errorf("dice: value %d out of range [1, %d] for %s", value, die.sides, die)
	}
	return Result{die: die, value: value}, nil
}

// Dice returns the die that was rolled.
func (r Result) Dice() Dice {
	return r.die
}

// Value returns the face value shown, in [1, sides].
func (r Result) Value() int {
	return r.value
}

// String renders just the face value, e.g. "4".
func (r Result) String() string {
	return strconv.Itoa(r.value)
}

// Verbose renders the face value with its die descriptor, e.g. "4 (1d6)".
func (r Result) Verbose() string {
	return fmt.Sprintf("%d (1d%d)", r.value, r.die.sides)
}
