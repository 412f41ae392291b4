package dice

import (
	"fmt"
	"strconv"

	"github.com/matanlurey/gambit/dist"
	"github.com/matanlurey/gambit/random"
)

// Pool is a fixed number of identical dice rolled together. Pools compare
// structurally: two Pools are equal iff their counts and dice are equal.
type Pool struct {
	count int
	die   Dice
}

var _ dist.Distribution[PoolResult] = Pool{}

// NewPool returns a pool of count copies of die.
//
// Precondition: count >= 1; die must be a valid die.
func NewPool(count int, die Dice) (Pool, error) {
	if count < 1 {
		return Pool{}, fmt.Errorf("dice: pool count must be >= 1, got %d", count)
	}
	return Pool{count: count, die: die}, nil
}

// MustPool is NewPool but panics on error. Useful for package-level
// constants.
func MustPool(count int, die Dice) Pool {
	p, err := NewPool(count, die)
	if err != nil {
		panic("dice: MustPool: " + err.Error())
	}
	return p
}

// Count returns the number of dice in the pool.
func (p Pool) Count() int {
	return p.count
}

// Dice returns the die the pool is built from.
func (p Pool) Dice() Dice {
	return p.die
}

// String renders the pool as "<count>d<sides>", e.g. "3d6".
func (p Pool) String() string {
	return strconv.Itoa(p.count) + "d" + strconv.Itoa(p.die.sides)
}

// Sample rolls every die in the pool in sequence, consuming exactly count
// Intn(sides) draws in order.
//
// Postcondition: the result holds count values, each in [1, sides].
func (p Pool) Sample(src random.Source) PoolResult {
	values := make([]int, p.count)
	for i := range values {
		values[i] = p.die.Sample(src).Value()
	}
	return PoolResult{die: p.die, values: values}
}

// PoolResult is the immutable outcome of rolling a pool: the die used and
// the ordered face values rolled.
type PoolResult struct {
	die    Dice
	values []int
}

// Dice returns the die the pool was built from.
func (r PoolResult) Dice() Dice {
	return r.die
}

// Count returns the number of dice rolled.
func (r PoolResult) Count() int {
	return len(r.values)
}

// Values returns the individual face values in roll order. The returned
// slice is a copy; mutating it cannot reach the result.
func (r PoolResult) Values() []int {
	values := make([]int, len(r.values))
	copy(values, r.values)
	return values
}

// Total returns the sum of all face values.
func (r PoolResult) Total() int {
	total := 0
	for _, v := range r.values {
		total += v
	}
	return total
}

// String renders just the total, e.g. "12".
func (r PoolResult) String() string {
	return strconv.Itoa(r.Total())
}

// Verbose renders the total with its pool descriptor, e.g. "12 (3d6)".
func (r PoolResult) Verbose() string {
	return fmt.Sprintf("%d (%dd%d)", r.Total(), len(r.values), r.die.sides)
}
