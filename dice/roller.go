package dice

import (
	"fmt"
	"sort"

	"github.com/matanlurey/gambit/random"
)

// RollResult holds the full audit trail for one evaluated dice expression.
//
// Postcondition: Total() == sum(Kept) + Modifier.
type RollResult struct {
	Expression string     // original expression string, e.g. "2d6+3"
	Rolled     PoolResult // every die rolled, in roll order
	Kept       []int      // die values counting toward the total
	Modifier   int        // flat modifier (may be negative)
}

// Total returns the sum of the kept dice plus the modifier.
func (r RollResult) Total() int {
	total := r.Modifier
	for _, v := range r.Kept {
		total += v
	}
	return total
}

// String returns a human-readable audit string in the format:
//
//	"2d6+3 → [4 5] +3 = 12"
//
// Precondition: r.Expression is non-empty.
func (r RollResult) String() string {
	if r.Expression == "" {
		panic("dice: RollResult.String() precondition violated: Expression must be non-empty")
	}
	return fmt.Sprintf("%s → %v %+d = %d", r.Expression, r.Kept, r.Modifier, r.Total())
}

// Roll evaluates an Expression using the given Source and returns a
// RollResult.
//
// Precondition: expr must come from Parse; src must be non-nil.
// Postcondition: len(result.Kept) == expr.Pool.Count() when KeepHighest is
// 0, or expr.KeepHighest otherwise; result.Total() == sum(Kept) + Modifier.
func Roll(expr Expression, src random.Source) RollResult {
	rolled := expr.Pool.Sample(src)

	kept := rolled.Values()
	if expr.KeepHighest > 0 {
		sort.Sort(sort.Reverse(sort.IntSlice(kept)))
		kept = kept[:expr.KeepHighest]
	}

	return RollResult{
		Expression: expr.Raw,
		Rolled:     rolled,
		Kept:       kept,
		Modifier:   expr.Modifier,
	}
}

// RollExpr parses expr and rolls it using src in a single call.
//
// Precondition: expr must be a valid dice expression string; src must be
// non-nil.
func RollExpr(expr string, src random.Source) (RollResult, error) {
	e, err := Parse(expr)
	if err != nil {
		return RollResult{}, err
	}
	return Roll(e, src), nil
}
