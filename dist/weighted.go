package dist

import (
	"fmt"

	"github.com/matanlurey/gambit/random"
)

// weighted samples an index in proportion to normalized weights.
//
// The normalized probabilities are stored as-is, not as a cumulative table;
// the cumulative sum is re-accumulated left-to-right on every sample. The
// accumulation order is part of the contract: consumers rely on the exact
// index produced for a given draw, floating-point rounding included.
type weighted struct {
	probs []float64
}

// IndexWeights returns a Distribution over indices [0, len(weights)), where
// index i is drawn with probability weights[i] / sum(weights).
//
// Precondition: weights must be non-empty, every weight must be >= 0, and
// the sum must be > 0.
// Postcondition: each sample consumes exactly one Float64 draw.
func IndexWeights(weights []float64) (Distribution[int], error) {
	if len(weights) == 0 {
		return nil, fmt.Errorf("dist: weighted distribution must have at least one weight")
	}
	var sum float64
	for i, w := range weights {
		if w < 0 {
			return nil, fmt.Errorf("dist: weight [%d] must be >= 0, got %v", i, w)
		}
		sum += w
	}
	if sum == 0 {
		return nil, fmt.Errorf("dist: weights must sum to a positive value")
	}
	probs := make([]float64, len(weights))
	for i, w := range weights {
		probs[i] = w / sum
	}
	return weighted{probs: probs}, nil
}

// MustIndexWeights is IndexWeights but panics on error.
func MustIndexWeights(weights []float64) Distribution[int] {
	d, err := IndexWeights(weights)
	if err != nil {
		panic("dist: MustIndexWeights: " + err.Error())
	}
	return d
}

// Sample draws one uniform value and scans buckets left to right, returning
// the first index whose cumulative probability exceeds the draw. The last
// index absorbs whatever mass floating-point rounding leaves over, so a
// valid index is always produced.
func (w weighted) Sample(src random.Source) int {
	v := src.Float64()
	var sum float64
	for i := 0; i < len(w.probs)-1; i++ {
		sum += w.probs[i]
		if v < sum {
			return i
		}
	}
	return len(w.probs) - 1
}
