package dice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matanlurey/gambit/dice"
)

// TestParse_SupportedForms verifies each documented expression form.
func TestParse_SupportedForms(t *testing.T) {
	tests := []struct {
		expr        string
		pool        dice.Pool
		modifier    int
		keepHighest int
	}{
		{"d20", dice.MustPool(1, dice.D20), 0, 0},
		{"2d6", dice.MustPool(2, dice.D6), 0, 0},
		{"2d6+3", dice.MustPool(2, dice.D6), 3, 0},
		{"4d8-2", dice.MustPool(4, dice.D8), -2, 0},
		{"4d6kh3", dice.MustPool(4, dice.D6), 0, 3},
		{"4d6kh3+2", dice.MustPool(4, dice.D6), 2, 3},
		{"3D10", dice.MustPool(3, dice.D10), 0, 0},
		{"d1", dice.MustPool(1, dice.MustNew(1)), 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			e, err := dice.Parse(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.expr, e.Raw)
			assert.Equal(t, tt.pool, e.Pool)
			assert.Equal(t, tt.modifier, e.Modifier)
			assert.Equal(t, tt.keepHighest, e.KeepHighest)
		})
	}
}

// TestParse_Errors verifies malformed expressions are rejected with an
// error rather than a panic.
func TestParse_Errors(t *testing.T) {
	exprs := []string{
		"",       // empty
		"20",     // no 'd'
		"xd6",    // bad count
		"0d6",    // count below 1
		"2d",     // missing sides
		"2dx",    // bad sides
		"2d0",    // sides below 1
		"2d6+",   // dangling modifier
		"2d6kh",  // missing kh value
		"2d6kh0", // kh below 1
		"4d6kh4", // kh must be < count
		"4d6kh5", // kh above count
		"d6kh1",  // kh on a single die
	}
	for _, expr := range exprs {
		_, err := dice.Parse(expr)
		assert.Error(t, err, "expression %q must fail to parse", expr)
	}
}

// TestMustParse_PanicsOnError verifies the Must variant.
func TestMustParse_PanicsOnError(t *testing.T) {
	assert.Panics(t, func() { dice.MustParse("not dice") })
	assert.NotPanics(t, func() { dice.MustParse("2d6") })
}
