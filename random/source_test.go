package random_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/matanlurey/gambit/random"
)

// TestCryptoSource_Float64_InRange verifies the postcondition: every value
// returned by Float64 is in [0, 1).
func TestCryptoSource_Float64_InRange(t *testing.T) {
	src := random.NewCryptoSource()
	for i := 0; i < 1000; i++ {
		v := src.Float64()
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}

// TestCryptoSource_Intn_InRange verifies the postcondition: every value
// returned by Intn(6) is in [0, 6).
func TestCryptoSource_Intn_InRange(t *testing.T) {
	src := random.NewCryptoSource()
	for i := 0; i < 1000; i++ {
		v := src.Intn(6)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 6)
	}
}

// TestCryptoSource_Intn_ZeroReturnsZero verifies the degenerate range is
// answered without error.
func TestCryptoSource_Intn_ZeroReturnsZero(t *testing.T) {
	src := random.NewCryptoSource()
	assert.Equal(t, 0, src.Intn(0))
}

// TestCryptoSource_Intn_PanicsOnNegative verifies the precondition.
func TestCryptoSource_Intn_PanicsOnNegative(t *testing.T) {
	src := random.NewCryptoSource()
	assert.Panics(t, func() { src.Intn(-1) })
}

// TestSeeded_SameSeedSameSequence verifies two seeded sources with equal
// seeds produce identical draw sequences.
func TestSeeded_SameSeedSameSequence(t *testing.T) {
	a := random.NewSeeded(42)
	b := random.NewSeeded(42)

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Intn(20), b.Intn(20), "draw %d diverged", i)
	}
}

// TestSeeded_Intn_ZeroDoesNotAdvance verifies Intn(0) leaves the seeded
// sequence untouched.
func TestSeeded_Intn_ZeroDoesNotAdvance(t *testing.T) {
	a := random.NewSeeded(7)
	b := random.NewSeeded(7)

	assert.Equal(t, 0, a.Intn(0))
	assert.Equal(t, a.Float64(), b.Float64(), "Intn(0) must not consume from the sequence")
}

// TestSeeded_BoolTakesBothValues verifies the coin flip is not stuck.
func TestSeeded_BoolTakesBothValues(t *testing.T) {
	src := random.NewSeeded(1)
	seen := map[bool]bool{}
	for i := 0; i < 64; i++ {
		seen[src.Bool()] = true
	}
	assert.True(t, seen[true] && seen[false], "64 flips must produce both outcomes")
}
