package dice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/matanlurey/gambit/dice"
	"github.com/matanlurey/gambit/random"
)

// loggedFields collects the fields of the single debug entry a roll must
// produce.
func loggedFields(t *testing.T, logs *observer.ObservedLogs) map[string]any {
	t.Helper()
	entries := logs.All()
	require.Len(t, entries, 1, "each roll must log exactly one entry")
	require.Equal(t, zap.DebugLevel, entries[0].Level)
	return entries[0].ContextMap()
}

// TestRoller_Roll_LogsDieAndValue verifies single-die rolls are logged
// with the die, the value, and a roll id.
func TestRoller_Roll_LogsDieAndValue(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	roller := dice.NewRoller(random.MustNormal(3, false), zap.New(core))

	r := roller.Roll(dice.D6)
	assert.Equal(t, 1, r.Value())

	fields := loggedFields(t, logs)
	assert.Equal(t, "d6", fields["die"])
	assert.EqualValues(t, 1, fields["value"])
	assert.NotEmpty(t, fields["roll_id"])
}

// TestRoller_RollPool_LogsValuesAndTotal verifies pool rolls log the
// individual values and the total.
func TestRoller_RollPool_LogsValuesAndTotal(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	roller := dice.NewRoller(random.MustNormal(3, false), zap.New(core))

	r := roller.RollPool(dice.MustPool(3, dice.D6))
	assert.Equal(t, 9, r.Total())

	fields := loggedFields(t, logs)
	assert.Equal(t, "3d6", fields["pool"])
	assert.EqualValues(t, 9, fields["total"])
}

// TestRoller_RollExpr_LogsAuditTrail verifies expression rolls log the
// kept dice and modifier alongside the total.
func TestRoller_RollExpr_LogsAuditTrail(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	roller := dice.NewRoller(random.MustNormal(3, false), zap.New(core))

	r, err := roller.RollExpr("2d6+3")
	require.NoError(t, err)
	assert.Equal(t, 7, r.Total())

	fields := loggedFields(t, logs)
	assert.Equal(t, "2d6+3", fields["expression"])
	assert.EqualValues(t, 3, fields["modifier"])
	assert.EqualValues(t, 7, fields["total"])
}

// TestRoller_RollExpr_ParseErrorDoesNotLog verifies a failed parse rolls
// nothing and logs nothing.
func TestRoller_RollExpr_ParseErrorDoesNotLog(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	roller := dice.NewRoller(random.Never(), zap.New(core))

	_, err := roller.RollExpr("bogus")
	require.Error(t, err)
	assert.Zero(t, logs.Len())
}

// TestRoller_RollIDsAreUnique verifies successive rolls get distinct ids.
func TestRoller_RollIDsAreUnique(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	roller := dice.NewRoller(random.MustNormal(3, false), zap.New(core))

	roller.Roll(dice.D6)
	roller.Roll(dice.D6)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.NotEqual(t, entries[0].ContextMap()["roll_id"], entries[1].ContextMap()["roll_id"])
}
