package dice

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/matanlurey/gambit/random"
)

// Roller wraps a Source and logger to provide logged dice rolling. The core
// value types stay log-free; hosts that want an audit trail roll through a
// Roller instead. Every roll is logged at debug level with a unique roll id
// so multi-roll sequences can be correlated.
type Roller struct {
	src    random.Source
	logger *zap.Logger
}

// NewRoller creates a Roller that rolls with src and logs each roll to
// logger.
//
// Precondition: src and logger must be non-nil.
func NewRoller(src random.Source, logger *zap.Logger) *Roller {
	return &Roller{src: src, logger: logger}
}

// Roll rolls a single die and logs the result.
func (r *Roller) Roll(d Dice) Result {
	result := d.Sample(r.src)
	r.logger.Debug("die roll",
		zap.String("roll_id", uuid.NewString()),
		zap.String("die", d.String()),
		zap.Int("value", result.Value()),
	)
	return result
}

// RollPool rolls every die in the pool and logs the result.
func (r *Roller) RollPool(p Pool) PoolResult {
	result := p.Sample(r.src)
	r.logger.Debug("pool roll",
		zap.String("roll_id", uuid.NewString()),
		zap.String("pool", p.String()),
		zap.Ints("values", result.Values()),
		zap.Int("total", result.Total()),
	)
	return result
}

// RollExpr parses and rolls an expression, logging the full audit trail.
//
// Precondition: expr must be a valid dice expression string.
func (r *Roller) RollExpr(expr string) (RollResult, error) {
	e, err := Parse(expr)
	if err != nil {
		return RollResult{}, err
	}
	result := Roll(e, r.src)
	r.logger.Debug("expression roll",
		zap.String("roll_id", uuid.NewString()),
		zap.String("expression", result.Expression),
		zap.Ints("rolled", result.Rolled.Values()),
		zap.Ints("kept", result.Kept),
		zap.Int("modifier", result.Modifier),
		zap.Int("total", result.Total()),
	)
	return result, nil
}
