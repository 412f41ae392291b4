package random

import (
	"fmt"
	"math"
	"sync"
)

// scriptMode selects how a Script behaves once its values run out.
type scriptMode int

const (
	// modeNever holds no values; every draw fails.
	modeNever scriptMode = iota
	// modeTerminal replays the script once, then every draw fails.
	modeTerminal
	// modeRepeating replays the script front-to-back forever.
	modeRepeating
)

// Script is a deterministic Source that replays a pre-recorded sequence of
// float64 values. It is a drop-in substitute for any other Source and is the
// standard fixture for deterministic tests of odds-based mechanics.
//
// The cursor is the only mutable state in the whole library; it advances
// exactly once per consumed value and is guarded by a mutex so a single
// Script can be shared the same way the other sources can.
type Script struct {
	mu     sync.Mutex
	values []float64
	cursor int
	pos    int
	mode   scriptMode
}

// Never returns a Script holding no values.
//
// Postcondition: every Float64 draw on the returned Script panics; Intn(0)
// still returns 0 because it consumes nothing.
func Never() *Script {
	return &Script{mode: modeNever}
}

// Terminal returns a Script that replays values front-to-back exactly once.
// After the last value is consumed every further draw panics.
//
// Precondition: values must be non-empty and each value must be in [0, 1).
// Postcondition: successive Float64 calls return values[0], values[1], ...
// values[len-1], then panic.
func Terminal(values ...float64) (*Script, error) {
	if err := checkScript(values); err != nil {
		return nil, err
	}
	return &Script{values: values, mode: modeTerminal}, nil
}

// Repeating returns a Script that replays values front-to-back forever,
// wrapping back to the first value after the last.
//
// Precondition: values must be non-empty and each value must be in [0, 1).
// Postcondition: successive Float64 calls return values[0], ...,
// values[len-1], values[0], ... without ever failing.
func Repeating(values ...float64) (*Script, error) {
	if err := checkScript(values); err != nil {
		return nil, err
	}
	return &Script{values: values, mode: modeRepeating}, nil
}

// Normal returns a Script of count evenly spaced values i/count for i in
// [0, count), the default deterministic fixture. The script repeats unless
// terminal is true.
//
// Precondition: count >= 1.
// Postcondition: successive Float64 calls return exactly 0/count, 1/count,
// ..., (count-1)/count in order.
func Normal(count int, terminal bool) (*Script, error) {
	if count < 1 {
		return nil, fmt.Errorf("random: normal script count must be >= 1, got %d", count)
	}
	values := make([]float64, count)
	for i := range values {
		values[i] = float64(i) / float64(count)
	}
	mode := modeRepeating
	if terminal {
		mode = modeTerminal
	}
	return &Script{values: values, mode: mode}, nil
}

// MustTerminal is Terminal but panics on error. Useful for test fixtures.
func MustTerminal(values ...float64) *Script {
	s, err := Terminal(values...)
	if err != nil {
		panic("random: MustTerminal: " + err.Error())
	}
	return s
}

// MustRepeating is Repeating but panics on error. Useful for test fixtures.
func MustRepeating(values ...float64) *Script {
	s, err := Repeating(values...)
	if err != nil {
		panic("random: MustRepeating: " + err.Error())
	}
	return s
}

// MustNormal is Normal but panics on error. Useful for test fixtures.
func MustNormal(count int, terminal bool) *Script {
	s, err := Normal(count, terminal)
	if err != nil {
		panic("random: MustNormal: " + err.Error())
	}
	return s
}

// checkScript validates a script's construction invariants.
func checkScript(values []float64) error {
	if len(values) == 0 {
		return fmt.Errorf("random: script must hold at least one value")
	}
	for i, v := range values {
		if v < 0 || v >= 1 {
			return fmt.Errorf("random: script value [%d] must be in [0, 1), got %v", i, v)
		}
	}
	return nil
}

// Float64 returns the next scripted value.
//
// Panics with "random: script source holds no values" for a Never script,
// and with "random: script exhausted after N values" once a Terminal script
// has been fully consumed.
func (s *Script) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.mode {
	case modeNever:
		panic("random: script source holds no values")
	case modeTerminal:
		if s.cursor >= len(s.values) {
			panic(fmt.Sprintf("random: script exhausted after %d values", len(s.values)))
		}
		v := s.values[s.cursor]
		s.cursor++
		s.pos++
		return v
	default:
		v := s.values[s.cursor]
		s.cursor = (s.cursor + 1) % len(s.values)
		s.pos++
		return v
	}
}

// Intn returns floor(Float64() * n), consuming one scripted value.
//
// Precondition: n >= 0. Intn(0) returns 0 without consuming a scripted
// value; Position is unchanged.
func (s *Script) Intn(n int) int {
	if n < 0 {
		panic("random: Intn called with n < 0")
	}
	if n == 0 {
		return 0
	}
	return int(math.Floor(s.Float64() * float64(n)))
}

// Bool returns Intn(2) == 0, consuming one scripted value.
func (s *Script) Bool() bool {
	return s.Intn(2) == 0
}

// Position returns the number of scripted values consumed so far. It never
// wraps, even for Repeating scripts.
func (s *Script) Position() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pos
}

// Len returns the length of the underlying script.
func (s *Script) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.values)
}

// Remaining returns how many draws are left before a Terminal script fails.
// A Never script has 0 remaining; a Repeating script never exhausts, so its
// Remaining is always Len.
func (s *Script) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.mode {
	case modeTerminal:
		return len(s.values) - s.cursor
	case modeRepeating:
		return len(s.values)
	default:
		return 0
	}
}
