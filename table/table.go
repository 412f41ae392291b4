// Package table provides YAML-defined weighted drop tables: named entries
// with relative weights and optional quantity ranges, drawn through a
// gambit weighted distribution.
package table

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/matanlurey/gambit/dist"
	"github.com/matanlurey/gambit/random"
)

// Entry is a single drop candidate in a table.
type Entry struct {
	// Name identifies the entry, e.g. an item id.
	Name string `yaml:"name"`
	// Weight is the entry's relative weight. Weights need not sum to
	// anything in particular; they are normalized when drawing.
	Weight float64 `yaml:"weight"`
	// MinQty and MaxQty bound the quantity drawn for this entry. Both
	// default to 1 when omitted.
	MinQty int `yaml:"min_qty"`
	MaxQty int `yaml:"max_qty"`
}

// Table is a named weighted drop table.
type Table struct {
	Name    string  `yaml:"name"`
	Entries []Entry `yaml:"entries"`
}

// Drop is one drawn result from a table.
type Drop struct {
	// Table is the name of the table the drop came from.
	Table string
	// Entry is the name of the drawn entry.
	Entry string
	// InstanceID uniquely identifies this particular drop.
	InstanceID string
	// Quantity is in [MinQty, MaxQty] for the drawn entry.
	Quantity int
}

// Validate checks that the table satisfies its invariants.
//
// Postcondition: returns nil iff the table has a name, at least one entry,
// non-negative weights with a positive total, and coherent quantity bounds.
func (t *Table) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("table: must have a non-empty name")
	}
	if len(t.Entries) == 0 {
		return fmt.Errorf("table %s: must have at least one entry", t.Name)
	}
	var total float64
	for i, e := range t.Entries {
		if e.Name == "" {
			return fmt.Errorf("table %s: entry[%d] must have a non-empty name", t.Name, i)
		}
		if e.Weight < 0 {
			return fmt.Errorf("table %s: entry[%d] weight must be >= 0, got %v", t.Name, i, e.Weight)
		}
		if e.MinQty < 1 {
			return fmt.Errorf("table %s: entry[%d] min_qty must be >= 1, got %d", t.Name, i, e.MinQty)
		}
		if e.MinQty > e.MaxQty {
			return fmt.Errorf("table %s: entry[%d] min_qty (%d) must be <= max_qty (%d)", t.Name, i, e.MinQty, e.MaxQty)
		}
		total += e.Weight
	}
	if total == 0 {
		return fmt.Errorf("table %s: entry weights must sum to a positive value", t.Name)
	}
	return nil
}

// Distribution returns the weighted distribution over entry indices.
//
// Precondition: t must have passed Validate().
func (t *Table) Distribution() dist.Distribution[int] {
	weights := make([]float64, len(t.Entries))
	for i, e := range t.Entries {
		weights[i] = e.Weight
	}
	return dist.MustIndexWeights(weights)
}

// Draw makes one weighted draw from the table: one Float64 draw to pick the
// entry, plus one Intn draw for the quantity when the entry's bounds leave
// any spread.
//
// Precondition: t must have passed Validate(); src must be non-nil.
// Postcondition: the Drop's Quantity is in [MinQty, MaxQty] for the drawn
// entry.
func (t *Table) Draw(src random.Source) Drop {
	e := t.Entries[t.Distribution().Sample(src)]
	qty := e.MinQty
	if spread := e.MaxQty - e.MinQty; spread > 0 {
		qty += src.Intn(spread + 1)
	}
	return Drop{
		Table:      t.Name,
		Entry:      e.Name,
		InstanceID: uuid.NewString(),
		Quantity:   qty,
	}
}

// DrawN makes n sequential draws from the table.
//
// Precondition: t must have passed Validate(); n >= 0.
func (t *Table) DrawN(src random.Source, n int) []Drop {
	drops := make([]Drop, n)
	for i := range drops {
		drops[i] = t.Draw(src)
	}
	return drops
}
