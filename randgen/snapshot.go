package randgen

import (
	"fmt"

	"github.com/emrzvv/randkit/bitgen"
)

// Snapshot is the persisted form of a generator: a flat word sequence plus
// the family name. There is no version header beyond the word-count and
// validity checks performed on restore. Params is used by distribution
// factories to carry their bound parameters and stays empty for base
// generators.
type Snapshot struct {
	Type   string    `json:"type"`
	Name   string    `json:"name"`
	State  []uint32  `json:"state"`
	Params []float64 `json:"params"`
}

// Serialize captures the handle, or returns nil when the state is opaque
// (external uniform source). Callers must check for nil before persisting.
func (g *Generator) Serialize() *Snapshot {
	if g.fam == nil {
		return nil
	}
	return &Snapshot{
		Type:   "PRNG",
		Name:   g.fam.Name(),
		State:  g.State(),
		Params: []float64{},
	}
}

// FromSnapshot rebuilds an independent generator from a serialized snapshot.
func FromSnapshot(s *Snapshot) (*Generator, error) {
	if s == nil || s.Type != "PRNG" {
		return nil, fmt.Errorf("%w: expected type \"PRNG\"", ErrSnapshot)
	}
	if _, err := bitgen.Lookup(s.Name); err != nil {
		return nil, err
	}
	return New(Config{Name: s.Name, State: s.State})
}
