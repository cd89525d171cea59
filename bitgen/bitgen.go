// Package bitgen implements the base pseudorandom bit generator families.
//
// A Family is stateless; the whole generator state travels as a caller-owned
// []uint32 slice laid out as [recurrence words..., seed words...]. The seed
// tail is variable length, so two valid states of one family may differ in
// total length.
package bitgen

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSeed   = errors.New("bitgen: invalid seed")
	ErrInvalidState  = errors.New("bitgen: invalid state")
	ErrUnknownFamily = errors.New("bitgen: unknown generator family")
)

// Family is a deterministic bit-generator recurrence. Identical states always
// produce identical outputs and successor states.
type Family interface {
	Name() string

	// StateLen is the fixed number of recurrence words, excluding the seed
	// tail appended by SeedState.
	StateLen() int
	ByteLen() int
	MaxSeedLen() int

	// SeedState derives a full encoded state (recurrence words + seed tail)
	// from a seed of 1..MaxSeedLen words.
	SeedState(seed []uint32) ([]uint32, error)

	// Validate reports whether state is a well-formed encoded state for this
	// family: correct word count and a non-degenerate recurrence section.
	Validate(state []uint32) error

	// Next advances the recurrence in place and returns one raw draw.
	Next(state []uint32) uint32

	// Normalized maps raw output to a float in [0,1). The bit mapping is
	// family-specific and may consume more than one draw.
	Normalized(state []uint32) float64

	// Max is the largest raw value Next can return.
	Max() uint32
}

// Lookup resolves a family by name. Callers select by identity, there is no
// capability probing.
func Lookup(name string) (Family, error) {
	switch name {
	case "minstd":
		return MINSTD, nil
	case "mt19937":
		return MT19937, nil
	case "pcg32":
		return PCG32, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFamily, name)
	}
}

// SeedTail returns the seed words carried at the end of an encoded state.
func SeedTail(f Family, state []uint32) []uint32 {
	return state[f.StateLen():]
}

func checkSeedLen(f Family, seed []uint32) error {
	if len(seed) == 0 {
		return fmt.Errorf("%w: empty seed", ErrInvalidSeed)
	}
	if len(seed) > f.MaxSeedLen() {
		return fmt.Errorf("%w: at most %d words, got %d", ErrInvalidSeed, f.MaxSeedLen(), len(seed))
	}
	return nil
}

func checkStateLen(f Family, state []uint32) error {
	min := f.StateLen() + 1
	max := f.StateLen() + f.MaxSeedLen()
	if len(state) < min || len(state) > max {
		return fmt.Errorf("%w: %s expects %d..%d words, got %d", ErrInvalidState, f.Name(), min, max, len(state))
	}
	return nil
}
