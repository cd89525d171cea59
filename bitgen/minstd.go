package bitgen

import "fmt"

const (
	minstdA = 16807
	minstdM = 2147483647 // 2^31 - 1, prime
)

// MINSTD is the Park-Miller multiplicative LCG: x' = 16807 * x mod (2^31-1).
// One recurrence word, one seed word. The zero state is absorbing and
// therefore invalid.
var MINSTD Family = minstd{}

type minstd struct{}

func (minstd) Name() string    { return "minstd" }
func (minstd) StateLen() int   { return 1 }
func (minstd) ByteLen() int    { return 4 }
func (minstd) MaxSeedLen() int { return 1 }
func (minstd) Max() uint32     { return minstdM - 1 }

func (f minstd) SeedState(seed []uint32) ([]uint32, error) {
	if err := checkSeedLen(f, seed); err != nil {
		return nil, err
	}
	if seed[0] < 1 || seed[0] >= minstdM {
		return nil, fmt.Errorf("%w: minstd seed must be in [1, %d], got %d", ErrInvalidSeed, minstdM-1, seed[0])
	}
	return []uint32{seed[0], seed[0]}, nil
}

func (f minstd) Validate(state []uint32) error {
	if err := checkStateLen(f, state); err != nil {
		return err
	}
	if state[0] < 1 || state[0] >= minstdM {
		return fmt.Errorf("%w: minstd recurrence word must be in [1, %d]", ErrInvalidState, minstdM-1)
	}
	return nil
}

func (minstd) Next(state []uint32) uint32 {
	x := uint32(uint64(state[0]) * minstdA % minstdM)
	state[0] = x
	return x
}

// Normalized uses a single draw; the 31-bit output already carries as much
// resolution as one word can.
func (f minstd) Normalized(state []uint32) float64 {
	return float64(f.Next(state)-1) / float64(minstdM-1)
}
