package bitgen

import "fmt"

const (
	pcgMultiplier = 0x5851f42d4c957f2d
	pcgDefaultSeq = 0xda3e39cb
	pcgStateWords = 4 // state lo/hi, increment lo/hi
)

// PCG32 is the PCG-XSH-RR 64/32 generator: a 64-bit LCG state permuted down
// to 32 output bits, with a per-stream odd increment. Seed words: initial
// state and, optionally, the stream sequence.
var PCG32 Family = pcg32{}

type pcg32 struct{}

func (pcg32) Name() string    { return "pcg32" }
func (pcg32) StateLen() int   { return pcgStateWords }
func (pcg32) ByteLen() int    { return pcgStateWords * 4 }
func (pcg32) MaxSeedLen() int { return 2 }
func (pcg32) Max() uint32     { return 0xffffffff }

func (f pcg32) SeedState(seed []uint32) ([]uint32, error) {
	if err := checkSeedLen(f, seed); err != nil {
		return nil, err
	}
	seq := uint64(pcgDefaultSeq)
	if len(seed) == 2 {
		seq = uint64(seed[1])
	}
	inc := (seq << 1) | 1
	st := (uint64(seed[0])+inc)*pcgMultiplier + inc

	state := make([]uint32, pcgStateWords+len(seed))
	packU64(state[0:2], st)
	packU64(state[2:4], inc)
	copy(state[pcgStateWords:], seed)
	return state, nil
}

func (f pcg32) Validate(state []uint32) error {
	if err := checkStateLen(f, state); err != nil {
		return err
	}
	if state[2]&1 == 0 {
		return fmt.Errorf("%w: pcg32 increment must be odd", ErrInvalidState)
	}
	return nil
}

func (pcg32) Next(state []uint32) uint32 {
	old := unpackU64(state[0:2])
	inc := unpackU64(state[2:4])
	packU64(state[0:2], old*pcgMultiplier+inc)

	xorShifted := uint32(((old >> 18) ^ old) >> 27)
	rot := uint32(old >> 59)
	return (xorShifted >> rot) | (xorShifted << ((-rot) & 31))
}

// Normalized combines two draws into a 53-bit mantissa, as mt19937 does.
func (f pcg32) Normalized(state []uint32) float64 {
	a := float64(f.Next(state) >> 5)
	b := float64(f.Next(state) >> 6)
	return (a*(1<<26) + b) / (1 << 53)
}

func packU64(dst []uint32, v uint64) {
	dst[0] = uint32(v)
	dst[1] = uint32(v >> 32)
}

func unpackU64(src []uint32) uint64 {
	return uint64(src[0]) | uint64(src[1])<<32
}
