package bitgen

import "fmt"

const (
	mtN         = 624
	mtM         = 397
	mtMatrixA   = 0x9908b0df
	mtUpperMask = 0x80000000
	mtLowerMask = 0x7fffffff
)

// MT19937 is the 32-bit Mersenne Twister. Encoded state: 624 key words, one
// index word, then the seed tail. An all-zero key is the degenerate fixed
// point and is rejected.
var MT19937 Family = mt19937{}

type mt19937 struct{}

func (mt19937) Name() string    { return "mt19937" }
func (mt19937) StateLen() int   { return mtN + 1 }
func (mt19937) ByteLen() int    { return (mtN + 1) * 4 }
func (mt19937) MaxSeedLen() int { return mtN }
func (mt19937) Max() uint32     { return 0xffffffff }

func (f mt19937) SeedState(seed []uint32) ([]uint32, error) {
	if err := checkSeedLen(f, seed); err != nil {
		return nil, err
	}
	nonzero := false
	for _, w := range seed {
		if w != 0 {
			nonzero = true
			break
		}
	}
	if !nonzero {
		return nil, fmt.Errorf("%w: mt19937 seed must contain a nonzero word", ErrInvalidSeed)
	}

	state := make([]uint32, mtN+1+len(seed))
	key := state[:mtN]
	if len(seed) == 1 {
		initGenrand(key, seed[0])
	} else {
		initByArray(key, seed)
	}
	state[mtN] = mtN // force a twist on the first draw
	copy(state[mtN+1:], seed)
	return state, nil
}

func initGenrand(key []uint32, s uint32) {
	key[0] = s
	for i := 1; i < mtN; i++ {
		key[i] = 1812433253*(key[i-1]^(key[i-1]>>30)) + uint32(i)
	}
}

func initByArray(key []uint32, seed []uint32) {
	initGenrand(key, 19650218)
	i, j := 1, 0
	k := mtN
	if len(seed) > k {
		k = len(seed)
	}
	for ; k > 0; k-- {
		key[i] = (key[i] ^ ((key[i-1] ^ (key[i-1] >> 30)) * 1664525)) + seed[j] + uint32(j)
		i++
		j++
		if i >= mtN {
			key[0] = key[mtN-1]
			i = 1
		}
		if j >= len(seed) {
			j = 0
		}
	}
	for k = mtN - 1; k > 0; k-- {
		key[i] = (key[i] ^ ((key[i-1] ^ (key[i-1] >> 30)) * 1566083941)) - uint32(i)
		i++
		if i >= mtN {
			key[0] = key[mtN-1]
			i = 1
		}
	}
	key[0] = 0x80000000
}

func (f mt19937) Validate(state []uint32) error {
	if err := checkStateLen(f, state); err != nil {
		return err
	}
	if state[mtN] > mtN {
		return fmt.Errorf("%w: mt19937 index word %d out of range", ErrInvalidState, state[mtN])
	}
	for _, w := range state[:mtN] {
		if w != 0 {
			return nil
		}
	}
	return fmt.Errorf("%w: mt19937 key is all zero", ErrInvalidState)
}

func (mt19937) Next(state []uint32) uint32 {
	key := state[:mtN]
	pos := int(state[mtN])
	if pos >= mtN {
		var y uint32
		i := 0
		for ; i < mtN-mtM; i++ {
			y = (key[i] & mtUpperMask) | (key[i+1] & mtLowerMask)
			key[i] = key[i+mtM] ^ (y >> 1) ^ (-(y & 1) & mtMatrixA)
		}
		for ; i < mtN-1; i++ {
			y = (key[i] & mtUpperMask) | (key[i+1] & mtLowerMask)
			key[i] = key[i+(mtM-mtN)] ^ (y >> 1) ^ (-(y & 1) & mtMatrixA)
		}
		y = (key[mtN-1] & mtUpperMask) | (key[0] & mtLowerMask)
		key[mtN-1] = key[mtM-1] ^ (y >> 1) ^ (-(y & 1) & mtMatrixA)
		pos = 0
	}

	y := key[pos]
	state[mtN] = uint32(pos + 1)

	y ^= y >> 11
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	y ^= y >> 18
	return y
}

// Normalized combines two draws into a 53-bit mantissa.
func (f mt19937) Normalized(state []uint32) float64 {
	a := float64(f.Next(state) >> 5)
	b := float64(f.Next(state) >> 6)
	return (a*(1<<26) + b) / (1 << 53)
}
