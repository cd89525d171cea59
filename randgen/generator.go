// Package randgen provides the stateful generator handle over the bitgen
// families: seeding, state save/restore with copy-or-share semantics, the
// normalized [0,1) view and snapshot serialization.
package randgen

import (
	"errors"
	"fmt"
	"time"

	"github.com/emrzvv/randkit/bitgen"
)

var (
	ErrConfig      = errors.New("randgen: conflicting configuration")
	ErrOpaqueState = errors.New("randgen: state is opaque for external uniform sources")
	ErrSnapshot    = errors.New("randgen: malformed snapshot")
)

// Config selects exactly one construction path. Defaults: Name "mt19937",
// Copy true. Source wraps an external [0,1) uniform callable and excludes
// every other field; such a handle cannot interpret foreign state and all
// state introspection returns nil/zero.
type Config struct {
	Name   string
	Seed   []uint32
	State  []uint32
	Copy   *bool
	Source func() float64
}

// Generator binds an encoded bitgen state to its family. With Copy=false the
// handle aliases the caller's state slice; every handle aliased to the same
// backing storage advances one common stream. Sharing is not goroutine safe,
// callers serialize access to a shared-state group themselves.
type Generator struct {
	fam   bitgen.Family
	state []uint32
	src   func() float64
}

func New(cfg Config) (*Generator, error) {
	if cfg.Source != nil {
		if cfg.Name != "" || cfg.Seed != nil || cfg.State != nil || cfg.Copy != nil {
			return nil, fmt.Errorf("%w: Source excludes Name, Seed, State and Copy", ErrConfig)
		}
		return &Generator{src: cfg.Source}, nil
	}

	name := cfg.Name
	if name == "" {
		name = "mt19937"
	}
	fam, err := bitgen.Lookup(name)
	if err != nil {
		return nil, err
	}

	switch {
	case cfg.State != nil:
		if cfg.Seed != nil {
			return nil, fmt.Errorf("%w: Seed and State are mutually exclusive", ErrConfig)
		}
		if err := fam.Validate(cfg.State); err != nil {
			return nil, err
		}
		state := cfg.State
		if cfg.Copy == nil || *cfg.Copy {
			state = append([]uint32(nil), cfg.State...)
		}
		return &Generator{fam: fam, state: state}, nil
	case cfg.Seed != nil:
		state, err := fam.SeedState(cfg.Seed)
		if err != nil {
			return nil, err
		}
		return &Generator{fam: fam, state: state}, nil
	default:
		state, err := fam.SeedState(clockSeed(fam))
		if err != nil {
			return nil, err
		}
		return &Generator{fam: fam, state: state}, nil
	}
}

// MustNew panics on configuration errors.
func MustNew(cfg Config) *Generator {
	g, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return g
}

func clockSeed(fam bitgen.Family) []uint32 {
	t := uint64(time.Now().UnixNano())
	if fam.MaxSeedLen() < 2 {
		return []uint32{uint32(t%2147483645) + 1}
	}
	return []uint32{uint32(t) | 1, uint32(t >> 32)}
}

// Name returns the family name, or "" for external-source handles.
func (g *Generator) Name() string {
	if g.fam == nil {
		return ""
	}
	return g.fam.Name()
}

// Opaque reports whether the handle wraps an external uniform source.
func (g *Generator) Opaque() bool { return g.fam == nil }

// Uint32 returns one raw draw. For external-source handles the value is
// derived by scaling one float draw to 32 bits.
func (g *Generator) Uint32() uint32 {
	if g.fam == nil {
		return uint32(g.src() * (1 << 32))
	}
	return g.fam.Next(g.state)
}

// Uint64 combines two raw draws. Satisfies math/rand/v2 Source, which is how
// distribution transforms consume the handle.
func (g *Generator) Uint64() uint64 {
	return uint64(g.Uint32())<<32 | uint64(g.Uint32())
}

// Float64 returns a draw in [0,1) using the family's normalization, or the
// external source verbatim.
func (g *Generator) Float64() float64 {
	if g.fam == nil {
		return g.src()
	}
	return g.fam.Normalized(g.state)
}

// Intn returns a draw in [0,n) by masked rejection. Panics if n <= 0.
func (g *Generator) Intn(n int) int {
	if n <= 0 {
		panic(fmt.Sprintf("randgen: Intn called with n %d", n))
	}
	limit := uint64(n - 1)
	mask := limit
	mask |= mask >> 1
	mask |= mask >> 2
	mask |= mask >> 4
	mask |= mask >> 8
	mask |= mask >> 16
	mask |= mask >> 32
	for {
		if v := g.Uint64() & mask; v <= limit {
			return int(v)
		}
	}
}

// Seed returns a copy of the seed the state was derived from, or nil for
// external-source handles.
func (g *Generator) Seed() []uint32 {
	if g.fam == nil {
		return nil
	}
	return append([]uint32(nil), bitgen.SeedTail(g.fam, g.state)...)
}

func (g *Generator) SeedLen() int {
	if g.fam == nil {
		return 0
	}
	return len(bitgen.SeedTail(g.fam, g.state))
}

// State returns an independent snapshot of the current encoded state, or nil
// for external-source handles.
func (g *Generator) State() []uint32 {
	if g.fam == nil {
		return nil
	}
	return append([]uint32(nil), g.state...)
}

func (g *Generator) StateLen() int { return len(g.state) }

func (g *Generator) ByteLen() int { return 4 * len(g.state) }

// SetState replaces the generator state. A state of the same word count is
// copied into the existing backing storage, so handles sharing that storage
// observe the change. A state of a different word count re-points this handle
// to a private copy and silently detaches it from any shared group; the other
// handles stay on the old storage. Downstream code relies on this asymmetry,
// do not normalize it.
func (g *Generator) SetState(state []uint32) error {
	if g.fam == nil {
		return ErrOpaqueState
	}
	if err := g.fam.Validate(state); err != nil {
		return err
	}
	if len(state) == len(g.state) {
		copy(g.state, state)
		return nil
	}
	g.state = append([]uint32(nil), state...)
	return nil
}
