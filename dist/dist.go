// Package dist layers distribution samplers over randgen generators. The
// mathematical transforms come from gonum's stat/distuv; this package owns
// the calling convention: scalar draws, bound/per-call factories, strided
// fills and array producers.
//
// Validation policy: parameters supplied per call or per element yield NaN
// when invalid, so a bulk fill is never aborted by sparse bad data. Bound
// parameters are validated once, at factory construction, and fail loudly.
package dist

import (
	"errors"
	"fmt"
	"math"

	"github.com/emrzvv/randkit/randgen"
)

var ErrBadParams = errors.New("dist: invalid parameters")

// Source is the uniform capability a sampler consumes. *randgen.Generator
// implements it; the Uint64 half satisfies math/rand/v2 Source, which is what
// distuv draws through.
type Source interface {
	Uint64() uint64
	Float64() float64
}

var defaultGen = randgen.MustNew(randgen.Config{})

// Default returns the clock-seeded generator backing the package-level
// scalar helpers.
func Default() *randgen.Generator { return defaultGen }

// Config selects the generator a factory draws from: either an existing
// handle (Gen, possibly shared with other factories) or the construction
// fields forwarded to randgen.New. All empty builds a fresh clock-seeded
// mt19937.
type Config struct {
	Gen    *randgen.Generator
	Name   string
	Seed   []uint32
	State  []uint32
	Copy   *bool
	Source func() float64
}

func generatorFor(cfg Config) (*randgen.Generator, error) {
	if cfg.Gen != nil {
		if cfg.Name != "" || cfg.Seed != nil || cfg.State != nil || cfg.Copy != nil || cfg.Source != nil {
			return nil, fmt.Errorf("%w: Gen excludes the construction fields", randgen.ErrConfig)
		}
		return cfg.Gen, nil
	}
	return randgen.New(randgen.Config{
		Name:   cfg.Name,
		Seed:   cfg.Seed,
		State:  cfg.State,
		Copy:   cfg.Copy,
		Source: cfg.Source,
	})
}

// def1 is a one-parameter distribution family: a validity predicate and the
// transform itself.
type def1 struct {
	name  string
	check func(a float64) bool
	rand  func(src Source, a float64) float64
}

func (d def1) sample(src Source, a float64) float64 {
	if !d.check(a) {
		return math.NaN()
	}
	return d.rand(src, a)
}

type def2 struct {
	name  string
	check func(a, b float64) bool
	rand  func(src Source, a, b float64) float64
}

func (d def2) sample(src Source, a, b float64) float64 {
	if !d.check(a, b) {
		return math.NaN()
	}
	return d.rand(src, a, b)
}
