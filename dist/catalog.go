package dist

import (
	"fmt"

	"github.com/emrzvv/randkit/randgen"
	"github.com/emrzvv/randkit/strided"
)

// Sampler is the factory surface shared by Factory1 and Factory2, for
// callers that select a distribution by name.
type Sampler interface {
	Sample() float64
	Assign(out strided.Vector) strided.Vector
	Array(n int, dt strided.Dtype) (strided.Vector, error)
	Serialize() *randgen.Snapshot
	Generator() *randgen.Generator
}

// ByName builds a factory from a catalog name. Params follow the
// distribution's arity; passing none yields an unbound (per-call) factory.
func ByName(name string, cfg Config, params ...float64) (Sampler, error) {
	switch name {
	case "uniform":
		return NewUniform(cfg, params...)
	case "normal":
		return NewNormal(cfg, params...)
	case "lognormal":
		return NewLogNormal(cfg, params...)
	case "gamma":
		return NewGamma(cfg, params...)
	case "beta":
		return NewBeta(cfg, params...)
	case "weibull":
		return NewWeibull(cfg, params...)
	case "laplace":
		return NewLaplace(cfg, params...)
	case "pareto":
		return NewPareto(cfg, params...)
	case "exponential":
		return NewExponential(cfg, params...)
	case "chisquared":
		return NewChiSquared(cfg, params...)
	case "t":
		return NewStudentsT(cfg, params...)
	case "rayleigh":
		return NewRayleigh(cfg, params...)
	case "poisson":
		return NewPoisson(cfg, params...)
	case "bernoulli":
		return NewBernoulli(cfg, params...)
	default:
		return nil, fmt.Errorf("%w: unknown distribution %q", ErrBadParams, name)
	}
}
