package dist

import "gonum.org/v1/gonum/stat/distuv"

var poissonDef = def1{
	name:  "poisson",
	check: func(lambda float64) bool { return lambda > 0 },
	rand: func(src Source, lambda float64) float64 {
		return distuv.Poisson{Lambda: lambda, Src: src}.Rand()
	},
}

// Poisson draws a count with the given mean. NaN unless lambda > 0.
func Poisson(lambda float64) float64 { return poissonDef.sample(defaultGen, lambda) }

func NewPoisson(cfg Config, params ...float64) (*Factory1, error) {
	return newFactory1(poissonDef, cfg, params...)
}

var bernoulliDef = def1{
	name:  "bernoulli",
	check: func(p float64) bool { return p >= 0 && p <= 1 },
	rand: func(src Source, p float64) float64 {
		return distuv.Bernoulli{P: p, Src: src}.Rand()
	},
}

// Bernoulli draws 0 or 1 with success probability p. NaN unless p is in [0,1].
func Bernoulli(p float64) float64 { return bernoulliDef.sample(defaultGen, p) }

func NewBernoulli(cfg Config, params ...float64) (*Factory1, error) {
	return newFactory1(bernoulliDef, cfg, params...)
}
