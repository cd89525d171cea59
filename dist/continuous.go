package dist

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

var uniformDef = def2{
	name:  "uniform",
	check: func(a, b float64) bool { return a < b },
	rand: func(src Source, a, b float64) float64 {
		return distuv.Uniform{Min: a, Max: b, Src: src}.Rand()
	},
}

// Uniform draws from [a, b) using the package generator. NaN if a >= b.
func Uniform(a, b float64) float64 { return uniformDef.sample(defaultGen, a, b) }

func NewUniform(cfg Config, params ...float64) (*Factory2, error) {
	return newFactory2(uniformDef, cfg, params...)
}

var normalDef = def2{
	name:  "normal",
	check: func(mu, sigma float64) bool { return !math.IsNaN(mu) && sigma > 0 },
	rand: func(src Source, mu, sigma float64) float64 {
		return distuv.Normal{Mu: mu, Sigma: sigma, Src: src}.Rand()
	},
}

// Normal draws from N(mu, sigma^2). NaN unless sigma > 0.
func Normal(mu, sigma float64) float64 { return normalDef.sample(defaultGen, mu, sigma) }

func NewNormal(cfg Config, params ...float64) (*Factory2, error) {
	return newFactory2(normalDef, cfg, params...)
}

var logNormalDef = def2{
	name:  "lognormal",
	check: func(mu, sigma float64) bool { return !math.IsNaN(mu) && sigma > 0 },
	rand: func(src Source, mu, sigma float64) float64 {
		return distuv.LogNormal{Mu: mu, Sigma: sigma, Src: src}.Rand()
	},
}

func LogNormal(mu, sigma float64) float64 { return logNormalDef.sample(defaultGen, mu, sigma) }

func NewLogNormal(cfg Config, params ...float64) (*Factory2, error) {
	return newFactory2(logNormalDef, cfg, params...)
}

var gammaDef = def2{
	name:  "gamma",
	check: func(alpha, beta float64) bool { return alpha > 0 && beta > 0 },
	rand: func(src Source, alpha, beta float64) float64 {
		return distuv.Gamma{Alpha: alpha, Beta: beta, Src: src}.Rand()
	},
}

// Gamma draws with shape alpha and rate beta. NaN unless both are positive.
func Gamma(alpha, beta float64) float64 { return gammaDef.sample(defaultGen, alpha, beta) }

func NewGamma(cfg Config, params ...float64) (*Factory2, error) {
	return newFactory2(gammaDef, cfg, params...)
}

var betaDef = def2{
	name:  "beta",
	check: func(alpha, beta float64) bool { return alpha > 0 && beta > 0 },
	rand: func(src Source, alpha, beta float64) float64 {
		return distuv.Beta{Alpha: alpha, Beta: beta, Src: src}.Rand()
	},
}

func Beta(alpha, beta float64) float64 { return betaDef.sample(defaultGen, alpha, beta) }

func NewBeta(cfg Config, params ...float64) (*Factory2, error) {
	return newFactory2(betaDef, cfg, params...)
}

var weibullDef = def2{
	name:  "weibull",
	check: func(k, lambda float64) bool { return k > 0 && lambda > 0 },
	rand: func(src Source, k, lambda float64) float64 {
		return distuv.Weibull{K: k, Lambda: lambda, Src: src}.Rand()
	},
}

func Weibull(k, lambda float64) float64 { return weibullDef.sample(defaultGen, k, lambda) }

func NewWeibull(cfg Config, params ...float64) (*Factory2, error) {
	return newFactory2(weibullDef, cfg, params...)
}

var laplaceDef = def2{
	name:  "laplace",
	check: func(mu, scale float64) bool { return !math.IsNaN(mu) && scale > 0 },
	rand: func(src Source, mu, scale float64) float64 {
		return distuv.Laplace{Mu: mu, Scale: scale, Src: src}.Rand()
	},
}

func Laplace(mu, scale float64) float64 { return laplaceDef.sample(defaultGen, mu, scale) }

func NewLaplace(cfg Config, params ...float64) (*Factory2, error) {
	return newFactory2(laplaceDef, cfg, params...)
}

var paretoDef = def2{
	name:  "pareto",
	check: func(xm, alpha float64) bool { return xm > 0 && alpha > 0 },
	rand: func(src Source, xm, alpha float64) float64 {
		return distuv.Pareto{Xm: xm, Alpha: alpha, Src: src}.Rand()
	},
}

func Pareto(xm, alpha float64) float64 { return paretoDef.sample(defaultGen, xm, alpha) }

func NewPareto(cfg Config, params ...float64) (*Factory2, error) {
	return newFactory2(paretoDef, cfg, params...)
}

var exponentialDef = def1{
	name:  "exponential",
	check: func(rate float64) bool { return rate > 0 },
	rand: func(src Source, rate float64) float64 {
		return distuv.Exponential{Rate: rate, Src: src}.Rand()
	},
}

// Exponential draws with the given rate. NaN unless rate > 0.
func Exponential(rate float64) float64 { return exponentialDef.sample(defaultGen, rate) }

func NewExponential(cfg Config, params ...float64) (*Factory1, error) {
	return newFactory1(exponentialDef, cfg, params...)
}

var chiSquaredDef = def1{
	name:  "chisquared",
	check: func(k float64) bool { return k > 0 },
	rand: func(src Source, k float64) float64 {
		return distuv.ChiSquared{K: k, Src: src}.Rand()
	},
}

func ChiSquared(k float64) float64 { return chiSquaredDef.sample(defaultGen, k) }

func NewChiSquared(cfg Config, params ...float64) (*Factory1, error) {
	return newFactory1(chiSquaredDef, cfg, params...)
}

var studentsTDef = def1{
	name:  "t",
	check: func(nu float64) bool { return nu > 0 },
	rand: func(src Source, nu float64) float64 {
		return distuv.StudentsT{Mu: 0, Sigma: 1, Nu: nu, Src: src}.Rand()
	},
}

// StudentsT draws from the standard Student's t with nu degrees of freedom.
func StudentsT(nu float64) float64 { return studentsTDef.sample(defaultGen, nu) }

func NewStudentsT(cfg Config, params ...float64) (*Factory1, error) {
	return newFactory1(studentsTDef, cfg, params...)
}

var rayleighDef = def1{
	name:  "rayleigh",
	check: func(sigma float64) bool { return sigma > 0 },
	rand: func(src Source, sigma float64) float64 {
		return distuv.Rayleigh{Sigma: sigma, Src: src}.Rand()
	},
}

func Rayleigh(sigma float64) float64 { return rayleighDef.sample(defaultGen, sigma) }

func NewRayleigh(cfg Config, params ...float64) (*Factory1, error) {
	return newFactory1(rayleighDef, cfg, params...)
}
