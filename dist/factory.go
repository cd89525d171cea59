package dist

import (
	"fmt"

	"github.com/emrzvv/randkit/randgen"
	"github.com/emrzvv/randkit/strided"
)

// Factory1 samples a one-parameter distribution from a dedicated generator.
// Constructed with one parameter it is bound: Sample/Array/Assign use that
// parameter, already validated. Constructed with none it is per-call:
// SampleWith and the fill forms validate on every draw and emit NaN on
// violation.
type Factory1 struct {
	def   def1
	gen   *randgen.Generator
	a     float64
	bound bool
}

func newFactory1(d def1, cfg Config, params ...float64) (*Factory1, error) {
	gen, err := generatorFor(cfg)
	if err != nil {
		return nil, err
	}
	f := &Factory1{def: d, gen: gen}
	switch len(params) {
	case 0:
	case 1:
		if !d.check(params[0]) {
			return nil, fmt.Errorf("%w: %s(%v)", ErrBadParams, d.name, params[0])
		}
		f.a, f.bound = params[0], true
	default:
		return nil, fmt.Errorf("%w: %s binds one parameter, got %d", ErrBadParams, d.name, len(params))
	}
	return f, nil
}

// Sample draws with the bound parameter. Panics on an unbound factory: that
// is a programming error, not a data condition.
func (f *Factory1) Sample() float64 {
	if !f.bound {
		panic(fmt.Sprintf("dist: %s factory is unbound, use SampleWith", f.def.name))
	}
	return f.def.rand(f.gen, f.a)
}

func (f *Factory1) SampleWith(a float64) float64 { return f.def.sample(f.gen, a) }

func (f *Factory1) Generator() *randgen.Generator { return f.gen }

// Serialize captures the underlying generator plus the bound parameter, or
// nil when the generator state is opaque.
func (f *Factory1) Serialize() *randgen.Snapshot {
	s := f.gen.Serialize()
	if s == nil {
		return nil
	}
	if f.bound {
		s.Params = []float64{f.a}
	}
	return s
}

// Fill writes n samples using per-element parameters, view-offset convention.
func (f *Factory1) Fill(n int, a strided.Arg, out strided.Arg) strided.Vector {
	return strided.Fill(n, []strided.Arg{a}, out, func(p []float64) float64 {
		return f.def.sample(f.gen, p[0])
	})
}

// FillIndexed is Fill with explicit starting offsets.
func (f *Factory1) FillIndexed(n int, a strided.IxArg, out strided.IxArg) strided.Vector {
	return strided.FillIndexed(n, []strided.IxArg{a}, out, func(p []float64) float64 {
		return f.def.sample(f.gen, p[0])
	})
}

// Array allocates and fills a new n-element vector with the bound parameter.
func (f *Factory1) Array(n int, dt strided.Dtype) (strided.Vector, error) {
	out, err := strided.Alloc(dt, n)
	if err != nil {
		return nil, err
	}
	return f.Assign(out), nil
}

func (f *Factory1) ArrayWith(n int, a float64, dt strided.Dtype) (strided.Vector, error) {
	out, err := strided.Alloc(dt, n)
	if err != nil {
		return nil, err
	}
	return f.AssignWith(a, out), nil
}

// Assign fills every element of out in place with the bound parameter.
func (f *Factory1) Assign(out strided.Vector) strided.Vector {
	if !f.bound {
		panic(fmt.Sprintf("dist: %s factory is unbound, use AssignWith", f.def.name))
	}
	return strided.Fill(out.Len(), nil, strided.Arg{X: out, Stride: 1}, func([]float64) float64 {
		return f.def.rand(f.gen, f.a)
	})
}

func (f *Factory1) AssignWith(a float64, out strided.Vector) strided.Vector {
	return f.Fill(out.Len(), strided.Arg{X: strided.Constant(a)}, strided.Arg{X: out, Stride: 1})
}

// Factory2 is the two-parameter counterpart of Factory1.
type Factory2 struct {
	def   def2
	gen   *randgen.Generator
	a, b  float64
	bound bool
}

func newFactory2(d def2, cfg Config, params ...float64) (*Factory2, error) {
	gen, err := generatorFor(cfg)
	if err != nil {
		return nil, err
	}
	f := &Factory2{def: d, gen: gen}
	switch len(params) {
	case 0:
	case 2:
		if !d.check(params[0], params[1]) {
			return nil, fmt.Errorf("%w: %s(%v, %v)", ErrBadParams, d.name, params[0], params[1])
		}
		f.a, f.b, f.bound = params[0], params[1], true
	default:
		return nil, fmt.Errorf("%w: %s binds two parameters, got %d", ErrBadParams, d.name, len(params))
	}
	return f, nil
}

func (f *Factory2) Sample() float64 {
	if !f.bound {
		panic(fmt.Sprintf("dist: %s factory is unbound, use SampleWith", f.def.name))
	}
	return f.def.rand(f.gen, f.a, f.b)
}

func (f *Factory2) SampleWith(a, b float64) float64 { return f.def.sample(f.gen, a, b) }

func (f *Factory2) Generator() *randgen.Generator { return f.gen }

func (f *Factory2) Serialize() *randgen.Snapshot {
	s := f.gen.Serialize()
	if s == nil {
		return nil
	}
	if f.bound {
		s.Params = []float64{f.a, f.b}
	}
	return s
}

func (f *Factory2) Fill(n int, a, b strided.Arg, out strided.Arg) strided.Vector {
	return strided.Fill(n, []strided.Arg{a, b}, out, func(p []float64) float64 {
		return f.def.sample(f.gen, p[0], p[1])
	})
}

func (f *Factory2) FillIndexed(n int, a, b strided.IxArg, out strided.IxArg) strided.Vector {
	return strided.FillIndexed(n, []strided.IxArg{a, b}, out, func(p []float64) float64 {
		return f.def.sample(f.gen, p[0], p[1])
	})
}

func (f *Factory2) Array(n int, dt strided.Dtype) (strided.Vector, error) {
	out, err := strided.Alloc(dt, n)
	if err != nil {
		return nil, err
	}
	return f.Assign(out), nil
}

func (f *Factory2) ArrayWith(n int, a, b float64, dt strided.Dtype) (strided.Vector, error) {
	out, err := strided.Alloc(dt, n)
	if err != nil {
		return nil, err
	}
	return f.AssignWith(a, b, out), nil
}

func (f *Factory2) Assign(out strided.Vector) strided.Vector {
	if !f.bound {
		panic(fmt.Sprintf("dist: %s factory is unbound, use AssignWith", f.def.name))
	}
	return strided.Fill(out.Len(), nil, strided.Arg{X: out, Stride: 1}, func([]float64) float64 {
		return f.def.rand(f.gen, f.a, f.b)
	})
}

func (f *Factory2) AssignWith(a, b float64, out strided.Vector) strided.Vector {
	return f.Fill(out.Len(), strided.Arg{X: strided.Constant(a)}, strided.Arg{X: strided.Constant(b)}, strided.Arg{X: out, Stride: 1})
}
