// Package strided provides the indexable-vector capability and the strided
// fill engine shared by every distribution filler.
package strided

import (
	"errors"
	"fmt"
)

var ErrDtype = errors.New("strided: unknown dtype")

// Vector is the minimal indexed get/set capability. The fill engine routes
// every access through it and never assumes a contiguous buffer. No bounds
// are checked beyond what the caller's element count implies.
type Vector interface {
	Len() int
	Get(i int) float64
	Set(i int, v float64)
}

type Float64Slice []float64

func (s Float64Slice) Len() int             { return len(s) }
func (s Float64Slice) Get(i int) float64    { return s[i] }
func (s Float64Slice) Set(i int, v float64) { s[i] = v }

// GenericSlice is the untyped container variant.
type GenericSlice []any

func (s GenericSlice) Len() int             { return len(s) }
func (s GenericSlice) Get(i int) float64    { return s[i].(float64) }
func (s GenericSlice) Set(i int, v float64) { s[i] = v }

// Accessor adapts any object exposing integer-indexed reads and writes.
type Accessor struct {
	N   int
	At  func(i int) float64
	Put func(i int, v float64)
}

func (a Accessor) Len() int             { return a.N }
func (a Accessor) Get(i int) float64    { return a.At(i) }
func (a Accessor) Set(i int, v float64) { a.Put(i, v) }

// Dtype selects the output representation of array factories.
type Dtype string

const (
	Float64 Dtype = "float64"
	Generic Dtype = "generic"
)

// Alloc returns a zeroed vector of n elements for the given dtype.
func Alloc(dt Dtype, n int) (Vector, error) {
	switch dt {
	case Float64, "":
		return make(Float64Slice, n), nil
	case Generic:
		s := make(GenericSlice, n)
		for i := range s {
			s[i] = float64(0)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrDtype, dt)
	}
}

// Constant wraps a scalar as a broadcastable single-element vector, for use
// with stride 0.
func Constant(v float64) Vector { return Float64Slice{v} }
