package strided

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func sum(params []float64) float64 {
	s := 0.0
	for _, p := range params {
		s += p
	}
	return s
}

func TestFillForward(t *testing.T) {
	a := Float64Slice{1, 2, 3, 4}
	out := make(Float64Slice, 4)
	got := Fill(4, []Arg{{X: a, Stride: 1}}, Arg{X: out, Stride: 1}, sum)
	require.Equal(t, Float64Slice{1, 2, 3, 4}, got)
}

func TestFillBroadcast(t *testing.T) {
	out := make(Float64Slice, 3)
	Fill(3, []Arg{{X: Constant(2), Stride: 0}, {X: Constant(3), Stride: 0}}, Arg{X: out, Stride: 1}, sum)
	require.Equal(t, Float64Slice{5, 5, 5}, out)
}

func TestFillNegativeStrideReverses(t *testing.T) {
	a := Float64Slice{1, 2, 3, 4, 5}

	fwd := make(Float64Slice, 5)
	Fill(5, []Arg{{X: a, Stride: 1}}, Arg{X: fwd, Stride: 1}, sum)

	rev := make(Float64Slice, 5)
	Fill(5, []Arg{{X: a, Stride: 1}}, Arg{X: rev, Stride: -1}, sum)

	for i := range fwd {
		require.Equal(t, fwd[i], rev[len(rev)-1-i], "index %d", i)
	}
}

func TestFillIndexedEquivalence(t *testing.T) {
	a := Float64Slice{10, 20, 30}
	view := make(Float64Slice, 6)
	ix := make(Float64Slice, 6)

	Fill(3, []Arg{{X: a, Stride: 1}}, Arg{X: view, Stride: 2}, sum)
	FillIndexed(3, []IxArg{{X: a, Stride: 1, Offset: 0}}, IxArg{X: ix, Stride: 2, Offset: 0}, sum)
	require.Equal(t, view, ix)

	// Explicit offset reaches addresses the view form starts at via stride.
	shifted := make(Float64Slice, 4)
	FillIndexed(3, []IxArg{{X: a, Stride: 1}}, IxArg{X: shifted, Stride: 1, Offset: 1}, sum)
	require.Equal(t, Float64Slice{0, 10, 20, 30}, shifted)
}

func TestFillNonPositiveCountIsNoop(t *testing.T) {
	out := Float64Slice{1, 2, 3}
	got := Fill(0, nil, Arg{X: out, Stride: 1}, sum)
	require.Equal(t, Float64Slice{1, 2, 3}, got)

	got = Fill(-1, nil, Arg{X: out, Stride: 1}, sum)
	require.Equal(t, Float64Slice{1, 2, 3}, got)
}

func TestFillAccessorVector(t *testing.T) {
	backing := map[int]float64{}
	acc := Accessor{
		N:   3,
		At:  func(i int) float64 { return backing[i] },
		Put: func(i int, v float64) { backing[i] = v },
	}
	Fill(3, []Arg{{X: Float64Slice{1, 2, 3}, Stride: 1}}, Arg{X: acc, Stride: 1}, sum)
	require.Equal(t, map[int]float64{0: 1, 1: 2, 2: 3}, backing)
}

func TestAllocDtypes(t *testing.T) {
	v, err := Alloc(Float64, 2)
	require.NoError(t, err)
	require.IsType(t, Float64Slice{}, v)

	g, err := Alloc(Generic, 2)
	require.NoError(t, err)
	g.Set(1, 4.5)
	require.Equal(t, 4.5, g.Get(1))

	_, err = Alloc("int8", 2)
	require.ErrorIs(t, err, ErrDtype)
}
