package dist

import (
	"math"
	"testing"

	"github.com/emrzvv/randkit/strided"
	"github.com/stretchr/testify/require"
)

func TestFillPerElementParams(t *testing.T) {
	f, err := NewNormal(seeded(t, 5))
	require.NoError(t, err)

	mu := strided.Float64Slice{0, 100, 1000}
	out := make(strided.Float64Slice, 3)
	f.Fill(3, strided.Arg{X: mu, Stride: 1}, strided.Arg{X: strided.Constant(0.001), Stride: 0}, strided.Arg{X: out, Stride: 1})

	// sigma is tiny, each sample hugs its own mean
	require.InDelta(t, 0.0, out[0], 1)
	require.InDelta(t, 100.0, out[1], 1)
	require.InDelta(t, 1000.0, out[2], 1)
}

func TestFillBadElementDoesNotAbort(t *testing.T) {
	f, err := NewGamma(seeded(t, 5))
	require.NoError(t, err)

	shape := strided.Float64Slice{2, -1, 3} // middle element invalid
	out := make(strided.Float64Slice, 3)
	f.Fill(3, strided.Arg{X: shape, Stride: 1}, strided.Arg{X: strided.Constant(1), Stride: 0}, strided.Arg{X: out, Stride: 1})

	require.False(t, math.IsNaN(out[0]))
	require.True(t, math.IsNaN(out[1]))
	require.False(t, math.IsNaN(out[2]))
}

func TestFillNonPositiveCountReturnsOutUnchanged(t *testing.T) {
	f, err := NewNormal(seeded(t, 5), 0, 1)
	require.NoError(t, err)

	out := strided.Float64Slice{7, 8, 9}
	got := f.Fill(0, strided.Arg{X: strided.Constant(0)}, strided.Arg{X: strided.Constant(1)}, strided.Arg{X: out, Stride: 1})
	require.Equal(t, strided.Float64Slice{7, 8, 9}, out)
	require.Equal(t, out, got)

	got = f.Fill(-1, strided.Arg{X: strided.Constant(0)}, strided.Arg{X: strided.Constant(1)}, strided.Arg{X: out, Stride: 1})
	require.Equal(t, strided.Float64Slice{7, 8, 9}, out)
	require.Equal(t, out, got)
}

func TestFillIndexedMatchesFill(t *testing.T) {
	a, err := NewExponential(seeded(t, 11))
	require.NoError(t, err)
	b, err := NewExponential(seeded(t, 11))
	require.NoError(t, err)

	out1 := make(strided.Float64Slice, 8)
	out2 := make(strided.Float64Slice, 8)
	a.Fill(4, strided.Arg{X: strided.Constant(2), Stride: 0}, strided.Arg{X: out1, Stride: 2})
	b.FillIndexed(4, strided.IxArg{X: strided.Constant(2), Stride: 0, Offset: 0}, strided.IxArg{X: out2, Stride: 2, Offset: 0})
	require.Equal(t, out1, out2)
}

func TestFillNegativeStrideReverses(t *testing.T) {
	a, err := NewExponential(seeded(t, 13))
	require.NoError(t, err)
	b, err := NewExponential(seeded(t, 13))
	require.NoError(t, err)

	fwd := make(strided.Float64Slice, 5)
	rev := make(strided.Float64Slice, 5)
	a.Fill(5, strided.Arg{X: strided.Constant(1), Stride: 0}, strided.Arg{X: fwd, Stride: 1})
	b.Fill(5, strided.Arg{X: strided.Constant(1), Stride: 0}, strided.Arg{X: rev, Stride: -1})

	for i := range fwd {
		require.Equal(t, fwd[i], rev[len(rev)-1-i], "index %d", i)
	}
}

func TestAssignAndArray(t *testing.T) {
	f, err := NewUniform(seeded(t, 17), 10, 11)
	require.NoError(t, err)

	out, err := f.Array(100, strided.Float64)
	require.NoError(t, err)
	require.Equal(t, 100, out.Len())
	for i := 0; i < out.Len(); i++ {
		v := out.Get(i)
		if v < 10 || v >= 11 {
			t.Fatalf("element %d = %v outside [10,11)", i, v)
		}
	}

	gen, err := f.ArrayWith(10, 0, 1, strided.Generic)
	require.NoError(t, err)
	require.IsType(t, strided.GenericSlice{}, gen)

	buf := make(strided.Float64Slice, 10)
	got := f.Assign(buf)
	require.Equal(t, strided.Vector(buf), got)

	_, err = f.Array(3, "float32")
	require.ErrorIs(t, err, strided.ErrDtype)
}
