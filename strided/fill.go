package strided

// Arg pairs a vector with a stride, view-offset convention: the starting
// index is derived from the stride, so a negative stride walks backward from
// the end of the n-element window.
type Arg struct {
	X      Vector
	Stride int
}

// IxArg pairs a vector with a stride and an explicit starting offset. This is
// the addressing form for containers that only support integer-indexed
// access.
type IxArg struct {
	X      Vector
	Stride int
	Offset int
}

// viewOffset is the canonical start index for an n-element strided window.
func viewOffset(n, stride int) int {
	if stride < 0 {
		return (1 - n) * stride
	}
	return 0
}

// Fill writes fn(params(i)) to out for logical indices 0..n-1 using the
// view-offset convention. Stride 0 broadcasts a scalar argument. n <= 0
// performs no writes. Returns the output vector.
func Fill(n int, args []Arg, out Arg, fn func(params []float64) float64) Vector {
	ix := make([]IxArg, len(args))
	for i, a := range args {
		ix[i] = IxArg{X: a.X, Stride: a.Stride, Offset: viewOffset(n, a.Stride)}
	}
	return FillIndexed(n, ix, IxArg{X: out.X, Stride: out.Stride, Offset: viewOffset(n, out.Stride)}, fn)
}

// FillIndexed is Fill with explicit per-argument starting offsets. The
// address of logical index i is offset + i*stride for every argument and for
// the output. Out-of-range addresses are the caller's responsibility.
func FillIndexed(n int, args []IxArg, out IxArg, fn func(params []float64) float64) Vector {
	if n <= 0 {
		return out.X
	}
	params := make([]float64, len(args))
	for i := 0; i < n; i++ {
		for j, a := range args {
			params[j] = a.X.Get(a.Offset + i*a.Stride)
		}
		out.X.Set(out.Offset+i*out.Stride, fn(params))
	}
	return out.X
}
