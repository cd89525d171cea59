// Package sample provides shuffling and random sampling driven by a randgen
// generator, over the same indexable-vector capability the fill engine uses.
package sample

import (
	"errors"
	"fmt"

	"github.com/emrzvv/randkit/randgen"
	"github.com/emrzvv/randkit/strided"
)

var ErrBadSample = errors.New("sample: invalid sample size")

// Shuffle permutes x in place with a Fisher-Yates walk.
func Shuffle(g *randgen.Generator, x strided.Vector) {
	for i := x.Len() - 1; i > 0; i-- {
		j := g.Intn(i + 1)
		xi, xj := x.Get(i), x.Get(j)
		x.Set(i, xj)
		x.Set(j, xi)
	}
}

// Sample draws k elements from x. With replace each draw is independent;
// without, the result is a k-prefix of a partial Fisher-Yates permutation and
// k must not exceed x.Len().
func Sample(g *randgen.Generator, x strided.Vector, k int, replace bool) ([]float64, error) {
	if k < 0 {
		return nil, fmt.Errorf("%w: k = %d", ErrBadSample, k)
	}
	n := x.Len()
	out := make([]float64, k)

	if replace {
		if k > 0 && n == 0 {
			return nil, fmt.Errorf("%w: cannot draw from an empty vector", ErrBadSample)
		}
		for i := range out {
			out[i] = x.Get(g.Intn(n))
		}
		return out, nil
	}

	if k > n {
		return nil, fmt.Errorf("%w: k = %d exceeds population %d without replacement", ErrBadSample, k, n)
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + g.Intn(n-i)
		idx[i], idx[j] = idx[j], idx[i]
		out[i] = x.Get(idx[i])
	}
	return out, nil
}
