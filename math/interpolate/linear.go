package interpolate

import (
	"fmt"
	"sort"
)

// Linear is a linear interpolator.
type Linear struct {
	xs, vals []float64
}

// NewLinear creates a linear interpolator for a strictly increasing sequence
// of points, xs, which take on the values given by vals. Lookups are
// O(log |xs|).
//
// xs and vals must not be modified throughout the lifetime of the Linear.
func NewLinear(xs, vals []float64) *Linear {
	if len(xs) != len(vals) {
		panic(fmt.Sprintf(
			"Table given to NewLinear() has len(xs) = %d but len(vals) = %d.",
			len(xs), len(vals),
		))
	} else if len(xs) < 2 {
		panic(fmt.Sprintf("Table given to NewLinear() has length %d.", len(xs)))
	}
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			panic("Table given to NewLinear() not strictly increasing.")
		}
	}
	return &Linear{xs: xs, vals: vals}
}

// Eval returns the interpolated value at x.
//
// Eval panics if x is outside the range of the table.
func (lin *Linear) Eval(x float64) float64 {
	i1 := lin.search(x)
	i2 := i1 + 1
	x1, x2 := lin.xs[i1], lin.xs[i2]
	v1, v2 := lin.vals[i1], lin.vals[i2]

	return ((v2 - v1) / (x2 - x1)) * (x - x1) + v1
}

// EvalAll evaluates the interpolator at all the given x values. If an output
// array is given, the output is written to that array (the array is still
// returned as a convenience).
func (lin *Linear) EvalAll(xs []float64, out ...[]float64) []float64 {
	if len(out) == 0 { out = [][]float64{ make([]float64, len(xs)) } }
	for i, x := range xs { out[0][i] = lin.Eval(x) }
	return out[0]
}

// search returns the index of the start of the segment containing x.
func (lin *Linear) search(x float64) int {
	n := len(lin.xs)
	if !(x >= lin.xs[0] && x <= lin.xs[n-1]) {
		panic(fmt.Sprintf(
			"Point %g given to Linear.Eval() out of bounds [%g, %g].",
			x, lin.xs[0], lin.xs[n-1],
		))
	}

	i := sort.SearchFloat64s(lin.xs, x)
	if i == 0 { return 0 }
	if i == n { return n - 2 }
	return i - 1
}
