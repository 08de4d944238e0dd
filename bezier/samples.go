package bezier

import (
	"math"
)

const (
	// DefaultCurveSamples is the number of parameter samples used for a
	// curve when none is requested.
	DefaultCurveSamples = 100
	// DefaultSurfaceSamples is the number of parameter samples used along
	// each surface axis when none is requested.
	DefaultSurfaceSamples = 30
)

// Linspace returns n uniformly spaced parameter values over [0, 1], with
// both endpoints included. Linspace(1) is []float64{0}.
//
// The last value is set to exactly 1 so that the final sample hits the
// curve's endpoint without rounding error.
func Linspace(n int) ([]float64, error) {
	if n <= 0 {
		return nil, invalidf("Linspace", "sample count must be positive, but is %d", n)
	}

	ts := make([]float64, n)
	if n == 1 { return ts, nil }

	for i := range ts { ts[i] = float64(i) / float64(n-1) }
	ts[n-1] = 1
	return ts, nil
}

// checkSamples returns an error if ts is empty or contains a value which
// is NaN or infinite.
func checkSamples(op, axis string, ts []float64) error {
	if len(ts) == 0 {
		return invalidf(op, "no %s samples given", axis)
	}
	for i, t := range ts {
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return invalidf(op, "%s[%d] is %g", axis, i, t)
		}
	}
	return nil
}
