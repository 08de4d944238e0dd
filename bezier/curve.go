package bezier

import (
	"github.com/phil-mansfield/gobez/geom"
	"github.com/phil-mansfield/gobez/math/bernstein"
)

// Curve evaluates the Bezier curve with the given control polygon at every
// parameter value in ts. The degree of the curve is len(points) - 1 and
// result k is
//
//	sum_i B(i, n, ts[k]) * points[i].
//
// The result has the same length and order as ts. A sample of exactly 0 or
// 1 returns the first or last control point exactly.
//
// Curve returns an *InvalidInputError if there are fewer than two control
// points, if ts is empty, or if any input is NaN or infinite. Samples
// outside of [0, 1] are evaluated anyway and reported as warnings (see the
// package documentation).
func (e *Evaluator) Curve(points []geom.Vec2, ts []float64) ([]geom.Vec2, error) {
	if len(points) < 2 {
		return nil, invalidf(
			"Curve", "need at least 2 control points, but got %d", len(points),
		)
	}
	for i, p := range points {
		if !p.IsFinite() {
			return nil, invalidf("Curve", "control point %d is %v", i, p)
		}
	}
	if err := checkSamples("Curve", "t", ts); err != nil { return nil, err }

	c := newCollector()
	checkRange(c, "t", ts)

	n := len(points) - 1
	out := make([]geom.Vec2, len(ts))
	e.parallelFor(len(ts), func(lo, hi int) {
		row := make([]float64, n+1)
		for k := lo; k < hi; k++ {
			out[k] = curvePoint(points, ts[k], row)
		}
	})

	return out, c.Done()
}

// curvePoint evaluates a single point using row as scratch space for the
// basis.
func curvePoint(points []geom.Vec2, t float64, row []float64) geom.Vec2 {
	// Endpoints are exact anyway, but this skips the sum.
	switch t {
	case 0:
		return points[0]
	case 1:
		return points[len(points)-1]
	}

	bernstein.Row(len(points)-1, t, row)
	p := geom.Vec2{}
	for i := range points { p = p.AddScaled(row[i], points[i]) }
	return p
}

// EvalCurvePoint evaluates a single point on a curve. It follows the same
// rules as Evaluator.Curve.
func EvalCurvePoint(points []geom.Vec2, t float64) (geom.Vec2, error) {
	out, err := (&Evaluator{Workers: 1}).Curve(points, []float64{t})
	if out == nil { return geom.Vec2{}, err }
	return out[0], err
}
