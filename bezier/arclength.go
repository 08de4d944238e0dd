package bezier

import (
	"math"

	"github.com/phil-mansfield/gobez/geom"
	"github.com/phil-mansfield/gobez/math/interpolate"
)

// arcLengthResolution is the number of polyline vertices used to measure
// a curve's length.
const arcLengthResolution = 2048

// degenerateLength is the length, relative to the extent of the control
// polygon, below which a curve is treated as a single point.
const degenerateLength = 1e-12

// ArcLengthSamples returns n parameter values in [0, 1] whose points on
// the curve are evenly spaced by arc length rather than by t. The first
// and last values are exactly 0 and 1.
//
// Lengths are measured along a dense polyline through the curve, so the
// spacing is approximate. A curve with zero length (all control points
// equal) gets uniform samples.
func (e *Evaluator) ArcLengthSamples(points []geom.Vec2, n int) ([]float64, error) {
	uniform, err := Linspace(n)
	if err != nil { return nil, err }

	dense, _ := Linspace(arcLengthResolution)
	pts, err := e.Curve(points, dense)
	if err != nil { return nil, err }

	// Rounding in the basis sum leaves segments of ~1e-16 on curves that
	// don't move at all, so zero length is judged against the polygon's size.
	extent := 0.0
	for _, p := range points {
		if d := p.Sub(points[0]).Norm(); d > extent { extent = d }
	}
	minLength := degenerateLength * math.Max(1, extent)

	// Drop repeated vertices so the length table is strictly increasing.
	ss, ts := []float64{0}, []float64{0}
	s := 0.0
	for i := 1; i < len(pts); i++ {
		s += pts[i].Sub(pts[i-1]).Norm()
		if s > ss[len(ss)-1] {
			ss, ts = append(ss, s), append(ts, dense[i])
		}
	}
	if extent == 0 || s <= minLength || len(ss) < 2 { return uniform, nil }

	// The polyline always reaches t = 1, even if the last vertices repeat.
	ts[len(ts)-1] = 1
	total := ss[len(ss)-1]
	lin := interpolate.NewLinear(ss, ts)

	out := make([]float64, n)
	for i := range out { out[i] = lin.Eval(uniform[i] * total) }
	out[0] = 0
	if n > 1 { out[n-1] = 1 }
	return out, nil
}
