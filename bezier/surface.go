package bezier

import (
	"github.com/phil-mansfield/gobez/geom"
	"github.com/phil-mansfield/gobez/math/bernstein"
	"github.com/phil-mansfield/gobez/math/mat"
)

// GridSize is the number of control points along each side of a bicubic
// patch's control grid.
const GridSize = 4

// Grid is the control grid of a bicubic patch. Grid[i][j] is the control
// point weighted by B(i, 3, u) * B(j, 3, v).
type Grid [GridSize][GridSize]geom.Vec3

// NewGrid copies a 4 x 4 slice of control points into a Grid. It returns an
// *InvalidInputError if the slice has any other shape or contains a value
// which is NaN or infinite.
func NewGrid(points [][]geom.Vec3) (*Grid, error) {
	if len(points) != GridSize {
		return nil, invalidf(
			"NewGrid", "control grid must be %dx%d, but has %d rows",
			GridSize, GridSize, len(points),
		)
	}

	g := &Grid{}
	for i := range points {
		if len(points[i]) != GridSize {
			return nil, invalidf(
				"NewGrid", "control grid must be %dx%d, but row %d has %d points",
				GridSize, GridSize, i, len(points[i]),
			)
		}
		for j, p := range points[i] {
			if !p.IsFinite() {
				return nil, invalidf(
					"NewGrid", "control point (%d, %d) is %v", i, j, p,
				)
			}
			g[i][j] = p
		}
	}
	return g, nil
}

// Slices returns the grid as a 4 x 4 slice of slices.
func (g *Grid) Slices() [][]geom.Vec3 {
	out := make([][]geom.Vec3, GridSize)
	for i := range out {
		out[i] = make([]geom.Vec3, GridSize)
		copy(out[i], g[i][:])
	}
	return out
}

// Point evaluates the patch at a single (u, v) pair:
//
//	sum_i sum_j B(i, 3, u) * B(j, 3, v) * g[i][j].
func (g *Grid) Point(u, v float64) geom.Vec3 {
	var bu, bv [GridSize]float64
	bernstein.Row(GridSize-1, u, bu[:])
	bernstein.Row(GridSize-1, v, bv[:])
	return g.point(&bu, &bv)
}

func (g *Grid) point(bu, bv *[GridSize]float64) geom.Vec3 {
	p := geom.Vec3{}
	for i := 0; i < GridSize; i++ {
		for j := 0; j < GridSize; j++ {
			p = p.AddScaled(bu[i]*bv[j], g[i][j])
		}
	}
	return p
}

// Surface evaluates the bicubic patch with control grid points at every
// pair of parameter values in us x vs. The result has len(us) rows of
// len(vs) points, with out[a][b] evaluated at (us[a], vs[b]). The four
// corners of the grid are reproduced exactly at (u, v) in {0, 1} x {0, 1}.
//
// Surface returns an *InvalidInputError if the grid isn't exactly 4 x 4, if
// either sample slice is empty, or if any input is NaN or infinite. Samples
// outside of [0, 1] are evaluated anyway and reported as warnings.
func (e *Evaluator) Surface(
	points [][]geom.Vec3, us, vs []float64,
) ([][]geom.Vec3, error) {
	g, err := NewGrid(points)
	if err != nil {
		return nil, &InvalidInputError{
			Op: "Surface", Msg: err.(*InvalidInputError).Msg,
		}
	}
	return e.GridSurface(g, us, vs)
}

// GridSurface is identical to Surface, but takes a Grid which has already
// been validated.
func (e *Evaluator) GridSurface(
	g *Grid, us, vs []float64,
) ([][]geom.Vec3, error) {
	if err := checkSamples("Surface", "u", us); err != nil { return nil, err }
	if err := checkSamples("Surface", "v", vs); err != nil { return nil, err }

	c := newCollector()
	checkRange(c, "u", us)
	checkRange(c, "v", vs)

	// The v basis is shared by every row, so compute it once.
	bvs := make([][GridSize]float64, len(vs))
	for b := range vs { bernstein.Row(GridSize-1, vs[b], bvs[b][:]) }

	out := make([][]geom.Vec3, len(us))
	e.parallelFor(len(us), func(lo, hi int) {
		var bu [GridSize]float64
		for a := lo; a < hi; a++ {
			bernstein.Row(GridSize-1, us[a], bu[:])
			row := make([]geom.Vec3, len(vs))
			for b := range vs { row[b] = g.point(&bu, &bvs[b]) }
			out[a] = row
		}
	})

	return out, c.Done()
}

// SurfaceMatrices evaluates the same points as GridSurface, but returns
// them as three coordinate matrices computed with the basis-matrix form of
// the patch,
//
//	X = Bu * Gx * Bv^T,
//
// where Bu[a][i] = B(i, 3, us[a]), Bv[b][j] = B(j, 3, vs[b]) and Gx holds
// the x coordinates of the grid (and similarly for Y and Z). Each matrix has
// len(us) rows and len(vs) columns.
func (e *Evaluator) SurfaceMatrices(
	g *Grid, us, vs []float64,
) (x, y, z *mat.Matrix, err error) {
	if err := checkSamples("SurfaceMatrices", "u", us); err != nil {
		return nil, nil, nil, err
	}
	if err := checkSamples("SurfaceMatrices", "v", vs); err != nil {
		return nil, nil, nil, err
	}

	c := newCollector()
	checkRange(c, "u", us)
	checkRange(c, "v", vs)

	bu, bvT := basisMatrix(us), basisMatrix(vs).Transpose()
	coords := [3]*mat.Matrix{}
	for k := range coords {
		gk := mat.Zeros(GridSize, GridSize)
		for i := 0; i < GridSize; i++ {
			for j := 0; j < GridSize; j++ { gk.Set(i, j, g[i][j][k]) }
		}
		coords[k] = bu.Mult(gk).Mult(bvT)
	}

	return coords[0], coords[1], coords[2], c.Done()
}

// basisMatrix returns the len(ts) x 4 matrix of cubic basis values.
func basisMatrix(ts []float64) *mat.Matrix {
	m := mat.Zeros(GridSize, len(ts))
	for a, t := range ts { bernstein.Row(GridSize-1, t, m.Row(a)) }
	return m
}

// SurfaceCoords splits an evaluated surface into three coordinate matrices,
// X, Y and Z, each with one row per u sample and one column per v sample.
// This is the layout surface plotting routines expect.
func SurfaceCoords(pts [][]geom.Vec3) (x, y, z *mat.Matrix) {
	if len(pts) == 0 || len(pts[0]) == 0 {
		panic("SurfaceCoords() given an empty surface.")
	}

	h, w := len(pts), len(pts[0])
	x, y, z = mat.Zeros(w, h), mat.Zeros(w, h), mat.Zeros(w, h)
	for a := range pts {
		if len(pts[a]) != w { panic("SurfaceCoords() given a ragged surface.") }
		for b, p := range pts[a] {
			x.Set(a, b, p[0])
			y.Set(a, b, p[1])
			z.Set(a, b, p[2])
		}
	}
	return x, y, z
}

// EvalSurfacePoint evaluates a single point on a surface. It follows the
// same rules as Evaluator.Surface.
func EvalSurfacePoint(points [][]geom.Vec3, u, v float64) (geom.Vec3, error) {
	out, err := (&Evaluator{Workers: 1}).Surface(
		points, []float64{u}, []float64{v},
	)
	if out == nil { return geom.Vec3{}, err }
	return out[0][0], err
}
