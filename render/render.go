/*package render turns evaluated curves and surfaces into output files.

Every output format is a Renderer. A job hands each evaluated curve and
surface to its renderers in turn and calls Flush once at the end, which is
where renderers that batch their work (like Pyplot) actually produce output.
*/
package render

import (
	"fmt"

	"github.com/phil-mansfield/gobez/bezier"
	"github.com/phil-mansfield/gobez/geom"
	"github.com/phil-mansfield/gobez/io"
	"github.com/phil-mansfield/gobez/math/mat"
)

// Renderer writes evaluated curves and surfaces to some output format.
type Renderer interface {
	RenderCurve(c *Curve) error
	RenderSurface(s *Surface) error
	// Flush is called once after every curve and surface has been rendered.
	Flush() error
}

// Curve is an evaluated Bezier curve along with the control polygon it was
// evaluated from.
type Curve struct {
	Name string
	Control []geom.Vec2
	Ts []float64
	Points []geom.Vec2
}

// Surface is an evaluated bicubic patch along with its control grid.
// Points[a][b] is the patch evaluated at (Us[a], Vs[b]). X, Y and Z hold the
// same points split into coordinate matrices.
type Surface struct {
	Name string
	Control [][]geom.Vec3
	Us, Vs []float64
	Points [][]geom.Vec3
	X, Y, Z *mat.Matrix
}

// NewSurface packages an evaluated surface for rendering.
func NewSurface(
	name string, control [][]geom.Vec3, us, vs []float64, pts [][]geom.Vec3,
) *Surface {
	x, y, z := bezier.SurfaceCoords(pts)
	return &Surface{
		Name: name, Control: control, Us: us, Vs: vs, Points: pts,
		X: x, Y: y, Z: z,
	}
}

// Degree returns the degree of the curve.
func (c *Curve) Degree() int { return len(c.Control) - 1 }

// New creates the renderers requested by an [Output] config section, in
// the order they're listed.
func New(con *io.OutputConfig) ([]Renderer, error) {
	rs := []Renderer{}
	for _, format := range con.Format {
		switch format {
		case "png":
			rs = append(rs, NewPyplot(con.Dir, con.Show))
		case "table":
			rs = append(rs, &Table{Dir: con.Dir})
		case "stl":
			rs = append(rs, &STL{Dir: con.Dir})
		default:
			return nil, fmt.Errorf("Unrecognized output format '%s'.", format)
		}
	}
	return rs, nil
}

// Multi sends every curve and surface to each of its renderers. Errors do
// not stop the remaining renderers from running: the first one encountered
// is returned.
type Multi []Renderer

func (m Multi) RenderCurve(c *Curve) error {
	var first error
	for _, r := range m {
		if err := r.RenderCurve(c); err != nil && first == nil { first = err }
	}
	return first
}

func (m Multi) RenderSurface(s *Surface) error {
	var first error
	for _, r := range m {
		if err := r.RenderSurface(s); err != nil && first == nil { first = err }
	}
	return first
}

func (m Multi) Flush() error {
	var first error
	for _, r := range m {
		if err := r.Flush(); err != nil && first == nil { first = err }
	}
	return first
}

// Recorder keeps every curve and surface it is given. It's mostly useful
// for tests and for callers who want the evaluated points without writing
// any files.
type Recorder struct {
	Curves []*Curve
	Surfaces []*Surface
	Flushes int
}

func (r *Recorder) RenderCurve(c *Curve) error {
	r.Curves = append(r.Curves, c)
	return nil
}

func (r *Recorder) RenderSurface(s *Surface) error {
	r.Surfaces = append(r.Surfaces, s)
	return nil
}

func (r *Recorder) Flush() error {
	r.Flushes++
	return nil
}
