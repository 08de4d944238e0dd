package render

import (
	"fmt"
	"path/filepath"

	plt "github.com/phil-mansfield/pyplot"

	"github.com/phil-mansfield/gobez/geom"
	"github.com/phil-mansfield/gobez/math/mat"
)

const (
	curveColor = "DarkSlateBlue"
	controlColor = "Crimson"
	hullColor = "DimGray"
)

// projections are the coordinate planes that surfaces are drawn in.
var projections = []struct {
	name string
	i, j int
}{
	{"xy", 0, 1}, {"xz", 0, 2}, {"yz", 1, 2},
}

var axisLabels = []string{"$x$", "$y$", "$z$"}

// Pyplot draws figures with matplotlib. Each curve is saved to
// <Dir>/<name>.png. Each surface is drawn as a wireframe in three
// projections, saved to <Dir>/<name>_xy.png, <name>_xz.png and
// <name>_yz.png.
//
// pyplot collects commands into a single python script, so nothing is
// written until Flush is called, and only one Pyplot should be in use at a
// time.
type Pyplot struct {
	Dir string
	Show bool
}

// NewPyplot discards any pending pyplot commands and returns a Pyplot which
// writes to dir.
func NewPyplot(dir string, show bool) *Pyplot {
	plt.Reset()
	return &Pyplot{Dir: dir, Show: show}
}

// CurveFile returns the name of the figure a curve is saved to.
func (p *Pyplot) CurveFile(name string) string {
	return filepath.Join(p.Dir, name+".png")
}

// SurfaceFile returns the name of the figure a surface projection is saved
// to. proj is one of "xy", "xz" or "yz".
func (p *Pyplot) SurfaceFile(name, proj string) string {
	return filepath.Join(p.Dir, fmt.Sprintf("%s_%s.png", name, proj))
}

func (p *Pyplot) RenderCurve(c *Curve) error {
	xs, ys := split2(c.Points)
	cxs, cys := split2(c.Control)

	plt.Figure(plt.FigSize(8, 8))
	hull := geom.ConvexHull(c.Control)
	if len(hull) > 2 {
		hxs, hys := split2(append(hull, hull[0]))
		plt.Plot(hxs, hys, "--", plt.C(hullColor))
	}
	plt.Plot(cxs, cys, "o-", plt.C(controlColor))
	plt.Plot(xs, ys, plt.LW(3), plt.C(curveColor))

	plt.Title(fmt.Sprintf("%s: degree %d", c.Name, c.Degree()))
	plt.XLabel(axisLabels[0], plt.FontSize(16))
	plt.YLabel(axisLabels[1], plt.FontSize(16))
	plt.Grid(plt.Axis("x"))
	plt.Grid(plt.Axis("y"))
	plt.SaveFig(p.CurveFile(c.Name))
	return nil
}

func (p *Pyplot) RenderSurface(s *Surface) error {
	for _, proj := range projections {
		plt.Figure(plt.FigSize(8, 8))

		// Iso-u lines are matrix rows, iso-v lines are columns.
		coords := [3]*mat.Matrix{s.X, s.Y, s.Z}
		mx, my := coords[proj.i], coords[proj.j]
		for a := 0; a < mx.Height; a++ {
			plt.Plot(mx.Row(a), my.Row(a), plt.LW(1), plt.C(curveColor))
		}
		for b := 0; b < mx.Width; b++ {
			plt.Plot(mx.Col(b), my.Col(b), plt.LW(1), plt.C(curveColor))
		}

		for i := range s.Control {
			xs, ys := project(s.Control[i], proj.i, proj.j)
			plt.Plot(xs, ys, "o--", plt.C(controlColor))
		}

		plt.Title(fmt.Sprintf("%s: %s projection", s.Name, proj.name))
		plt.XLabel(axisLabels[proj.i], plt.FontSize(16))
		plt.YLabel(axisLabels[proj.j], plt.FontSize(16))
		plt.Grid(plt.Axis("x"))
		plt.Grid(plt.Axis("y"))
		plt.SaveFig(p.SurfaceFile(s.Name, proj.name))
	}
	return nil
}

// Flush runs the accumulated python script once and clears it.
func (p *Pyplot) Flush() error {
	if p.Show {
		plt.Show()
	} else {
		plt.Execute()
	}
	plt.Reset()
	return nil
}

func split2(ps []geom.Vec2) (xs, ys []float64) {
	xs, ys = make([]float64, len(ps)), make([]float64, len(ps))
	for i := range ps { xs[i], ys[i] = ps[i][0], ps[i][1] }
	return xs, ys
}

func project(ps []geom.Vec3, i, j int) (xs, ys []float64) {
	xs, ys = make([]float64, len(ps)), make([]float64, len(ps))
	for k := range ps { xs[k], ys[k] = ps[k][i], ps[k][j] }
	return xs, ys
}
