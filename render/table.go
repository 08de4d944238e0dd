package render

import (
	"path/filepath"

	"github.com/phil-mansfield/gobez/io"
)

// Table writes each curve to <Dir>/<name>.curve.txt and each surface to
// <Dir>/<name>.surface.txt. See io.WriteCurve and io.WriteSurface for the
// column layouts.
type Table struct {
	Dir string
}

// CurveFile returns the name of the file a curve is written to.
func (t *Table) CurveFile(name string) string {
	return filepath.Join(t.Dir, name+".curve.txt")
}

// SurfaceFile returns the name of the file a surface is written to.
func (t *Table) SurfaceFile(name string) string {
	return filepath.Join(t.Dir, name+".surface.txt")
}

func (t *Table) RenderCurve(c *Curve) error {
	return io.WriteCurveFile(t.CurveFile(c.Name), c.Points)
}

func (t *Table) RenderSurface(s *Surface) error {
	return io.WriteSurfaceFile(t.SurfaceFile(s.Name), s.Points)
}

func (t *Table) Flush() error { return nil }
