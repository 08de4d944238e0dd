package render

import (
	"fmt"
	"path/filepath"

	sdfrender "github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/phil-mansfield/gobez/geom"
)

// STL writes each surface as a triangle mesh to <Dir>/<name>.stl. Every
// cell of the u x v sample grid becomes two triangles. Curves have no area
// and are skipped.
type STL struct {
	Dir string
}

// File returns the name of the file a surface is written to.
func (r *STL) File(name string) string {
	return filepath.Join(r.Dir, name+".stl")
}

func (r *STL) RenderCurve(c *Curve) error { return nil }

func (r *STL) RenderSurface(s *Surface) error {
	mesh := Triangulate(s.Points)
	if len(mesh) == 0 {
		return fmt.Errorf(
			"Surface '%s' needs at least 2 samples along each axis to be "+
				"written as an STL mesh, but has %d x %d.",
			s.Name, len(s.Us), len(s.Vs),
		)
	}
	return sdfrender.SaveSTL(r.File(s.Name), mesh)
}

func (r *STL) Flush() error { return nil }

// Triangulate splits a grid of evaluated surface points into triangles,
// with two triangles for every cell. Triangles are wound so that their
// normals point along dP/du x dP/dv.
func Triangulate(pts [][]geom.Vec3) []*sdf.Triangle3 {
	if len(pts) < 2 || len(pts[0]) < 2 { return nil }

	mesh := make([]*sdf.Triangle3, 0, 2*(len(pts)-1)*(len(pts[0])-1))
	for a := 0; a+1 < len(pts); a++ {
		for b := 0; b+1 < len(pts[a]); b++ {
			p00, p01 := vec(pts[a][b]), vec(pts[a][b+1])
			p10, p11 := vec(pts[a+1][b]), vec(pts[a+1][b+1])
			mesh = append(mesh,
				&sdf.Triangle3{p00, p10, p11},
				&sdf.Triangle3{p00, p11, p01},
			)
		}
	}
	return mesh
}

func vec(p geom.Vec3) v3.Vec { return v3.Vec{X: p[0], Y: p[1], Z: p[2]} }
