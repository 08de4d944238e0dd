package render

import (
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phil-mansfield/gobez/bezier"
	"github.com/phil-mansfield/gobez/geom"
	"github.com/phil-mansfield/gobez/io"
)

func testCurve(t *testing.T) *Curve {
	ctrl := []geom.Vec2{{0, 0}, {1, 2}, {2, 0}}
	ts, err := bezier.Linspace(5)
	require.NoError(t, err)
	pts, err := bezier.EvalCurve(ctrl, ts)
	require.NoError(t, err)
	return &Curve{Name: "arch", Control: ctrl, Ts: ts, Points: pts}
}

// flatGrid is the plane z = 0 with x increasing along u and y along v.
func flatGrid() [][]geom.Vec3 {
	g := make([][]geom.Vec3, 4)
	for i := range g {
		g[i] = make([]geom.Vec3, 4)
		for j := range g[i] { g[i][j] = geom.Vec3{float64(i), float64(j), 0} }
	}
	return g
}

func testSurface(t *testing.T, nu, nv int) *Surface {
	ctrl := flatGrid()
	us, err := bezier.Linspace(nu)
	require.NoError(t, err)
	vs, err := bezier.Linspace(nv)
	require.NoError(t, err)
	pts, err := bezier.EvalSurface(ctrl, us, vs)
	require.NoError(t, err)
	return NewSurface("plane", ctrl, us, vs, pts)
}

func TestNewSurface(t *testing.T) {
	s := testSurface(t, 3, 5)
	assert.Equal(t, 3, s.X.Height)
	assert.Equal(t, 5, s.X.Width)
	assert.Equal(t, s.Points[2][4][0], s.X.At(2, 4))
	assert.Equal(t, s.Points[1][3][1], s.Y.At(1, 3))
	assert.Equal(t, 0.0, s.Z.At(0, 0))
}

func TestTable(t *testing.T) {
	dir := t.TempDir()
	r := &Table{Dir: dir}
	c, s := testCurve(t), testSurface(t, 3, 4)

	require.NoError(t, r.RenderCurve(c))
	require.NoError(t, r.RenderSurface(s))
	require.NoError(t, r.Flush())

	pts, err := io.ReadCurvePoints(filepath.Join(dir, "arch.curve.txt"))
	require.NoError(t, err)
	assert.Equal(t, c.Points, pts)

	info, err := os.Stat(r.SurfaceFile("plane"))
	require.NoError(t, err)
	assert.True(t, info.Size() > 0)

	bad := &Table{Dir: filepath.Join(dir, "missing")}
	assert.Error(t, bad.RenderCurve(c))
}

func TestTriangulate(t *testing.T) {
	s := testSurface(t, 4, 3)
	mesh := Triangulate(s.Points)
	require.Len(t, mesh, 2*3*2)

	for i, tri := range mesh {
		n := tri.Normal()
		assert.InDelta(t, 1, n.Z, 1e-12, "triangle %d", i)
	}

	assert.Empty(t, Triangulate(nil))
	assert.Empty(t, Triangulate(testSurface(t, 1, 5).Points))
}

func TestSTL(t *testing.T) {
	dir := t.TempDir()
	r := &STL{Dir: dir}

	require.NoError(t, r.RenderCurve(testCurve(t)))
	_, err := os.Stat(filepath.Join(dir, "arch.stl"))
	assert.True(t, os.IsNotExist(err), "curves aren't written")

	require.NoError(t, r.RenderSurface(testSurface(t, 5, 6)))
	data, err := os.ReadFile(r.File("plane"))
	require.NoError(t, err)
	require.True(t, len(data) >= 84)
	assert.Equal(t, uint32(2*4*5), binary.LittleEndian.Uint32(data[80:84]))

	assert.Error(t, r.RenderSurface(testSurface(t, 1, 6)))
}

func TestPyplotFiles(t *testing.T) {
	p := &Pyplot{Dir: "out"}
	assert.Equal(t, filepath.Join("out", "arch.png"), p.CurveFile("arch"))
	assert.Equal(t, filepath.Join("out", "plane_xz.png"), p.SurfaceFile("plane", "xz"))
}

func TestRecorder(t *testing.T) {
	r := &Recorder{}
	c, s := testCurve(t), testSurface(t, 2, 2)
	require.NoError(t, r.RenderCurve(c))
	require.NoError(t, r.RenderSurface(s))
	require.NoError(t, r.Flush())

	assert.Equal(t, []*Curve{c}, r.Curves)
	assert.Equal(t, []*Surface{s}, r.Surfaces)
	assert.Equal(t, 1, r.Flushes)
}

type failing struct{ err error }

func (f failing) RenderCurve(c *Curve) error { return f.err }
func (f failing) RenderSurface(s *Surface) error { return f.err }
func (f failing) Flush() error { return f.err }

func TestMulti(t *testing.T) {
	errA, errB := errors.New("a"), errors.New("b")
	r1, r2 := &Recorder{}, &Recorder{}
	m := Multi{r1, failing{errA}, r2, failing{errB}}

	c, s := testCurve(t), testSurface(t, 2, 2)
	assert.Equal(t, errA, m.RenderCurve(c))
	assert.Equal(t, errA, m.RenderSurface(s))
	assert.Equal(t, errA, m.Flush())

	for _, r := range []*Recorder{r1, r2} {
		assert.Len(t, r.Curves, 1)
		assert.Len(t, r.Surfaces, 1)
		assert.Equal(t, 1, r.Flushes)
	}

	assert.NoError(t, Multi{}.Flush())
}

func TestNew(t *testing.T) {
	con := &io.OutputConfig{Dir: "out", Format: []string{"table", "stl"}}
	rs, err := New(con)
	require.NoError(t, err)
	require.Len(t, rs, 2)
	assert.Equal(t, &Table{Dir: "out"}, rs[0])
	assert.Equal(t, &STL{Dir: "out"}, rs[1])

	_, err = New(&io.OutputConfig{Dir: "out", Format: []string{"gif"}})
	assert.Error(t, err)
}
