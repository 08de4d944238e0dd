/*package geom contains the point types that control points and evaluated
curve and surface points are stored in, along with the small amount of
vector arithmetic needed to take weighted sums of them.
*/
package geom

import (
	"math"
)

// Vec2 is a point in the plane.
type Vec2 [2]float64

// Vec3 is a point in three dimensional space.
type Vec3 [3]float64

// Add returns v1 + v2.
func (v1 Vec2) Add(v2 Vec2) Vec2 { return Vec2{v1[0] + v2[0], v1[1] + v2[1]} }

// Sub returns v1 - v2.
func (v1 Vec2) Sub(v2 Vec2) Vec2 { return Vec2{v1[0] - v2[0], v1[1] - v2[1]} }

// Scale returns s*v.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{s * v[0], s * v[1]} }

// AddScaled returns v1 + s*v2. This is the inner step of every Bernstein
// sum, so it is spelled out rather than built from Add and Scale.
func (v1 Vec2) AddScaled(s float64, v2 Vec2) Vec2 {
	return Vec2{v1[0] + s*v2[0], v1[1] + s*v2[1]}
}

// Dot returns the inner product of v1 and v2.
func (v1 Vec2) Dot(v2 Vec2) float64 { return v1[0]*v2[0] + v1[1]*v2[1] }

// Cross returns the z component of the cross product of v1 and v2.
func (v1 Vec2) Cross(v2 Vec2) float64 { return v1[0]*v2[1] - v1[1]*v2[0] }

// Norm returns the Euclidean length of v.
func (v Vec2) Norm() float64 { return math.Hypot(v[0], v[1]) }

// IsFinite returns true if neither coordinate is NaN or infinite.
func (v Vec2) IsFinite() bool { return isFinite(v[0]) && isFinite(v[1]) }

// Add returns v1 + v2.
func (v1 Vec3) Add(v2 Vec3) Vec3 {
	return Vec3{v1[0] + v2[0], v1[1] + v2[1], v1[2] + v2[2]}
}

// Sub returns v1 - v2.
func (v1 Vec3) Sub(v2 Vec3) Vec3 {
	return Vec3{v1[0] - v2[0], v1[1] - v2[1], v1[2] - v2[2]}
}

// Scale returns s*v.
func (v Vec3) Scale(s float64) Vec3 { return Vec3{s * v[0], s * v[1], s * v[2]} }

// AddScaled returns v1 + s*v2.
func (v1 Vec3) AddScaled(s float64, v2 Vec3) Vec3 {
	return Vec3{v1[0] + s*v2[0], v1[1] + s*v2[1], v1[2] + s*v2[2]}
}

// Norm returns the Euclidean length of v.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// IsFinite returns true if no coordinate is NaN or infinite.
func (v Vec3) IsFinite() bool {
	return isFinite(v[0]) && isFinite(v[1]) && isFinite(v[2])
}

func isFinite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

// Affine2 is the planar affine map p -> M p + T.
type Affine2 struct {
	M [2][2]float64
	T Vec2
}

// Translation2 returns the affine map which shifts every point by t.
func Translation2(t Vec2) Affine2 {
	return Affine2{M: [2][2]float64{{1, 0}, {0, 1}}, T: t}
}

// Rotation2 returns the affine map which rotates every point about the
// origin by theta radians counter-clockwise.
func Rotation2(theta float64) Affine2 {
	sin, cos := math.Sincos(theta)
	return Affine2{M: [2][2]float64{{cos, -sin}, {sin, cos}}}
}

// Scaling2 returns the affine map which scales x by sx and y by sy.
func Scaling2(sx, sy float64) Affine2 {
	return Affine2{M: [2][2]float64{{sx, 0}, {0, sy}}}
}

// Apply returns a(p).
func (a Affine2) Apply(p Vec2) Vec2 {
	return Vec2{
		a.M[0][0]*p[0] + a.M[0][1]*p[1] + a.T[0],
		a.M[1][0]*p[0] + a.M[1][1]*p[1] + a.T[1],
	}
}

// Then returns the map which applies a first and b second.
func (a Affine2) Then(b Affine2) Affine2 {
	out := Affine2{}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			out.M[i][j] = b.M[i][0]*a.M[0][j] + b.M[i][1]*a.M[1][j]
		}
	}
	out.T = b.Apply(a.T)
	return out
}

// ApplyAll applies a to every point in ps and writes the result to out. If
// out is not supplied, a new slice is allocated.
func (a Affine2) ApplyAll(ps []Vec2, out ...[]Vec2) []Vec2 {
	var res []Vec2
	if len(out) > 0 && len(out[0]) == len(ps) {
		res = out[0]
	} else {
		res = make([]Vec2, len(ps))
	}
	for i, p := range ps { res[i] = a.Apply(p) }
	return res
}
