package geom

import (
	"sort"
)

// ConvexHull returns the vertices of the convex hull of ps in
// counter-clockwise order, starting from the lowest-leftmost point.
// Collinear boundary points are dropped. The input is not modified.
//
// Degenerate inputs return degenerate hulls: a single point for coincident
// input and the two extreme points for collinear input.
func ConvexHull(ps []Vec2) []Vec2 {
	if len(ps) == 0 {
		return nil
	} else if len(ps) == 1 {
		return []Vec2{ps[0]}
	}

	sorted := make([]Vec2, len(ps))
	copy(sorted, ps)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i][0] != sorted[j][0] { return sorted[i][0] < sorted[j][0] }
		return sorted[i][1] < sorted[j][1]
	})

	// Andrew's monotone chain.
	hull := make([]Vec2, 0, 2*len(sorted))
	for _, p := range sorted {
		for len(hull) >= 2 && turn(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	lower := len(hull) + 1
	for i := len(sorted) - 2; i >= 0; i-- {
		p := sorted[i]
		for len(hull) >= lower && turn(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}

	// The last point is the first point again.
	hull = hull[:len(hull)-1]
	if len(hull) == 2 && hull[0] == hull[1] { hull = hull[:1] }
	return hull
}

// turn is positive if o -> a -> b turns left.
func turn(o, a, b Vec2) float64 {
	return a.Sub(o).Cross(b.Sub(o))
}

// HullContains returns true if p lies inside or on the boundary of the
// counter-clockwise convex polygon hull, up to a distance of eps.
func HullContains(hull []Vec2, p Vec2, eps float64) bool {
	switch len(hull) {
	case 0:
		return false
	case 1:
		return p.Sub(hull[0]).Norm() <= eps
	case 2:
		return segmentDist(hull[0], hull[1], p) <= eps
	}

	for i := range hull {
		a, b := hull[i], hull[(i+1)%len(hull)]
		edge := b.Sub(a)
		// Signed distance of p to the left of the edge.
		if edge.Cross(p.Sub(a))/edge.Norm() < -eps { return false }
	}
	return true
}

func segmentDist(a, b, p Vec2) float64 {
	ab := b.Sub(a)
	l2 := ab.Dot(ab)
	if l2 == 0 { return p.Sub(a).Norm() }
	s := p.Sub(a).Dot(ab) / l2
	if s < 0 {
		s = 0
	} else if s > 1 {
		s = 1
	}
	return p.Sub(a.AddScaled(s, ab)).Norm()
}
