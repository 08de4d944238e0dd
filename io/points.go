package io

import (
	"fmt"

	"github.com/phil-mansfield/table"

	"github.com/phil-mansfield/gobez/bezier"
	"github.com/phil-mansfield/gobez/geom"
)

// ReadCurvePoints reads a control polygon from a text file whose first two
// columns are the x and y coordinates of each control point, in order.
func ReadCurvePoints(fname string) ([]geom.Vec2, error) {
	cols, err := table.ReadTable(fname, []int{0, 1}, nil)
	if err != nil {
		return nil, fmt.Errorf("Could not read control points from %s: %s",
			fname, err.Error())
	}

	xs, ys := cols[0], cols[1]
	ps := make([]geom.Vec2, len(xs))
	for i := range ps { ps[i] = geom.Vec2{xs[i], ys[i]} }
	return ps, nil
}

// ReadGridPoints reads a bicubic control grid from a text file whose first
// three columns are the x, y and z coordinates of each control point. The
// file must have exactly 16 rows, in row-major order.
func ReadGridPoints(fname string) ([][]geom.Vec3, error) {
	cols, err := table.ReadTable(fname, []int{0, 1, 2}, nil)
	if err != nil {
		return nil, fmt.Errorf("Could not read control grid from %s: %s",
			fname, err.Error())
	}

	xs, ys, zs := cols[0], cols[1], cols[2]
	ps := make([]geom.Vec3, len(xs))
	for i := range ps { ps[i] = geom.Vec3{xs[i], ys[i], zs[i]} }

	grid, err := reshapeGrid(ps)
	if err != nil { return nil, fmt.Errorf("%s: %s", fname, err.Error()) }
	return grid, nil
}

// reshapeGrid turns 16 row-major points into a 4 x 4 grid.
func reshapeGrid(ps []geom.Vec3) ([][]geom.Vec3, error) {
	n := bezier.GridSize
	if len(ps) != n*n {
		return nil, fmt.Errorf(
			"A control grid needs exactly %d points, but %d were given.",
			n*n, len(ps),
		)
	}

	grid := make([][]geom.Vec3, n)
	for i := range grid {
		grid[i] = make([]geom.Vec3, n)
		copy(grid[i], ps[i*n: (i+1)*n])
	}
	return grid, nil
}
