package io

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/phil-mansfield/gobez/geom"
)

// WriteCurve writes one "x y" line per curve point to w. The result can be
// read back with ReadCurvePoints.
func WriteCurve(w io.Writer, pts []geom.Vec2) error {
	bw := bufio.NewWriter(w)
	for _, p := range pts {
		if _, err := fmt.Fprintf(bw, "%.17g %.17g\n", p[0], p[1]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteSurface writes one "a b x y z" line per surface point to w, where a
// and b are the indices of the point's u and v samples. Rows are written in
// order of increasing a, then b.
func WriteSurface(w io.Writer, pts [][]geom.Vec3) error {
	bw := bufio.NewWriter(w)
	for a := range pts {
		for b, p := range pts[a] {
			_, err := fmt.Fprintf(
				bw, "%d %d %.17g %.17g %.17g\n", a, b, p[0], p[1], p[2],
			)
			if err != nil { return err }
		}
	}
	return bw.Flush()
}

// WriteCurveFile writes a curve to the file fname with WriteCurve.
func WriteCurveFile(fname string, pts []geom.Vec2) error {
	return writeFile(fname, func(w io.Writer) error { return WriteCurve(w, pts) })
}

// WriteSurfaceFile writes a surface to the file fname with WriteSurface.
func WriteSurfaceFile(fname string, pts [][]geom.Vec3) error {
	return writeFile(fname, func(w io.Writer) error { return WriteSurface(w, pts) })
}

func writeFile(fname string, write func(io.Writer) error) error {
	f, err := os.Create(fname)
	if err != nil { return err }

	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("Could not write %s: %s", fname, err.Error())
	}
	return f.Close()
}
