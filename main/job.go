package main

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gopkg.in/warnings.v0"

	"github.com/phil-mansfield/gobez/bezier"
	"github.com/phil-mansfield/gobez/io"
	"github.com/phil-mansfield/gobez/render"
)

// Job evaluates every curve and surface in a config file and hands the
// results to a Renderer.
type Job struct {
	Evaluator bezier.Evaluator
	Renderer render.Renderer
	Log *zap.Logger
}

// Run processes curves and then surfaces, each in name order. A curve or
// surface which fails is logged and skipped. Run returns the first such
// failure, or the error from flushing the renderer.
func (job *Job) Run(con *io.Config) error {
	var first error
	fail := func(kind, name string, err error) {
		job.Log.Error("Skipping "+kind, zap.String("name", name), zap.Error(err))
		if first == nil { first = fmt.Errorf("%s '%s': %w", kind, name, err) }
	}

	for _, name := range con.CurveNames() {
		if err := job.Curve(con.Curve[name], con.Dir()); err != nil {
			fail("curve", name, err)
		}
	}
	for _, name := range con.SurfaceNames() {
		if err := job.Surface(con.Surface[name], con.Dir()); err != nil {
			fail("surface", name, err)
		}
	}

	if err := job.Renderer.Flush(); err != nil {
		job.Log.Error("Could not flush output", zap.Error(err))
		if first == nil { first = err }
	}
	return first
}

// Curve evaluates and renders a single curve. Relative paths are resolved
// against dir.
func (job *Job) Curve(con *io.CurveConfig, dir string) error {
	ctrl, err := con.Points(dir)
	if err != nil { return err }

	start := time.Now()
	var ts []float64
	if con.ArcLength() {
		ts, err = job.Evaluator.ArcLengthSamples(ctrl, con.Samples)
	} else {
		ts, err = bezier.Linspace(con.Samples)
	}
	if err != nil { return err }

	pts, err := job.Evaluator.Curve(ctrl, ts)
	if err := job.check(con.Name, err); err != nil { return err }
	job.Log.Debug("Evaluated curve",
		zap.String("name", con.Name),
		zap.Int("degree", len(ctrl)-1),
		zap.Int("samples", len(ts)),
		zap.String("spacing", con.Spacing),
		zap.Duration("elapsed", time.Since(start)),
	)

	return job.Renderer.RenderCurve(&render.Curve{
		Name: con.Name, Control: ctrl, Ts: ts, Points: pts,
	})
}

// Surface evaluates and renders a single surface. Relative paths are
// resolved against dir.
func (job *Job) Surface(con *io.SurfaceConfig, dir string) error {
	ctrl, err := con.Grid(dir)
	if err != nil { return err }
	us, err := bezier.Linspace(con.USamples)
	if err != nil { return err }
	vs, err := bezier.Linspace(con.VSamples)
	if err != nil { return err }

	g, err := bezier.NewGrid(ctrl)
	if err != nil { return err }

	start := time.Now()
	pts, err := job.Evaluator.GridSurface(g, us, vs)
	if err := job.check(con.Name, err); err != nil { return err }
	// Both forms share the samples, so their warnings are already logged.
	x, y, z, err := job.Evaluator.SurfaceMatrices(g, us, vs)
	if err := warnings.FatalOnly(err); err != nil { return err }
	job.Log.Debug("Evaluated surface",
		zap.String("name", con.Name),
		zap.Int("u samples", len(us)),
		zap.Int("v samples", len(vs)),
		zap.Duration("elapsed", time.Since(start)),
	)

	return job.Renderer.RenderSurface(&render.Surface{
		Name: con.Name, Control: ctrl, Us: us, Vs: vs, Points: pts,
		X: x, Y: y, Z: z,
	})
}

// check logs any warnings in err and returns what's left.
func (job *Job) check(name string, err error) error {
	if fatal := warnings.FatalOnly(err); fatal != nil { return fatal }
	for _, w := range warnings.WarningsOnly(err) {
		job.Log.Warn("Extrapolating", zap.String("name", name), zap.Error(w))
	}
	return nil
}
