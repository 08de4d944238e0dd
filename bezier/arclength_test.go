package bezier

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phil-mansfield/gobez/geom"
)

func TestArcLengthSamplesLine(t *testing.T) {
	// x(t) = 0.2 t (1 - t) + t^2 is a line traced at non-uniform speed.
	ps := []geom.Vec2{{0, 0}, {0.1, 0}, {1, 0}}
	e := &Evaluator{}
	ts, err := e.ArcLengthSamples(ps, 11)
	require.NoError(t, err)
	require.Len(t, ts, 11)
	assert.Equal(t, 0.0, ts[0])
	assert.Equal(t, 1.0, ts[10])

	out, err := e.Curve(ps, ts)
	require.NoError(t, err)
	for i := range out {
		assert.InDelta(t, float64(i)/10, out[i][0], 1e-4, "sample %d", i)
	}

	// Uniform t samples are not uniform in length for this curve.
	uniform, _ := Linspace(11)
	out, err = e.Curve(ps, uniform)
	require.NoError(t, err)
	assert.True(t, out[1][0] < 0.05)
}

func TestArcLengthSamplesSpacing(t *testing.T) {
	ps := []geom.Vec2{{0, 0}, {1, 2}, {3, 2}, {4, 0}}
	e := &Evaluator{Workers: 1}
	ts, err := e.ArcLengthSamples(ps, 40)
	require.NoError(t, err)
	for i := 1; i < len(ts); i++ { assert.True(t, ts[i] > ts[i-1]) }

	out, err := e.Curve(ps, ts)
	require.NoError(t, err)
	step := out[1].Sub(out[0]).Norm()
	for i := 2; i < len(out); i++ {
		assert.InDelta(t, step, out[i].Sub(out[i-1]).Norm(), 0.01*step, "step %d", i)
	}
}

func TestArcLengthSamplesDegenerate(t *testing.T) {
	e := &Evaluator{}
	ts, err := e.ArcLengthSamples([]geom.Vec2{{1, 1}, {1, 1}, {1, 1}}, 5)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, ts)

	// The basis sum doesn't reproduce these points exactly.
	p := geom.Vec2{0.1, -1234.567}
	ts, err = e.ArcLengthSamples([]geom.Vec2{p, p, p, p, p, p, p}, 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.5, 1}, ts)

	ts, err = e.ArcLengthSamples([]geom.Vec2{{0, 0}, {1e-14, 0}}, 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.5, 1}, ts)

	ts, err = e.ArcLengthSamples([]geom.Vec2{{0, 0}, {1, 1}}, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{0}, ts)

	var inv *InvalidInputError
	_, err = e.ArcLengthSamples([]geom.Vec2{{0, 0}, {1, 1}}, 0)
	assert.True(t, errors.As(err, &inv))
	_, err = e.ArcLengthSamples([]geom.Vec2{{0, 0}}, 10)
	assert.True(t, errors.As(err, &inv))
}
