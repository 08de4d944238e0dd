package bezier

import (
	"fmt"

	"gopkg.in/warnings.v0"
)

// InvalidInputError is returned when the inputs to an evaluation cannot
// describe a Bezier curve or surface. It is always returned before any
// evaluation takes place, together with a nil result.
type InvalidInputError struct {
	// Op is the name of the function which rejected its input.
	Op string
	Msg string
}

func (err *InvalidInputError) Error() string {
	return fmt.Sprintf("%s: %s", err.Op, err.Msg)
}

func invalidf(op, format string, args ...interface{}) *InvalidInputError {
	return &InvalidInputError{Op: op, Msg: fmt.Sprintf(format, args...)}
}

// ParameterRangeWarning reports a parameter sample outside of [0, 1].
// Evaluation still goes ahead, but the result is an extrapolation: it is no
// longer guaranteed to lie in the convex hull of the control points.
type ParameterRangeWarning struct {
	// Axis is the name of the parameter: "t" for curves and "u" or "v" for
	// surfaces.
	Axis string
	Index int
	Value float64
}

func (w ParameterRangeWarning) Error() string {
	return fmt.Sprintf(
		"%s[%d] = %g lies outside [0, 1]; the result is an extrapolation " +
			"and may leave the convex hull of the control points",
		w.Axis, w.Index, w.Value,
	)
}

// IsWarning returns true if err is a non-fatal warning which the evaluators
// collect rather than return immediately.
func IsWarning(err error) bool {
	_, ok := err.(ParameterRangeWarning)
	return ok
}

// newCollector returns a collector for which only non-warnings are fatal.
// A nil Done() means there was nothing to report. Otherwise Done() returns a
// warnings.List, so callers can use warnings.FatalOnly and
// warnings.WarningsOnly on it the same way they would on a gcfg error.
func newCollector() *warnings.Collector {
	c := warnings.NewCollector(func(err error) bool { return !IsWarning(err) })
	c.FatalWithWarnings = true
	return c
}

// checkRange collects one warning for every sample outside of [0, 1].
func checkRange(c *warnings.Collector, axis string, ts []float64) {
	for i, t := range ts {
		if t < 0 || t > 1 {
			c.Collect(ParameterRangeWarning{Axis: axis, Index: i, Value: t})
		}
	}
}
