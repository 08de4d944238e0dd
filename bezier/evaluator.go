/*package bezier evaluates Bezier curves of arbitrary degree in the plane and
bicubic Bezier surfaces in three dimensions.

Evaluation is a pure function of the control points and parameter samples:
every call allocates and returns its own output, and the inputs are never
modified, so any number of evaluations may run concurrently.

Errors come in two kinds. Inputs which cannot describe a curve or surface
produce an *InvalidInputError and no output. Parameter samples outside of
[0, 1] are only warnings: the full output is returned along with a
warnings.List containing one ParameterRangeWarning per offending sample.
The usual way of handling both is

	pts, err := bezier.EvalCurve(ctrl, ts)
	if err := warnings.FatalOnly(err); err != nil {
		return err
	}
	for _, w := range warnings.WarningsOnly(err) {
		// ...
	}
*/
package bezier

import (
	"runtime"
	"sync"

	"github.com/phil-mansfield/gobez/geom"
)

// minBlock is the smallest number of samples worth handing to a goroutine.
const minBlock = 256

// Evaluator evaluates curves and surfaces, splitting large evaluations
// across several goroutines. The zero value is ready to use.
type Evaluator struct {
	// Workers is the maximum number of goroutines used by one evaluation.
	// Values <= 0 mean runtime.NumCPU().
	Workers int
}

func (e *Evaluator) workers() int {
	if e == nil || e.Workers <= 0 { return runtime.NumCPU() }
	return e.Workers
}

// parallelFor calls f(lo, hi) on contiguous blocks which cover [0, n). Each
// block is written by exactly one goroutine, so as long as f only writes
// output indices in [lo, hi) the output order matches the input order.
func (e *Evaluator) parallelFor(n int, f func(lo, hi int)) {
	workers := e.workers()
	if max := (n + minBlock - 1) / minBlock; workers > max {
		workers = max
	}
	if workers <= 1 {
		f(0, n)
		return
	}

	wg := sync.WaitGroup{}
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		lo, hi := w*n/workers, (w+1)*n/workers
		go func() {
			defer wg.Done()
			f(lo, hi)
		}()
	}
	wg.Wait()
}

// EvalCurve evaluates a Bezier curve with the zero Evaluator. See
// Evaluator.Curve.
func EvalCurve(points []geom.Vec2, ts []float64) ([]geom.Vec2, error) {
	return (&Evaluator{}).Curve(points, ts)
}

// EvalSurface evaluates a bicubic Bezier surface with the zero Evaluator. See
// Evaluator.Surface.
func EvalSurface(grid [][]geom.Vec3, us, vs []float64) ([][]geom.Vec3, error) {
	return (&Evaluator{}).Surface(grid, us, vs)
}
