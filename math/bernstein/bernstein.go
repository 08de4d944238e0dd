/*package bernstein computes Bernstein basis polynomials,

	B(i, n, t) = C(n, i) * t^i * (1 - t)^(n - i),

which are the weights of every control point in a Bezier curve or surface.

Binomial coefficients are computed exactly in integer arithmetic before
being converted to floating point, so the basis sums to one to within a few
ulps for any degree whose coefficients fit in a float64.
*/
package bernstein

import (
	"math"
	"math/big"
	"math/bits"
	"sync"
)

var (
	rowCache = map[int][]float64{}
	rowMutex sync.RWMutex
)

// maxCachedRow is the largest degree whose binomial row is kept in rowCache.
// Larger rows are recomputed on every call.
const maxCachedRow = 1024

// Binomial returns the binomial coefficient C(n, k) as a float64. It returns
// zero if k < 0 or k > n and panics if n < 0.
//
// The coefficient is accumulated exactly with the multiplicative identity
// C(n, j) = C(n, j-1) * (n - j + 1) / j, which never leaves the integers.
// If the result would not fit in 64 bits it is computed with math/big
// instead. Coefficients larger than math.MaxFloat64 are returned as +Inf.
func Binomial(n, k int) float64 {
	if n < 0 {
		panic("Binomial() given a negative n.")
	} else if k < 0 || k > n {
		return 0
	}
	if k > n-k { k = n - k }

	c, ok := binomialUint64(n, k)
	if ok { return float64(c) }

	b := new(big.Int).Binomial(int64(n), int64(k))
	f, _ := new(big.Float).SetInt(b).Float64()
	return f
}

// binomialUint64 computes C(n, k) for k <= n/2, returning ok = false on
// overflow.
func binomialUint64(n, k int) (c uint64, ok bool) {
	c = 1
	for j := 1; j <= k; j++ {
		// c * (n - k + j) is always divisible by j, but the product itself
		// may overflow even when the quotient doesn't.
		hi, lo := bits.Mul64(c, uint64(n-k+j))
		if hi >= uint64(j) { return 0, false }
		c, _ = bits.Div64(hi, lo, uint64(j))
	}
	return c, true
}

// BinomialRow returns C(n, 0), C(n, 1), ..., C(n, n). The returned slice is
// shared between callers and must not be modified.
func BinomialRow(n int) []float64 {
	if n < 0 { panic("BinomialRow() given a negative n.") }
	if n > maxCachedRow { return binomialRow(n) }

	rowMutex.RLock()
	row, ok := rowCache[n]
	rowMutex.RUnlock()
	if ok { return row }

	row = binomialRow(n)
	rowMutex.Lock()
	rowCache[n] = row
	rowMutex.Unlock()
	return row
}

func binomialRow(n int) []float64 {
	row := make([]float64, n+1)
	for k := 0; k <= n/2; k++ {
		row[k] = Binomial(n, k)
		row[n-k] = row[k]
	}
	return row
}

// Basis returns the Bernstein basis polynomial B(i, n, t). It is zero if i
// lies outside [0, n] and panics if n < 0.
//
// t is not restricted to [0, 1]: outside that range the result is the
// polynomial's extrapolated value. 0^0 is taken to be 1, so Basis(0, n, 0)
// and Basis(n, n, 1) are exactly 1.
func Basis(i, n int, t float64) float64 {
	if n < 0 {
		panic("Basis() given a negative n.")
	} else if i < 0 || i > n {
		return 0
	}

	c := Binomial(n, i)
	if math.IsInf(c, 0) { return logBasis(i, n, t) }
	return c * ipow(t, i) * ipow(1-t, n-i)
}

// logBasis evaluates the basis in log space for degrees where C(n, i)
// overflows a float64.
func logBasis(i, n int, t float64) float64 {
	if t == 0 || t == 1 {
		// i is strictly inside (0, n) whenever C(n, i) is infinite.
		return 0
	}

	lgN, _ := math.Lgamma(float64(n + 1))
	lgI, _ := math.Lgamma(float64(i + 1))
	lgNI, _ := math.Lgamma(float64(n - i + 1))

	sign := 1.0
	s := 1 - t
	if t < 0 && i%2 == 1 { sign = -sign }
	if s < 0 && (n-i)%2 == 1 { sign = -sign }

	logB := lgN - lgI - lgNI +
		float64(i)*math.Log(math.Abs(t)) + float64(n-i)*math.Log(math.Abs(s))
	return sign * math.Exp(logB)
}

// Row computes B(0, n, t), ..., B(n, n, t) and returns them. If an output
// slice of length n + 1 is supplied, the values are written to it (the
// slice is still returned as a convenience).
func Row(n int, t float64, out ...[]float64) []float64 {
	if n < 0 { panic("Row() given a negative n.") }

	var row []float64
	if len(out) > 0 && len(out[0]) == n+1 {
		row = out[0]
	} else {
		row = make([]float64, n+1)
	}

	cs := BinomialRow(n)
	if math.IsInf(cs[n/2], 0) {
		for i := range row { row[i] = Basis(i, n, t) }
		return row
	}

	// row[i] = t^i for now, then multiply in C(n, i) (1 - t)^(n - i) from
	// the top down.
	s := 1 - t
	p := 1.0
	for i := 0; i <= n; i++ {
		row[i] = p
		p *= t
	}
	q := 1.0
	for i := n; i >= 0; i-- {
		row[i] *= cs[i] * q
		q *= s
	}
	return row
}

// ipow returns x^k for k >= 0 by repeated squaring. ipow(0, 0) is 1.
func ipow(x float64, k int) float64 {
	p := 1.0
	for k > 0 {
		if k&1 == 1 { p *= x }
		x *= x
		k >>= 1
	}
	return p
}
