package bernstein

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinomial(t *testing.T) {
	table := []struct {
		n, k int
		c    float64
	}{
		{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {3, 1, 3}, {3, 2, 3},
		{4, 2, 6}, {10, 3, 120}, {20, 10, 184756},
		{5, -1, 0}, {5, 6, 0},
		{30, 15, 155117520}, {40, 20, 137846528820},
	}

	for _, row := range table {
		assert.Equal(t, row.c, Binomial(row.n, row.k), "C(%d, %d)", row.n, row.k)
	}

	assert.Panics(t, func() { Binomial(-1, 0) })
}

func TestBinomialLarge(t *testing.T) {
	// These overflow uint64 and take the math/big path.
	for _, n := range []int{68, 100, 500, 1000} {
		for _, k := range []int{1, n / 3, n / 2} {
			b := new(big.Int).Binomial(int64(n), int64(k))
			expected, _ := new(big.Float).SetInt(b).Float64()
			assert.Equal(t, expected, Binomial(n, k), "C(%d, %d)", n, k)
		}
	}

	assert.True(t, math.IsInf(Binomial(2000, 1000), +1))
}

func TestBinomialRow(t *testing.T) {
	assert.Equal(t, []float64{1}, BinomialRow(0))
	assert.Equal(t, []float64{1, 4, 6, 4, 1}, BinomialRow(4))
	assert.Equal(t, []float64{1, 5, 10, 10, 5, 1}, BinomialRow(5))

	// Pascal's rule.
	for n := 1; n < 50; n++ {
		prev, row := BinomialRow(n-1), BinomialRow(n)
		for k := 1; k < n; k++ {
			assert.Equal(t, prev[k-1]+prev[k], row[k], "C(%d, %d)", n, k)
		}
	}
}

func TestBasisEndpoints(t *testing.T) {
	for n := 0; n <= 12; n++ {
		for i := 0; i <= n; i++ {
			at0, at1 := 0.0, 0.0
			if i == 0 { at0 = 1 }
			if i == n { at1 = 1 }
			assert.Equal(t, at0, Basis(i, n, 0), "B(%d, %d, 0)", i, n)
			assert.Equal(t, at1, Basis(i, n, 1), "B(%d, %d, 1)", i, n)
		}
	}
}

func TestBasisValues(t *testing.T) {
	assert.InDelta(t, 0.25, Basis(0, 2, 0.5), 1e-15)
	assert.InDelta(t, 0.5, Basis(1, 2, 0.5), 1e-15)
	assert.InDelta(t, 3*0.2*0.8*0.8, Basis(1, 3, 0.2), 1e-15)
	assert.Equal(t, 0.0, Basis(-1, 3, 0.2))
	assert.Equal(t, 0.0, Basis(4, 3, 0.2))

	// Extrapolation is just the polynomial.
	assert.InDelta(t, 4.0, Basis(2, 2, 2), 1e-15)
	assert.InDelta(t, -4.0, Basis(1, 2, 2), 1e-15)
	assert.InDelta(t, 1.0, Basis(0, 2, 2), 1e-15)

	assert.Panics(t, func() { Basis(0, -1, 0.5) })
}

func TestPartitionOfUnity(t *testing.T) {
	ts := []float64{0, 1e-9, 0.1, 0.25, 1.0 / 3, 0.5, 0.77, 0.999, 1}
	for _, n := range []int{0, 1, 2, 3, 5, 10, 20, 50, 100, 300} {
		for _, x := range ts {
			sum := 0.0
			for i := 0; i <= n; i++ { sum += Basis(i, n, x) }
			assert.InDelta(t, 1.0, sum, 1e-12, "n = %d, t = %g", n, x)

			rowSum := 0.0
			for _, b := range Row(n, x) { rowSum += b }
			assert.InDelta(t, 1.0, rowSum, 1e-12, "row n = %d, t = %g", n, x)
		}
	}
}

func TestBasisNonNegative(t *testing.T) {
	for n := 0; n < 30; n++ {
		for k := 0; k <= 40; k++ {
			x := float64(k) / 40
			for i := 0; i <= n; i++ {
				assert.True(t, Basis(i, n, x) >= 0, "B(%d, %d, %g)", i, n, x)
			}
		}
	}
}

func TestRowMatchesBasis(t *testing.T) {
	out := make([]float64, 8)
	for _, x := range []float64{0, 0.3, 0.5, 1, -0.5, 1.5} {
		row := Row(7, x, out)
		require.Len(t, row, 8)
		assert.Same(t, &out[0], &row[0], "output slice was not reused")
		for i := range row {
			assert.InDelta(t, Basis(i, 7, x), row[i], 1e-12, "i = %d, t = %g", i, x)
		}
	}

	// A wrongly sized output slice is ignored.
	row := Row(3, 0.5, make([]float64, 2))
	assert.Len(t, row, 4)
}

func TestBasisHugeDegree(t *testing.T) {
	n := 1200
	assert.Equal(t, 1.0, Basis(0, n, 0))
	assert.Equal(t, 0.0, Basis(n/2, n, 0))

	sum := 0.0
	for _, b := range Row(n, 0.4) { sum += b }
	assert.InDelta(t, 1.0, sum, 1e-9)

	// The peak of the basis is near i = n*t.
	peak := Basis(480, n, 0.4)
	assert.True(t, peak > Basis(400, n, 0.4))
	assert.True(t, peak > Basis(560, n, 0.4))
}

func BenchmarkRow3(b *testing.B) {
	out := make([]float64, 4)
	for i := 0; i < b.N; i++ { Row(3, 0.37, out) }
}

func BenchmarkRow50(b *testing.B) {
	out := make([]float64, 51)
	for i := 0; i < b.N; i++ { Row(50, 0.37, out) }
}
