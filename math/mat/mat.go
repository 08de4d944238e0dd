/*mat contains a minimal dense matrix type. Evaluated surfaces are handed to
renderers as three of these, one per coordinate, and the basis-matrix form
of the bicubic patch is written in terms of Mult.

Matrices are stored in row-major order: element (i, j) is Vals[i*Width + j].
*/
package mat

// Matrix represents a matrix of float64 values.
type Matrix struct {
	Vals []float64
	Width, Height int
}

// New matrix creates a matrix with the specified values and dimensions.
func NewMatrix(vals []float64, width, height int) *Matrix {
	if width <= 0 {
		panic("width must be positive.")
	} else if height <= 0 {
		panic("height must be positive.")
	} else if width * height != len(vals) {
		panic("height * width must equal len(vals).")
	}

	return &Matrix{Vals: vals, Width: width, Height: height}
}

// Zeros creates a zero-valued matrix with the specified dimensions.
func Zeros(width, height int) *Matrix {
	return NewMatrix(make([]float64, width*height), width, height)
}

// At returns element (i, j), where i indexes rows and j indexes columns.
func (m *Matrix) At(i, j int) float64 {
	return m.Vals[i*m.Width + j]
}

// Set sets element (i, j) to x.
func (m *Matrix) Set(i, j int, x float64) {
	m.Vals[i*m.Width + j] = x
}

// Row returns row i. If an output array is given, the row is copied into it.
// Otherwise the returned slice aliases m.Vals.
func (m *Matrix) Row(i int, out ...[]float64) []float64 {
	row := m.Vals[i*m.Width: (i+1)*m.Width]
	if len(out) > 0 && len(out[0]) == m.Width {
		copy(out[0], row)
		return out[0]
	}
	return row
}

// Col copies column j into a new slice, or into out if it is given.
func (m *Matrix) Col(j int, out ...[]float64) []float64 {
	var col []float64
	if len(out) > 0 && len(out[0]) == m.Height {
		col = out[0]
	} else {
		col = make([]float64, m.Height)
	}
	for i := range col { col[i] = m.Vals[i*m.Width + j] }
	return col
}

// Rows splits m into a slice of rows which alias m.Vals.
func (m *Matrix) Rows() [][]float64 {
	rows := make([][]float64, m.Height)
	for i := range rows { rows[i] = m.Row(i) }
	return rows
}

// Transpose returns a new matrix equal to the transpose of m.
func (m *Matrix) Transpose() *Matrix {
	out := Zeros(m.Height, m.Width)
	for i := 0; i < m.Height; i++ {
		for j := 0; j < m.Width; j++ {
			out.Vals[j*out.Width + i] = m.Vals[i*m.Width + j]
		}
	}
	return out
}

// Mult multiplies two matrices together.
func (m1 *Matrix) Mult(m2 *Matrix) *Matrix {
	h, w := m1.Height, m2.Width
	out := NewMatrix(make([]float64, h*w), w, h)
	return m1.MultAt(m2, out)
}

// Mult multiplies to matrices together and writes the result to the
// specified matrix.
func (m1 *Matrix) MultAt(m2, out *Matrix) *Matrix {
	if m1.Width != m2.Height {
		panic("Multiplication of incompatible matrix sizes.")
	} else if out.Height != m1.Height || out.Width != m2.Width {
		panic("Output matrix has the wrong dimensions.")
	}

	for i := range out.Vals { out.Vals[i] = 0 }
	for i := 0; i < m1.Height; i++ {
		off := i*m1.Width
		outOff := i*out.Width
		for j := 0; j < m2.Width; j++ {
			outIdx := outOff + j
			for k := 0; k < m1.Width; k++ {
				m1Idx := off + k
				m2Idx := k*m2.Width + j
				out.Vals[outIdx] += m1.Vals[m1Idx] * m2.Vals[m2Idx]
			}
		}
	}

	return out
}
