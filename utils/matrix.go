package utils

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Matrix wraps a dense row-major (M,N) field array. Fields, spacing grids
// and velocity grids all share this representation.
type Matrix struct {
	M *mat.Dense
}

func NewMatrix(nr, nc int, dataO ...[]float64) (R Matrix) {
	var m *mat.Dense
	if len(dataO) != 0 {
		if len(dataO[0]) != nr*nc {
			err := fmt.Errorf("mismatch in allocation: NewMatrix nr,nc = %v,%v, len(data[0]) = %v", nr, nc, len(dataO[0]))
			panic(err)
		}
		m = mat.NewDense(nr, nc, dataO[0])
	} else {
		m = mat.NewDense(nr, nc, make([]float64, nr*nc))
	}
	R = Matrix{m}
	return
}

func NewConstMatrix(nr, nc int, val float64) (R Matrix) {
	R = NewMatrix(nr, nc, ConstArray(nr*nc, val))
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m Matrix) Dims() (r, c int)    { return m.M.Dims() }
func (m Matrix) At(i, j int) float64 { return m.M.At(i, j) }
func (m Matrix) T() mat.Matrix       { return m.M.T() }

func (m Matrix) Set(i, j int, val float64) { m.M.Set(i, j, val) }

// Data returns the raw row-major backing slice.
func (m Matrix) Data() []float64 {
	return m.M.RawMatrix().Data
}

func (m Matrix) IsEmpty() bool { return m.M == nil }

func (m Matrix) Copy() (R Matrix) { // Does not change receiver
	var (
		nr, nc = m.Dims()
		data   = m.Data()
		dataR  = make([]float64, nr*nc)
	)
	copy(dataR, data)
	R = NewMatrix(nr, nc, dataR)
	return
}

func (m Matrix) Scale(a float64) (R Matrix) { // Does not change receiver
	var (
		nr, nc = m.Dims()
		data   = m.Data()
		dataR  = make([]float64, nr*nc)
	)
	for i, val := range data {
		dataR[i] = a * val
	}
	R = NewMatrix(nr, nc, dataR)
	return
}

func (m Matrix) AddScalar(a float64) (R Matrix) { // Does not change receiver
	var (
		nr, nc = m.Dims()
		data   = m.Data()
		dataR  = make([]float64, nr*nc)
	)
	for i, val := range data {
		dataR[i] = a + val
	}
	R = NewMatrix(nr, nc, dataR)
	return
}

// Mean ignores NaN entries, matching the masked-field convention.
func (m Matrix) Mean() (mean float64) {
	var (
		data = m.Data()
		n    int
	)
	for _, val := range data {
		if math.IsNaN(val) {
			continue
		}
		mean += val
		n++
	}
	if n != 0 {
		mean /= float64(n)
	}
	return
}

// MaxAbs ignores NaN entries.
func (m Matrix) MaxAbs() (max float64) {
	for _, val := range m.Data() {
		if math.IsNaN(val) {
			continue
		}
		if math.Abs(val) > max {
			max = math.Abs(val)
		}
	}
	return
}

// HasNaN reports whether any entry is NaN.
func (m Matrix) HasNaN() bool {
	for _, val := range m.Data() {
		if math.IsNaN(val) {
			return true
		}
	}
	return false
}

// SetWhere assigns val at every position where sel is true. The selector
// dims must match the receiver.
func (m Matrix) SetWhere(sel []bool, val float64) {
	var (
		data = m.Data()
	)
	if len(sel) != len(data) {
		panic(fmt.Errorf("selector length %d does not match matrix size %d", len(sel), len(data)))
	}
	for i, ok := range sel {
		if ok {
			data[i] = val
		}
	}
}
