package geometry2D

import (
	"fmt"
	"math"

	"github.com/yueyanglu/lu-etal/utils"
)

// ZonalIntegration cumulatively integrates the (M,N) velocity from east
// to west with the trapezoidal rule over the (M,N-1) zonal distances.
// NaN samples are taken as zero velocity, matching the closed-boundary
// convention. The easternmost column of the result is zero.
func ZonalIntegration(v, dx utils.Matrix) (vi utils.Matrix) {
	var (
		m, n = v.Dims()
	)
	if r, c := dx.Dims(); r != m || c != n-1 {
		panic(fmt.Errorf("v is (%d,%d) but dx is (%d,%d), want (%d,%d)", m, n, r, c, m, n-1))
	}
	vi = utils.NewMatrix(m, n)
	for i := 0; i < m; i++ {
		acc := 0.0
		for j := n - 2; j >= 0; j-- {
			acc += 0.5 * (finiteOrZero(v.At(i, j)) + finiteOrZero(v.At(i, j+1))) * dx.At(i, j)
			vi.Set(i, j, acc)
		}
	}
	return
}

// MeridionalIntegration cumulatively integrates from north to south over
// the (M-1,N) meridional distances. The southernmost row of the result
// is zero.
func MeridionalIntegration(v, dy utils.Matrix) (vi utils.Matrix) {
	var (
		m, n = v.Dims()
	)
	if r, c := dy.Dims(); r != m-1 || c != n {
		panic(fmt.Errorf("v is (%d,%d) but dy is (%d,%d), want (%d,%d)", m, n, r, c, m-1, n))
	}
	vi = utils.NewMatrix(m, n)
	for j := 0; j < n; j++ {
		acc := 0.0
		for i := m - 2; i >= 0; i-- {
			acc += 0.5 * (finiteOrZero(v.At(i, j)) + finiteOrZero(v.At(i+1, j))) * dy.At(i, j)
			vi.Set(i, j, acc)
		}
	}
	return
}

// InitialGuess builds mean-centred first guesses for the streamfunction
// and velocity potential by cumulative trapezoidal integration of the
// (M,N) velocity pair along each axis, using the mean zonal and
// meridional grid steps scaled by fac meters per degree. NaN samples are
// taken as zero. The guesses only seed the minimizer; no accuracy
// contract is attached to them.
func InitialGuess(lon, lat, u, v utils.Matrix, fac float64) (psin, phin utils.Matrix) {
	var (
		m, n = u.Dims()

		dlon = meanRowStep(lon) * fac
		dlat = meanColStep(lat) * fac

		vRows = integrateRows(v, dlon) // streamfunction from v along x
		uCols = integrateCols(u, dlat) // streamfunction from u along y
		uRows = integrateRows(u, dlon) // potential from u along x
		vCols = integrateCols(v, dlat) // potential from v along y
	)
	psin = utils.NewMatrix(m, n)
	phin = utils.NewMatrix(m, n)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			psin.Set(i, j, vRows.At(i, j)-uCols.At(i, j))
			phin.Set(i, j, -uRows.At(i, j)+vCols.At(i, j))
		}
	}
	return
}

// integrateRows applies the negated, mean-centred cumulative trapezoid
// to each row of f, scaled by the constant step h.
func integrateRows(f utils.Matrix, h float64) (g utils.Matrix) {
	var (
		m, n = f.Dims()
		row  = make([]float64, n)
	)
	g = utils.NewMatrix(m, n)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			row[j] = finiteOrZero(f.At(i, j)) * h
		}
		for j, val := range centeredCumTrapz(row) {
			g.Set(i, j, val)
		}
	}
	return
}

func integrateCols(f utils.Matrix, h float64) (g utils.Matrix) {
	var (
		m, n = f.Dims()
		col  = make([]float64, m)
	)
	g = utils.NewMatrix(m, n)
	for j := 0; j < n; j++ {
		for i := 0; i < m; i++ {
			col[i] = finiteOrZero(f.At(i, j)) * h
		}
		for i, val := range centeredCumTrapz(col) {
			g.Set(i, j, val)
		}
	}
	return
}

// centeredCumTrapz returns c with c[i] = -trapz(a[:i+1]) at unit spacing,
// shifted to zero mean.
func centeredCumTrapz(a []float64) (c []float64) {
	c = make([]float64, len(a))
	var (
		acc  float64
		mean float64
	)
	for i := 1; i < len(a); i++ {
		acc += 0.5 * (a[i-1] + a[i])
		c[i] = -acc
	}
	for _, val := range c {
		mean += val
	}
	mean /= float64(len(c))
	for i := range c {
		c[i] -= mean
	}
	return
}

func meanRowStep(f utils.Matrix) (h float64) {
	_, n := f.Dims()
	for j := 0; j < n-1; j++ {
		h += f.At(0, j+1) - f.At(0, j)
	}
	h /= float64(n - 1)
	return
}

func meanColStep(f utils.Matrix) (h float64) {
	m, _ := f.Dims()
	for i := 0; i < m-1; i++ {
		h += f.At(i+1, 0) - f.At(i, 0)
	}
	h /= float64(m - 1)
	return
}

func finiteOrZero(val float64) float64 {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return 0
	}
	return val
}
