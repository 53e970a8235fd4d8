package geometry2D

import (
	"fmt"

	"github.com/yueyanglu/lu-etal/utils"
)

// Periodify mirror-triples the coordinate grids and one field, so the
// closed-edge code path of the decomposition approximates periodic
// behavior. The field is reflected about each edge; the coordinates are
// extended by whole-range shifts so they stay monotone. The caller crops
// the decomposed output back to the original extent with CropPeriodified.
func Periodify(x, y, f utils.Matrix) (xp, yp, fp utils.Matrix) {
	var (
		m, n = f.Dims()
	)
	if r, c := x.Dims(); r != m || c != n {
		panic(fmt.Errorf("field is (%d,%d) but x grid is (%d,%d)", m, n, r, c))
	}
	if r, c := y.Dims(); r != m || c != n {
		panic(fmt.Errorf("field is (%d,%d) but y grid is (%d,%d)", m, n, r, c))
	}

	fp = utils.NewMatrix(3*m, 3*n)
	for i := 0; i < 3*m; i++ {
		si := reflectIndex(i, m)
		for j := 0; j < 3*n; j++ {
			fp.Set(i, j, f.At(si, reflectIndex(j, n)))
		}
	}

	var (
		xr = rangeOf(x)
		yr = rangeOf(y)
	)
	xp = utils.NewMatrix(3*m, 3*n)
	yp = utils.NewMatrix(3*m, 3*n)
	for i := 0; i < 3*m; i++ {
		for j := 0; j < 3*n; j++ {
			xp.Set(i, j, x.At(i%m, j%n)+float64(j/n-1)*xr)
			yp.Set(i, j, y.At(i%m, j%n)+float64(i/m-1)*yr)
		}
	}
	return
}

// CropPeriodified removes one third of the rows and columns from each
// side, undoing the tripling.
func CropPeriodified(f utils.Matrix) (g utils.Matrix) {
	var (
		mp, np = f.Dims()
		m      = mp / 3
		n      = np / 3
	)
	g = utils.NewMatrix(m, n)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			g.Set(i, j, f.At(m+i, n+j))
		}
	}
	return
}

// reflectIndex maps an index in the tripled axis back into [0,size): the
// first and last thirds are mirror images, the middle third is the
// original.
func reflectIndex(i, size int) int {
	switch i / size {
	case 0:
		return size - 1 - i%size
	case 1:
		return i % size
	default:
		return size - 1 - i%size
	}
}

func rangeOf(f utils.Matrix) float64 {
	var (
		data     = f.Data()
		min, max = data[0], data[0]
	)
	for _, val := range data {
		if val < min {
			min = val
		}
		if val > max {
			max = val
		}
	}
	return max - min
}
