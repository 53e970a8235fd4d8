package helmholtz

import (
	"fmt"
	"math"

	"github.com/yueyanglu/lu-etal/utils"
)

// PackFields flattens psi and phi (row-major) into one decision vector,
// psi segment first. The two fields must share dimensions.
func PackFields(psi, phi utils.Matrix) (x []float64) {
	var (
		mr, mc = psi.Dims()
		pr, pc = phi.Dims()
	)
	if mr != pr || mc != pc {
		panic(fmt.Errorf("psi is (%d,%d) but phi is (%d,%d)", mr, mc, pr, pc))
	}
	x = make([]float64, 2*mr*mc)
	copy(x[:mr*mc], psi.Data())
	copy(x[mr*mc:], phi.Data())
	return
}

// UnpackFields is the inverse of PackFields.
func UnpackFields(x []float64, m, n int) (psi, phi utils.Matrix, err error) {
	if len(x) != 2*m*n {
		err = fmt.Errorf("%w: decision vector has length %d, want %d", ErrShapeMismatch, len(x), 2*m*n)
		return
	}
	psiData := make([]float64, m*n)
	phiData := make([]float64, m*n)
	copy(psiData, x[:m*n])
	copy(phiData, x[m*n:])
	psi = utils.NewMatrix(m, n, psiData)
	phi = utils.NewMatrix(m, n, phiData)
	return
}

// PackMasked flattens the q-point velocity pair (u segment first), marks
// the finite entries in mask and returns only those as the observation
// vector. Sentinel-to-mask conversion is confined to this function; the
// numeric kernels only ever see the explicit mask.
func PackMasked(u, v utils.Matrix) (y []float64, mask []bool) {
	var (
		ur, uc = u.Dims()
		vr, vc = v.Dims()
	)
	if ur != vr || uc != vc {
		panic(fmt.Errorf("u is (%d,%d) but v is (%d,%d)", ur, uc, vr, vc))
	}
	var (
		half = ur * uc
		full = make([]float64, 2*half)
	)
	copy(full[:half], u.Data())
	copy(full[half:], v.Data())
	mask = make([]bool, 2*half)
	for i, val := range full {
		mask[i] = !math.IsNaN(val) && !math.IsInf(val, 0)
	}
	y = make([]float64, 0, 2*half)
	for i, ok := range mask {
		if ok {
			y = append(y, full[i])
		}
	}
	return
}

// UnpackMasked scatters values back into a zero-filled vector of the
// mask's length at the true positions and splits it into two (nr,nc)
// arrays, u first. Masked-out positions come back as exact zeros.
func UnpackMasked(values []float64, mask []bool, nr, nc int) (u, v utils.Matrix, err error) {
	if len(mask) != 2*nr*nc {
		err = fmt.Errorf("%w: mask has length %d, want %d", ErrShapeMismatch, len(mask), 2*nr*nc)
		return
	}
	full := make([]float64, len(mask))
	k := 0
	for i, ok := range mask {
		if ok {
			if k >= len(values) {
				err = fmt.Errorf("%w: %d values for %d mask entries", ErrShapeMismatch, len(values), countTrue(mask))
				return
			}
			full[i] = values[k]
			k++
		}
	}
	if k != len(values) {
		err = fmt.Errorf("%w: %d values for %d mask entries", ErrShapeMismatch, len(values), k)
		return
	}
	half := nr * nc
	u = utils.NewMatrix(nr, nc, full[:half])
	v = utils.NewMatrix(nr, nc, full[half:])
	return
}

func countTrue(mask []bool) (n int) {
	for _, ok := range mask {
		if ok {
			n++
		}
	}
	return
}
