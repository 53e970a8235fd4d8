package geometry2D

import "github.com/yueyanglu/lu-etal/utils"

// GradientAxis0 differentiates along the row index: centered differences
// of half weight in the interior, one-sided at the first and last rows.
// Sampling is assumed unit-spaced, as with numpy.gradient.
func GradientAxis0(f utils.Matrix) (g utils.Matrix) {
	var (
		m, n = f.Dims()
	)
	g = utils.NewMatrix(m, n)
	for j := 0; j < n; j++ {
		g.Set(0, j, f.At(1, j)-f.At(0, j))
		g.Set(m-1, j, f.At(m-1, j)-f.At(m-2, j))
		for i := 1; i < m-1; i++ {
			g.Set(i, j, 0.5*(f.At(i+1, j)-f.At(i-1, j)))
		}
	}
	return
}

// GradientAxis1 differentiates along the column index.
func GradientAxis1(f utils.Matrix) (g utils.Matrix) {
	var (
		m, n = f.Dims()
	)
	g = utils.NewMatrix(m, n)
	for i := 0; i < m; i++ {
		g.Set(i, 0, f.At(i, 1)-f.At(i, 0))
		g.Set(i, n-1, f.At(i, n-1)-f.At(i, n-2))
		for j := 1; j < n-1; j++ {
			g.Set(i, j, 0.5*(f.At(i, j+1)-f.At(i, j-1)))
		}
	}
	return
}
