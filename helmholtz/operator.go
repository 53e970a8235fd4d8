package helmholtz

import (
	"github.com/james-bowman/sparse"
)

// AssembleForward builds the masked forward map as an explicit sparse
// matrix of len(Y) rows by 2*M*N columns, by probing Velocity with unit
// vectors. The stencil touches at most a handful of cells per sample, so
// CSR storage stays small. Intended for verification and for direct
// application on modest grids; the optimization path never materializes
// the operator.
func (p *Problem) AssembleForward() (A *sparse.CSR) {
	var (
		rows = len(p.Y)
		cols = 2 * p.M * p.N
		dok  = sparse.NewDOK(rows, cols)
		x    = make([]float64, cols)
	)
	for j := 0; j < cols; j++ {
		x[j] = 1
		col := p.Velocity(x)
		for i, val := range col {
			if val != 0 {
				dok.Set(i, j, val)
			}
		}
		x[j] = 0
	}
	A = dok.ToCSR()
	return
}
