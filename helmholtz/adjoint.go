package helmholtz

import (
	"fmt"
	"math"

	"github.com/yueyanglu/lu-etal/utils"
)

// CurlDiv maps a masked velocity residual back onto the p-point grid as
// the pair (curl, -divergence), flattened curl segment first. On interior
// p-points it is the exact discrete transpose of Velocity; the border
// ring is filled according to the boundary-condition tags, which is how
// the method injects boundary information into the gradient without ever
// constraining the forward reconstruction.
//
// The residual is first scattered back to full q-point (u,v) arrays with
// zeros at masked positions, so invalid samples contribute nothing.
func (p *Problem) CurlDiv(e []float64) (adj []float64) {
	var (
		m, n = p.M, p.N
		half = (m - 1) * (n - 1)
	)
	if len(e) != len(p.Y) {
		panic(fmt.Errorf("residual has length %d, want %d", len(e), len(p.Y)))
	}
	var (
		full = make([]float64, 2*half)
		k    int
	)
	for i, ok := range p.Mask {
		if ok {
			full[i] = e[k]
			k++
		}
	}
	var (
		u = full[:half] // (m-1,n-1), index i*(n-1)+j
		v = full[half:]
	)

	// Spacing seen from the q-points: meridional spacing at u-points,
	// zonal spacing at v-points.
	var (
		dxp = p.DX.Data()
		dyp = p.DY.Data()
		dyU = make([]float64, (m-2)*(n-1)) // rows 1..m-2 of DY, column pairs
		dxV = make([]float64, (m-1)*(n-2)) // cols 1..n-2 of DX, row pairs
	)
	for i := 0; i < m-2; i++ {
		for j := 0; j < n-1; j++ {
			dyU[i*(n-1)+j] = 0.5 * (dyp[(i+1)*n+j+1] + dyp[(i+1)*n+j])
		}
	}
	for i := 0; i < m-1; i++ {
		for j := 0; j < n-2; j++ {
			dxV[i*(n-2)+j] = 0.5 * (dxp[(i+1)*n+j+1] + dxp[i*n+j+1])
		}
	}

	// Centered-difference curl and divergence on interior p-points.
	var (
		dudy = make([]float64, (m-2)*(n-1))
		dvdy = make([]float64, (m-2)*(n-1))
		dvdx = make([]float64, (m-1)*(n-2))
		dudx = make([]float64, (m-1)*(n-2))
	)
	for i := 0; i < m-2; i++ {
		for j := 0; j < n-1; j++ {
			h := dyU[i*(n-1)+j]
			dudy[i*(n-1)+j] = (u[(i+1)*(n-1)+j] - u[i*(n-1)+j]) / h
			dvdy[i*(n-1)+j] = (v[(i+1)*(n-1)+j] - v[i*(n-1)+j]) / h
		}
	}
	for i := 0; i < m-1; i++ {
		for j := 0; j < n-2; j++ {
			h := dxV[i*(n-2)+j]
			dvdx[i*(n-2)+j] = (v[i*(n-1)+j+1] - v[i*(n-1)+j]) / h
			dudx[i*(n-2)+j] = (u[i*(n-1)+j+1] - u[i*(n-1)+j]) / h
		}
	}

	// NaN marks "not yet set"; the edge fill below must cover every
	// border cell for all four boundary-condition combinations.
	var (
		curl = make([]float64, m*n)
		div  = make([]float64, m*n)
	)
	for i := range curl {
		curl[i] = math.NaN()
		div[i] = math.NaN()
	}
	for i := 0; i < m-2; i++ {
		for j := 0; j < n-2; j++ {
			curl[(i+1)*n+j+1] = 0.5*(dvdx[(i+1)*(n-2)+j]+dvdx[i*(n-2)+j]) -
				0.5*(dudy[i*(n-1)+j+1]+dudy[i*(n-1)+j])
			div[(i+1)*n+j+1] = 0.5*(dudx[(i+1)*(n-2)+j]+dudx[i*(n-2)+j]) +
				0.5*(dvdy[i*(n-1)+j+1]+dvdy[i*(n-1)+j])
		}
	}

	g := edgeGrids{m: m, n: n, u: u, v: v, dyU: dyU, dxV: dxV, curl: curl, div: div}
	switch {
	case p.BC.Zonal == utils.BCClosed && p.BC.Meridional == utils.BCClosed:
		g.fillClosedClosed()
	case p.BC.Zonal == utils.BCPeriodic && p.BC.Meridional == utils.BCClosed:
		g.fillZonalPeriodic()
		g.copyRowsFull()
	case p.BC.Zonal == utils.BCClosed && p.BC.Meridional == utils.BCPeriodic:
		g.fillMeridionalPeriodic()
		g.copyColsFull()
	default:
		g.fillZonalPeriodic()
		g.fillMeridionalPeriodic()
		g.copyCorners()
	}

	adj = make([]float64, 2*m*n)
	copy(adj[:m*n], curl)
	for i, val := range div {
		adj[m*n+i] = -val
	}
	return
}

// edgeGrids bundles everything the border fills read and write. Each
// fill is a pure function of the interior fields, the raw residual
// velocities and the q-point spacing.
type edgeGrids struct {
	m, n      int
	u, v      []float64 // (m-1,n-1)
	dyU       []float64 // (m-2,n-1)
	dxV       []float64 // (m-1,n-2)
	curl, div []float64 // (m,n)
}

// fillClosedClosed extends the interior by zero-gradient copies: first
// the north/south rows from the adjacent interior rows, then the west/
// east columns over the full height, which also resolves the corners.
func (g *edgeGrids) fillClosedClosed() {
	var (
		m, n = g.m, g.n
	)
	for j := 1; j < n-1; j++ {
		g.curl[j] = g.curl[n+j]
		g.curl[(m-1)*n+j] = g.curl[(m-2)*n+j]
		g.div[j] = g.div[n+j]
		g.div[(m-1)*n+j] = g.div[(m-2)*n+j]
	}
	g.copyColsFull()
}

// fillZonalPeriodic computes the west and east border columns (interior
// rows only) with a genuine wrapped difference across the opposite edge.
// A periodic domain has a single distinct wrap difference per row, so the
// same dvdx/dudx wrap serves both borders.
func (g *edgeGrids) fillZonalPeriodic() {
	var (
		m, n  = g.m, g.n
		dvdxW = make([]float64, m-1)
		dudxW = make([]float64, m-1)
	)
	for i := 0; i < m-1; i++ {
		h := g.dxV[i*(n-2)]
		dvdxW[i] = (g.v[i*(n-1)] - g.v[i*(n-1)+n-2]) / h
		dudxW[i] = (g.u[i*(n-1)] - g.u[i*(n-1)+n-2]) / h
	}
	for i := 0; i < m-2; i++ {
		var (
			hW = g.dyU[i*(n-1)]
			hE = g.dyU[i*(n-1)+n-2]

			dudyW = (g.u[(i+1)*(n-1)] - g.u[i*(n-1)]) / hW
			dudyE = (g.u[(i+1)*(n-1)+n-2] - g.u[i*(n-1)+n-2]) / hE
			dvdyW = (g.v[(i+1)*(n-1)] - g.v[i*(n-1)]) / hW
			dvdyE = (g.v[(i+1)*(n-1)+n-2] - g.v[i*(n-1)+n-2]) / hE
		)
		g.curl[(i+1)*n] = 0.5*(dvdxW[i+1]+dvdxW[i]) - dudyW
		g.curl[(i+1)*n+n-1] = 0.5*(dvdxW[i+1]+dvdxW[i]) - dudyE
		g.div[(i+1)*n] = 0.5*(dudxW[i+1]+dudxW[i]) + dvdyW
		g.div[(i+1)*n+n-1] = 0.5*(dudxW[i+1]+dudxW[i]) + dvdyE
	}
}

// fillMeridionalPeriodic is the symmetric construction for the north and
// south border rows (interior columns only), wrapping the meridional
// differences across the opposite edge.
func (g *edgeGrids) fillMeridionalPeriodic() {
	var (
		m, n  = g.m, g.n
		dudyN = make([]float64, n-1)
		dvdyN = make([]float64, n-1)
	)
	for j := 0; j < n-1; j++ {
		h := g.dyU[j]
		dudyN[j] = (g.u[j] - g.u[(m-2)*(n-1)+j]) / h
		dvdyN[j] = (g.v[j] - g.v[(m-2)*(n-1)+j]) / h
	}
	for j := 0; j < n-2; j++ {
		var (
			hN = g.dxV[j]
			hS = g.dxV[(m-2)*(n-2)+j]

			dvdxN = (g.v[j+1] - g.v[j]) / hN
			dvdxS = (g.v[(m-2)*(n-1)+j+1] - g.v[(m-2)*(n-1)+j]) / hS
			dudxN = (g.u[j+1] - g.u[j]) / hN
			dudxS = (g.u[(m-2)*(n-1)+j+1] - g.u[(m-2)*(n-1)+j]) / hS
		)
		g.curl[j+1] = dvdxN - 0.5*(dudyN[j+1]+dudyN[j])
		g.curl[(m-1)*n+j+1] = dvdxS - 0.5*(dudyN[j+1]+dudyN[j])
		g.div[j+1] = dudxN + 0.5*(dvdyN[j+1]+dvdyN[j])
		g.div[(m-1)*n+j+1] = dudxS + 0.5*(dvdyN[j+1]+dvdyN[j])
	}
}

// copyRowsFull applies the closed rule to the north/south rows over the
// full width; corners take the already-filled border column values.
func (g *edgeGrids) copyRowsFull() {
	var (
		m, n = g.m, g.n
	)
	for j := 0; j < n; j++ {
		g.curl[j] = g.curl[n+j]
		g.curl[(m-1)*n+j] = g.curl[(m-2)*n+j]
		g.div[j] = g.div[n+j]
		g.div[(m-1)*n+j] = g.div[(m-2)*n+j]
	}
}

// copyColsFull applies the closed rule to the west/east columns over the
// full height; corners take the already-filled border row values.
func (g *edgeGrids) copyColsFull() {
	var (
		m, n = g.m, g.n
	)
	for i := 0; i < m; i++ {
		g.curl[i*n] = g.curl[i*n+1]
		g.curl[i*n+n-1] = g.curl[i*n+n-2]
		g.div[i*n] = g.div[i*n+1]
		g.div[i*n+n-1] = g.div[i*n+n-2]
	}
}

// copyCorners resolves the four corner cells when both axes are periodic
// by the zonal closed-copy rule, so the meridional border values win.
func (g *edgeGrids) copyCorners() {
	var (
		m, n = g.m, g.n
	)
	for _, i := range []int{0, m - 1} {
		g.curl[i*n] = g.curl[i*n+1]
		g.curl[i*n+n-1] = g.curl[i*n+n-2]
		g.div[i*n] = g.div[i*n+1]
		g.div[i*n+n-1] = g.div[i*n+n-2]
	}
}
