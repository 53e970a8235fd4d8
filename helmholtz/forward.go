package helmholtz

import "fmt"

// Velocity reconstructs the q-point velocity implied by the decision
// vector x and restricts it to the valid samples. First differences of
// psi and phi are taken over the average of the two bracketing p-point
// spacings, then each derivative is averaged across the remaining axis
// onto the q-points:
//
//	u =  avgX(dPsi/dy) + avgY(dPhi/dx)
//	v = -avgX(dPsi/dx) + avgY(dPhi/dy)
//
// The result has the observation vector's length. Velocity is linear in
// x and independent of the boundary-condition tags; it is the map A in
// the fit y ≈ A·x.
func (p *Problem) Velocity(x []float64) (ax []float64) {
	var (
		m, n = p.M, p.N
	)
	if len(x) != 2*m*n {
		panic(fmt.Errorf("decision vector has length %d, want %d", len(x), 2*m*n))
	}
	var (
		psi = x[:m*n]
		phi = x[m*n:]
		dx  = p.DX.Data()
		dy  = p.DY.Data()

		dpsidy = make([]float64, (m-1)*n)
		dphidy = make([]float64, (m-1)*n)
		dpsidx = make([]float64, m*(n-1))
		dphidx = make([]float64, m*(n-1))
	)
	for i := 0; i < m-1; i++ {
		for j := 0; j < n; j++ {
			h := 0.5 * (dy[(i+1)*n+j] + dy[i*n+j])
			dpsidy[i*n+j] = (psi[(i+1)*n+j] - psi[i*n+j]) / h
			dphidy[i*n+j] = (phi[(i+1)*n+j] - phi[i*n+j]) / h
		}
	}
	for i := 0; i < m; i++ {
		for j := 0; j < n-1; j++ {
			h := 0.5 * (dx[i*n+j+1] + dx[i*n+j])
			dpsidx[i*(n-1)+j] = (psi[i*n+j+1] - psi[i*n+j]) / h
			dphidx[i*(n-1)+j] = (phi[i*n+j+1] - phi[i*n+j]) / h
		}
	}
	var (
		half = (m - 1) * (n - 1)
		full = make([]float64, 2*half)
		uq   = full[:half]
		vq   = full[half:]
	)
	for i := 0; i < m-1; i++ {
		for j := 0; j < n-1; j++ {
			k := i*(n-1) + j
			uq[k] = 0.5*(dpsidy[i*n+j+1]+dpsidy[i*n+j]) +
				0.5*(dphidx[(i+1)*(n-1)+j]+dphidx[i*(n-1)+j])
			vq[k] = -0.5*(dpsidx[(i+1)*(n-1)+j]+dpsidx[i*(n-1)+j]) +
				0.5*(dphidy[i*n+j+1]+dphidy[i*n+j])
		}
	}
	ax = make([]float64, 0, len(p.Y))
	for i, ok := range p.Mask {
		if ok {
			ax = append(ax, full[i])
		}
	}
	return
}
