/*
Package helmholtz separates a 2-D velocity field into its non-divergent
(streamfunction) and irrotational (velocity potential) parts using the
Li et al. (2006) minimization method.

Instead of solving boundary-value problems for the streamfunction and
velocity potential, the decomposition is posed as an unconstrained
least-squares fit of the reconstructed velocity to the observed velocity,
regularized by a Tikhonov penalty and driven by a limited-memory
quasi-Newton minimizer with an analytic gradient. No boundary conditions
are imposed on the reconstructed fields themselves, which makes the
method usable on irregular domains with islands, coastlines and missing
samples.

The staggering convention follows the reference formulation: psi and phi
live on p-points (cell centers) of an (M,N) grid, the velocity components
on q-points (cell corners) of the (M-1,N-1) grid between them, with

	U =  dPsi/dy + dPhi/dx
	V = -dPsi/dx + dPhi/dy

Velocity samples may be NaN to mark land or missing data; psi and phi
over land and at domain borders should be zero for best conditioning.
Boundary-condition tags apply only to the gradient (adjoint) fields at
the rectangular domain edge, never to the forward reconstruction.
*/
package helmholtz

import (
	"errors"
	"fmt"

	"github.com/yueyanglu/lu-etal/utils"
)

var (
	ErrShapeMismatch            = errors.New("helmholtz: shape mismatch")
	ErrInvalidBoundaryCondition = errors.New("helmholtz: invalid boundary condition")
	ErrInvalidRegularization    = errors.New("helmholtz: regularization weight must be non-negative")
	ErrNoValidData              = errors.New("helmholtz: velocity field contains no valid samples")
)

// BCs holds the independently selectable edge treatments for the zonal
// (east-west) and meridional (north-south) domain boundaries.
type BCs struct {
	Zonal      utils.BCType
	Meridional utils.BCType
}

func (bc BCs) Valid() bool {
	return bc.Zonal.Valid() && bc.Meridional.Valid()
}

func (bc BCs) String() string {
	return fmt.Sprintf("zonal=%s meridional=%s", bc.Zonal, bc.Meridional)
}

// Problem carries the fixed inputs of one decomposition: the p-point
// spacing grids, the masked observation vector, the boundary-condition
// tags and the regularization weight. Its Objective and Gradient methods
// satisfy the gonum optimize contract.
type Problem struct {
	M, N   int          // p-point grid dimensions
	DX, DY utils.Matrix // (M,N) local spacing at p-points
	Y      []float64    // valid velocity samples, u segment first
	Mask   []bool       // finite-entry indicator over the flat (u,v) vector
	BC     BCs
	Alpha  float64
}

// NewProblem validates the grids, converts the NaN-marked velocity pair
// into the observation vector and its validity mask, and freezes them for
// the duration of one optimization run.
func NewProblem(dx, dy, u, v utils.Matrix, bc BCs, alpha float64) (p *Problem, err error) {
	var (
		m, n = dx.Dims()
	)
	if r, c := dy.Dims(); r != m || c != n {
		err = fmt.Errorf("%w: DX is (%d,%d) but DY is (%d,%d)", ErrShapeMismatch, m, n, r, c)
		return
	}
	if m < 3 || n < 3 {
		err = fmt.Errorf("%w: grid (%d,%d) is too small, need at least (3,3)", ErrShapeMismatch, m, n)
		return
	}
	if r, c := u.Dims(); r != m-1 || c != n-1 {
		err = fmt.Errorf("%w: U is (%d,%d), want (%d,%d) one cell inside the field grid", ErrShapeMismatch, r, c, m-1, n-1)
		return
	}
	if r, c := v.Dims(); r != m-1 || c != n-1 {
		err = fmt.Errorf("%w: V is (%d,%d), want (%d,%d) one cell inside the field grid", ErrShapeMismatch, r, c, m-1, n-1)
		return
	}
	if !bc.Valid() {
		err = fmt.Errorf("%w: %s", ErrInvalidBoundaryCondition, bc)
		return
	}
	if alpha < 0 {
		err = fmt.Errorf("%w: alpha = %g", ErrInvalidRegularization, alpha)
		return
	}
	y, mask := PackMasked(u, v)
	if len(y) == 0 {
		err = ErrNoValidData
		return
	}
	p = &Problem{
		M:     m,
		N:     n,
		DX:    dx,
		DY:    dy,
		Y:     y,
		Mask:  mask,
		BC:    bc,
		Alpha: alpha,
	}
	return
}
