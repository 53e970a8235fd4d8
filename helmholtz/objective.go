package helmholtz

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Objective is the Tikhonov functional
//
//	J(x) = 0.5*||y - A·x||^2 + 0.5*Alpha*||x||^2
//
// fit to the valid velocity samples with a quadratic penalty on the
// decision vector. It is pure: no state is carried between evaluations.
func (p *Problem) Objective(x []float64) float64 {
	var (
		ax = p.Velocity(x)
		e  = make([]float64, len(ax))
	)
	copy(e, p.Y)
	floats.Sub(e, ax)
	return 0.5*floats.Dot(e, e) + 0.5*p.Alpha*floats.Dot(x, x)
}

// Gradient writes the analytic gradient of Objective into grad:
//
//	grad J = -Aᵗ(y - A·x) + Alpha*x
//
// where Aᵗ applied to a velocity residual is the (curl, -divergence)
// pair computed by CurlDiv. The signature matches the gonum optimize
// Grad contract.
func (p *Problem) Gradient(grad, x []float64) {
	if len(grad) != len(x) {
		panic(fmt.Errorf("gradient has length %d but x has length %d", len(grad), len(x)))
	}
	var (
		ax = p.Velocity(x)
		e  = make([]float64, len(ax))
	)
	copy(e, p.Y)
	floats.Sub(e, ax)
	adj := p.CurlDiv(e)
	for i := range grad {
		grad[i] = -adj[i] + p.Alpha*x[i]
	}
}
