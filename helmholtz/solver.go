package helmholtz

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/optimize"

	"github.com/yueyanglu/lu-etal/utils"
)

// DefaultGradientThreshold is deliberately tight: the optimum is very
// flat near convergence, so the solver is allowed to grind until the
// gradient norm is essentially zero or it can make no further progress.
const DefaultGradientThreshold = 1.0e-16

// DefaultAlpha keeps the Tikhonov penalty negligible next to the data
// misfit; the fit is nearly pure least squares.
const DefaultAlpha = 1.0e-14

// Settings bounds the external minimizer. The zero value means no
// iteration/evaluation limits and the default gradient threshold.
type Settings struct {
	GradientThreshold float64
	MajorIterations   int
	FuncEvaluations   int
	Runtime           time.Duration
}

// Result carries the decomposed fields together with the minimizer's
// stopping information. A run that exhausts its budget still returns the
// best-found fields, with Converged false and the reason in Status.
type Result struct {
	Psi, Phi utils.Matrix
	F        float64 // final objective value
	Status   optimize.Status
	Stats    optimize.Stats
	Runtime  time.Duration

	// Converged reports whether the solver met one of its convergence
	// criteria rather than a resource limit or line-search stall.
	Converged bool

	// Warning holds the solver's non-fatal complaint, if any.
	Warning string
}

// Decompose fits streamfunction and velocity-potential fields to the
// NaN-maskable q-point velocity pair (u,v), starting the limited-memory
// quasi-Newton minimizer from the dense initial guess (ipsi,iphi). All
// shape and configuration problems are reported before any optimization
// work begins; solver budget exhaustion is reported through the Result,
// not as an error.
func Decompose(ipsi, iphi, dx, dy, u, v utils.Matrix, bc BCs, alpha float64) (res *Result, err error) {
	return DecomposeWithSettings(ipsi, iphi, dx, dy, u, v, bc, alpha, nil)
}

func DecomposeWithSettings(ipsi, iphi, dx, dy, u, v utils.Matrix, bc BCs, alpha float64,
	s *Settings) (res *Result, err error) {
	var (
		m, n = dx.Dims()
	)
	if r, c := ipsi.Dims(); r != m || c != n {
		err = fmt.Errorf("%w: IPSI is (%d,%d) but the spacing grids are (%d,%d)", ErrShapeMismatch, r, c, m, n)
		return
	}
	if r, c := iphi.Dims(); r != m || c != n {
		err = fmt.Errorf("%w: IPHI is (%d,%d) but the spacing grids are (%d,%d)", ErrShapeMismatch, r, c, m, n)
		return
	}
	p, err := NewProblem(dx, dy, u, v, bc, alpha)
	if err != nil {
		return
	}

	var (
		x0   = PackFields(ipsi, iphi)
		gtol = DefaultGradientThreshold
	)
	settings := &optimize.Settings{}
	if s != nil {
		if s.GradientThreshold > 0 {
			gtol = s.GradientThreshold
		}
		settings.MajorIterations = s.MajorIterations
		settings.FuncEvaluations = s.FuncEvaluations
		settings.Runtime = s.Runtime
	}
	settings.GradientThreshold = gtol

	problem := optimize.Problem{
		Func: p.Objective,
		Grad: p.Gradient,
	}

	t0 := time.Now()
	opt, optErr := optimize.Minimize(problem, x0, settings, &optimize.LBFGS{})
	elapsed := time.Since(t0)

	if opt == nil || len(opt.X) != len(x0) {
		// Nothing usable came back; this is a genuine failure.
		err = fmt.Errorf("helmholtz: minimizer failed: %v", optErr)
		return
	}

	psi, phi, err := UnpackFields(opt.X, m, n)
	if err != nil {
		return
	}
	res = &Result{
		Psi:       psi,
		Phi:       phi,
		F:         opt.F,
		Status:    opt.Status,
		Stats:     opt.Stats,
		Runtime:   elapsed,
		Converged: convergedStatus(opt.Status),
	}
	if optErr != nil {
		// A line-search stall at a flat optimum or an exhausted budget
		// still leaves a usable best-effort point.
		res.Warning = optErr.Error()
	}
	fmt.Printf("        optimization time: %.2f min\n", elapsed.Minutes())
	fmt.Printf("        F(x): %.6e  status: %v\n", res.F, res.Status)
	return
}

func convergedStatus(s optimize.Status) bool {
	switch s {
	case optimize.Success,
		optimize.GradientThreshold,
		optimize.FunctionThreshold,
		optimize.FunctionConvergence,
		optimize.StepConvergence,
		optimize.MethodConverge:
		return true
	}
	return false
}
