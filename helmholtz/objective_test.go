package helmholtz

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/yueyanglu/lu-etal/utils"
)

func TestObjectiveAtZero(t *testing.T) {
	var (
		rng  = rand.New(rand.NewSource(3))
		m, n = 5, 5
	)
	u, v := randVelocity(rng, m, n, 2)
	p, err := NewProblem(
		utils.NewConstMatrix(m, n, 1),
		utils.NewConstMatrix(m, n, 1),
		u, v, BCs{utils.BCClosed, utils.BCClosed}, 0.5)
	require.NoError(t, err)

	// A zero decision vector reconstructs zero velocity and carries no
	// penalty, so J(0) is half the squared norm of the samples.
	J := p.Objective(make([]float64, 2*m*n))
	assert.True(t, near(J, 0.5*floats.Dot(p.Y, p.Y), 1.e-14))
}

func TestObjectiveRegularizationTerm(t *testing.T) {
	var (
		rng  = rand.New(rand.NewSource(5))
		m, n = 5, 6
		x    = randInteriorFields(rng, m, n)
	)
	u, v := randVelocity(rng, m, n, 0)
	build := func(alpha float64) *Problem {
		p, err := NewProblem(
			utils.NewConstMatrix(m, n, 1),
			utils.NewConstMatrix(m, n, 1),
			u, v, BCs{utils.BCClosed, utils.BCClosed}, alpha)
		require.NoError(t, err)
		return p
	}
	var (
		j0 = build(0).Objective(x)
		j1 = build(2).Objective(x)
	)
	assert.True(t, near(j1-j0, floats.Dot(x, x), 1.e-12))
}

// The objective is quadratic, so a centered finite difference of J
// recovers the analytic gradient exactly up to roundoff. The check is
// restricted to interior p-points where the adjoint is the true
// transpose; border entries carry the boundary-condition fill instead.
func TestGradientFiniteDifference(t *testing.T) {
	var (
		rng  = rand.New(rand.NewSource(9))
		m, n = 5, 6
		h    = 1.e-6
	)
	for _, bc := range allBCs() {
		for _, alpha := range []float64{0, 1.e-14, 1.0} {
			u, v := randVelocity(rng, m, n, 2)
			p, err := NewProblem(
				utils.NewConstMatrix(m, n, 3),
				utils.NewConstMatrix(m, n, 3),
				u, v, bc, alpha)
			require.NoError(t, err)

			var (
				x    = randInteriorFields(rng, m, n)
				grad = make([]float64, len(x))
			)
			p.Gradient(grad, x)

			for _, blk := range []int{0, m * n} {
				for a := 1; a < m-1; a++ {
					for b := 1; b < n-1; b++ {
						i := blk + a*n + b
						x[i] += h
						jp := p.Objective(x)
						x[i] -= 2 * h
						jm := p.Objective(x)
						x[i] += h
						fd := (jp - jm) / (2 * h)
						assert.True(t, near(grad[i], fd, 1.e-7*math.Max(1, math.Abs(grad[i]))),
							"bc %s alpha %g: grad[%d] = %v, fd = %v", bc, alpha, i, grad[i], fd)
					}
				}
			}
		}
	}
}

func TestGradientPanicsOnBadLength(t *testing.T) {
	p := newUnitProblem(t, 3, 3, BCs{utils.BCClosed, utils.BCClosed})
	assert.Panics(t, func() { p.Gradient(make([]float64, 3), make([]float64, 18)) })
}
