package helmholtz

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yueyanglu/lu-etal/utils"
)

// newUnitProblem builds a Problem on an (m,n) grid with constant unit
// spacing and all velocity samples valid.
func newUnitProblem(t *testing.T, m, n int, bc BCs) *Problem {
	t.Helper()
	p, err := NewProblem(
		utils.NewConstMatrix(m, n, 1),
		utils.NewConstMatrix(m, n, 1),
		utils.NewMatrix(m-1, n-1),
		utils.NewMatrix(m-1, n-1),
		bc, 0)
	require.NoError(t, err)
	return p
}

func TestVelocityPsiDelta(t *testing.T) {
	var (
		m, n = 3, 3
		p    = newUnitProblem(t, m, n, BCs{utils.BCClosed, utils.BCClosed})
		x    = make([]float64, 2*m*n)
	)
	// unit streamfunction spike at the center p-point
	x[1*n+1] = 1
	ax := p.Velocity(x)
	require.Len(t, ax, 2*(m-1)*(n-1))
	// u = avgX(dPsi/dy): positive below the spike, negative above
	// v = -avgX(dPsi/dx): circulation around the spike
	want := []float64{
		0.5, 0.5, -0.5, -0.5,
		-0.5, 0.5, -0.5, 0.5,
	}
	for i := range want {
		assert.True(t, near(ax[i], want[i], 1.e-15), "ax[%d] = %v, want %v", i, ax[i], want[i])
	}
}

func TestVelocityPhiDelta(t *testing.T) {
	var (
		m, n = 3, 3
		p    = newUnitProblem(t, m, n, BCs{utils.BCClosed, utils.BCClosed})
		x    = make([]float64, 2*m*n)
	)
	// unit velocity-potential spike at the center p-point
	x[m*n+1*n+1] = 1
	ax := p.Velocity(x)
	// u = avgY(dPhi/dx), v = avgY(dPhi/dy): pure outflow from the spike
	want := []float64{
		0.5, -0.5, 0.5, -0.5,
		0.5, 0.5, -0.5, -0.5,
	}
	for i := range want {
		assert.True(t, near(ax[i], want[i], 1.e-15), "ax[%d] = %v, want %v", i, ax[i], want[i])
	}
}

func TestVelocityLinearity(t *testing.T) {
	var (
		rng  = rand.New(rand.NewSource(1))
		m, n = 5, 6
		p    = newUnitProblem(t, m, n, BCs{utils.BCClosed, utils.BCClosed})
		x1   = randInteriorFields(rng, m, n)
		x2   = randInteriorFields(rng, m, n)
		sum  = make([]float64, 2*m*n)
	)
	for i := range sum {
		sum[i] = 2*x1[i] - 3*x2[i]
	}
	var (
		a1 = p.Velocity(x1)
		a2 = p.Velocity(x2)
		as = p.Velocity(sum)
	)
	for i := range as {
		assert.True(t, near(as[i], 2*a1[i]-3*a2[i], 1.e-13))
	}
}

func TestVelocityMaskRestriction(t *testing.T) {
	var (
		m, n = 4, 4
		u    = utils.NewMatrix(m-1, n-1)
		v    = utils.NewMatrix(m-1, n-1)
	)
	u.Set(1, 1, math.NaN())
	v.Set(0, 2, math.NaN())
	p, err := NewProblem(
		utils.NewConstMatrix(m, n, 1),
		utils.NewConstMatrix(m, n, 1),
		u, v, BCs{utils.BCClosed, utils.BCClosed}, 0)
	require.NoError(t, err)

	ax := p.Velocity(make([]float64, 2*m*n))
	assert.Len(t, ax, 2*(m-1)*(n-1)-2)
	assert.Len(t, ax, len(p.Y))
}

func TestVelocityVariableSpacing(t *testing.T) {
	var (
		m, n = 3, 3
		dx   = utils.NewConstMatrix(m, n, 2)
		dy   = utils.NewConstMatrix(m, n, 4)
	)
	p, err := NewProblem(dx, dy,
		utils.NewMatrix(m-1, n-1), utils.NewMatrix(m-1, n-1),
		BCs{utils.BCClosed, utils.BCClosed}, 0)
	require.NoError(t, err)

	x := make([]float64, 2*m*n)
	x[1*n+1] = 1
	ax := p.Velocity(x)
	// differences divide by the bracketing spacing, so u scales by 1/dy
	// and v by 1/dx relative to the unit-spacing case
	want := []float64{
		0.5 / 4, 0.5 / 4, -0.5 / 4, -0.5 / 4,
		-0.5 / 2, 0.5 / 2, -0.5 / 2, 0.5 / 2,
	}
	for i := range want {
		assert.True(t, near(ax[i], want[i], 1.e-15), "ax[%d] = %v, want %v", i, ax[i], want[i])
	}
}

func TestVelocityPanicsOnBadLength(t *testing.T) {
	p := newUnitProblem(t, 3, 3, BCs{utils.BCClosed, utils.BCClosed})
	assert.Panics(t, func() { p.Velocity(make([]float64, 5)) })
}
