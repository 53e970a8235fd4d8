package helmholtz

import (
	"math"
	"math/rand"

	"github.com/yueyanglu/lu-etal/utils"
)

func near(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// randVelocity fills an (m-1,n-1) velocity pair with reproducible values
// in [-1,1), optionally knocking out a few samples with NaN.
func randVelocity(rng *rand.Rand, m, n int, holes int) (u, v utils.Matrix) {
	u = utils.NewMatrix(m-1, n-1)
	v = utils.NewMatrix(m-1, n-1)
	for i := 0; i < m-1; i++ {
		for j := 0; j < n-1; j++ {
			u.Set(i, j, 2*rng.Float64()-1)
			v.Set(i, j, 2*rng.Float64()-1)
		}
	}
	for k := 0; k < holes; k++ {
		u.Set(rng.Intn(m-1), rng.Intn(n-1), math.NaN())
		v.Set(rng.Intn(m-1), rng.Intn(n-1), math.NaN())
	}
	return
}

// randInteriorFields returns a decision vector that is random on interior
// p-points and exactly zero on the border ring, the conditioning
// convention for land and domain edges.
func randInteriorFields(rng *rand.Rand, m, n int) (x []float64) {
	x = make([]float64, 2*m*n)
	for a := 1; a < m-1; a++ {
		for b := 1; b < n-1; b++ {
			x[a*n+b] = 2*rng.Float64() - 1
			x[m*n+a*n+b] = 2*rng.Float64() - 1
		}
	}
	return
}

func allBCs() []BCs {
	return []BCs{
		{utils.BCClosed, utils.BCClosed},
		{utils.BCPeriodic, utils.BCClosed},
		{utils.BCClosed, utils.BCPeriodic},
		{utils.BCPeriodic, utils.BCPeriodic},
	}
}
