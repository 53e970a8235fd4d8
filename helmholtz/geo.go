package helmholtz

import (
	"fmt"
	"math"

	"github.com/yueyanglu/lu-etal/geometry2D"
	"github.com/yueyanglu/lu-etal/utils"
)

// DefaultDegreeLength is the meters-per-degree factor applied to the
// coordinate grids by the lat/lon front end.
const DefaultDegreeLength = 111195.0

// LatLonOptions configures DecomposeLatLon. The zero value selects
// closed boundaries on both axes, the default regularization weight and
// degree length, and no periodification.
type LatLonOptions struct {
	BC           BCs
	Alpha        float64
	DegreeLength float64
	Periodify    bool
	Settings     *Settings
}

// LatLonResult carries the decomposed fields, their induced velocity
// components and the solver outcome. All fields are (M,N), NaN at the
// positions that were masked in the input velocity.
type LatLonResult struct {
	Psi, Phi   utils.Matrix
	Upsi, Vpsi utils.Matrix // non-divergent part
	Uphi, Vphi utils.Matrix // irrotational part
	Fit        *Result
}

// DecomposeLatLon decomposes a p-point (M,N) velocity pair given on a
// longitude/latitude grid. It builds the spacing grids and cumulative-
// integration initial guesses, averages the velocity onto q-points, runs
// Decompose, normalizes the sign and mean of the recovered fields, and
// splits the flow into its non-divergent and irrotational velocity
// components by centered differences. With Periodify set, the domain is
// mirror-tripled first and the outputs are cropped back.
func DecomposeLatLon(lon, lat, u, v utils.Matrix, opts *LatLonOptions) (out *LatLonResult, err error) {
	var (
		m, n = u.Dims()
	)
	for name, g := range map[string]utils.Matrix{"v": v, "lon": lon, "lat": lat} {
		if r, c := g.Dims(); r != m || c != n {
			err = fmt.Errorf("%w: u is (%d,%d) but %s is (%d,%d)", ErrShapeMismatch, m, n, name, r, c)
			return
		}
	}
	var o LatLonOptions
	if opts != nil {
		o = *opts
	}
	if o.Alpha == 0 {
		o.Alpha = DefaultAlpha
	}
	if o.DegreeLength == 0 {
		o.DegreeLength = DefaultDegreeLength
	}

	u, v = u.Copy(), v.Copy()
	if o.Periodify {
		var fp utils.Matrix
		_, _, fp = geometry2D.Periodify(lon, lat, v)
		lon, lat, u = geometry2D.Periodify(lon, lat, u)
		v = fp
		m, n = u.Dims()
	}

	// Mask where either component is missing, then zero-fill: land and
	// missing samples contribute no flow to the fit or the guesses.
	var (
		mask = make([]bool, m*n)
		ud   = u.Data()
		vd   = v.Data()
	)
	for i := range ud {
		mask[i] = math.IsNaN(ud[i]) || math.IsNaN(vd[i])
	}
	u.SetWhere(mask, 0)
	v.SetWhere(mask, 0)

	var (
		psin, phin = geometry2D.InitialGuess(lon, lat, u, v, o.DegreeLength)
		dx, dy     = geometry2D.SpacingFromLonLat(lon, lat, o.DegreeLength)
		um, vm     = qPointAverage(u), qPointAverage(v)
	)
	fit, err := DecomposeWithSettings(psin, phin, dx, dy, um, vm, o.BC, o.Alpha, o.Settings)
	if err != nil {
		return
	}

	psi := fit.Psi.Scale(-1)
	phi := fit.Phi.Scale(-1)
	psi = psi.AddScalar(-psi.Mean())
	phi = phi.AddScalar(-phi.Mean())

	var (
		psi0 = geometry2D.GradientAxis0(psi)
		psi1 = geometry2D.GradientAxis1(psi)
		phi0 = geometry2D.GradientAxis0(phi)
		phi1 = geometry2D.GradientAxis1(phi)

		upsi = elemQuotient(psi0.Scale(-1), dy)
		vpsi = elemQuotient(psi1, dx)
		uphi = elemQuotient(phi1.Scale(-1), dx)
		vphi = elemQuotient(phi0.Scale(-1), dy)
	)

	nan := math.NaN()
	for _, f := range []utils.Matrix{psi, phi, upsi, vpsi, uphi, vphi} {
		f.SetWhere(mask, nan)
	}

	out = &LatLonResult{Psi: psi, Phi: phi, Upsi: upsi, Vpsi: vpsi, Uphi: uphi, Vphi: vphi, Fit: fit}
	if o.Periodify {
		out.Psi = geometry2D.CropPeriodified(out.Psi)
		out.Phi = geometry2D.CropPeriodified(out.Phi)
		out.Upsi = geometry2D.CropPeriodified(out.Upsi)
		out.Vpsi = geometry2D.CropPeriodified(out.Vpsi)
		out.Uphi = geometry2D.CropPeriodified(out.Uphi)
		out.Vphi = geometry2D.CropPeriodified(out.Vphi)
	}
	return
}

// qPointAverage moves a p-point field onto the q-points between its
// cells by four-point averaging.
func qPointAverage(f utils.Matrix) (g utils.Matrix) {
	var (
		m, n = f.Dims()
	)
	g = utils.NewMatrix(m-1, n-1)
	for i := 0; i < m-1; i++ {
		for j := 0; j < n-1; j++ {
			g.Set(i, j, 0.25*(f.At(i, j)+f.At(i, j+1)+f.At(i+1, j)+f.At(i+1, j+1)))
		}
	}
	return
}

func elemQuotient(a, b utils.Matrix) (q utils.Matrix) {
	var (
		m, n = a.Dims()
		ad   = a.Data()
		bd   = b.Data()
		data = make([]float64, len(ad))
	)
	for i := range ad {
		data[i] = ad[i] / bd[i]
	}
	q = utils.NewMatrix(m, n, data)
	return
}
