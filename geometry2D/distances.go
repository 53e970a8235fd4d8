// Package geometry2D provides the grid-geometry collaborators of the
// decomposition: spacing grids from longitude/latitude, cumulative
// velocity integration for initial guesses, and mirror periodification
// of rectangular domains.
package geometry2D

import (
	"fmt"
	"math"

	"github.com/yueyanglu/lu-etal/utils"
)

const (
	// EarthRadius in meters.
	EarthRadius = 6371.0e3

	// MetersPerDegree of latitude.
	MetersPerDegree = 111194.928
)

// DxFromLonLat returns the (M,N-1) zonal great-circle distances between
// adjacent grid columns, using the haversine arc with the latitude
// averaged over each column pair.
func DxFromLonLat(lon, lat utils.Matrix) (dx utils.Matrix) {
	var (
		m, n = lon.Dims()
	)
	if r, c := lat.Dims(); r != m || c != n {
		panic(fmt.Errorf("lon is (%d,%d) but lat is (%d,%d)", m, n, r, c))
	}
	dx = utils.NewMatrix(m, n-1)
	for i := 0; i < m; i++ {
		for j := 0; j < n-1; j++ {
			var (
				dlon = (lon.At(i, j+1) - lon.At(i, j)) * math.Pi / 180.0
				latm = 0.5 * (lat.At(i, j+1) + lat.At(i, j)) * math.Pi / 180.0
				cl   = math.Cos(latm)
				s    = math.Sin(0.5 * dlon)
				a    = cl * cl * s * s
			)
			angle := 2.0 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
			dx.Set(i, j, EarthRadius*angle)
		}
	}
	return
}

// DyFromLat returns the (M-1,N) meridional distances between adjacent
// grid rows, using a constant meters-per-degree conversion.
func DyFromLat(lat utils.Matrix) (dy utils.Matrix) {
	var (
		m, n = lat.Dims()
	)
	dy = utils.NewMatrix(m-1, n)
	for i := 0; i < m-1; i++ {
		for j := 0; j < n; j++ {
			dy.Set(i, j, (lat.At(i+1, j)-lat.At(i, j))*MetersPerDegree)
		}
	}
	return
}

// SpacingFromLonLat returns p-point (M,N) spacing grids via centered
// differences of the coordinates, scaled by fac meters per degree. The
// core solver consumes these directly as DX, DY.
func SpacingFromLonLat(lon, lat utils.Matrix, fac float64) (dx, dy utils.Matrix) {
	dx = GradientAxis1(lon).Scale(fac)
	dy = GradientAxis0(lat).Scale(fac)
	return
}
