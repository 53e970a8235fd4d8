package geometry2D

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yueyanglu/lu-etal/utils"
)

func uniformGrid(m, n int) (lon, lat utils.Matrix) {
	lon = utils.NewMatrix(m, n)
	lat = utils.NewMatrix(m, n)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			lon.Set(i, j, float64(j))
			lat.Set(i, j, float64(i))
		}
	}
	return
}

func TestDxFromLonLat(t *testing.T) {
	var (
		m, n = 3, 4
		lon  = utils.NewMatrix(m, n)
		lat  = utils.NewMatrix(m, n)
	)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			lon.Set(i, j, float64(j))
			lat.Set(i, j, []float64{0, 60, 60}[i])
		}
	}
	dx := dxCheckDims(t, lon, lat, m, n)

	// one degree of longitude at the equator
	degEq := EarthRadius * math.Pi / 180
	for j := 0; j < n-1; j++ {
		assert.InDelta(t, degEq, dx.At(0, j), 1)
		// at 60N the zonal arc shrinks by cos(60) = 0.5
		assert.InDelta(t, 0.5*degEq, dx.At(2, j), 0.001*degEq)
	}

	assert.Panics(t, func() { DxFromLonLat(lon, utils.NewMatrix(n, m)) })
}

func dxCheckDims(t *testing.T, lon, lat utils.Matrix, m, n int) utils.Matrix {
	t.Helper()
	dx := DxFromLonLat(lon, lat)
	r, c := dx.Dims()
	assert.Equal(t, m, r)
	assert.Equal(t, n-1, c)
	return dx
}

func TestDyFromLat(t *testing.T) {
	_, lat := uniformGrid(4, 3)
	dy := DyFromLat(lat)
	r, c := dy.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 3, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			assert.Equal(t, MetersPerDegree, dy.At(i, j))
		}
	}
}

func TestSpacingFromLonLat(t *testing.T) {
	var (
		lon, lat = uniformGrid(4, 5)
		fac      = 2.0
	)
	dx, dy := SpacingFromLonLat(lon, lat, fac)
	// unit coordinate steps scale straight to the conversion factor
	for i := 0; i < 4; i++ {
		for j := 0; j < 5; j++ {
			assert.Equal(t, fac, dx.At(i, j), "dx(%d,%d)", i, j)
			assert.Equal(t, fac, dy.At(i, j), "dy(%d,%d)", i, j)
		}
	}
}
