package terrain

import (
	"errors"
	"math"

	"github.com/katalvlaran/skypath/raster"
)

// FlatAspect is the sentinel aspect for cells with zero gradient: no
// dominant downslope direction exists. Consumers (e.g. the wind penalty)
// must treat it specially rather than as a compass angle.
const FlatAspect = -1.0

// ErrNilGrid indicates a nil elevation grid was passed.
var ErrNilGrid = errors.New("terrain: elevation grid is nil")

// Slope computes the per-cell slope of elev in degrees from horizontal,
// using the Horn 3×3 kernel. The result is co-registered with elev.
// Complexity: O(Nx×Ny).
func Slope(elev *raster.Grid) (*raster.Grid, error) {
	if elev == nil {
		return nil, ErrNilGrid
	}
	out := elev.Clone()
	var dzdx, dzdy float64
	for row := 0; row < elev.Ny; row++ {
		for col := 0; col < elev.Nx; col++ {
			if raster.IsNoData(elev.Value(col, row)) {
				out.SetValue(raster.NoData(), col, row)
				continue
			}
			dzdx, dzdy = gradient(elev, col, row)
			out.SetValue(math.Atan(math.Hypot(dzdx, dzdy))*180/math.Pi, col, row)
		}
	}

	return out, nil
}

// Aspect computes the per-cell compass direction of steepest descent in
// degrees [0,360), 0 = north, using the same 3×3 neighborhood as Slope.
// Flat cells get FlatAspect. The result is co-registered with elev.
// Complexity: O(Nx×Ny).
func Aspect(elev *raster.Grid) (*raster.Grid, error) {
	if elev == nil {
		return nil, ErrNilGrid
	}
	out := elev.Clone()
	var dzdx, dzdy, deg float64
	for row := 0; row < elev.Ny; row++ {
		for col := 0; col < elev.Nx; col++ {
			if raster.IsNoData(elev.Value(col, row)) {
				out.SetValue(raster.NoData(), col, row)
				continue
			}
			dzdx, dzdy = gradient(elev, col, row)
			if dzdx == 0 && dzdy == 0 {
				out.SetValue(FlatAspect, col, row)
				continue
			}
			// The gradient points uphill; descent is its negation.
			// atan2(east, north) yields the compass angle.
			deg = math.Atan2(-dzdx, -dzdy) * 180 / math.Pi
			if deg < 0 {
				deg += 360
			}
			out.SetValue(deg, col, row)
		}
	}

	return out, nil
}

// gradient evaluates the Horn kernel at (col,row), returning dz/dx and dz/dy
// in elevation units per world unit. Rows grow northward, so "n*" neighbors
// sit at row+1. Out-of-grid neighbors clamp to the nearest in-grid cell;
// no-data neighbors replicate the center value.
func gradient(elev *raster.Grid, col, row int) (dzdx, dzdy float64) {
	center := elev.Value(col, row)
	at := func(c, r int) float64 {
		if c < 0 {
			c = 0
		} else if c >= elev.Nx {
			c = elev.Nx - 1
		}
		if r < 0 {
			r = 0
		} else if r >= elev.Ny {
			r = elev.Ny - 1
		}
		v := elev.Value(c, r)
		if raster.IsNoData(v) {
			return center
		}

		return v
	}

	nw, n, ne := at(col-1, row+1), at(col, row+1), at(col+1, row+1)
	w, e := at(col-1, row), at(col+1, row)
	sw, s, se := at(col-1, row-1), at(col, row-1), at(col+1, row-1)

	denom := 8 * elev.CellSize
	dzdx = ((ne + 2*e + se) - (nw + 2*w + sw)) / denom
	dzdy = ((ne + 2*n + nw) - (se + 2*s + sw)) / denom

	return dzdx, dzdy
}
