package costsurface

import (
	"fmt"
	"math"

	"github.com/ctessum/geom"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/skypath/footprint"
	"github.com/katalvlaran/skypath/raster"
	"github.com/katalvlaran/skypath/terrain"
)

// windFloor is the lower bound of the wind multiplier.
const windFloor = 0.6

// Build synthesizes the cost grid for elev.
//
// veg may be nil (no vegetation data); if present it must be co-registered
// with elev (ErrMisaligned otherwise). buildings may be empty. wind with
// Speed == 0 is the explicit "no wind data" degradation.
//
// The output grid is co-registered with elev; finite cells are strictly
// positive, no-data elevation cells stay no-data.
// Complexity: O(Nx×Ny) plus footprint rasterization.
func Build(elev, veg *raster.Grid, buildings []geom.Polygonal, wind Wind, opts ...Option) (*raster.Grid, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if elev == nil {
		return nil, ErrNilElevation
	}
	if veg != nil && !elev.Aligned(veg) {
		return nil, fmt.Errorf("%w: %v", ErrMisaligned, raster.ErrMisaligned)
	}
	if !wind.Valid() {
		return nil, fmt.Errorf("%w: speed=%g direction=%g", ErrBadWind, wind.Speed, wind.Direction)
	}

	slope, err := terrain.Slope(elev)
	if err != nil {
		return nil, err
	}
	cost := SlopeCost(slope)

	if wind.Speed > 0 {
		aspect, aErr := terrain.Aspect(elev)
		if aErr != nil {
			return nil, aErr
		}
		wm := WindMultiplier(aspect, wind)
		floats.Mul(cost.Values(), wm.Values())
	}

	if veg != nil {
		vm := VegetationMultiplier(elev, veg, cfg.VegetationPenalty)
		floats.Mul(cost.Values(), vm.Values())
	}

	if len(buildings) > 0 {
		mask, mErr := footprint.Mask(buildings, elev, cfg.BuildingBuffer)
		if mErr != nil {
			return nil, mErr
		}
		cv, mv := cost.Values(), mask.Values()
		for i, m := range mv {
			if m > 0 {
				cv[i] *= cfg.BuildingPenalty
			}
		}
	}

	return cost, nil
}

// SlopeCost reclassifies a slope grid (degrees) into the discrete base cost:
// [0,5)→1, [5,15)→2, [15,30)→4, [30,90]→8. Degenerate values outside [0,90]
// clamp to the nearest bucket; no-data stays no-data.
func SlopeCost(slope *raster.Grid) *raster.Grid {
	out := slope.Clone()
	ov := out.Values()
	for i, s := range ov {
		if raster.IsNoData(s) {
			continue
		}
		switch {
		case s < 5:
			ov[i] = 1
		case s < 15:
			ov[i] = 2
		case s < 30:
			ov[i] = 4
		default:
			ov[i] = 8
		}
	}

	return out
}

// WindMultiplier computes the per-cell wind penalty for a given aspect grid
// and wind reading: max(0.6, 1 + (speed/15)·(Δ/180)) where Δ is the shortest
// angular distance between the cell's downslope aspect and the wind source
// direction. Flat and no-data cells get multiplier 1.
func WindMultiplier(aspect *raster.Grid, wind Wind) *raster.Grid {
	out := aspect.Clone()
	ov := out.Values()
	var m float64
	for i, a := range ov {
		if raster.IsNoData(a) || a == terrain.FlatAspect {
			ov[i] = 1
			continue
		}
		m = 1 + (wind.Speed/15)*(angleDelta(a, wind.Direction)/180)
		if m < windFloor {
			m = windFloor
		}
		ov[i] = m
	}

	return out
}

// angleDelta returns the shortest angular distance between two compass
// angles, in [0,180].
func angleDelta(a, b float64) float64 {
	d := math.Mod(a-b+180, 360)
	if d < 0 {
		d += 360
	}

	return math.Abs(d - 180)
}

// VegetationMultiplier computes 1 + max(0, veg−elev)·factor per cell.
// No-data vegetation cells count as zero canopy height, so gaps in the
// vegetation surface never inflate cost.
func VegetationMultiplier(elev, veg *raster.Grid, factor float64) *raster.Grid {
	out := elev.Clone()
	ov, ev, vv := out.Values(), elev.Values(), veg.Values()
	var h float64
	for i := range ov {
		h = 0
		if !raster.IsNoData(vv[i]) && !raster.IsNoData(ev[i]) {
			h = vv[i] - ev[i]
			if h < 0 {
				h = 0
			}
		}
		ov[i] = 1 + h*factor
	}

	return out
}
