package planner

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/skypath/costpath"
	"github.com/katalvlaran/skypath/costsurface"
	"github.com/katalvlaran/skypath/route"
)

// Plan runs the full pipeline for in and returns the planned route.
//
// Validation fails fast with ErrInvalidInput or ErrMisalignedGrids; an
// unreachable destination surfaces as costpath.ErrUnreachable. A draping
// failure does not fail the run: the Result is returned Degraded with the
// 2D path and an explicit reason.
// Complexity: dominated by the wavefront, O(C log C) for C elevation cells.
func Plan(in Input, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if in.Elevation == nil {
		return nil, fmt.Errorf("%w: elevation grid is nil", ErrInvalidInput)
	}
	if !in.Elevation.Contains(in.Start) {
		return nil, fmt.Errorf("%w: start (%g, %g) outside extent", ErrInvalidInput, in.Start.X, in.Start.Y)
	}
	if !in.Elevation.Contains(in.End) {
		return nil, fmt.Errorf("%w: end (%g, %g) outside extent", ErrInvalidInput, in.End.X, in.End.Y)
	}
	if !in.Wind.Valid() {
		return nil, fmt.Errorf("%w: wind speed=%g direction=%g", ErrInvalidInput, in.Wind.Speed, in.Wind.Direction)
	}
	if in.Vegetation != nil && !in.Elevation.Aligned(in.Vegetation) {
		return nil, fmt.Errorf("%w: vegetation vs elevation", ErrMisalignedGrids)
	}

	cost, err := costsurface.Build(in.Elevation, in.Vegetation, in.Buildings, in.Wind,
		costsurface.WithBuildingPenalty(cfg.BuildingPenalty),
		costsurface.WithVegetationPenalty(cfg.VegetationPenalty),
		costsurface.WithBuildingBuffer(cfg.BuildingBuffer),
	)
	if err != nil {
		if errors.Is(err, costsurface.ErrMisaligned) {
			return nil, fmt.Errorf("%w: %v", ErrMisalignedGrids, err)
		}

		return nil, err
	}

	cells, total, err := costpath.ShortestPath(cost, in.Start, in.End,
		costpath.WithConnectivity(cfg.Conn))
	if err != nil {
		return nil, err
	}

	line, err := route.Polyline(cells, cost)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Cost:      cost,
		Path:      line,
		TotalCost: total,
	}

	// Draping is recoverable: report the degradation, keep the 2D route.
	line3, err := route.Drape(line, in.Elevation, cfg.AltitudeOffset)
	if err != nil {
		res.Degraded = true
		res.DegradedReason = err

		return res, nil
	}
	res.Path3D = line3

	return res, nil
}
