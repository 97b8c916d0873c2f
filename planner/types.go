// Package planner defines the pipeline input, options, result and sentinel
// errors.
package planner

import (
	"errors"

	"github.com/ctessum/geom"

	"github.com/katalvlaran/skypath/costpath"
	"github.com/katalvlaran/skypath/costsurface"
	"github.com/katalvlaran/skypath/raster"
	"github.com/katalvlaran/skypath/route"
)

// Sentinel errors for the pipeline. Unreachable routes surface as
// costpath.ErrUnreachable; drape failures surface in Result.DegradedReason
// as route.ErrDrapeFailed, never as a Plan error.
var (
	// ErrInvalidInput indicates malformed pipeline input: nil elevation,
	// start/end outside the grid extent, or an unusable wind reading.
	ErrInvalidInput = errors.New("planner: invalid input")
	// ErrMisalignedGrids indicates the vegetation grid is not co-registered
	// with elevation. The caller may raster.Resample and retry.
	ErrMisalignedGrids = errors.New("planner: input grids are not co-registered")
)

// Input carries everything one planning run consumes. The planner treats
// all of it as read-only.
type Input struct {
	// Elevation is the terrain grid. Required.
	Elevation *raster.Grid
	// Vegetation is the vegetation surface grid (canopy elevation, same
	// coordinate system). Optional; nil means no vegetation penalty.
	Vegetation *raster.Grid
	// Buildings are the footprint polygons to avoid. Optional.
	Buildings []geom.Polygonal
	// Wind is the single wind reading for the run; costsurface.NoWind()
	// when no data is available.
	Wind costsurface.Wind
	// Start and End are the route endpoints in world coordinates. Both
	// must lie inside the elevation extent.
	Start, End geom.Point
}

// Options aggregates the tunables of all pipeline stages.
type Options struct {
	// Cost-surface tunables; see costsurface.Options.
	BuildingPenalty   float64
	VegetationPenalty float64
	BuildingBuffer    float64
	// Conn selects path connectivity (default costpath.Conn8).
	Conn costpath.Connectivity
	// AltitudeOffset is the vertical clearance added to terrain elevation
	// when draping, in world units.
	AltitudeOffset float64
}

// Option is a functional option for configuring Plan.
type Option func(*Options)

// WithBuildingPenalty sets the building-mask cost multiplier.
func WithBuildingPenalty(p float64) Option {
	return func(o *Options) { o.BuildingPenalty = p }
}

// WithVegetationPenalty sets the vegetation height factor.
func WithVegetationPenalty(p float64) Option {
	return func(o *Options) { o.VegetationPenalty = p }
}

// WithBuildingBuffer sets the footprint dilation distance (world units).
func WithBuildingBuffer(d float64) Option {
	return func(o *Options) { o.BuildingBuffer = d }
}

// WithConnectivity selects Conn4 or Conn8 for the path engine.
func WithConnectivity(c costpath.Connectivity) Option {
	return func(o *Options) { o.Conn = c }
}

// WithAltitudeOffset sets the draping clearance above terrain.
func WithAltitudeOffset(h float64) Option {
	return func(o *Options) { o.AltitudeOffset = h }
}

// DefaultOptions mirrors the stage defaults: penalty 1000, vegetation
// factor 3.0, buffer 10, Conn8, altitude offset 30.
func DefaultOptions() Options {
	return Options{
		BuildingPenalty:   costsurface.DefaultBuildingPenalty,
		VegetationPenalty: costsurface.DefaultVegetationPenalty,
		BuildingBuffer:    costsurface.DefaultBuildingBuffer,
		Conn:              costpath.Conn8,
		AltitudeOffset:    route.DefaultAltitudeOffset,
	}
}

// Result is the outcome of one planning run.
type Result struct {
	// Cost is the synthesized cost grid, exposed for inspection and
	// persistence by the caller.
	Cost *raster.Grid
	// Path is the 2D route polyline (always set on success).
	Path geom.LineString
	// Path3D is the draped 3D flight line; nil when Degraded.
	Path3D route.Line3
	// TotalCost is the cumulative cost of the route over the cost grid.
	TotalCost float64
	// Degraded reports that draping failed and only the 2D path is
	// available. DegradedReason carries the explicit cause, wrapping
	// route.ErrDrapeFailed.
	Degraded       bool
	DegradedReason error
}
