// Package costsurface defines the Wind reading, configuration options and
// sentinel errors for cost-surface synthesis.
package costsurface

import (
	"errors"
	"math"
)

// Sentinel errors for cost-surface construction.
var (
	// ErrNilElevation indicates a nil elevation grid.
	ErrNilElevation = errors.New("costsurface: elevation grid is nil")
	// ErrMisaligned indicates the vegetation grid is not co-registered with
	// the elevation grid. Callers resample explicitly and retry; silent
	// resampling would silently change results.
	ErrMisaligned = errors.New("costsurface: vegetation grid not co-registered with elevation")
	// ErrBadWind indicates a negative wind speed or a non-finite direction.
	ErrBadWind = errors.New("costsurface: wind speed must be non-negative and direction finite")
	// ErrBadPenalty indicates a non-positive penalty factor (via option panic).
	ErrBadPenalty = errors.New("costsurface: penalty factors must be strictly positive")
)

// Wind is a single wind reading in meteorological convention: Direction is
// the compass angle the wind blows FROM, degrees [0,360); Speed is in m/s.
// A zero Speed disables the wind penalty entirely.
type Wind struct {
	Speed     float64 // m/s, >= 0
	Direction float64 // degrees [0,360), direction the wind comes from
}

// NoWind returns the "no wind data" sentinel: speed zero, which degrades the
// wind penalty to a no-op.
func NoWind() Wind { return Wind{} }

// Valid reports whether the reading is usable: non-negative finite speed and
// finite direction.
func (w Wind) Valid() bool {
	return w.Speed >= 0 && !math.IsNaN(w.Speed) && !math.IsInf(w.Speed, 0) &&
		!math.IsNaN(w.Direction) && !math.IsInf(w.Direction, 0)
}

// Defaults for the cost-surface tunables.
const (
	// DefaultBuildingPenalty multiplies cost inside the building mask. Large
	// enough that any detour is cheaper, small enough to keep the region
	// formally passable so the wavefront always terminates.
	DefaultBuildingPenalty = 1000.0
	// DefaultVegetationPenalty scales the per-unit vegetation height
	// multiplier.
	DefaultVegetationPenalty = 3.0
	// DefaultBuildingBuffer is the dilation distance around footprints, in
	// world units.
	DefaultBuildingBuffer = 10.0
)

// Options configures Build.
//
// BuildingPenalty   – multiplier applied inside the buffered building mask.
// VegetationPenalty – factor in 1 + height·factor per unit of vegetation height.
// BuildingBuffer    – dilation distance around footprints, world units.
type Options struct {
	BuildingPenalty   float64
	VegetationPenalty float64
	BuildingBuffer    float64
}

// Option is a functional option for configuring Build.
type Option func(*Options)

// WithBuildingPenalty sets the building-mask multiplier.
// Must be strictly positive; non-positive values panic with ErrBadPenalty.
func WithBuildingPenalty(p float64) Option {
	return func(o *Options) {
		if p <= 0 || math.IsNaN(p) {
			panic(ErrBadPenalty.Error())
		}
		o.BuildingPenalty = p
	}
}

// WithVegetationPenalty sets the vegetation height factor.
// Must be strictly positive; non-positive values panic with ErrBadPenalty.
func WithVegetationPenalty(p float64) Option {
	return func(o *Options) {
		if p <= 0 || math.IsNaN(p) {
			panic(ErrBadPenalty.Error())
		}
		o.VegetationPenalty = p
	}
}

// WithBuildingBuffer sets the footprint dilation distance (world units).
// Negative values panic with ErrBadPenalty.
func WithBuildingBuffer(d float64) Option {
	return func(o *Options) {
		if d < 0 || math.IsNaN(d) {
			panic(ErrBadPenalty.Error())
		}
		o.BuildingBuffer = d
	}
}

// DefaultOptions returns the standard tunables: building penalty 1000,
// vegetation penalty 3.0, buffer 10.
func DefaultOptions() Options {
	return Options{
		BuildingPenalty:   DefaultBuildingPenalty,
		VegetationPenalty: DefaultVegetationPenalty,
		BuildingBuffer:    DefaultBuildingBuffer,
	}
}
