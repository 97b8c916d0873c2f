// Package costpath defines the cell addressing, configuration options and
// sentinel errors for least-cost path extraction over a cost grid.
package costpath

import (
	"errors"
	"math"
)

// Sentinel errors returned by the path engine.
var (
	// ErrNilGrid indicates a nil cost grid.
	ErrNilGrid = errors.New("costpath: cost grid is nil")
	// ErrNonPositiveCost indicates a finite cell value ≤ 0 in the cost grid.
	// Strictly positive costs are required for monotonic distance growth and
	// guaranteed termination.
	ErrNonPositiveCost = errors.New("costpath: cost grid must be strictly positive")
	// ErrSourceImpassable indicates the source cell is no-data or at/above
	// the impassable threshold.
	ErrSourceImpassable = errors.New("costpath: source cell is impassable")
	// ErrUnreachable indicates the destination was never reached — a normal
	// failure outcome, not a crash; callers may relax penalties and retry.
	ErrUnreachable = errors.New("costpath: destination unreachable from source")
	// ErrNotComputed indicates a Field query for a cell the wavefront never
	// finalized (early exit stops expansion at the target).
	ErrNotComputed = errors.New("costpath: cell not reached by cost-distance field")
	// ErrBadThreshold indicates a non-positive impassable threshold.
	ErrBadThreshold = errors.New("costpath: impassable threshold must be positive")
)

// Cell addresses one grid cell by column and row.
type Cell struct {
	Col, Row int
}

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or
// including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	// Diagonal steps cost √2 times the axis-aligned step.
	Conn8
)

// Options configures the path engine.
//
// Conn                – neighbor connectivity (default Conn8).
// ImpassableThreshold – cells with cost ≥ this value are never entered
//
//	(no-data cells are always impassable). Default +Inf.
type Options struct {
	Conn                Connectivity
	ImpassableThreshold float64
}

// Option is a functional option for configuring the engine.
type Option func(*Options)

// WithConnectivity selects Conn4 or Conn8.
func WithConnectivity(c Connectivity) Option {
	return func(o *Options) { o.Conn = c }
}

// WithImpassableThreshold treats cells with cost ≥ t as walls.
// Must be positive; zero or negative panics with ErrBadThreshold.
func WithImpassableThreshold(t float64) Option {
	return func(o *Options) {
		if t <= 0 || math.IsNaN(t) {
			panic(ErrBadThreshold.Error())
		}
		o.ImpassableThreshold = t
	}
}

// DefaultOptions returns the standard engine configuration: Conn8, no
// impassable threshold (only no-data cells are walls).
func DefaultOptions() Options {
	return Options{
		Conn:                Conn8,
		ImpassableThreshold: math.Inf(1),
	}
}

// offset is one neighbor step with its geometric length in cell units.
type offset struct {
	dc, dr int
	dist   float64
}

// Neighbor orders are fixed so ties break deterministically: orthogonal
// steps first (S, E, N, W), then diagonals (SE, NE, NW, SW).
var (
	offsets4 = []offset{
		{0, -1, 1}, {1, 0, 1}, {0, 1, 1}, {-1, 0, 1},
	}
	offsets8 = []offset{
		{0, -1, 1}, {1, 0, 1}, {0, 1, 1}, {-1, 0, 1},
		{1, -1, math.Sqrt2}, {1, 1, math.Sqrt2}, {-1, 1, math.Sqrt2}, {-1, -1, math.Sqrt2},
	}
)
