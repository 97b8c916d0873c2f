package costpath

import (
	"fmt"
	"math"
)

// Field is the cost-distance result for one source: per-cell cumulative
// minimum cost and predecessor back-links, in row-major order matching the
// cost grid. A Field is built once per run and discarded after extraction.
type Field struct {
	Nx, Ny int
	Source Cell
	// Dist holds the cumulative minimum cost from Source per cell;
	// +Inf where the wavefront never arrived.
	Dist []float64
	// Prev holds the row-major index of the predecessor cell on the
	// minimum-cost path, -1 where none (source and unreached cells).
	Prev []int32
}

// index maps (col,row) to the row-major position.
func (f *Field) index(c Cell) int { return c.Row*f.Nx + c.Col }

// cellAt converts a row-major index back to a Cell.
func (f *Field) cellAt(idx int32) Cell {
	return Cell{Col: int(idx) % f.Nx, Row: int(idx) / f.Nx}
}

// DistanceTo returns the cumulative cost from the source to cell c, or
// ErrNotComputed if the wavefront never finalized c.
func (f *Field) DistanceTo(c Cell) (float64, error) {
	if c.Col < 0 || c.Col >= f.Nx || c.Row < 0 || c.Row >= f.Ny {
		return 0, fmt.Errorf("%w: cell (%d,%d) outside field", ErrNotComputed, c.Col, c.Row)
	}
	d := f.Dist[f.index(c)]
	if math.IsInf(d, 1) {
		return 0, fmt.Errorf("%w: cell (%d,%d)", ErrNotComputed, c.Col, c.Row)
	}

	return d, nil
}

// PathTo reconstructs the minimum-cost cell sequence from the source to c by
// following predecessor links, returned in source→c order.
// Returns ErrUnreachable if c was never reached.
// Complexity: O(path length).
func (f *Field) PathTo(c Cell) ([]Cell, error) {
	if _, err := f.DistanceTo(c); err != nil {
		return nil, fmt.Errorf("%w: cell (%d,%d)", ErrUnreachable, c.Col, c.Row)
	}

	var path []Cell
	cur := c
	for {
		path = append(path, cur)
		p := f.Prev[f.index(cur)]
		if p < 0 {
			break
		}
		cur = f.cellAt(p)
	}
	// Backtracking yields destination→source; reverse in place.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
