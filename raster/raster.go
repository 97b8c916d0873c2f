// Package raster implements the spatially anchored 2D grid shared by all
// pipeline stages. See doc.go for conventions.
package raster

import (
	"fmt"
	"math"

	"github.com/ctessum/geom"
	"github.com/ctessum/sparse"
)

// alignEps is the tolerance, as a fraction of cell size, used when comparing
// grid origins and cell sizes for co-registration.
const alignEps = 1e-9

// Grid is a uniform 2D grid of float64 cell values with a defined spatial
// anchor. Values live in a row-major *sparse.DenseArray of shape [Ny, Nx];
// row 0 is the southernmost row. No-data cells hold NaN.
//
// A Grid is immutable by convention once handed to an algorithm: stages read
// their inputs and construct fresh output grids.
type Grid struct {
	X0, Y0   float64 // lower-left corner of the extent
	CellSize float64 // square cells: dx == dy
	Nx, Ny   int     // columns, rows

	data *sparse.DenseArray
}

// NewGrid returns an Nx×Ny grid anchored at (x0, y0) with all cells zero.
// Returns ErrEmptyGrid or ErrBadCellSize on degenerate geometry.
// Complexity: O(Nx×Ny).
func NewGrid(x0, y0, cellSize float64, nx, ny int) (*Grid, error) {
	if nx <= 0 || ny <= 0 {
		return nil, ErrEmptyGrid
	}
	if cellSize <= 0 || math.IsNaN(cellSize) {
		return nil, ErrBadCellSize
	}

	return &Grid{
		X0:       x0,
		Y0:       y0,
		CellSize: cellSize,
		Nx:       nx,
		Ny:       ny,
		data:     sparse.ZerosDense(ny, nx),
	}, nil
}

// NewGridFrom builds a grid from an existing row-major value slice
// (row 0 first, i.e. southernmost row first). The slice is copied, so the
// caller keeps ownership of values.
// Returns ErrBadValues if len(values) != nx*ny.
func NewGridFrom(x0, y0, cellSize float64, nx, ny int, values []float64) (*Grid, error) {
	g, err := NewGrid(x0, y0, cellSize, nx, ny)
	if err != nil {
		return nil, err
	}
	if len(values) != nx*ny {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrBadValues, len(values), nx*ny)
	}
	copy(g.data.Elements, values)

	return g, nil
}

// IsNoData reports whether v is the no-data sentinel (NaN).
func IsNoData(v float64) bool { return math.IsNaN(v) }

// NoData returns the no-data sentinel value.
func NoData() float64 { return math.NaN() }

// Clone returns a deep copy sharing no storage with g.
func (g *Grid) Clone() *Grid {
	o := *g
	o.data = g.data.Copy()

	return &o
}

// Values exposes the live row-major backing slice (southern row first).
// Mutating it mutates the grid; algorithm code uses it for element-wise
// combination and must only touch grids it owns.
func (g *Grid) Values() []float64 { return g.data.Elements }

// InBounds reports whether (col,row) addresses a cell of the grid.
func (g *Grid) InBounds(col, row int) bool {
	return col >= 0 && col < g.Nx && row >= 0 && row < g.Ny
}

// Value returns the value at cell (col,row).
// It panics if (col,row) is out of range, like a slice access.
func (g *Grid) Value(col, row int) float64 { return g.data.Get(row, col) }

// SetValue stores v at cell (col,row). Panics if out of range.
func (g *Grid) SetValue(v float64, col, row int) { g.data.Set(v, row, col) }

// Fill sets every cell to v.
func (g *Grid) Fill(v float64) {
	for i := range g.data.Elements {
		g.data.Elements[i] = v
	}
}

// Index returns the row-major index of (col,row): row*Nx + col.
func (g *Grid) Index(col, row int) int { return row*g.Nx + col }

// Coordinate converts a row-major index back to (col,row).
func (g *Grid) Coordinate(idx int) (col, row int) { return idx % g.Nx, idx / g.Nx }

// CellCenter returns the world coordinate of the center of cell (col,row).
func (g *Grid) CellCenter(col, row int) geom.Point {
	return geom.Point{
		X: g.X0 + (float64(col)+0.5)*g.CellSize,
		Y: g.Y0 + (float64(row)+0.5)*g.CellSize,
	}
}

// Bounds returns the grid's bounding box in world coordinates.
func (g *Grid) Bounds() *geom.Bounds {
	return &geom.Bounds{
		Min: geom.Point{X: g.X0, Y: g.Y0},
		Max: geom.Point{
			X: g.X0 + float64(g.Nx)*g.CellSize,
			Y: g.Y0 + float64(g.Ny)*g.CellSize,
		},
	}
}

// Contains reports whether p lies inside the grid's bounding box.
func (g *Grid) Contains(p geom.Point) bool {
	b := g.Bounds()

	return p.X >= b.Min.X && p.X < b.Max.X && p.Y >= b.Min.Y && p.Y < b.Max.Y
}

// CellAt maps a world coordinate to the cell containing it.
// Returns ErrOutOfExtent if (x,y) falls outside the bounding box — query
// points must fail fast rather than silently clamp.
func (g *Grid) CellAt(x, y float64) (col, row int, err error) {
	if !g.Contains(geom.Point{X: x, Y: y}) {
		return 0, 0, fmt.Errorf("%w: (%g, %g)", ErrOutOfExtent, x, y)
	}
	col = int((x - g.X0) / g.CellSize)
	row = int((y - g.Y0) / g.CellSize)
	// Guard the exact upper-edge case against float rounding.
	if col == g.Nx {
		col = g.Nx - 1
	}
	if row == g.Ny {
		row = g.Ny - 1
	}

	return col, row, nil
}

// Sample returns the bilinear interpolation of the grid at (x,y).
//
// Interpolation happens between the four surrounding cell centers; points
// between the extent edge and the outermost centers clamp to the edge
// centers. Returns ErrOutOfExtent outside the bounding box and ErrNoData if
// any of the four corner cells holds NaN — interpolation is undefined next
// to no-data regions.
// Complexity: O(1).
func (g *Grid) Sample(x, y float64) (float64, error) {
	if !g.Contains(geom.Point{X: x, Y: y}) {
		return 0, fmt.Errorf("%w: (%g, %g)", ErrOutOfExtent, x, y)
	}

	// Fractional cell-center coordinates.
	fx := (x-g.X0)/g.CellSize - 0.5
	fy := (y-g.Y0)/g.CellSize - 0.5
	c0 := clampInt(int(math.Floor(fx)), 0, g.Nx-1)
	r0 := clampInt(int(math.Floor(fy)), 0, g.Ny-1)
	c1 := clampInt(c0+1, 0, g.Nx-1)
	r1 := clampInt(r0+1, 0, g.Ny-1)

	tx := clampFloat(fx-float64(c0), 0, 1)
	ty := clampFloat(fy-float64(r0), 0, 1)

	v00 := g.Value(c0, r0)
	v10 := g.Value(c1, r0)
	v01 := g.Value(c0, r1)
	v11 := g.Value(c1, r1)
	if IsNoData(v00) || IsNoData(v10) || IsNoData(v01) || IsNoData(v11) {
		return 0, fmt.Errorf("%w: near (%g, %g)", ErrNoData, x, y)
	}

	south := v00 + (v10-v00)*tx
	north := v01 + (v11-v01)*tx

	return south + (north-south)*ty, nil
}

// Aligned reports whether g and o are co-registered: identical origin, cell
// size and extent (within a relative epsilon). Grids combined element-wise
// must be aligned; callers resample explicitly otherwise.
func (g *Grid) Aligned(o *Grid) bool {
	if o == nil {
		return false
	}
	eps := g.CellSize * alignEps

	return g.Nx == o.Nx && g.Ny == o.Ny &&
		math.Abs(g.CellSize-o.CellSize) <= eps &&
		math.Abs(g.X0-o.X0) <= eps &&
		math.Abs(g.Y0-o.Y0) <= eps
}

// Resample projects g onto ref's geometry by bilinear sampling at each of
// ref's cell centers. Target cells whose sample fails (outside g's extent or
// next to no-data) become no-data. g itself is not modified.
// Complexity: O(ref.Nx×ref.Ny).
func (g *Grid) Resample(ref *Grid) *Grid {
	out, _ := NewGrid(ref.X0, ref.Y0, ref.CellSize, ref.Nx, ref.Ny)
	var c geom.Point
	var v float64
	var err error
	for row := 0; row < ref.Ny; row++ {
		for col := 0; col < ref.Nx; col++ {
			c = ref.CellCenter(col, row)
			v, err = g.Sample(c.X, c.Y)
			if err != nil {
				v = NoData()
			}
			out.SetValue(v, col, row)
		}
	}

	return out
}

// Stats returns min, max and mean of the grid ignoring no-data cells.
// All three are NaN if every cell is no-data.
func (g *Grid) Stats() (min, max, mean float64) {
	min, max = math.Inf(1), math.Inf(-1)
	var sum float64
	var n int
	for _, v := range g.data.Elements {
		if IsNoData(v) {
			continue
		}
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
		sum += v
		n++
	}
	if n == 0 {
		return NoData(), NoData(), NoData()
	}

	return min, max, sum / float64(n)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
