package footprint

import (
	"errors"
	"math"
	"sort"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/index/rtree"

	"github.com/katalvlaran/skypath/raster"
)

// Sentinel errors for footprint operations.
var (
	// ErrNilGrid indicates a nil reference grid.
	ErrNilGrid = errors.New("footprint: reference grid is nil")
	// ErrBadBuffer indicates a negative buffer distance.
	ErrBadBuffer = errors.New("footprint: buffer distance must be non-negative")
)

// Dissolve unions all footprints into a single shape. Returns nil for an
// empty input. Overlapping and adjacent polygons merge, so downstream
// rasterization sees each covered location exactly once.
func Dissolve(polys []geom.Polygonal) geom.Polygonal {
	if len(polys) == 0 {
		return nil
	}
	u := polys[0]
	var p geom.Polygonal
	for _, p = range polys[1:] {
		u = u.Union(p)
	}

	return u
}

// Rasterize renders shape onto ref's geometry as a 0/1 mask using scanline
// even-odd filling over cell centers. A cell is inside when its center is
// covered. shape may be nil, yielding an all-zero mask.
// Complexity: O(Ny×(k log k)), k = ring crossings per scanline.
func Rasterize(shape geom.Polygonal, ref *raster.Grid) (*raster.Grid, error) {
	if ref == nil {
		return nil, ErrNilGrid
	}
	out, err := raster.NewGrid(ref.X0, ref.Y0, ref.CellSize, ref.Nx, ref.Ny)
	if err != nil {
		return nil, err
	}
	if shape == nil {
		return out, nil
	}

	// Index the dissolved polygons so each scanline only visits shapes whose
	// bounding box crosses it.
	idx := rtree.NewTree(25, 50)
	for _, poly := range shape.Polygons() {
		idx.Insert(poly)
	}

	var y float64
	var xs []float64
	for row := 0; row < ref.Ny; row++ {
		y = ref.Y0 + (float64(row)+0.5)*ref.CellSize
		band := &geom.Bounds{
			Min: geom.Point{X: ref.X0, Y: y},
			Max: geom.Point{X: ref.X0 + float64(ref.Nx)*ref.CellSize, Y: y},
		}
		for _, item := range idx.SearchIntersect(band) {
			poly := item.(geom.Polygon)
			xs = crossings(poly, y, xs[:0])
			if len(xs) < 2 {
				continue
			}
			sort.Float64s(xs)
			// Even-odd fill: the shape is dissolved, so spans from distinct
			// polygons never overlap and rings within one polygon carve holes.
			for k := 0; k+1 < len(xs); k += 2 {
				fillSpan(out, row, xs[k], xs[k+1])
			}
		}
	}

	return out, nil
}

// crossings appends to dst the x coordinates where the horizontal line at y
// crosses any ring of poly, using the half-open rule (p.Y <= y < q.Y) so
// vertices on the scanline are counted exactly once.
func crossings(poly geom.Polygon, y float64, dst []float64) []float64 {
	var p, q geom.Point
	for _, ring := range poly {
		n := len(ring)
		if n < 3 {
			continue
		}
		for i := 0; i < n; i++ {
			p, q = ring[i], ring[(i+1)%n]
			if (p.Y <= y && y < q.Y) || (q.Y <= y && y < p.Y) {
				dst = append(dst, p.X+(y-p.Y)*(q.X-p.X)/(q.Y-p.Y))
			}
		}
	}

	return dst
}

// fillSpan marks every cell of out in row whose center x lies in [x1, x2).
func fillSpan(out *raster.Grid, row int, x1, x2 float64) {
	// Center of col c is X0+(c+0.5)·CellSize; solve for the covered range.
	lo := int(math.Ceil((x1-out.X0)/out.CellSize - 0.5))
	hi := int(math.Ceil((x2-out.X0)/out.CellSize - 0.5)) // exclusive
	if lo < 0 {
		lo = 0
	}
	if hi > out.Nx {
		hi = out.Nx
	}
	for c := lo; c < hi; c++ {
		out.SetValue(1, c, row)
	}
}

// Dilate grows mask by distance (world units) using a Euclidean disk: every
// cell within distance of a masked cell center becomes masked. distance 0
// returns a copy. mask is not modified.
// Complexity: O(cells × d²) for a disk radius of d cells.
func Dilate(mask *raster.Grid, distance float64) (*raster.Grid, error) {
	if mask == nil {
		return nil, ErrNilGrid
	}
	if distance < 0 {
		return nil, ErrBadBuffer
	}
	out := mask.Clone()
	if distance == 0 {
		return out, nil
	}

	r := distance / mask.CellSize
	ri := int(math.Floor(r))
	// Precompute disk offsets once; stamped around every masked source cell.
	offsets := make([][2]int, 0, (2*ri+1)*(2*ri+1))
	for dy := -ri; dy <= ri; dy++ {
		for dx := -ri; dx <= ri; dx++ {
			if float64(dx*dx+dy*dy) <= r*r {
				offsets = append(offsets, [2]int{dx, dy})
			}
		}
	}

	var c, rr int
	for row := 0; row < mask.Ny; row++ {
		for col := 0; col < mask.Nx; col++ {
			if mask.Value(col, row) == 0 {
				continue
			}
			for _, d := range offsets {
				c, rr = col+d[0], row+d[1]
				if mask.InBounds(c, rr) {
					out.SetValue(1, c, rr)
				}
			}
		}
	}

	return out, nil
}

// Mask builds the building-exclusion mask for ref: dissolve the footprints,
// rasterize the union, then dilate by buffer. An empty footprint set yields
// an all-zero mask.
func Mask(polys []geom.Polygonal, ref *raster.Grid, buffer float64) (*raster.Grid, error) {
	if ref == nil {
		return nil, ErrNilGrid
	}
	if buffer < 0 {
		return nil, ErrBadBuffer
	}
	m, err := Rasterize(Dissolve(polys), ref)
	if err != nil {
		return nil, err
	}

	return Dilate(m, buffer)
}
