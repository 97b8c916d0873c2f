package route

import (
	"errors"
	"fmt"
	"math"

	"github.com/ctessum/geom"

	"github.com/katalvlaran/skypath/costpath"
	"github.com/katalvlaran/skypath/raster"
)

// DefaultAltitudeOffset is the standard vertical clearance above terrain,
// in world units.
const DefaultAltitudeOffset = 30.0

// Sentinel errors for route geometry.
var (
	// ErrEmptyPath indicates an empty cell sequence.
	ErrEmptyPath = errors.New("route: path has no cells")
	// ErrDrapeFailed indicates terrain sampling failed along the line; the
	// 2D polyline remains valid and callers may degrade to it.
	ErrDrapeFailed = errors.New("route: draping onto terrain failed")
)

// Vertex3 is one 3D flight-line vertex.
type Vertex3 struct {
	X, Y, Z float64
}

// Line3 is an ordered 3D polyline.
type Line3 []Vertex3

// Polyline converts an ordered cell sequence into a 2D polyline through the
// cell centers of ref, dropping interior vertices of collinear runs.
// Complexity: O(len(cells)).
func Polyline(cells []costpath.Cell, ref *raster.Grid) (geom.LineString, error) {
	if len(cells) == 0 {
		return nil, ErrEmptyPath
	}

	line := make(geom.LineString, 0, len(cells))
	var prevD [2]int
	for i, c := range cells {
		if i >= 1 {
			d := [2]int{c.Col - cells[i-1].Col, c.Row - cells[i-1].Row}
			if i >= 2 && d == prevD {
				// Same step direction: extend the previous segment.
				line = line[:len(line)-1]
			}
			prevD = d
		}
		line = append(line, ref.CellCenter(c.Col, c.Row))
	}

	return line, nil
}

// Drape projects a 2D polyline onto the elevation grid with a constant
// vertical offset. Each segment is sampled at stations no farther apart
// than one cell size (plus both endpoints), interpolating elevation
// bilinearly, so the 3D line follows terrain between vertices.
//
// Any sampling failure (outside extent, no-data) aborts with ErrDrapeFailed
// wrapping the cause; no partial line is returned.
// Complexity: O(total line length / cell size).
func Drape(line geom.LineString, elev *raster.Grid, offset float64) (Line3, error) {
	if len(line) == 0 {
		return nil, ErrEmptyPath
	}

	out := make(Line3, 0, len(line))
	appendStation := func(x, y float64) error {
		z, err := elev.Sample(x, y)
		if err != nil {
			return fmt.Errorf("%w: station (%g, %g): %w", ErrDrapeFailed, x, y, err)
		}
		out = append(out, Vertex3{X: x, Y: y, Z: z + offset})

		return nil
	}

	if err := appendStation(line[0].X, line[0].Y); err != nil {
		return nil, err
	}
	var dx, dy, length float64
	var steps int
	for i := 1; i < len(line); i++ {
		dx, dy = line[i].X-line[i-1].X, line[i].Y-line[i-1].Y
		length = math.Hypot(dx, dy)
		steps = int(math.Ceil(length / elev.CellSize))
		if steps < 1 {
			steps = 1
		}
		for s := 1; s <= steps; s++ {
			t := float64(s) / float64(steps)
			if err := appendStation(line[i-1].X+t*dx, line[i-1].Y+t*dy); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// Bearing returns the compass direction from a to b in degrees [0,360),
// 0 = north, measured clockwise — the flight heading of the leg.
func Bearing(a, b geom.Point) float64 {
	deg := math.Atan2(b.X-a.X, b.Y-a.Y) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}

	return deg
}

// Length2D returns the planar length of a polyline.
func Length2D(line geom.LineString) float64 {
	var sum float64
	for i := 1; i < len(line); i++ {
		sum += math.Hypot(line[i].X-line[i-1].X, line[i].Y-line[i-1].Y)
	}

	return sum
}
