package route_test

import (
	"errors"
	"math"
	"testing"

	"github.com/ctessum/geom"

	"github.com/katalvlaran/skypath/costpath"
	"github.com/katalvlaran/skypath/raster"
	"github.com/katalvlaran/skypath/route"
)

func flatGrid(n int) *raster.Grid {
	g, _ := raster.NewGrid(0, 0, 1, n, n)

	return g
}

//----------------------------------------------------------------------------//
// Polyline
//----------------------------------------------------------------------------//

func TestPolyline_Empty(t *testing.T) {
	if _, err := route.Polyline(nil, flatGrid(3)); !errors.Is(err, route.ErrEmptyPath) {
		t.Errorf("Polyline(nil) error = %v; want ErrEmptyPath", err)
	}
}

func TestPolyline_CollinearRunRemoval(t *testing.T) {
	// Diagonal run, then a straight-east run: two segments, three vertices.
	cells := []costpath.Cell{
		{Col: 0, Row: 0}, {Col: 1, Row: 1}, {Col: 2, Row: 2}, {Col: 3, Row: 3},
		{Col: 4, Row: 3}, {Col: 5, Row: 3},
	}
	line, err := route.Polyline(cells, flatGrid(8))
	if err != nil {
		t.Fatalf("Polyline error: %v", err)
	}

	want := geom.LineString{
		{X: 0.5, Y: 0.5},
		{X: 3.5, Y: 3.5},
		{X: 5.5, Y: 3.5},
	}
	if len(line) != len(want) {
		t.Fatalf("Polyline vertices = %d; want %d (%v)", len(line), len(want), line)
	}
	for i := range want {
		if line[i] != want[i] {
			t.Errorf("vertex %d = %v; want %v", i, line[i], want[i])
		}
	}
}

func TestPolyline_SingleCell(t *testing.T) {
	line, err := route.Polyline([]costpath.Cell{{Col: 2, Row: 1}}, flatGrid(4))
	if err != nil || len(line) != 1 {
		t.Fatalf("Polyline single cell = (%v, %v); want one vertex", line, err)
	}
}

//----------------------------------------------------------------------------//
// Bearing and Length
//----------------------------------------------------------------------------//

func TestBearing(t *testing.T) {
	cases := []struct {
		name string
		a, b geom.Point
		want float64
	}{
		{"North", geom.Point{}, geom.Point{Y: 1}, 0},
		{"East", geom.Point{}, geom.Point{X: 1}, 90},
		{"South", geom.Point{}, geom.Point{Y: -1}, 180},
		{"West", geom.Point{}, geom.Point{X: -1}, 270},
		{"NorthEast", geom.Point{}, geom.Point{X: 1, Y: 1}, 45},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := route.Bearing(tc.a, tc.b); math.Abs(got-tc.want) > 1e-12 {
				t.Errorf("Bearing = %g; want %g", got, tc.want)
			}
		})
	}
}

func TestLength2D(t *testing.T) {
	line := geom.LineString{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: 4}}
	if got := route.Length2D(line); math.Abs(got-7) > 1e-12 {
		t.Errorf("Length2D = %g; want 7", got)
	}
}

//----------------------------------------------------------------------------//
// Draping
//----------------------------------------------------------------------------//

func TestDrape_FlatTerrainConstantOffset(t *testing.T) {
	elev := flatGrid(10)
	line := geom.LineString{{X: 0.5, Y: 0.5}, {X: 8.5, Y: 0.5}}

	out, err := route.Drape(line, elev, 30)
	if err != nil {
		t.Fatalf("Drape error: %v", err)
	}
	// Stations every cell size across an 8-unit segment: 9 vertices.
	if len(out) != 9 {
		t.Fatalf("Drape vertices = %d; want 9", len(out))
	}
	for _, v := range out {
		if v.Z != 30 {
			t.Errorf("Z = %g; want 30 (flat terrain + offset)", v.Z)
		}
	}
	if out[0].X != 0.5 || out[len(out)-1].X != 8.5 {
		t.Error("drape must preserve segment endpoints")
	}
}

func TestDrape_InterpolatesBetweenCells(t *testing.T) {
	// Ramp z = x: draped heights follow the plane, not nearest-cell steps.
	elev := flatGrid(6)
	for row := 0; row < 6; row++ {
		for col := 0; col < 6; col++ {
			elev.SetValue(elev.CellCenter(col, row).X, col, row)
		}
	}
	// Segment length 3.8 puts stations between cell centers.
	line := geom.LineString{{X: 0.5, Y: 2.5}, {X: 4.3, Y: 2.5}}
	out, err := route.Drape(line, elev, 10)
	if err != nil {
		t.Fatalf("Drape error: %v", err)
	}
	for _, v := range out {
		want := v.X + 10
		if math.Abs(v.Z-want) > 1e-9 {
			t.Errorf("Z at x=%g is %g; want %g", v.X, v.Z, want)
		}
	}
}

func TestDrape_FailsOutsideExtent(t *testing.T) {
	elev := flatGrid(4)
	line := geom.LineString{{X: 0.5, Y: 0.5}, {X: 11, Y: 0.5}}
	_, err := route.Drape(line, elev, 30)
	if !errors.Is(err, route.ErrDrapeFailed) {
		t.Fatalf("Drape error = %v; want ErrDrapeFailed", err)
	}
	// The underlying cause stays visible for diagnostics.
	if !errors.Is(err, raster.ErrOutOfExtent) {
		t.Errorf("Drape cause = %v; want wrapped ErrOutOfExtent", err)
	}
}

func TestDrape_FailsNearNoData(t *testing.T) {
	elev := flatGrid(4)
	elev.SetValue(raster.NoData(), 2, 0)
	line := geom.LineString{{X: 0.5, Y: 0.5}, {X: 3.5, Y: 0.5}}
	_, err := route.Drape(line, elev, 30)
	if !errors.Is(err, route.ErrDrapeFailed) || !errors.Is(err, raster.ErrNoData) {
		t.Fatalf("Drape error = %v; want ErrDrapeFailed wrapping ErrNoData", err)
	}
}

func TestDrape_EmptyLine(t *testing.T) {
	if _, err := route.Drape(nil, flatGrid(3), 1); !errors.Is(err, route.ErrEmptyPath) {
		t.Errorf("Drape(nil) error = %v; want ErrEmptyPath", err)
	}
}
