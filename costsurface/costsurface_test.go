package costsurface_test

import (
	"math"
	"testing"

	"github.com/ctessum/geom"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/skypath/costsurface"
	"github.com/katalvlaran/skypath/raster"
	"github.com/katalvlaran/skypath/terrain"
)

// flatGrid returns an n×n zero grid with cell size 1 at origin (0,0).
func flatGrid(n int) *raster.Grid {
	g, _ := raster.NewGrid(0, 0, 1, n, n)

	return g
}

// ramp returns an n×n grid with z = a·x + b·y.
func ramp(n int, a, b float64) *raster.Grid {
	g, _ := raster.NewGrid(0, 0, 1, n, n)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			c := g.CellCenter(col, row)
			g.SetValue(a*c.X+b*c.Y, col, row)
		}
	}

	return g
}

//----------------------------------------------------------------------------//
// Slope Reclassification
//----------------------------------------------------------------------------//

func TestSlopeCost_Breakpoints(t *testing.T) {
	cases := []struct {
		slope float64
		want  float64
	}{
		{0, 1}, {4.99, 1},
		{5, 2}, {14.99, 2},
		{15, 4}, {29.99, 4},
		{30, 8}, {90, 8},
		{-3, 1},  // degenerate, clamps to the lowest bucket
		{120, 8}, // degenerate, clamps to the highest bucket
	}
	for _, tc := range cases {
		g, _ := raster.NewGridFrom(0, 0, 1, 1, 1, []float64{tc.slope})
		got := costsurface.SlopeCost(g).Value(0, 0)
		if got != tc.want {
			t.Errorf("SlopeCost(%g) = %g; want %g", tc.slope, got, tc.want)
		}
	}
}

func TestSlopeCost_NoData(t *testing.T) {
	g, _ := raster.NewGridFrom(0, 0, 1, 1, 1, []float64{math.NaN()})
	if !raster.IsNoData(costsurface.SlopeCost(g).Value(0, 0)) {
		t.Error("no-data slope must stay no-data in cost")
	}
}

//----------------------------------------------------------------------------//
// Wind Multiplier
//----------------------------------------------------------------------------//

// TestWindMultiplier_Formula verifies the multiplier pointwise against
// max(0.6, 1 + (speed/15)·(Δ/180)) over a sweep of aspects and directions.
func TestWindMultiplier_Formula(t *testing.T) {
	const speed = 20.0
	for dir := 0.0; dir < 360; dir += 45 {
		for asp := 0.0; asp < 360; asp += 30 {
			g, _ := raster.NewGridFrom(0, 0, 1, 1, 1, []float64{asp})
			got := costsurface.WindMultiplier(g, costsurface.Wind{Speed: speed, Direction: dir}).Value(0, 0)

			delta := math.Abs(math.Mod(asp-dir+180, 360) - 180)
			want := math.Max(0.6, 1+(speed/15)*(delta/180))
			require.InDelta(t, want, got, 1e-12, "aspect=%g dir=%g", asp, dir)
		}
	}
}

func TestWindMultiplier_Bounds(t *testing.T) {
	// Multiplier ≥ 0.6 everywhere and exactly 1 at zero speed, for all
	// direction/aspect combinations.
	for _, speed := range []float64{0, 1, 15, 40} {
		for dir := 0.0; dir < 360; dir += 60 {
			for asp := -1.0; asp < 360; asp += 45 { // includes FlatAspect
				g, _ := raster.NewGridFrom(0, 0, 1, 1, 1, []float64{asp})
				got := costsurface.WindMultiplier(g, costsurface.Wind{Speed: speed, Direction: dir}).Value(0, 0)
				require.GreaterOrEqual(t, got, 0.6)
				if speed == 0 {
					require.Equal(t, 1.0, got)
				}
			}
		}
	}
}

func TestWindMultiplier_FlatAspect(t *testing.T) {
	g, _ := raster.NewGridFrom(0, 0, 1, 1, 1, []float64{terrain.FlatAspect})
	got := costsurface.WindMultiplier(g, costsurface.Wind{Speed: 30, Direction: 90}).Value(0, 0)
	require.Equal(t, 1.0, got, "flat cells take no wind penalty")
}

// TestWindMultiplier_RampScenario forces a non-flat aspect with an
// east-rising ramp: wind from the east (90°) penalizes the west-facing
// descent (Δ=180) maximally, while a west-rising ramp faces into the wind
// source (Δ=0) and takes no penalty.
func TestWindMultiplier_RampScenario(t *testing.T) {
	wind := costsurface.Wind{Speed: 20, Direction: 90}

	east := ramp(5, 1, 0)  // aspect 270 on interior cells
	west := ramp(5, -1, 0) // aspect 90 on interior cells
	aspE, _ := terrain.Aspect(east)
	aspW, _ := terrain.Aspect(west)

	mE := costsurface.WindMultiplier(aspE, wind).Value(2, 2)
	mW := costsurface.WindMultiplier(aspW, wind).Value(2, 2)

	require.InDelta(t, 1+(20.0/15.0), mE, 1e-12)
	require.InDelta(t, 1.0, mW, 1e-12)
	require.Greater(t, mE, mW)
}

//----------------------------------------------------------------------------//
// Vegetation Multiplier
//----------------------------------------------------------------------------//

func TestVegetationMultiplier(t *testing.T) {
	elev, _ := raster.NewGridFrom(0, 0, 1, 2, 2, []float64{10, 10, 10, 10})
	// (0,0): 2 units of canopy; (1,0): zero height; (0,1): canopy below
	// ground clamps to 0; (1,1): a no-data gap counts as height 0.
	veg, _ := raster.NewGridFrom(0, 0, 1, 2, 2, []float64{
		12, 10,
		8, math.NaN(),
	})

	m := costsurface.VegetationMultiplier(elev, veg, 3)
	require.Equal(t, 7.0, m.Value(0, 0)) // 1 + 2·3
	require.Equal(t, 1.0, m.Value(1, 0))
	require.Equal(t, 1.0, m.Value(0, 1))
	require.Equal(t, 1.0, m.Value(1, 1))

	// Multiplier is never below 1.
	for _, v := range m.Values() {
		require.GreaterOrEqual(t, v, 1.0)
	}
}

//----------------------------------------------------------------------------//
// Build
//----------------------------------------------------------------------------//

func TestBuild_FlatNoWindIsUnitCost(t *testing.T) {
	cost, err := costsurface.Build(flatGrid(6), nil, nil, costsurface.NoWind())
	require.NoError(t, err)
	for _, v := range cost.Values() {
		require.Equal(t, 1.0, v)
	}
}

func TestBuild_StrictlyPositive(t *testing.T) {
	elev := ramp(8, 2, -1)
	veg := elev.Clone()
	veg.Fill(30)
	cost, err := costsurface.Build(elev, veg, nil, costsurface.Wind{Speed: 12, Direction: 200})
	require.NoError(t, err)
	for _, v := range cost.Values() {
		require.Greater(t, v, 0.0)
	}
}

func TestBuild_BuildingPenaltyFactor(t *testing.T) {
	// Masked cells cost at least penalty × base cost, for penalty ≥ 1.
	elev := flatGrid(10)
	buildings := []geom.Polygonal{geom.Polygon{{
		{X: 4, Y: 4}, {X: 6, Y: 4}, {X: 6, Y: 6}, {X: 4, Y: 6},
	}}}

	for _, penalty := range []float64{1, 10, 1000} {
		cost, err := costsurface.Build(elev, nil, buildings, costsurface.NoWind(),
			costsurface.WithBuildingPenalty(penalty),
			costsurface.WithBuildingBuffer(0))
		require.NoError(t, err)
		require.GreaterOrEqual(t, cost.Value(4, 4), penalty*1.0)
		require.Equal(t, 1.0, cost.Value(0, 0), "unmasked cell unaffected")
	}
}

func TestBuild_MisalignedVegetation(t *testing.T) {
	veg, _ := raster.NewGrid(0.5, 0, 1, 6, 6)
	_, err := costsurface.Build(flatGrid(6), veg, nil, costsurface.NoWind())
	require.ErrorIs(t, err, costsurface.ErrMisaligned)
}

func TestBuild_Errors(t *testing.T) {
	_, err := costsurface.Build(nil, nil, nil, costsurface.NoWind())
	require.ErrorIs(t, err, costsurface.ErrNilElevation)

	_, err = costsurface.Build(flatGrid(3), nil, nil, costsurface.Wind{Speed: -1})
	require.ErrorIs(t, err, costsurface.ErrBadWind)
}

// TestBuild_Idempotent runs the builder twice on identical inputs and
// demands identical grids — no hidden global state.
func TestBuild_Idempotent(t *testing.T) {
	elev := ramp(7, 1.2, 0.4)
	veg := elev.Clone()
	veg.Fill(25)
	buildings := []geom.Polygonal{geom.Polygon{{
		{X: 2, Y: 2}, {X: 4, Y: 2}, {X: 4, Y: 4}, {X: 2, Y: 4},
	}}}
	wind := costsurface.Wind{Speed: 9, Direction: 315}

	a, err := costsurface.Build(elev, veg, buildings, wind)
	require.NoError(t, err)
	b, err := costsurface.Build(elev, veg, buildings, wind)
	require.NoError(t, err)
	require.Equal(t, a.Values(), b.Values())
}

func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { costsurface.WithBuildingPenalty(0)(&costsurface.Options{}) })
	require.Panics(t, func() { costsurface.WithVegetationPenalty(-1)(&costsurface.Options{}) })
	require.Panics(t, func() { costsurface.WithBuildingBuffer(-2)(&costsurface.Options{}) })
}
