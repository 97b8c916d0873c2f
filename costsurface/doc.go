// Package costsurface synthesizes the traversal-cost grid a drone route is
// optimized over: slope-derived base cost, wind-exposure multiplier,
// vegetation-height multiplier and a buffered building-exclusion penalty.
//
// What:
//
//   - SlopeCost reclassifies slope degrees into discrete base costs with the
//     fixed breakpoints [0,5)→1, [5,15)→2, [15,30)→4, [30,90]→8.
//   - WindMultiplier penalizes cells whose downslope aspect faces into the
//     wind: max(0.6, 1 + (speed/15)·(Δangle/180)), Δangle being the shortest
//     angular distance between aspect and wind source direction in [0,180].
//     Flat cells take multiplier 1 (no dominant facing); zero wind speed
//     disables the stage entirely.
//   - VegetationMultiplier scales cost by 1 + max(0, canopy − ground)·factor,
//     treating no-data canopy as zero height.
//   - Build chains the stages and finally multiplies the building penalty
//     into cells covered by the dilated, dissolved footprint mask.
//
// Invariants:
//
//   - Every finite output cell is strictly positive: base costs start at 1
//     and all multipliers are ≥ 0.6, so cumulative cost growth is monotonic
//     downstream. No-data elevation propagates as no-data (impassable).
//   - Inputs are never mutated; Build on identical inputs yields identical
//     grids (no hidden state).
//   - The vegetation grid must be co-registered with elevation, else
//     ErrMisaligned — the caller decides whether to Resample and retry.
//
// Grids are combined element-wise on their backing slices (gonum floats), so
// all stages stay O(Nx×Ny).
//
// Errors:
//
//   - ErrNilElevation, ErrMisaligned, ErrBadWind; ErrBadPenalty via option
//     constructor panics.
package costsurface
