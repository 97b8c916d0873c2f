// Package raster provides the uniform floating-point grid that every stage of
// the flight-path pipeline works on, together with its sampling primitives.
//
// What:
//
//   - Grid wraps a row-major *sparse.DenseArray with an explicit spatial
//     anchor: lower-left origin (X0, Y0), square CellSize and Nx×Ny extent.
//   - Cell (col, row) addressing, world↔cell coordinate transforms, and
//     fail-fast extent checks for arbitrary query points.
//   - Bilinear sampling between cell centers, no-data aware.
//   - Co-registration checks (Aligned) and explicit bilinear resampling onto
//     a reference geometry (Resample) for grids that do not line up.
//
// Why:
//
//   - Elevation, vegetation, slope, aspect, masks and cost surfaces are all
//     the same structure; keeping the geometry on the grid rather than in
//     ambient configuration makes every derivation explicit and repeatable.
//   - Algorithms never mutate their inputs: each stage derives a fresh Grid.
//
// Conventions:
//
//   - Row 0 is the southernmost row; y grows with the row index.
//   - No-data cells hold NaN; use IsNoData to test values.
//   - Cell centers sit at (X0+(col+0.5)·CellSize, Y0+(row+0.5)·CellSize).
//
// Errors:
//
//   - ErrEmptyGrid: zero or negative dimensions.
//   - ErrBadCellSize: cell size is not strictly positive.
//   - ErrBadValues: backing slice length does not match Nx×Ny.
//   - ErrOutOfExtent: a query point falls outside the grid's bounding box.
//   - ErrNoData: sampling touched a no-data cell.
//   - ErrMisaligned: two grids in one computation are not co-registered.
package raster
