// Package terrain derives slope and aspect grids from an elevation grid.
//
// What:
//
//   - Slope: per-cell magnitude of the elevation gradient, in degrees from
//     horizontal, computed with the standard Horn 3×3 finite-difference
//     kernel.
//   - Aspect: per-cell compass direction of steepest descent, degrees in
//     [0,360) with 0 = north. Flat cells (zero gradient) carry the
//     FlatAspect sentinel and must be special-cased by consumers.
//
// Edge handling: cells on the grid boundary use a replicated (clamped)
// neighborhood — the missing neighbors take the nearest in-grid value.
// No-data handling: a no-data center produces a no-data output cell; no-data
// neighbors are replaced by the center value, which degrades the kernel to a
// one-sided difference instead of poisoning the whole neighborhood.
//
// Both outputs are co-registered with the input elevation grid.
//
// Complexity: O(Nx×Ny) time and memory for either derivative.
//
// Errors:
//
//   - ErrNilGrid: the elevation grid is nil.
package terrain
