// Package planner runs the full flight-path pipeline: elevation → terrain
// derivatives → cost surface → least-cost path → 3D draping.
//
// What:
//
//   - Plan takes the input grids, building footprints, one wind reading and
//     the start/end coordinates, and returns the cost grid, the 2D route
//     polyline and (when draping succeeds) the 3D flight line.
//   - The pipeline is single-threaded and synchronous: each stage fully
//     consumes immutable inputs and constructs a fresh output, so there is
//     no shared mutable state between runs and no I/O inside the core.
//
// Failure taxonomy:
//
//   - ErrInvalidInput — malformed inputs (nil elevation, start/end outside
//     the grid extent, bad wind reading). Aborts immediately.
//   - ErrMisalignedGrids — the vegetation grid is not co-registered with
//     elevation. Aborts; the caller decides whether to raster.Resample and
//     retry, since silent resampling would silently change results.
//   - costpath.ErrUnreachable — no route exists; a normal outcome the
//     caller may handle by relaxing penalties and retrying.
//   - Draping failure never aborts: Plan returns a degraded Result carrying
//     the 2D path, Degraded=true and the explicit reason (wrapping
//     route.ErrDrapeFailed), so tests can distinguish why draping failed
//     instead of a blanket catch-all.
//
// No retries happen inside the pipeline; retry policy belongs to the caller.
package planner
