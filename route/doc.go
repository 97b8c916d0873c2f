// Package route converts a least-cost cell sequence into geometry: a 2D
// polyline through the cell centers and, by draping onto the terrain grid, a
// 3D flight line at a constant height above ground.
//
// What:
//
//   - Polyline joins the cell centers and removes collinear runs, so a long
//     diagonal or straight leg is two vertices instead of hundreds.
//   - Drape walks the polyline at cell-size-spaced stations, samples the
//     terrain bilinearly at each station and emits (x, y, elevation+offset)
//     vertices. The sampling is interpolated, never nearest-cell lookup.
//   - Bearing gives the compass direction between two points, matching the
//     meteorological convention used by the wind penalty.
//
// Draping returns an explicit ErrDrapeFailed (wrapping the sampling cause)
// instead of a partial line; the pipeline decides whether to degrade to the
// 2D result. A failed drape is recoverable and reported, never silent.
//
// Errors:
//
//   - ErrEmptyPath: no cells to convert.
//   - ErrDrapeFailed: terrain sampling failed along the line.
package route
