// Package footprint turns building footprint polygons into a raster
// exclusion mask: dissolve → rasterize → dilate.
//
// What:
//
//   - Dissolve unions overlapping footprints into one shape, so shared walls
//     and overlapping outlines do not double-count.
//   - Rasterize renders a dissolved shape onto a reference grid with a
//     scanline (even-odd) polygon fill over cell centers. An R-tree over the
//     shape's polygons keeps each scanline's point tests local.
//   - Dilate grows a mask by a Euclidean distance in world units — the
//     raster-resolution equivalent of buffering the polygons before
//     rasterization.
//   - Mask composes the three with the configured buffer distance.
//
// The output is a 0/1 grid co-registered with the reference grid: 1 inside
// the buffered footprints, 0 elsewhere. Consumers multiply penalties into
// masked cells; the mask itself never encodes cost.
//
// Complexity: Rasterize is O(Ny×(k log k)) for k crossings per scanline;
// Dilate is O(cells×d²) for a disk radius of d cells.
//
// Errors:
//
//   - ErrNilGrid: reference grid is nil.
//   - ErrBadBuffer: negative buffer distance.
package footprint
