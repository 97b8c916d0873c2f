// Package costpath computes cumulative cost distance across a cost grid and
// extracts the least-cost route between two points.
//
// What:
//
//   - CostDistance runs a Dijkstra-style wavefront from a source cell over
//     the 4- or 8-connected grid graph, producing a Field: per-cell minimum
//     cumulative cost plus a predecessor back-link for path reconstruction.
//   - ShortestPath wraps CostDistance with world-coordinate endpoints,
//     early exit at the destination, and backtracking into an ordered
//     source→destination cell sequence with its total cost.
//
// Edge weights: moving between adjacent cells u→v costs
// (cost(u)+cost(v))/2 × step × cellSize, where step is 1 for axis-aligned
// moves and √2 for diagonals. Costs must be strictly positive (checked with
// an upfront O(cells) scan, failing fast with ErrNonPositiveCost), which
// makes distance growth monotonic and guarantees termination.
//
// Determinism: neighbor offsets are visited in a fixed order and relaxation
// only replaces on strict improvement, so for a given grid the result is
// bit-reproducible.
//
// Complexity:
//
//   - Time:  O(C log C) for C cells — each cell is finalized once; each
//     relaxation may push one heap entry (lazy decrease-key).
//   - Space: O(C) for the distance, predecessor and visited fields. The
//     priority queue discipline is mandatory: grids run to millions of
//     cells and anything quadratic is unusable.
//
// Errors:
//
//   - ErrNilGrid, ErrNonPositiveCost, ErrSourceImpassable: invalid inputs.
//   - ErrUnreachable: the destination was never finalized — a normal,
//     reportable outcome (e.g. a no-data band splits the grid).
//   - ErrNotComputed: Field queried for a cell the early-exited wavefront
//     never visited.
package costpath
