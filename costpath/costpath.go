package costpath

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/ctessum/geom"

	"github.com/katalvlaran/skypath/raster"
)

// CostDistance propagates a Dijkstra wavefront from source across the whole
// cost grid and returns the resulting Field (cumulative cost + back-links).
//
// Every finite grid cell must be strictly positive (ErrNonPositiveCost);
// no-data cells and cells at or above the impassable threshold are walls.
// Complexity: O(C log C) time, O(C) memory for C cells.
func CostDistance(cost *raster.Grid, source Cell, opts ...Option) (*Field, error) {
	r, err := newRunner(cost, source, opts)
	if err != nil {
		return nil, err
	}
	r.run(-1) // no target: exhaust the frontier

	return r.field, nil
}

// ShortestPath extracts the least-cost route between two world coordinates.
// Both points must lie inside the grid extent (raster.ErrOutOfExtent
// otherwise). The wavefront exits early once the destination is finalized.
//
// Returns the ordered source→destination cell sequence and its total
// cumulative cost, or ErrUnreachable when no route exists.
func ShortestPath(cost *raster.Grid, start, end geom.Point, opts ...Option) ([]Cell, float64, error) {
	if cost == nil {
		return nil, 0, ErrNilGrid
	}
	sc, sr, err := cost.CellAt(start.X, start.Y)
	if err != nil {
		return nil, 0, fmt.Errorf("start point: %w", err)
	}
	ec, er, err := cost.CellAt(end.X, end.Y)
	if err != nil {
		return nil, 0, fmt.Errorf("end point: %w", err)
	}
	src, dst := Cell{Col: sc, Row: sr}, Cell{Col: ec, Row: er}

	r, err := newRunner(cost, src, opts)
	if err != nil {
		return nil, 0, err
	}
	r.run(int32(r.field.index(dst)))

	path, err := r.field.PathTo(dst)
	if err != nil {
		return nil, 0, err
	}
	total, _ := r.field.DistanceTo(dst)

	return path, total, nil
}

// runner holds the mutable state of one wavefront expansion.
type runner struct {
	cost     *raster.Grid
	cells    []float64 // cost.Values(), cached
	field    *Field
	visited  []bool
	pq       cellPQ
	offsets  []offset
	wall     float64 // impassable threshold
	cellSize float64
}

func newRunner(cost *raster.Grid, source Cell, opts []Option) (*runner, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cost == nil {
		return nil, ErrNilGrid
	}
	if !cost.InBounds(source.Col, source.Row) {
		return nil, fmt.Errorf("%w: source (%d,%d)", raster.ErrOutOfExtent, source.Col, source.Row)
	}

	// Fail fast on a grid that cannot guarantee monotonic distance growth.
	cells := cost.Values()
	for i, v := range cells {
		if !raster.IsNoData(v) && v <= 0 {
			col, row := cost.Coordinate(i)

			return nil, fmt.Errorf("%w: cell (%d,%d)=%g", ErrNonPositiveCost, col, row, v)
		}
	}

	n := cost.Nx * cost.Ny
	f := &Field{
		Nx:     cost.Nx,
		Ny:     cost.Ny,
		Source: source,
		Dist:   make([]float64, n),
		Prev:   make([]int32, n),
	}
	for i := range f.Dist {
		f.Dist[i] = math.Inf(1)
		f.Prev[i] = -1
	}

	r := &runner{
		cost:     cost,
		cells:    cells,
		field:    f,
		visited:  make([]bool, n),
		pq:       make(cellPQ, 0, cost.Nx+cost.Ny),
		offsets:  offsets4,
		wall:     cfg.ImpassableThreshold,
		cellSize: cost.CellSize,
	}
	if cfg.Conn == Conn8 {
		r.offsets = offsets8
	}

	srcIdx := f.index(source)
	if r.impassable(srcIdx) {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrSourceImpassable, source.Col, source.Row)
	}
	f.Dist[srcIdx] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, cellItem{idx: int32(srcIdx), dist: 0})

	return r, nil
}

// impassable reports whether the cell at row-major index i is a wall.
func (r *runner) impassable(i int) bool {
	return raster.IsNoData(r.cells[i]) || r.cells[i] >= r.wall
}

// run is the wavefront loop: pop the minimum, relax neighbors, repeat.
// A non-negative target index finalizes early once the destination pops —
// its distance is minimal at that point, nothing further can improve it.
func (r *runner) run(target int32) {
	var item cellItem
	for r.pq.Len() > 0 {
		item = heap.Pop(&r.pq).(cellItem)
		if r.visited[item.idx] {
			continue // stale lazy-decrease-key entry
		}
		r.visited[item.idx] = true
		if item.idx == target {
			return
		}
		r.relax(item.idx)
	}
}

// relax attempts to improve every unvisited neighbor of cell u. Edge weight
// is the mean of the two cell costs times the step length in world units.
// Only strict improvements are recorded, so first-discovered wins ties.
func (r *runner) relax(u int32) {
	uc, ur := int(u)%r.field.Nx, int(u)/r.field.Nx
	du := r.field.Dist[u]
	cu := r.cells[u]

	var vc, vr, v int
	var nd float64
	for _, o := range r.offsets {
		vc, vr = uc+o.dc, ur+o.dr
		if vc < 0 || vc >= r.field.Nx || vr < 0 || vr >= r.field.Ny {
			continue
		}
		v = vr*r.field.Nx + vc
		if r.visited[v] || r.impassable(v) {
			continue
		}
		nd = du + 0.5*(cu+r.cells[v])*o.dist*r.cellSize
		if nd >= r.field.Dist[v] {
			continue
		}
		r.field.Dist[v] = nd
		r.field.Prev[v] = u
		heap.Push(&r.pq, cellItem{idx: int32(v), dist: nd})
	}
}

// cellItem is one frontier entry: a row-major cell index and its tentative
// cumulative cost.
type cellItem struct {
	idx  int32
	dist float64
}

// cellPQ is a min-heap of cellItem ordered by dist, using the lazy
// decrease-key pattern: improvements push duplicates and stale entries are
// skipped on pop via the visited set.
type cellPQ []cellItem

func (pq cellPQ) Len() int            { return len(pq) }
func (pq cellPQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq cellPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *cellPQ) Push(x interface{}) { *pq = append(*pq, x.(cellItem)) }
func (pq *cellPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
