package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/geom"
	"github.com/katalvlaran/gridpath/grid"
)

// GridGraph treats the cells of a table as nodes and neighbouring cells as
// edges. It reads the table on demand, so later cell updates are visible.
type GridGraph[T comparable] struct {
	table *grid.Table[T]
	opts  Options
}

// New wraps t as an implicit graph.
// Returns ErrNilTable for a nil table and ErrBadConnectivity for an unknown Conn.
func New[T comparable](t *grid.Table[T], opts ...Option) (*GridGraph[T], error) {
	if t == nil {
		return nil, ErrNilTable
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &GridGraph[T]{table: t, opts: o}, nil
}

// Avoid returns a Passable func that forbids entering cells holding any of blocked.
func Avoid[T comparable](t *grid.Table[T], blocked ...T) func(from, to geom.Point) bool {
	return func(_, to geom.Point) bool {
		v, ok := t.Lookup(to)
		if !ok {
			return false
		}
		for _, b := range blocked {
			if v == b {
				return false
			}
		}
		return true
	}
}

// Table returns the underlying table.
func (g *GridGraph[T]) Table() *grid.Table[T] { return g.table }

// Edges returns the passable in-bounds neighbours of p, in ascending point order.
// Cells outside the table have no edges.
func (g *GridGraph[T]) Edges(p geom.Point) []core.Edge[geom.Point] {
	if !g.table.InBounds(p) {
		return nil
	}
	out := make([]core.Edge[geom.Point], 0, 8)
	for q := range g.table.NeighborsOf(p, g.opts.Conn) {
		if !g.opts.Passable(p, q) {
			continue
		}
		out = append(out, core.Edge[geom.Point]{To: q, Weight: g.opts.Weight(p, q)})
	}
	return out
}

// ShortestPath returns the cheapest path between two cells under the
// configured weights. Returns grid.ErrOutOfRange for cells outside the table,
// ErrNoPath when to cannot be reached, and dijkstra.ErrNegativeWeight if
// Weight returned a negative cost.
func (g *GridGraph[T]) ShortestPath(from, to geom.Point) (core.Path[geom.Point], error) {
	for _, p := range []geom.Point{from, to} {
		if !g.table.InBounds(p) {
			return core.Path[geom.Point]{}, fmt.Errorf("%w: %v", grid.ErrOutOfRange, p)
		}
	}
	path, ok, err := dijkstra.FindPath[geom.Point](g, []geom.Point{from}, func(p geom.Point) bool { return p == to })
	if err != nil {
		return core.Path[geom.Point]{}, err
	}
	if !ok {
		return core.Path[geom.Point]{}, fmt.Errorf("%w: %v → %v", ErrNoPath, from, to)
	}
	return path, nil
}

// Steps counts the fewest moves from start to every reachable cell, ignoring weights.
func (g *GridGraph[T]) Steps(start geom.Point) (*core.Result[geom.Point], error) {
	if !g.table.InBounds(start) {
		return nil, fmt.Errorf("%w: %v", grid.ErrOutOfRange, start)
	}
	return bfs.BFS[geom.Point](g, []geom.Point{start})
}

// Components returns the connected regions of cells satisfying keep, using
// the graph's connectivity. Passable is not consulted.
func (g *GridGraph[T]) Components(keep func(T) bool) []*grid.Region {
	return g.table.Regions(g.opts.Conn, keep)
}

// Bridge finds the cheapest chain of cells joining region from to region to.
// Entering a cell costs cost(value of that cell); cells of from are free
// starting points. The returned path starts in from and ends at the first
// cell of to that the search settles. Every in-bounds neighbour under the
// graph's connectivity may be entered: Passable and Weight are not consulted.
//
// Returns ErrEmptyRegion if either region is empty, ErrNoPath if to cannot
// be reached, and dijkstra.ErrNegativeWeight if cost returned a negative value.
func (g *GridGraph[T]) Bridge(from, to *grid.Region, cost func(T) int64) (core.Path[geom.Point], error) {
	if from == nil || from.IsEmpty() || to == nil || to.IsEmpty() {
		return core.Path[geom.Point]{}, ErrEmptyRegion
	}

	sources := make([]geom.Point, 0, from.Len())
	for p := range from.All() {
		if g.table.InBounds(p) {
			sources = append(sources, p)
		}
	}
	if len(sources) == 0 {
		return core.Path[geom.Point]{}, fmt.Errorf("%w: source region outside table", ErrEmptyRegion)
	}

	conv := core.ExpanderFunc[geom.Point](func(p geom.Point) []core.Edge[geom.Point] {
		var out []core.Edge[geom.Point]
		for q := range g.table.NeighborsOf(p, g.opts.Conn) {
			v, _ := g.table.Lookup(q)
			out = append(out, core.Edge[geom.Point]{To: q, Weight: cost(v)})
		}
		return out
	})
	path, ok, err := dijkstra.FindPath[geom.Point](conv, sources, to.Contains)
	if err != nil {
		return core.Path[geom.Point]{}, err
	}
	if !ok {
		return core.Path[geom.Point]{}, ErrNoPath
	}
	return path, nil
}
