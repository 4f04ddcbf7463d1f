// Package gridgraph turns a grid.Table into an implicit graph of cells so
// the shortest-path solvers can run on it directly.
//
// What:
//
//   - GridGraph implements core.Expander[geom.Point]: each in-bounds cell
//     links to its Conn4 or Conn8 neighbours.
//   - Passable and Weight options decide which steps exist and what they cost.
//   - ShortestPath (Dijkstra) and Steps (BFS) answer cell-to-cell queries.
//   - Components lists connected regions of cells whose value satisfies a predicate.
//   - Bridge finds the cheapest chain of cells joining two regions, e.g. the
//     fewest water cells to fill between two islands.
//
// Complexity:
//
//   - Edges:      O(d), d = 4 or 8.
//   - Components: O(W×H×d).
//   - Bridge:     O(W×H×d × log(W×H)).
//
// Errors:
//
//   - ErrNilTable, ErrBadConnectivity: invalid construction.
//   - ErrEmptyRegion: a Bridge endpoint has no cells.
//   - ErrNoPath: the target cell or region cannot be reached.
package gridgraph
