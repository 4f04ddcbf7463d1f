// Package dijkstra implements Dijkstra's shortest-path algorithm over an
// implicit graph with non-negative edge weights.
//
// Overview:
//
//   - The graph is a core.Expander: edges are requested node by node, only
//     for nodes the search actually settles.
//   - Every source is seeded at distance 0, so the same call handles single-
//     and multi-source searches.
//   - A min-heap always expands the closest unsettled node. The first time a
//     node is popped its distance is final.
//
// Entry points:
//
//	Dijkstra(exp, sources, opts...) (*core.Result[T], error)
//	  settles every reachable node (bounded by WithMaxDistance).
//
//	FindPath(exp, sources, isTarget, opts...) (core.Path[T], bool, error)
//	  stops as soon as a node satisfying isTarget is settled; since settled
//	  distances are final, that path is optimal over all sources and targets.
//	  ok == false means no target is reachable; it is not an error.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V) over the settled part of the graph.
//   - Space: O(V + E); lazy decrease-key pushes duplicates and skips stale entries.
//
// Negative weights:
//
//   - A negative edge discovered at any point aborts the search with
//     ErrNegativeWeight, even if some nodes were already settled. No partial
//     result is returned.
//
// Thread safety:
//
//   - Each call owns its heap and maps. The Expander must not be mutated
//     while a search is running.
package dijkstra
