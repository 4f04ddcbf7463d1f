// Package bellmanford solves single- and multi-source shortest paths over an
// implicit graph whose edge weights may be negative.
//
// The solver works in two phases:
//
//  1. Discovery. Starting from the sources, nodes are explored breadth-first
//     and every outgoing edge is collected. Edges are requested exactly once
//     per reachable node, so the Expander may be expensive.
//  2. Relaxation. Full passes over the collected edges lower tentative
//     distances until a pass changes nothing. If a change still happens on
//     pass |V|, a negative cycle is reachable and ErrNegativeCycle is returned
//     instead of any distance.
//
// Entry points:
//
//	BellmanFord(exp, sources, opts...) (*core.Result[T], error)
//	FindPath(exp, sources, isTarget, opts...) (core.Path[T], bool, error)
//
// FindPath picks the reached target with the smallest distance; among equal
// distances the one discovered first wins.
//
// Complexity:
//
//   - Time:  O(V·E) in the worst case, usually far fewer passes.
//   - Space: O(V + E).
package bellmanford
