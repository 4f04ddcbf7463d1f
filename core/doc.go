// Package core defines the contract shared by the shortest-path solvers
// (dijkstra, bellmanford, bfs): the implicit graph, the per-node result map
// and path reconstruction.
//
// The graph is never stored. A caller supplies an Expander that, given a node,
// returns its outgoing edges on demand; solvers only need equality on the
// node type (it is used as a map key).
//
//	type Expander[T comparable] interface {
//	    Edges(node T) []Edge[T]
//	}
//
// Distances are int64 and additive over edge weights. A node that was never
// reached is simply absent from a Result; there is no "infinity" sentinel.
//
// Errors:
//
//	ErrNilExpander  - a nil Expander was passed to a solver.
//	ErrNoSources    - a solver was started without any source node.
//	ErrNodeNotFound - a node was looked up in a Result that did not reach it.
//	ErrNoEdge       - PathWeight found two consecutive nodes with no edge between them.
package core
