// Package bfs is the unweighted solver: a level-order walk over an implicit
// graph where every edge counts as one step, whatever its Weight.
//
// What
//
//   - Explore nodes in non-decreasing depth from one or more sources.
//   - Returns a *core.Result: depth as distance, predecessor links, and
//     discovery order through Result.Nodes.
//   - FindPath stops at the first visited node satisfying a predicate.
//   - OnVisit hook (may abort with an error), neighbor filtering and a
//     MaxDepth limit are configured through functional options.
//
// Determinism
//
//	Neighbors are enqueued in the order the Expander returns them, so the
//	visit sequence is reproducible for a deterministic Expander.
//
// Complexity
//
//   - Time:   O(V + E) over the reached part of the graph.
//   - Memory: O(V) for the queue and the result.
//
// Usage
//
//	res, err := bfs.BFS[string](exp, []string{"start"})
//
//	path, ok, err := bfs.FindPath(exp, []string{"start"},
//	    func(n string) bool { return n == "goal" },
//	    bfs.WithMaxDepth[string](6),
//	    bfs.WithOnVisit(func(n string, depth int) error { return nil }),
//	)
//
// Errors
//
//   - core.ErrNilExpander, core.ErrNoSources for invalid input.
//   - ErrOptionViolation for an invalid Option (e.g. negative MaxDepth).
//   - ErrVisitAborted wrapping the error returned by OnVisit.
package bfs
