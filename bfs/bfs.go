// Package bfs provides breadth-first search over a core.Expander,
// returning unweighted shortest-path distances, predecessors, and visit order.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/gridpath/core"
)

// queueItem pairs a node with its BFS depth.
type queueItem[T comparable] struct {
	id    T
	depth int
}

// walker encapsulates mutable BFS state.
type walker[T comparable] struct {
	exp     core.Expander[T]
	opts    Options[T]
	queue   []queueItem[T]
	head    int
	res     *core.Result[T]
	visited int
}

// BFS runs breadth-first search from sources, treating every edge as
// weight 1. The result records nodes in discovery order, which is also the
// visit order. Returns core.ErrNilExpander, core.ErrNoSources,
// ErrOptionViolation, or ErrVisitAborted wrapping a hook error.
func BFS[T comparable](exp core.Expander[T], sources []T, opts ...Option[T]) (*core.Result[T], error) {
	w, err := newWalker(exp, sources, opts)
	if err != nil {
		return nil, err
	}
	if _, _, err = w.loop(nil); err != nil {
		return nil, err
	}
	w.logDone(false)

	return w.res, nil
}

// FindPath returns a fewest-edges path from any source to the first node
// visited that satisfies isTarget. ok is false when none is reachable.
// A nil isTarget matches no node.
func FindPath[T comparable](exp core.Expander[T], sources []T, isTarget func(T) bool, opts ...Option[T]) (path core.Path[T], ok bool, err error) {
	w, err := newWalker(exp, sources, opts)
	if err != nil {
		return core.Path[T]{}, false, err
	}
	target, found, err := w.loop(isTarget)
	if err != nil {
		return core.Path[T]{}, false, err
	}
	w.logDone(found)
	if !found {
		return core.Path[T]{}, false, nil
	}
	path, err = w.res.PathTo(target)
	if err != nil {
		return core.Path[T]{}, false, err
	}

	return path, true, nil
}

func newWalker[T comparable](exp core.Expander[T], sources []T, opts []Option[T]) (*walker[T], error) {
	o := DefaultOptions[T]()
	for _, opt := range opts {
		opt(&o)
	}
	if err := core.Validate(exp, sources); err != nil {
		return nil, err
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker[T]{
		exp:   exp,
		opts:  o,
		queue: make([]queueItem[T], 0, len(sources)),
		res:   core.NewResult(sources),
	}
	for _, s := range sources {
		if w.res.Reached(s) {
			continue
		}
		w.res.SetSource(s)
		w.queue = append(w.queue, queueItem[T]{id: s})
	}

	return w, nil
}

// loop processes the queue until it is empty, a hook fails, or a visited
// node satisfies isTarget (when non-nil).
func (w *walker[T]) loop(isTarget func(T) bool) (T, bool, error) {
	var zero T
	for w.head < len(w.queue) {
		item := w.queue[w.head]
		w.head++
		w.visited++

		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return zero, false, fmt.Errorf("%w at %v: %w", ErrVisitAborted, item.id, err)
		}
		if isTarget != nil && isTarget(item.id) {
			return item.id, true, nil
		}
		w.enqueueNeighbors(item)
	}

	return zero, false, nil
}

// enqueueNeighbors applies filtering and MaxDepth, then records and enqueues
// each neighbor seen for the first time.
func (w *walker[T]) enqueueNeighbors(item queueItem[T]) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, e := range w.exp.Edges(item.id) {
		if w.res.Reached(e.To) || !w.opts.FilterNeighbor(item.id, e.To) {
			continue
		}
		w.res.Set(e.To, int64(next), item.id)
		w.queue = append(w.queue, queueItem[T]{id: e.To, depth: next})
	}
}

func (w *walker[T]) logDone(targetFound bool) {
	w.opts.Logger.Debug("bfs: search finished",
		"sources", len(w.res.Sources()),
		"reached", w.res.Len(),
		"visited", w.visited,
		"target", targetFound,
	)
}
