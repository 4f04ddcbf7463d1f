package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/gridpath/core"
)

// Dijkstra computes shortest distances from sources to every reachable node.
//
// Returns:
//
//   - res: settled nodes with their final distance and predecessor.
//   - err: core.ErrNilExpander, core.ErrNoSources, ErrBadMaxDistance,
//     ErrNegativeWeight or core.ErrDistanceOverflow (wrapped with the offending edge).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra[T comparable](exp core.Expander[T], sources []T, opts ...Option) (*core.Result[T], error) {
	r, err := newRunner(exp, sources, opts)
	if err != nil {
		return nil, err
	}
	if _, _, err = r.process(nil); err != nil {
		return nil, err
	}
	r.logDone(false)

	return r.res, nil
}

// FindPath returns the cheapest path from any source to any node satisfying
// isTarget. ok is false when no target is reachable.
// A source that satisfies isTarget yields a single-node path of distance 0.
// A nil isTarget matches no node.
func FindPath[T comparable](exp core.Expander[T], sources []T, isTarget func(T) bool, opts ...Option) (path core.Path[T], ok bool, err error) {
	r, err := newRunner(exp, sources, opts)
	if err != nil {
		return core.Path[T]{}, false, err
	}
	target, found, err := r.process(isTarget)
	if err != nil {
		return core.Path[T]{}, false, err
	}
	r.logDone(found)
	if !found {
		return core.Path[T]{}, false, nil
	}
	path, err = r.res.PathTo(target)
	if err != nil {
		return core.Path[T]{}, false, err
	}

	return path, true, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[T comparable] struct {
	exp     core.Expander[T]
	options Options
	best    map[T]int64     // tentative distance of every discovered node
	prev    map[T]T         // tentative predecessor; absent for sources
	res     *core.Result[T] // settled nodes only
	pq      nodePQ[T]
	seq     uint64 // push counter; ties in the heap pop in push order
	pushed  int
}

func newRunner[T comparable](exp core.Expander[T], sources []T, opts []Option) (*runner[T], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := core.Validate(exp, sources); err != nil {
		return nil, err
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	r := &runner[T]{
		exp:     exp,
		options: cfg,
		best:    make(map[T]int64, len(sources)),
		prev:    make(map[T]T),
		res:     core.NewResult(sources),
		pq:      make(nodePQ[T], 0, len(sources)),
	}
	r.init(sources)

	return r, nil
}

// init seeds every source at distance 0. Duplicate sources are pushed once.
func (r *runner[T]) init(sources []T) {
	heap.Init(&r.pq)
	for _, s := range sources {
		if _, dup := r.best[s]; dup {
			continue
		}
		r.best[s] = 0
		r.push(s, 0)
	}
}

func (r *runner[T]) push(id T, dist int64) {
	r.seq++
	r.pushed++
	heap.Push(&r.pq, &nodeItem[T]{id: id, dist: dist, seq: r.seq})
}

// process is the core loop. It pops the closest node, settles it, and relaxes
// its outgoing edges until the heap is empty, MaxDistance is exceeded, or a
// settled node satisfies isTarget (when non-nil).
func (r *runner[T]) process(isTarget func(T) bool) (T, bool, error) {
	var zero T
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem[T])
		u := item.id

		// stale heap entry: u was settled or improved after this push
		if r.res.Reached(u) || item.dist > r.best[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}

		if p, ok := r.prev[u]; ok {
			r.res.Set(u, item.dist, p)
		} else {
			r.res.SetSource(u)
		}

		if isTarget != nil && isTarget(u) {
			return u, true, nil
		}
		if err := r.relax(u, item.dist); err != nil {
			return zero, false, err
		}
	}

	return zero, false, nil
}

// relax examines each edge out of the settled node u and improves the
// tentative distance of its targets. Equal distances keep the first predecessor.
func (r *runner[T]) relax(u T, du int64) error {
	for _, e := range r.exp.Edges(u) {
		if e.Weight < 0 {
			return fmt.Errorf("%w: edge %v→%v weight=%d", ErrNegativeWeight, u, e.To, e.Weight)
		}
		if r.res.Reached(e.To) {
			continue
		}
		nd, ok := core.AddWeight(du, e.Weight)
		if !ok {
			return fmt.Errorf("%w: edge %v→%v weight=%d from distance %d",
				core.ErrDistanceOverflow, u, e.To, e.Weight, du)
		}
		if nd > r.options.MaxDistance {
			continue
		}
		if cur, seen := r.best[e.To]; seen && nd >= cur {
			continue
		}
		r.best[e.To] = nd
		r.prev[e.To] = u
		r.push(e.To, nd)
	}

	return nil
}

func (r *runner[T]) logDone(targetFound bool) {
	r.options.Logger.Debug("dijkstra: search finished",
		"sources", len(r.res.Sources()),
		"settled", r.res.Len(),
		"pushed", r.pushed,
		"target", targetFound,
	)
}

// nodeItem is a heap entry: a node and the distance it was pushed with.
type nodeItem[T comparable] struct {
	id   T
	dist int64
	seq  uint64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then push order.
// Outdated entries stay in the heap and are skipped when popped.
type nodePQ[T comparable] []*nodeItem[T]

func (pq nodePQ[T]) Len() int { return len(pq) }

func (pq nodePQ[T]) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}

func (pq nodePQ[T]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ[T]) Push(x any) { *pq = append(*pq, x.(*nodeItem[T])) }

func (pq *nodePQ[T]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
