package bellmanford

import (
	"fmt"

	"github.com/katalvlaran/gridpath/core"
)

// BellmanFord computes shortest distances from sources to every reachable node.
//
// Returns:
//
//   - res: every reachable node, recorded in discovery order.
//   - err: core.ErrNilExpander, core.ErrNoSources, ErrBadMaxNodes,
//     ErrTooManyNodes, ErrNegativeCycle (wrapped with a node on or behind the
//     cycle) or core.ErrDistanceOverflow.
func BellmanFord[T comparable](exp core.Expander[T], sources []T, opts ...Option) (*core.Result[T], error) {
	s, err := newSolver(exp, sources, opts)
	if err != nil {
		return nil, err
	}
	if err = s.run(); err != nil {
		return nil, err
	}
	s.logDone(false)

	return s.result(), nil
}

// FindPath returns the cheapest path from any source to any reachable node
// satisfying isTarget. ok is false when no such node is reachable or
// isTarget is nil.
func FindPath[T comparable](exp core.Expander[T], sources []T, isTarget func(T) bool, opts ...Option) (path core.Path[T], ok bool, err error) {
	s, err := newSolver(exp, sources, opts)
	if err != nil {
		return core.Path[T]{}, false, err
	}
	if err = s.run(); err != nil {
		return core.Path[T]{}, false, err
	}

	best := -1
	for i, n := range s.nodes {
		if isTarget == nil || !isTarget(n) {
			continue
		}
		if best < 0 || s.dist[i] < s.dist[best] {
			best = i
		}
	}
	s.logDone(best >= 0)
	if best < 0 {
		return core.Path[T]{}, false, nil
	}
	path, err = s.result().PathTo(s.nodes[best])
	if err != nil {
		return core.Path[T]{}, false, err
	}

	return path, true, nil
}

// edge is a collected edge between two discovery indices.
type edge struct {
	from, to int
	weight   int64
}

// solver holds the discovered graph and the relaxation state, indexed by
// discovery order.
type solver[T comparable] struct {
	exp      core.Expander[T]
	options  Options
	sources  []T
	index    map[T]int
	nodes    []T
	edges    []edge
	dist     []int64
	prev     []int // -1 for sources
	passes   int
	nSources int
}

func newSolver[T comparable](exp core.Expander[T], sources []T, opts []Option) (*solver[T], error) {
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

	return &solver[T]{
		exp:     exp,
		options: cfg,
		sources: sources,
		index:   make(map[T]int),
	}, nil
}

func (s *solver[T]) run() error {
	if err := s.discover(); err != nil {
		return err
	}

	return s.relaxAll()
}

// add assigns the next discovery index to n. It reports false if n was known.
func (s *solver[T]) add(n T) (int, bool, error) {
	if i, ok := s.index[n]; ok {
		return i, false, nil
	}
	if s.options.MaxNodes > 0 && len(s.nodes) >= s.options.MaxNodes {
		return 0, false, fmt.Errorf("%w: more than %d nodes reachable", ErrTooManyNodes, s.options.MaxNodes)
	}
	i := len(s.nodes)
	s.index[n] = i
	s.nodes = append(s.nodes, n)

	return i, true, nil
}

// discover walks the graph breadth-first from the sources and collects every edge.
func (s *solver[T]) discover() error {
	queue := make([]int, 0, len(s.sources))
	for _, src := range s.sources {
		i, fresh, err := s.add(src)
		if err != nil {
			return err
		}
		if fresh {
			queue = append(queue, i)
		}
	}
	s.nSources = len(s.nodes)

	for head := 0; head < len(queue); head++ {
		u := queue[head]
		for _, e := range s.exp.Edges(s.nodes[u]) {
			v, fresh, err := s.add(e.To)
			if err != nil {
				return err
			}
			if fresh {
				queue = append(queue, v)
			}
			s.edges = append(s.edges, edge{from: u, to: v, weight: e.Weight})
		}
	}

	return nil
}

// relaxAll runs full passes until nothing improves. Sources start at 0;
// every other node starts unreached.
func (s *solver[T]) relaxAll() error {
	n := len(s.nodes)
	s.dist = make([]int64, n)
	s.prev = make([]int, n)
	reached := make([]bool, n)
	for i := range s.prev {
		s.prev[i] = -1
	}
	for i := 0; i < s.nSources; i++ {
		reached[i] = true
	}

	for s.passes = 1; ; s.passes++ {
		changed := -1
		for _, e := range s.edges {
			if !reached[e.from] {
				continue
			}
			nd, ok := core.AddWeight(s.dist[e.from], e.weight)
			if !ok {
				return fmt.Errorf("%w: edge %v→%v weight=%d from distance %d",
					core.ErrDistanceOverflow, s.nodes[e.from], s.nodes[e.to], e.weight, s.dist[e.from])
			}
			if reached[e.to] && nd >= s.dist[e.to] {
				continue
			}
			s.dist[e.to] = nd
			s.prev[e.to] = e.from
			reached[e.to] = true
			changed = e.to
		}
		if changed < 0 {
			return nil
		}
		if s.passes >= n {
			return fmt.Errorf("%w: distance to %v still decreasing after %d passes",
				ErrNegativeCycle, s.nodes[changed], s.passes)
		}
	}
}

// result copies the converged state into a core.Result in discovery order.
func (s *solver[T]) result() *core.Result[T] {
	res := core.NewResult(s.sources)
	for i, node := range s.nodes {
		if p := s.prev[i]; p >= 0 {
			res.Set(node, s.dist[i], s.nodes[p])
		} else {
			res.SetSource(node)
		}
	}

	return res
}

func (s *solver[T]) logDone(targetFound bool) {
	s.options.Logger.Debug("bellmanford: search finished",
		"sources", s.nSources,
		"nodes", len(s.nodes),
		"edges", len(s.edges),
		"passes", s.passes,
		"target", targetFound,
	)
}
