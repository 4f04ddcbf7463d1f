package core

import (
	"errors"
	"fmt"
	"iter"
	"math"
)

// Sentinel errors for the shortest-path contract.
var (
	// ErrNilExpander indicates a solver was given a nil Expander.
	ErrNilExpander = errors.New("core: expander is nil")

	// ErrNoSources indicates a solver was given no source nodes.
	ErrNoSources = errors.New("core: no source nodes")

	// ErrNodeNotFound indicates a node that the search never reached.
	ErrNodeNotFound = errors.New("core: node not found in result")

	// ErrNoEdge indicates two consecutive path nodes are not joined by an edge.
	ErrNoEdge = errors.New("core: no edge between nodes")

	// ErrDistanceOverflow indicates an accumulated distance left the int64 range.
	ErrDistanceOverflow = errors.New("core: distance overflows int64")

	// ErrPredecessorCycle indicates the predecessor chain of a node loops back on itself.
	ErrPredecessorCycle = errors.New("core: predecessor cycle")
)

// Edge is an outgoing edge reported by an Expander.
type Edge[T comparable] struct {
	// To is the target node.
	To T

	// Weight is the cost of traversing the edge. Distances are accumulated
	// in int64; a sum that would leave the int64 range is never wrapped; the
	// solver fails with ErrDistanceOverflow instead.
	Weight int64
}

// Expander lazily produces the outgoing edges of a node.
// It may be called at most once per node by a solver.
type Expander[T comparable] interface {
	Edges(node T) []Edge[T]
}

// ExpanderFunc adapts an ordinary function to Expander.
type ExpanderFunc[T comparable] func(node T) []Edge[T]

// Edges calls f(node).
func (f ExpanderFunc[T]) Edges(node T) []Edge[T] { return f(node) }

// Validate checks the common solver preconditions in order: expander non-nil,
// then at least one source.
func Validate[T comparable](exp Expander[T], sources []T) error {
	if exp == nil {
		return ErrNilExpander
	}
	if len(sources) == 0 {
		return ErrNoSources
	}
	return nil
}

// AddWeight returns d+w. ok is false when the sum would overflow int64.
func AddWeight(d, w int64) (sum int64, ok bool) {
	if (w > 0 && d > math.MaxInt64-w) || (w < 0 && d < math.MinInt64-w) {
		return 0, false
	}
	return d + w, true
}

// Step is the per-node entry of a Result.
type Step[T comparable] struct {
	// Dist is the shortest known distance from the nearest source.
	Dist int64

	// Prev is the predecessor on that shortest path. It is meaningful only when HasPrev is set.
	Prev T

	// HasPrev is false for source nodes.
	HasPrev bool
}

// Result maps every reached node to its distance and predecessor.
type Result[T comparable] struct {
	sources []T
	steps   map[T]Step[T]
	order   []T
}

// NewResult returns an empty Result for the given sources. The sources are
// not recorded until the solver calls SetSource.
func NewResult[T comparable](sources []T) *Result[T] {
	return &Result[T]{
		sources: append([]T(nil), sources...),
		steps:   make(map[T]Step[T]),
	}
}

// SetSource records node as a source at distance 0.
func (r *Result[T]) SetSource(node T) {
	r.put(node, Step[T]{})
}

// Set records node at distance dist, reached from prev.
func (r *Result[T]) Set(node T, dist int64, prev T) {
	r.put(node, Step[T]{Dist: dist, Prev: prev, HasPrev: true})
}

func (r *Result[T]) put(node T, s Step[T]) {
	if _, ok := r.steps[node]; !ok {
		r.order = append(r.order, node)
	}
	r.steps[node] = s
}

// Sources returns the nodes the search started from.
func (r *Result[T]) Sources() []T { return append([]T(nil), r.sources...) }

// Len returns the number of reached nodes.
func (r *Result[T]) Len() int { return len(r.order) }

// Nodes returns the reached nodes in the order the solver recorded them.
func (r *Result[T]) Nodes() []T { return append([]T(nil), r.order...) }

// All yields (node, distance) pairs in recording order.
func (r *Result[T]) All() iter.Seq2[T, int64] {
	return func(yield func(T, int64) bool) {
		for _, n := range r.order {
			if !yield(n, r.steps[n].Dist) {
				return
			}
		}
	}
}

// Reached reports whether node was reached.
func (r *Result[T]) Reached(node T) bool {
	_, ok := r.steps[node]
	return ok
}

// Step returns the entry for node.
func (r *Result[T]) Step(node T) (Step[T], bool) {
	s, ok := r.steps[node]
	return s, ok
}

// Dist returns the distance to node, or ErrNodeNotFound if it was not reached.
func (r *Result[T]) Dist(node T) (int64, error) {
	s, ok := r.steps[node]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrNodeNotFound, node)
	}
	return s.Dist, nil
}

// Prev returns the predecessor of node; ok is false for sources and unreached nodes.
func (r *Result[T]) Prev(node T) (prev T, ok bool) {
	s, found := r.steps[node]
	if !found || !s.HasPrev {
		return prev, false
	}
	return s.Prev, true
}

// PathTo walks predecessors back from node to a source and returns the path
// source → node, both ends included.
func (r *Result[T]) PathTo(node T) (Path[T], error) {
	s, ok := r.steps[node]
	if !ok {
		return Path[T]{}, fmt.Errorf("%w: %v", ErrNodeNotFound, node)
	}
	nodes := []T{node}
	for cur := s; cur.HasPrev; {
		// a chain longer than the result means a corrupted predecessor map
		if len(nodes) > len(r.order) {
			return Path[T]{}, fmt.Errorf("%w: at %v", ErrPredecessorCycle, node)
		}
		nodes = append(nodes, cur.Prev)
		cur = r.steps[cur.Prev]
	}
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
	return Path[T]{Nodes: nodes, Dist: s.Dist}, nil
}

// Path is a node sequence from a source to a target with its total distance.
type Path[T comparable] struct {
	Nodes []T
	Dist  int64
}

// Len returns the number of edges on the path.
func (p Path[T]) Len() int {
	if len(p.Nodes) == 0 {
		return 0
	}
	return len(p.Nodes) - 1
}

// Start returns the first node; ok is false for an empty path.
func (p Path[T]) Start() (n T, ok bool) {
	if len(p.Nodes) == 0 {
		return n, false
	}
	return p.Nodes[0], true
}

// End returns the last node; ok is false for an empty path.
func (p Path[T]) End() (n T, ok bool) {
	if len(p.Nodes) == 0 {
		return n, false
	}
	return p.Nodes[len(p.Nodes)-1], true
}

// PathWeight re-sums edge weights along nodes using exp. Between two
// consecutive nodes the cheapest parallel edge is used; a missing edge yields
// ErrNoEdge and a sum leaving the int64 range yields ErrDistanceOverflow.
func PathWeight[T comparable](exp Expander[T], nodes []T) (int64, error) {
	if exp == nil {
		return 0, ErrNilExpander
	}
	var total int64
	for i := 1; i < len(nodes); i++ {
		best, found := int64(0), false
		for _, e := range exp.Edges(nodes[i-1]) {
			if e.To == nodes[i] && (!found || e.Weight < best) {
				best, found = e.Weight, true
			}
		}
		if !found {
			return 0, fmt.Errorf("%w: %v → %v", ErrNoEdge, nodes[i-1], nodes[i])
		}
		sum, ok := AddWeight(total, best)
		if !ok {
			return 0, fmt.Errorf("%w: at %v", ErrDistanceOverflow, nodes[i])
		}
		total = sum
	}
	return total, nil
}
