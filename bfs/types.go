// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Expander.
package bfs

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// Sentinel errors for BFS execution.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrVisitAborted wraps an error returned by the OnVisit hook.
	ErrVisitAborted = errors.New("bfs: visit aborted")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option[T comparable] func(*Options[T])

// Options holds parameters and callbacks to customize BFS execution.
type Options[T comparable] struct {
	// OnVisit is called when a node is dequeued, with its depth from the
	// nearest source. A non-nil error aborts the search.
	OnVisit func(node T, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 disables the limit.
	MaxDepth int

	// FilterNeighbor can skip edges by returning false.
	FilterNeighbor func(curr, neighbor T) bool

	// Logger receives one Debug record per search.
	Logger *log.Logger

	err error
}

// DefaultOptions returns Options with no depth limit, no filtering,
// a no-op OnVisit hook and a discarding logger.
func DefaultOptions[T comparable]() Options[T] {
	return Options[T]{
		OnVisit:        func(T, int) error { return nil },
		FilterNeighbor: func(_, _ T) bool { return true },
		Logger:         log.New(io.Discard),
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit[T comparable](fn func(node T, depth int) error) Option[T] {
	return func(o *Options[T]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0:  nodes deeper than d are not discovered
//	d == 0: no depth limit
//	d < 0:  invalid option → ErrOptionViolation
func WithMaxDepth[T comparable](d int) Option[T] {
	return func(o *Options[T]) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor[T comparable](fn func(curr, neighbor T) bool) Option[T] {
	return func(o *Options[T]) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithLogger sets the logger used for the per-search Debug record.
func WithLogger[T comparable](l *log.Logger) Option[T] {
	return func(o *Options[T]) {
		if l != nil {
			o.Logger = l
		}
	}
}
