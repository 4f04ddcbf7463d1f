// Package bellmanford defines the options and sentinel errors for the
// Bellman-Ford shortest-path solver over an implicit graph.
//
// Options:
//
//	– WithMaxNodes: cap on the number of nodes discovery may reach.
//	– WithLogger:   receives one Debug record per search.
//
// Errors (sentinel):
//
//	– ErrNegativeCycle  if a negative-weight cycle is reachable from a source.
//	– ErrTooManyNodes   if discovery exceeds MaxNodes.
//	– ErrBadMaxNodes    if MaxNodes < 0.
package bellmanford

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// Sentinel errors returned by the Bellman-Ford implementation.
var (
	// ErrNegativeCycle indicates that distances kept improving after |V|-1 passes.
	ErrNegativeCycle = errors.New("bellmanford: negative weight cycle detected")

	// ErrTooManyNodes indicates that discovery reached more nodes than MaxNodes allows.
	ErrTooManyNodes = errors.New("bellmanford: node limit exceeded")

	// ErrBadMaxNodes indicates that MaxNodes was set to a negative value.
	ErrBadMaxNodes = errors.New("bellmanford: MaxNodes must be non-negative")
)

// Options configures the behavior of the Bellman-Ford solver.
//
// MaxNodes – discovery cap; 0 means unlimited.
// Logger   – structured logger; defaults to one that discards output.
type Options struct {
	MaxNodes int
	Logger   *log.Logger

	err error
}

// Option represents a functional option for configuring Bellman-Ford.
type Option func(*Options)

// WithMaxNodes bounds breadth-first discovery of the implicit graph.
// The search fails with ErrTooManyNodes once more than n nodes are reachable.
func WithMaxNodes(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: %d", ErrBadMaxNodes, n)
			return
		}
		o.MaxNodes = n
	}
}

// WithLogger sets the logger used for the per-search Debug record.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns Options with no node cap and a discarding logger.
func DefaultOptions() Options {
	return Options{Logger: log.New(io.Discard)}
}
