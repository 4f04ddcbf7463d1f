// Package dijkstra defines the options and sentinel errors for Dijkstra's
// shortest-path algorithm over an implicit graph.
//
// Options:
//
//	– WithMaxDistance: nodes whose distance would exceed this value are not settled.
//	– WithLogger:      receives one Debug record per search.
//
// Errors (sentinel):
//
//	– ErrNegativeWeight  if a negative edge weight is discovered.
//	– ErrBadMaxDistance  if MaxDistance < 0.
package dijkstra

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/log"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNegativeWeight indicates that an edge with negative weight was discovered.
	// The search stops immediately; use bellmanford for such graphs.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// MaxDistance – cap on distances to explore. Must be ≥ 0. Default math.MaxInt64.
// Logger      – structured logger; defaults to one that discards output.
type Options struct {
	MaxDistance int64
	Logger      *log.Logger

	// err records an invalid option; surfaced when the search starts.
	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold. Nodes whose shortest
// distance would exceed max are neither settled nor expanded.
// Negative values are reported as ErrBadMaxDistance when the search starts.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: %d", ErrBadMaxDistance, max)
			return
		}
		o.MaxDistance = max
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

// DefaultOptions returns Options with no distance cap and a discarding logger.
func DefaultOptions() Options {
	return Options{
		MaxDistance: math.MaxInt64,
		Logger:      log.New(io.Discard),
	}
}
