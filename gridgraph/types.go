// Package gridgraph defines options and sentinel errors for viewing a
// grid.Table as an implicit graph of cells.
package gridgraph

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/geom"
	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrNilTable indicates a nil table was passed to New.
	ErrNilTable = errors.New("gridgraph: table is nil")
	// ErrBadConnectivity indicates a Connectivity other than Conn4 or Conn8.
	ErrBadConnectivity = errors.New("gridgraph: unknown connectivity")
	// ErrEmptyRegion indicates a bridge endpoint region without cells.
	ErrEmptyRegion = errors.New("gridgraph: region is empty")
	// ErrNoPath indicates no path exists between the requested cells or regions.
	ErrNoPath = errors.New("gridgraph: no path between specified cells")
)

// Options contains tunable parameters for the cell graph.
type Options struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn grid.Connectivity
	// Passable reports whether a step from one cell to a neighbour is allowed.
	Passable func(from, to geom.Point) bool
	// Weight returns the cost of a step between neighbouring cells.
	Weight func(from, to geom.Point) int64

	err error
}

// Option configures a GridGraph.
type Option func(*Options)

// DefaultOptions returns Conn4, every step passable, every step weight 1.
func DefaultOptions() Options {
	return Options{
		Conn:     grid.Conn4,
		Passable: func(_, _ geom.Point) bool { return true },
		Weight:   func(_, _ geom.Point) int64 { return 1 },
	}
}

// WithConnectivity selects Conn4 or Conn8 neighbours.
func WithConnectivity(c grid.Connectivity) Option {
	return func(o *Options) {
		if c != grid.Conn4 && c != grid.Conn8 {
			o.err = fmt.Errorf("%w: %d", ErrBadConnectivity, c)
			return
		}
		o.Conn = c
	}
}

// WithPassable restricts which steps between neighbouring cells exist.
func WithPassable(fn func(from, to geom.Point) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.Passable = fn
		}
	}
}

// WithWeight sets the step cost between neighbouring cells.
func WithWeight(fn func(from, to geom.Point) int64) Option {
	return func(o *Options) {
		if fn != nil {
			o.Weight = fn
		}
	}
}
