package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrBadShape indicates a non-positive width or height was requested.
	ErrBadShape = errors.New("grid: width and height must be positive")

	// ErrEmptyGrid indicates input rows are missing or have no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")

	// ErrNonRectangular indicates input rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")

	// ErrOutOfRange indicates a coordinate outside the table bounds.
	ErrOutOfRange = errors.New("grid: coordinate out of range")

	// ErrNotFound indicates a searched value does not occur in the table.
	ErrNotFound = errors.New("grid: value not found")

	// ErrNotNeighbor indicates a ray direction cell that is not adjacent to its origin.
	ErrNotNeighbor = errors.New("grid: cells are not neighbours")

	// ErrShapeMismatch indicates two regions or tables of different shape were combined.
	ErrShapeMismatch = errors.New("grid: shape mismatch")
)

// MaxCells is the largest number of cells a table may hold. Regions address
// cells by a uint32 row-major index, so every table cell must fit one.
const MaxCells = 1 << 32

// Connectivity selects neighbour connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)
