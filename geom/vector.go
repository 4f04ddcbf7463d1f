package geom

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Vector is an immutable N-dimensional integer tuple.
// The zero Vector has dimension 0.
//
// Vector is not comparable with ==; use Equal, or Key for map keys.
type Vector struct {
	c []int
}

// NewVector returns a vector holding a copy of coords.
func NewVector(coords ...int) Vector {
	return Vector{c: slices.Clone(coords)}
}

// ZeroVector returns the origin of the given dimension.
func ZeroVector(dim int) Vector {
	return Vector{c: make([]int, dim)}
}

// Dim returns the number of coordinates.
func (v Vector) Dim() int { return len(v.c) }

// At returns coordinate i. It panics if i is outside [0, Dim()).
func (v Vector) At(i int) int { return v.c[i] }

// Coords returns a copy of the coordinates.
func (v Vector) Coords() []int { return slices.Clone(v.c) }

// Key returns a canonical string for v, suitable as a map key.
func (v Vector) Key() string {
	var b strings.Builder
	for i, x := range v.c {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(x))
	}
	return b.String()
}

func (v Vector) String() string { return "[" + v.Key() + "]" }

// Equal reports whether v and w have the same dimension and coordinates.
func (v Vector) Equal(w Vector) bool { return slices.Equal(v.c, w.c) }

// Compare orders vectors lexicographically, first coordinate most significant.
// A vector that is a strict prefix of another sorts first.
func (v Vector) Compare(w Vector) int { return slices.Compare(v.c, w.c) }

func checkDim(v, w Vector) error {
	if len(v.c) != len(w.c) {
		return fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, len(v.c), len(w.c))
	}
	return nil
}

// zip combines v and w coordinate by coordinate.
func zip(v, w Vector, fn func(a, b int) int) (Vector, error) {
	if err := checkDim(v, w); err != nil {
		return Vector{}, err
	}
	out := make([]int, len(v.c))
	for i := range v.c {
		out[i] = fn(v.c[i], w.c[i])
	}
	return Vector{c: out}, nil
}

// Add returns v+w.
func (v Vector) Add(w Vector) (Vector, error) {
	return zip(v, w, func(a, b int) int { return a + b })
}

// Sub returns v-w.
func (v Vector) Sub(w Vector) (Vector, error) {
	return zip(v, w, func(a, b int) int { return a - b })
}

// Min returns the component-wise minimum.
func (v Vector) Min(w Vector) (Vector, error) {
	return zip(v, w, func(a, b int) int { return min(a, b) })
}

// Max returns the component-wise maximum.
func (v Vector) Max(w Vector) (Vector, error) {
	return zip(v, w, func(a, b int) int { return max(a, b) })
}

// Scale multiplies every coordinate by k.
func (v Vector) Scale(k int) Vector {
	out := make([]int, len(v.c))
	for i, x := range v.c {
		out[i] = x * k
	}
	return Vector{c: out}
}

// Neg returns -v.
func (v Vector) Neg() Vector { return v.Scale(-1) }

// Manhattan returns the L1 distance between v and w.
func (v Vector) Manhattan(w Vector) (int, error) {
	if err := checkDim(v, w); err != nil {
		return 0, err
	}
	sum := 0
	for i := range v.c {
		sum += abs(v.c[i] - w.c[i])
	}
	return sum, nil
}

// Chebyshev returns the L∞ distance between v and w.
func (v Vector) Chebyshev(w Vector) (int, error) {
	if err := checkDim(v, w); err != nil {
		return 0, err
	}
	best := 0
	for i := range v.c {
		best = max(best, abs(v.c[i]-w.c[i]))
	}
	return best, nil
}

// SquaredEuclidean returns the squared L2 distance between v and w.
func (v Vector) SquaredEuclidean(w Vector) (int, error) {
	if err := checkDim(v, w); err != nil {
		return 0, err
	}
	sum := 0
	for i := range v.c {
		d := v.c[i] - w.c[i]
		sum += d * d
	}
	return sum, nil
}

// Euclidean returns the L2 distance between v and w.
func (v Vector) Euclidean(w Vector) (float64, error) {
	if err := checkDim(v, w); err != nil {
		return 0, err
	}
	if len(v.c) == 0 {
		return 0, nil
	}
	return floats.Distance(v.float64s(), w.float64s(), 2), nil
}

// Norm returns the L2 length of v.
func (v Vector) Norm() float64 {
	if len(v.c) == 0 {
		return 0
	}
	return floats.Norm(v.float64s(), 2)
}

func (v Vector) float64s() []float64 {
	out := make([]float64, len(v.c))
	for i, x := range v.c {
		out[i] = float64(x)
	}
	return out
}
