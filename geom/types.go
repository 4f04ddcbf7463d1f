package geom

import (
	"errors"
	"iter"
)

// Sentinel errors for geom operations. All of them are invalid-argument conditions.
var (
	// ErrDimensionMismatch indicates two vectors of different dimension were combined.
	ErrDimensionMismatch = errors.New("geom: dimension mismatch")

	// ErrSamePoint indicates a direction or line was requested from a point to itself.
	ErrSamePoint = errors.New("geom: points are identical")

	// ErrNotAligned indicates two points do not share an axis (or diagonal).
	ErrNotAligned = errors.New("geom: points are not aligned")
)

// Limit bounds seq to at most n elements. It is the usual companion of the
// infinite rays produced by Point.Ray and Point.RayTo.
func Limit[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		i := 0
		for v := range seq {
			if !yield(v) {
				return
			}
			i++
			if i >= n {
				return
			}
		}
	}
}

// TakeWhile yields elements of seq while keep reports true.
func TakeWhile[T any](seq iter.Seq[T], keep func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if !keep(v) || !yield(v) {
				return
			}
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}

func gcd(a, b int) int {
	a, b = abs(a), abs(b)
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
