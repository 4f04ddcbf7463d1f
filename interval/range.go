package interval

import (
	"errors"
	"fmt"
	"iter"
)

// Sentinel errors for interval operations. All are invalid-argument conditions.
var (
	// ErrDimensionMismatch indicates box corners or operands of different dimension.
	ErrDimensionMismatch = errors.New("interval: dimension mismatch")

	// ErrOverlap indicates two ranges overlap or touch where a gap was required.
	ErrOverlap = errors.New("interval: ranges overlap or touch")

	// ErrEmpty indicates an operation that needs at least one element got none.
	ErrEmpty = errors.New("interval: no elements")
)

// Range is the closed integer interval [Min, Max]. It is empty when Min > Max.
type Range struct {
	Min, Max int
}

// NewRange returns [lo, hi]. lo > hi produces an empty range.
func NewRange(lo, hi int) Range { return Range{Min: lo, Max: hi} }

// EmptyRange returns the canonical empty range [0, -1].
func EmptyRange() Range { return Range{Min: 0, Max: -1} }

// Size returns the number of integers in r.
func (r Range) Size() int {
	if r.Min > r.Max {
		return 0
	}
	return r.Max - r.Min + 1
}

// IsEmpty reports whether r contains no integers.
func (r Range) IsEmpty() bool { return r.Min > r.Max }

// Contains reports whether x lies in r.
func (r Range) Contains(x int) bool { return r.Min <= x && x <= r.Max }

// ContainsRange reports whether every element of o lies in r.
// The empty range is contained in every range.
func (r Range) ContainsRange(o Range) bool {
	if o.IsEmpty() {
		return true
	}
	return r.Min <= o.Min && o.Max <= r.Max
}

// Overlaps reports whether r and o share at least one integer.
func (r Range) Overlaps(o Range) bool {
	return !r.Intersect(o).IsEmpty()
}

// Intersect returns the integers common to r and o; the result may be empty.
func (r Range) Intersect(o Range) Range {
	return Range{Min: max(r.Min, o.Min), Max: min(r.Max, o.Max)}
}

// Span returns the smallest range covering both r and o. Empty operands are ignored.
func (r Range) Span(o Range) Range {
	switch {
	case r.IsEmpty():
		return o
	case o.IsEmpty():
		return r
	}
	return Range{Min: min(r.Min, o.Min), Max: max(r.Max, o.Max)}
}

// Gap returns the integers strictly between two disjoint ranges.
// It fails with ErrOverlap when r and o overlap or are adjacent, since then
// no integer separates them.
func (r Range) Gap(o Range) (Range, error) {
	if r.IsEmpty() || o.IsEmpty() {
		return Range{}, fmt.Errorf("%w: gap of empty range %v, %v", ErrEmpty, r, o)
	}
	lo, hi := r, o
	if o.Min < r.Min {
		lo, hi = o, r
	}
	if lo.Max+1 >= hi.Min {
		return Range{}, fmt.Errorf("%w: %v and %v", ErrOverlap, r, o)
	}
	return Range{Min: lo.Max + 1, Max: hi.Min - 1}, nil
}

// Shift moves r by d.
func (r Range) Shift(d int) Range { return Range{Min: r.Min + d, Max: r.Max + d} }

// Extend grows r by d on both sides; a negative d shrinks it.
func (r Range) Extend(d int) Range { return r.ExtendBy(d, d) }

// ExtendBy grows the lower end by lo and the upper end by hi.
func (r Range) ExtendBy(lo, hi int) Range { return Range{Min: r.Min - lo, Max: r.Max + hi} }

// All yields Min, Min+1, ..., Max.
func (r Range) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		if r.IsEmpty() {
			return
		}
		for x := r.Min; yield(x) && x != r.Max; x++ {
		}
	}
}

func (r Range) String() string {
	if r.IsEmpty() {
		return "[]"
	}
	return fmt.Sprintf("[%d..%d]", r.Min, r.Max)
}
