package interval

import (
	"fmt"
	"iter"
	"strings"

	"github.com/katalvlaran/gridpath/geom"
)

// Box is an axis-aligned N-dimensional product of closed ranges, stored as
// its min and max corners.
type Box struct {
	min, max geom.Vector
}

// NewBox returns the box spanned by the corners lo and hi.
// Corners of different dimension are rejected with ErrDimensionMismatch.
func NewBox(lo, hi geom.Vector) (Box, error) {
	if lo.Dim() != hi.Dim() {
		return Box{}, fmt.Errorf("%w: corners %v and %v", ErrDimensionMismatch, lo, hi)
	}
	return Box{min: lo, max: hi}, nil
}

// BoxOf builds a box from one Range per axis.
func BoxOf(axes ...Range) Box {
	lo, hi := make([]int, len(axes)), make([]int, len(axes))
	for i, r := range axes {
		lo[i], hi[i] = r.Min, r.Max
	}
	return Box{min: geom.NewVector(lo...), max: geom.NewVector(hi...)}
}

// Rect returns the 2D box spanning the points a and b in any order.
func Rect(a, b geom.Point) Box {
	lo, hi := a.Min(b), a.Max(b)
	return BoxOf(NewRange(lo.X, hi.X), NewRange(lo.Y, hi.Y))
}

// Dim returns the number of axes.
func (b Box) Dim() int { return b.min.Dim() }

// Min returns the lower corner.
func (b Box) Min() geom.Vector { return b.min }

// Max returns the upper corner.
func (b Box) Max() geom.Vector { return b.max }

// Axis returns the range covered along axis i.
func (b Box) Axis(i int) Range { return Range{Min: b.min.At(i), Max: b.max.At(i)} }

// IsEmpty reports whether any axis is empty.
func (b Box) IsEmpty() bool {
	for i := 0; i < b.Dim(); i++ {
		if b.Axis(i).IsEmpty() {
			return true
		}
	}
	return false
}

// Count returns the number of lattice points in b.
func (b Box) Count() int {
	n := 1
	for i := 0; i < b.Dim(); i++ {
		n *= b.Axis(i).Size()
	}
	return n
}

// Contains reports whether v lies in b. A vector of another dimension is never contained.
func (b Box) Contains(v geom.Vector) bool {
	if v.Dim() != b.Dim() {
		return false
	}
	for i := 0; i < b.Dim(); i++ {
		if !b.Axis(i).Contains(v.At(i)) {
			return false
		}
	}
	return true
}

// ContainsPoint reports whether the 2D point p lies in a 2D box.
func (b Box) ContainsPoint(p geom.Point) bool {
	return b.Dim() == 2 && b.Axis(0).Contains(p.X) && b.Axis(1).Contains(p.Y)
}

// ContainsBox reports whether o lies entirely in b. An empty o is contained
// in any box of the same dimension.
func (b Box) ContainsBox(o Box) bool {
	if o.Dim() != b.Dim() {
		return false
	}
	if o.IsEmpty() {
		return true
	}
	for i := 0; i < b.Dim(); i++ {
		if !b.Axis(i).ContainsRange(o.Axis(i)) {
			return false
		}
	}
	return true
}

// Intersect clamps b to o component-wise. Disjoint boxes give an empty box, not an error.
func (b Box) Intersect(o Box) (Box, error) {
	lo, err := b.min.Max(o.min)
	if err != nil {
		return Box{}, fmt.Errorf("%w: %v and %v", ErrDimensionMismatch, b, o)
	}
	hi, err := b.max.Min(o.max)
	if err != nil {
		return Box{}, fmt.Errorf("%w: %v and %v", ErrDimensionMismatch, b, o)
	}
	return Box{min: lo, max: hi}, nil
}

// Overlaps reports whether b and o share at least one point.
func (b Box) Overlaps(o Box) bool {
	in, err := b.Intersect(o)
	return err == nil && !in.IsEmpty()
}

// All yields every point of b in lexicographic order, last axis fastest.
func (b Box) All() iter.Seq[geom.Vector] {
	return func(yield func(geom.Vector) bool) {
		if b.IsEmpty() {
			return
		}
		cur := b.min.Coords()
		last := len(cur) - 1
		for {
			if !yield(geom.NewVector(cur...)) {
				return
			}
			// odometer increment
			i := last
			for ; i >= 0; i-- {
				if cur[i] < b.max.At(i) {
					cur[i]++
					break
				}
				cur[i] = b.min.At(i)
			}
			if i < 0 {
				return
			}
		}
	}
}

// BoundingBox returns the smallest box containing every point.
func BoundingBox(points ...geom.Vector) (Box, error) {
	if len(points) == 0 {
		return Box{}, ErrEmpty
	}
	lo, hi := points[0], points[0]
	var err error
	for _, p := range points[1:] {
		if lo, err = lo.Min(p); err != nil {
			return Box{}, fmt.Errorf("%w: %v", ErrDimensionMismatch, p)
		}
		if hi, err = hi.Max(p); err != nil {
			return Box{}, fmt.Errorf("%w: %v", ErrDimensionMismatch, p)
		}
	}
	return Box{min: lo, max: hi}, nil
}

// BoundingRect returns the smallest 2D box containing every point.
func BoundingRect(points ...geom.Point) (Box, error) {
	if len(points) == 0 {
		return Box{}, ErrEmpty
	}
	lo, hi := points[0], points[0]
	for _, p := range points[1:] {
		lo, hi = lo.Min(p), hi.Max(p)
	}
	return Rect(lo, hi), nil
}

func (b Box) String() string {
	parts := make([]string, b.Dim())
	for i := range parts {
		parts[i] = b.Axis(i).String()
	}
	return "Box{" + strings.Join(parts, " x ") + "}"
}
