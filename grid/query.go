package grid

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/gridpath/geom"
	"github.com/katalvlaran/gridpath/interval"
)

// Count returns how many cells hold v.
func (t *Table[T]) Count(v T) int {
	return t.CountFunc(func(c T) bool { return c == v })
}

// CountFunc returns how many cells satisfy pred.
func (t *Table[T]) CountFunc(pred func(T) bool) int {
	n := 0
	for _, c := range t.cells {
		if pred(c) {
			n++
		}
	}
	return n
}

// Find returns the first cell holding v in row-major order, or ErrNotFound.
func (t *Table[T]) Find(v T) (geom.Point, error) {
	p, err := t.FindFunc(func(c T) bool { return c == v })
	if err != nil {
		return geom.Point{}, fmt.Errorf("%w: %v", ErrNotFound, v)
	}
	return p, nil
}

// FindFunc returns the first cell satisfying pred in row-major order, or ErrNotFound.
func (t *Table[T]) FindFunc(pred func(T) bool) (geom.Point, error) {
	for i, c := range t.cells {
		if pred(c) {
			return t.Coordinate(i), nil
		}
	}
	return geom.Point{}, ErrNotFound
}

// FindAll returns every cell holding v in row-major order. No match yields an empty slice.
func (t *Table[T]) FindAll(v T) []geom.Point {
	var out []geom.Point
	for i, c := range t.cells {
		if c == v {
			out = append(out, t.Coordinate(i))
		}
	}
	return out
}

// Neighbors yields the in-bounds orthogonal neighbours of p in ascending point order.
func (t *Table[T]) Neighbors(p geom.Point) iter.Seq[geom.Point] {
	return t.within(p.Neighbors())
}

// Neighbors8 yields the in-bounds surrounding cells of p in ascending point order.
func (t *Table[T]) Neighbors8(p geom.Point) iter.Seq[geom.Point] {
	return t.within(p.Neighbors8())
}

// NeighborsOf dispatches to Neighbors or Neighbors8.
func (t *Table[T]) NeighborsOf(p geom.Point, conn Connectivity) iter.Seq[geom.Point] {
	if conn == Conn8 {
		return t.Neighbors8(p)
	}
	return t.Neighbors(p)
}

func (t *Table[T]) within(seq iter.Seq[geom.Point]) iter.Seq[geom.Point] {
	return func(yield func(geom.Point) bool) {
		for q := range seq {
			if t.InBounds(q) && !yield(q) {
				return
			}
		}
	}
}

// Ray yields the cells strictly beyond origin in the direction of toward,
// which must be one of origin's 8 neighbours: origin+step, origin+2*step, ...
// up to the table edge. toward itself is the first cell yielded when in bounds.
func (t *Table[T]) Ray(origin, toward geom.Point) (iter.Seq[geom.Point], error) {
	step := toward.Sub(origin)
	if origin.Chebyshev(toward) != 1 {
		return nil, fmt.Errorf("%w: %v and %v", ErrNotNeighbor, origin, toward)
	}
	return t.walk(origin, step), nil
}

// RayDir yields the cells beyond origin in direction d up to the table edge.
func (t *Table[T]) RayDir(origin geom.Point, d geom.Dir8) iter.Seq[geom.Point] {
	return t.walk(origin, d.Delta())
}

func (t *Table[T]) walk(origin, step geom.Point) iter.Seq[geom.Point] {
	return func(yield func(geom.Point) bool) {
		for p := origin.Add(step); t.InBounds(p); p = p.Add(step) {
			if !yield(p) {
				return
			}
		}
	}
}

// Border returns the cells on the outer edge in row-major order, each once.
func (t *Table[T]) Border() []geom.Point {
	var out []geom.Point
	for i := range t.cells {
		p := t.Coordinate(i)
		if p.X == 0 || p.Y == 0 || p.X == t.width-1 || p.Y == t.height-1 {
			out = append(out, p)
		}
	}
	return out
}

// SubRegion yields the cells of the rectangle spanned by corners a and b,
// clipped to the table, in row-major order.
func (t *Table[T]) SubRegion(a, b geom.Point) iter.Seq2[geom.Point, T] {
	clip, _ := interval.Rect(a, b).Intersect(t.Bounds())
	xs, ys := clip.Axis(0), clip.Axis(1)
	return func(yield func(geom.Point, T) bool) {
		for y := range ys.All() {
			for x := range xs.All() {
				p := geom.Pt(x, y)
				if !yield(p, t.cells[t.index(p)]) {
					return
				}
			}
		}
	}
}

// Sub copies the rectangle spanned by a and b into a new table.
// Both corners must be in bounds.
func (t *Table[T]) Sub(a, b geom.Point) (*Table[T], error) {
	if err := t.checkBounds(a); err != nil {
		return nil, err
	}
	if err := t.checkBounds(b); err != nil {
		return nil, err
	}
	lo, hi := a.Min(b), a.Max(b)
	return NewFunc(hi.X-lo.X+1, hi.Y-lo.Y+1, func(p geom.Point) T {
		return t.cells[t.index(p.Add(lo))]
	})
}
