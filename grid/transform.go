package grid

import (
	"fmt"

	"github.com/katalvlaran/gridpath/geom"
)

// remap builds a w×h table whose cell p is t's cell src(p).
func (t *Table[T]) remap(w, h int, src func(p geom.Point) geom.Point) *Table[T] {
	out := &Table[T]{width: w, height: h, cells: make([]T, w*h)}
	for i := range out.cells {
		out.cells[i] = t.cells[t.index(src(out.Coordinate(i)))]
	}
	return out
}

// RotateRight returns t turned 90° clockwise. The new cell (x,y) is the
// original cell (y, H-1-x); width and height swap.
func (t *Table[T]) RotateRight() *Table[T] {
	h := t.height
	return t.remap(t.height, t.width, func(p geom.Point) geom.Point {
		return geom.Pt(p.Y, h-1-p.X)
	})
}

// RotateLeft returns t turned 90° counter-clockwise. The new cell (x,y) is
// the original cell (W-1-y, x).
func (t *Table[T]) RotateLeft() *Table[T] {
	w := t.width
	return t.remap(t.height, t.width, func(p geom.Point) geom.Point {
		return geom.Pt(w-1-p.Y, p.X)
	})
}

// MirrorH returns t flipped left to right.
func (t *Table[T]) MirrorH() *Table[T] {
	w := t.width
	return t.remap(t.width, t.height, func(p geom.Point) geom.Point {
		return geom.Pt(w-1-p.X, p.Y)
	})
}

// MirrorV returns t flipped top to bottom.
func (t *Table[T]) MirrorV() *Table[T] {
	h := t.height
	return t.remap(t.width, t.height, func(p geom.Point) geom.Point {
		return geom.Pt(p.X, h-1-p.Y)
	})
}

// Transpose returns t reflected over its main diagonal: new (x,y) = old (y,x).
func (t *Table[T]) Transpose() *Table[T] {
	return t.remap(t.height, t.width, func(p geom.Point) geom.Point {
		return geom.Pt(p.Y, p.X)
	})
}

// Extend returns a copy of t with dx columns added on the left and right and
// dy rows on the top and bottom, new cells set to fill. Negative margins
// shrink the table; ErrBadShape is returned if a dimension would drop to zero or below.
func (t *Table[T]) Extend(dx, dy int, fill T) (*Table[T], error) {
	w, h := t.width+2*dx, t.height+2*dy
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: extending %dx%d by (%d,%d)", ErrBadShape, t.width, t.height, dx, dy)
	}
	shift := geom.Pt(dx, dy)
	return NewFunc(w, h, func(p geom.Point) T {
		if v, ok := t.Lookup(p.Sub(shift)); ok {
			return v
		}
		return fill
	})
}

// ExtendAll is Extend with the same margin on every side.
func (t *Table[T]) ExtendAll(n int, fill T) (*Table[T], error) {
	return t.Extend(n, n, fill)
}
