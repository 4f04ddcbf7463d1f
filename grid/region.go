package grid

import (
	"fmt"
	"iter"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/gridpath/geom"
)

// Region is a set of cells of a table with a given shape, stored as a
// roaring bitmap of row-major indices.
type Region struct {
	width, height int
	bits          *roaring.Bitmap
}

// NewRegion returns an empty region for tables of the given shape.
// Shapes with more than MaxCells cells are not supported: their indices would
// alias. Tables never exceed MaxCells, so RegionOf is always safe.
func NewRegion(width, height int) *Region {
	return &Region{width: width, height: height, bits: roaring.New()}
}

// RegionOf returns an empty region shaped like t.
func RegionOf[T comparable](t *Table[T]) *Region {
	return NewRegion(t.width, t.height)
}

func (r *Region) inBounds(p geom.Point) bool {
	return p.X >= 0 && p.X < r.width && p.Y >= 0 && p.Y < r.height
}

func (r *Region) index(p geom.Point) uint32 {
	return uint32(p.Y*r.width + p.X)
}

func (r *Region) point(i uint32) geom.Point {
	return geom.Pt(int(i)%r.width, int(i)/r.width)
}

// Add inserts p. It fails with ErrOutOfRange if p lies outside the region's shape.
func (r *Region) Add(p geom.Point) error {
	if !r.inBounds(p) {
		return fmt.Errorf("%w: %v not in %dx%d", ErrOutOfRange, p, r.width, r.height)
	}
	r.bits.Add(r.index(p))
	return nil
}

// Contains reports whether p is in the region.
func (r *Region) Contains(p geom.Point) bool {
	return r.inBounds(p) && r.bits.Contains(r.index(p))
}

// Len returns the number of cells.
func (r *Region) Len() int { return int(r.bits.GetCardinality()) }

// IsEmpty reports whether the region has no cells.
func (r *Region) IsEmpty() bool { return r.bits.IsEmpty() }

// All yields the cells in row-major order.
func (r *Region) All() iter.Seq[geom.Point] {
	return func(yield func(geom.Point) bool) {
		it := r.bits.Iterator()
		for it.HasNext() {
			if !yield(r.point(it.Next())) {
				return
			}
		}
	}
}

// Points returns the cells in row-major order.
func (r *Region) Points() []geom.Point {
	out := make([]geom.Point, 0, r.Len())
	for p := range r.All() {
		out = append(out, p)
	}
	return out
}

// Union returns the cells in r or o. Both regions must share a shape.
func (r *Region) Union(o *Region) (*Region, error) {
	if r.width != o.width || r.height != o.height {
		return nil, fmt.Errorf("%w: %dx%d vs %dx%d", ErrShapeMismatch, r.width, r.height, o.width, o.height)
	}
	return &Region{width: r.width, height: r.height, bits: roaring.Or(r.bits, o.bits)}, nil
}

// Intersects reports whether r and o share a cell.
func (r *Region) Intersects(o *Region) bool {
	return r.width == o.width && r.height == o.height && r.bits.Intersects(o.bits)
}

// Perimeter counts the cell sides that border a cell outside the region
// (including the table edge).
func (r *Region) Perimeter() int {
	n := 0
	for p := range r.All() {
		for q := range p.Neighbors() {
			if !r.Contains(q) {
				n++
			}
		}
	}
	return n
}

// FloodFill returns the connected area of cells reachable from start through
// cells whose value satisfies keep. A start cell failing keep yields an empty region.
func (t *Table[T]) FloodFill(start geom.Point, conn Connectivity, keep func(T) bool) (*Region, error) {
	if err := t.checkBounds(start); err != nil {
		return nil, err
	}
	seen := RegionOf(t)
	if !keep(t.cells[t.index(start)]) {
		return seen, nil
	}
	return t.fill(start, conn, keep, seen), nil
}

// Regions returns every maximal connected area of cells satisfying keep,
// ordered by each area's first cell in row-major order.
func (t *Table[T]) Regions(conn Connectivity, keep func(T) bool) []*Region {
	seen := roaring.New()
	var out []*Region
	for i, v := range t.cells {
		if !keep(v) || seen.Contains(uint32(i)) {
			continue
		}
		comp := t.fill(t.Coordinate(i), conn, keep, RegionOf(t))
		seen.Or(comp.bits)
		out = append(out, comp)
	}
	return out
}

// fill runs a breadth-first flood from start, recording cells into into.
func (t *Table[T]) fill(start geom.Point, conn Connectivity, keep func(T) bool, into *Region) *Region {
	queue := []geom.Point{start}
	into.bits.Add(into.index(start))
	for qi := 0; qi < len(queue); qi++ {
		for q := range t.NeighborsOf(queue[qi], conn) {
			i := into.index(q)
			if into.bits.Contains(i) || !keep(t.cells[t.index(q)]) {
				continue
			}
			into.bits.Add(i)
			queue = append(queue, q)
		}
	}
	return into
}
