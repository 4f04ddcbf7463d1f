package grid

import (
	"fmt"
	"iter"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/gridpath/geom"
	"github.com/katalvlaran/gridpath/interval"
)

// Table is a dense Width×Height container stored row-major.
type Table[T comparable] struct {
	width, height int
	cells         []T
}

// New returns a width×height table with every cell set to fill.
func New[T comparable](width, height int, fill T) (*Table[T], error) {
	t, err := alloc[T](width, height)
	if err != nil {
		return nil, err
	}
	t.Fill(fill)
	return t, nil
}

// NewFunc returns a width×height table whose cell p holds gen(p).
func NewFunc[T comparable](width, height int, gen func(p geom.Point) T) (*Table[T], error) {
	t, err := alloc[T](width, height)
	if err != nil {
		return nil, err
	}
	for i := range t.cells {
		t.cells[i] = gen(t.Coordinate(i))
	}
	return t, nil
}

// FromRows builds a table from a rectangular matrix; rows[y][x] becomes cell (x,y).
// The input is copied.
func FromRows[T comparable](rows [][]T) (*Table[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	t, err := alloc[T](w, h)
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
		copy(t.cells[y*w:(y+1)*w], row)
	}
	return t, nil
}

// FromStrings builds a rune table where each string is one row.
func FromStrings(lines []string) (*Table[rune], error) {
	if len(lines) == 0 || lines[0] == "" {
		return nil, ErrEmptyGrid
	}
	w := utf8.RuneCountInString(lines[0])
	rows := make([][]rune, len(lines))
	for y, line := range lines {
		rows[y] = []rune(line)
		if len(rows[y]) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(rows[y]), w)
		}
	}
	return FromRows(rows)
}

// Parse splits s into lines, dropping a trailing newline, and calls FromStrings.
func Parse(s string) (*Table[rune], error) {
	return FromStrings(strings.Split(strings.TrimRight(s, "\r\n"), "\n"))
}

// Map returns a new table of the same shape holding fn(p, value) for every cell.
func Map[T, U comparable](t *Table[T], fn func(p geom.Point, v T) U) *Table[U] {
	out := &Table[U]{width: t.width, height: t.height, cells: make([]U, len(t.cells))}
	for i, v := range t.cells {
		out.cells[i] = fn(t.Coordinate(i), v)
	}
	return out
}

func alloc[T comparable](width, height int) (*Table[T], error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadShape, width, height)
	}
	if uint64(width)*uint64(height) > MaxCells {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d cells", ErrBadShape, width, height, uint64(MaxCells))
	}
	return &Table[T]{width: width, height: height, cells: make([]T, width*height)}, nil
}

// Width returns the number of columns.
func (t *Table[T]) Width() int { return t.width }

// Height returns the number of rows.
func (t *Table[T]) Height() int { return t.height }

// Len returns the number of cells.
func (t *Table[T]) Len() int { return len(t.cells) }

// Bounds returns the 2D box [0,W-1]×[0,H-1].
func (t *Table[T]) Bounds() interval.Box {
	return interval.Rect(geom.Origin, geom.Pt(t.width-1, t.height-1))
}

// InBounds reports whether p addresses a cell.
func (t *Table[T]) InBounds(p geom.Point) bool {
	return p.X >= 0 && p.X < t.width && p.Y >= 0 && p.Y < t.height
}

// index maps p to its row-major offset: y*Width + x.
func (t *Table[T]) index(p geom.Point) int {
	return p.Y*t.width + p.X
}

// Coordinate converts a row-major index back to a point.
func (t *Table[T]) Coordinate(idx int) geom.Point {
	return geom.Pt(idx%t.width, idx/t.width)
}

func (t *Table[T]) checkBounds(p geom.Point) error {
	if !t.InBounds(p) {
		return fmt.Errorf("%w: %v not in %dx%d", ErrOutOfRange, p, t.width, t.height)
	}
	return nil
}

// At returns the value at p, or ErrOutOfRange.
func (t *Table[T]) At(p geom.Point) (T, error) {
	if err := t.checkBounds(p); err != nil {
		var zero T
		return zero, err
	}
	return t.cells[t.index(p)], nil
}

// Lookup returns the value at p and whether p is in bounds.
func (t *Table[T]) Lookup(p geom.Point) (T, bool) {
	if !t.InBounds(p) {
		var zero T
		return zero, false
	}
	return t.cells[t.index(p)], true
}

// Set stores v at p.
func (t *Table[T]) Set(p geom.Point, v T) error {
	if err := t.checkBounds(p); err != nil {
		return err
	}
	t.cells[t.index(p)] = v
	return nil
}

// Update replaces the value at p with fn(old).
func (t *Table[T]) Update(p geom.Point, fn func(old T) T) error {
	if err := t.checkBounds(p); err != nil {
		return err
	}
	i := t.index(p)
	t.cells[i] = fn(t.cells[i])
	return nil
}

// Fill sets every cell to v.
func (t *Table[T]) Fill(v T) {
	for i := range t.cells {
		t.cells[i] = v
	}
}

// Cells yields every (point, value) pair in row-major order.
func (t *Table[T]) Cells() iter.Seq2[geom.Point, T] {
	return func(yield func(geom.Point, T) bool) {
		for i, v := range t.cells {
			if !yield(t.Coordinate(i), v) {
				return
			}
		}
	}
}

// Points yields every coordinate in row-major order.
func (t *Table[T]) Points() iter.Seq[geom.Point] {
	return func(yield func(geom.Point) bool) {
		for i := range t.cells {
			if !yield(t.Coordinate(i)) {
				return
			}
		}
	}
}

// Row returns a copy of row y.
func (t *Table[T]) Row(y int) ([]T, error) {
	if y < 0 || y >= t.height {
		return nil, fmt.Errorf("%w: row %d of %d", ErrOutOfRange, y, t.height)
	}
	out := make([]T, t.width)
	copy(out, t.cells[y*t.width:(y+1)*t.width])
	return out, nil
}

// Column returns a copy of column x.
func (t *Table[T]) Column(x int) ([]T, error) {
	if x < 0 || x >= t.width {
		return nil, fmt.Errorf("%w: column %d of %d", ErrOutOfRange, x, t.width)
	}
	out := make([]T, t.height)
	for y := range out {
		out[y] = t.cells[y*t.width+x]
	}
	return out, nil
}

// Rows yields a copy of each row, top to bottom.
func (t *Table[T]) Rows() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		for y := 0; y < t.height; y++ {
			row, _ := t.Row(y)
			if !yield(y, row) {
				return
			}
		}
	}
}

// Columns yields a copy of each column, left to right.
func (t *Table[T]) Columns() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		for x := 0; x < t.width; x++ {
			col, _ := t.Column(x)
			if !yield(x, col) {
				return
			}
		}
	}
}

// Clone returns a deep copy of t.
func (t *Table[T]) Clone() *Table[T] {
	out := &Table[T]{width: t.width, height: t.height, cells: make([]T, len(t.cells))}
	copy(out.cells, t.cells)
	return out
}

// Equal reports whether t and o have the same shape and cell values.
func (t *Table[T]) Equal(o *Table[T]) bool {
	if t.width != o.width || t.height != o.height {
		return false
	}
	for i, v := range t.cells {
		if o.cells[i] != v {
			return false
		}
	}
	return true
}

// String renders one line per row. Runes, bytes and strings print as-is;
// other values use fmt's default format.
func (t *Table[T]) String() string {
	var b strings.Builder
	for i, v := range t.cells {
		if i > 0 && i%t.width == 0 {
			b.WriteByte('\n')
		}
		switch c := any(v).(type) {
		case rune:
			b.WriteRune(c)
		case byte:
			b.WriteByte(c)
		case string:
			b.WriteString(c)
		default:
			fmt.Fprint(&b, c)
		}
	}
	return b.String()
}
