package geom

import (
	"fmt"
	"iter"
	"math"
)

// Point is a 2D integer coordinate. The zero value is the origin.
type Point struct{ X, Y int }

// Pt is a convenience constructor for Point.
func Pt(x, y int) Point { return Point{x, y} }

// Origin is the zero Point.
var Origin = Point{}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Mul scales both components by k.
func (p Point) Mul(k int) Point { return Point{p.X * k, p.Y * k} }

// Neg returns -p.
func (p Point) Neg() Point { return Point{-p.X, -p.Y} }

// Abs returns p with both components made non-negative.
func (p Point) Abs() Point { return Point{abs(p.X), abs(p.Y)} }

// Sign reduces each component to -1, 0 or 1.
func (p Point) Sign() Point { return Point{sign(p.X), sign(p.Y)} }

// Min returns the component-wise minimum of p and q.
func (p Point) Min(q Point) Point { return Point{min(p.X, q.X), min(p.Y, q.Y)} }

// Max returns the component-wise maximum of p and q.
func (p Point) Max(q Point) Point { return Point{max(p.X, q.X), max(p.Y, q.Y)} }

// Compare orders points lexicographically, X first.
// It returns -1, 0 or +1.
func (p Point) Compare(q Point) int {
	switch {
	case p.X < q.X:
		return -1
	case p.X > q.X:
		return 1
	case p.Y < q.Y:
		return -1
	case p.Y > q.Y:
		return 1
	default:
		return 0
	}
}

// Less reports whether p sorts before q.
func (p Point) Less(q Point) bool { return p.Compare(q) < 0 }

// Manhattan returns the L1 distance between p and q.
func (p Point) Manhattan(q Point) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

// Chebyshev returns the L∞ distance between p and q.
func (p Point) Chebyshev(q Point) int {
	return max(abs(p.X-q.X), abs(p.Y-q.Y))
}

// SquaredEuclidean returns the squared L2 distance between p and q.
func (p Point) SquaredEuclidean(q Point) int {
	dx, dy := p.X-q.X, p.Y-q.Y
	return dx*dx + dy*dy
}

// Euclidean returns the L2 distance between p and q.
func (p Point) Euclidean(q Point) float64 {
	return math.Sqrt(float64(p.SquaredEuclidean(q)))
}

// RotateRight rotates p by 90° clockwise around the origin (y-down screen axes).
func (p Point) RotateRight() Point { return Point{-p.Y, p.X} }

// RotateLeft rotates p by 90° counter-clockwise around the origin.
func (p Point) RotateLeft() Point { return Point{p.Y, -p.X} }

// Vector converts p to a 2-dimensional Vector.
func (p Point) Vector() Vector { return NewVector(p.X, p.Y) }

// PointOf converts a 2-dimensional vector to a Point.
func PointOf(v Vector) (Point, error) {
	if v.Dim() != 2 {
		return Point{}, fmt.Errorf("%w: want 2, got %d", ErrDimensionMismatch, v.Dim())
	}
	return Point{v.At(0), v.At(1)}, nil
}

// Neighbor returns the point one step from p in direction d.
func (p Point) Neighbor(d Dir) Point { return p.Add(d.Delta()) }

// Neighbor8 returns the point one step from p in direction d.
func (p Point) Neighbor8(d Dir8) Point { return p.Add(d.Delta()) }

// offsets4 and offsets8 are sorted so that p.Add(offset) is sorted for any p.
var (
	offsets4 = [4]Point{{-1, 0}, {0, -1}, {0, 1}, {1, 0}}
	offsets8 = [8]Point{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
)

// Neighbors yields the 4 orthogonal neighbours of p in ascending point order.
func (p Point) Neighbors() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for _, o := range offsets4 {
			if !yield(p.Add(o)) {
				return
			}
		}
	}
}

// Neighbors8 yields the 8 surrounding points of p in ascending point order.
func (p Point) Neighbors8() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for _, o := range offsets8 {
			if !yield(p.Add(o)) {
				return
			}
		}
	}
}

// Ray yields p+d, p+2d, ... without end. p itself is not included.
func (p Point) Ray(d Dir) iter.Seq[Point] {
	return p.step(d.Delta())
}

// Ray8 is Ray for 8-way directions.
func (p Point) Ray8(d Dir8) iter.Seq[Point] {
	return p.step(d.Delta())
}

// RayTo yields the lattice points beyond p on the line through q, starting at
// the first one after p and continuing past q without end. The step is the
// reduced vector (q-p)/gcd, so every lattice point on the line is visited.
func (p Point) RayTo(q Point) (iter.Seq[Point], error) {
	step, _, err := p.latticeStep(q)
	if err != nil {
		return nil, err
	}
	return p.step(step), nil
}

// LineTo returns every lattice point on the segment from p to q, both ends included.
func (p Point) LineTo(q Point) ([]Point, error) {
	step, n, err := p.latticeStep(q)
	if err != nil {
		return nil, err
	}
	line := make([]Point, 0, n+1)
	for i := 0; i <= n; i++ {
		line = append(line, p.Add(step.Mul(i)))
	}
	return line, nil
}

func (p Point) latticeStep(q Point) (Point, int, error) {
	if p == q {
		return Point{}, 0, fmt.Errorf("%w: %v", ErrSamePoint, p)
	}
	d := q.Sub(p)
	n := gcd(d.X, d.Y)
	return Point{d.X / n, d.Y / n}, n, nil
}

func (p Point) step(delta Point) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for cur := p.Add(delta); ; cur = cur.Add(delta) {
			if !yield(cur) {
				return
			}
		}
	}
}

// DirTo returns the orthogonal direction from p to q. It fails with
// ErrSamePoint when p == q and ErrNotAligned when they share neither row nor column.
func (p Point) DirTo(q Point) (Dir, error) {
	d := q.Sub(p)
	switch {
	case d.X == 0 && d.Y == 0:
		return 0, fmt.Errorf("%w: %v", ErrSamePoint, p)
	case d.X == 0 && d.Y < 0:
		return North, nil
	case d.X == 0:
		return South, nil
	case d.Y == 0 && d.X > 0:
		return East, nil
	case d.Y == 0:
		return West, nil
	default:
		return 0, fmt.Errorf("%w: %v and %v", ErrNotAligned, p, q)
	}
}

// Dir8To returns the 8-way direction from p to q. The points must share a
// row, a column or a diagonal.
func (p Point) Dir8To(q Point) (Dir8, error) {
	d := q.Sub(p)
	switch {
	case d.X == 0 && d.Y == 0:
		return 0, fmt.Errorf("%w: %v", ErrSamePoint, p)
	case d.X != 0 && d.Y != 0 && abs(d.X) != abs(d.Y):
		return 0, fmt.Errorf("%w: %v and %v", ErrNotAligned, p, q)
	}
	unit := d.Sign()
	for _, dir := range Dirs8() {
		if dir.Delta() == unit {
			return dir, nil
		}
	}
	return 0, fmt.Errorf("%w: %v and %v", ErrNotAligned, p, q)
}
