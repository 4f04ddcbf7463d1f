// Package geom provides the integer coordinate primitives shared by the rest
// of gridpath: 2D points, N-dimensional vectors and compass directions.
//
// What:
//
//   - Point is a 2D integer coordinate with value semantics. Y grows downward,
//     so North is (0,-1) and East is (1,0).
//   - Vector is an immutable N-dimensional integer tuple. Arithmetic between
//     vectors of different dimension fails with ErrDimensionMismatch.
//   - Dir enumerates the 4 orthogonal compass directions; Dir8 adds the
//     4 diagonals. Both form closed algebras (Opposite, rotations, mirrors).
//
// Ordering:
//
//   - Points and vectors compare lexicographically, first coordinate most
//     significant. Neighbors and Neighbors8 yield in that order.
//
// Sequences:
//
//   - Ray, Ray8 and RayTo return infinite iter.Seq values. Bound them at the
//     call site with Limit, a break, or by intersecting with a finite container.
//
// Metrics:
//
//   - Manhattan (L1), Chebyshev (L∞), SquaredEuclidean and Euclidean.
//
// Errors:
//
//   - ErrDimensionMismatch: vector operands differ in dimension.
//   - ErrSamePoint:         a direction or line was requested between identical points.
//   - ErrNotAligned:        the points are not on a common axis (or diagonal for Dir8To).
package geom
