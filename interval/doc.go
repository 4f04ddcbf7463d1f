// Package interval implements closed integer intervals (Range) and their
// N-dimensional products (Box).
//
// A Range [Min, Max] is empty when Min > Max; its Size is Max-Min+1 otherwise.
// A Box is described by two corner vectors of equal dimension and is empty
// when any axis is empty. Box enumeration is lexicographic with the last axis
// varying fastest, so All yields points in non-decreasing vector order.
//
// Errors:
//
//   - ErrDimensionMismatch: corner vectors (or box operands) differ in dimension.
//   - ErrOverlap:           Gap was requested for ranges that overlap or touch.
//   - ErrEmpty:             BoundingBox was given no points.
package interval
