// Package grid provides Table, a dense rectangular container addressed by
// geom.Point, together with cell-set Regions built on roaring bitmaps.
//
// What:
//
//   - Table[T] stores Width×Height values in row-major order. Its shape is
//     fixed at construction; transforms (rotate, mirror, transpose, extend)
//     return new tables.
//   - Neighbors and Neighbors8 never wrap: cells outside the table are dropped.
//   - Ray walks from a cell away from one of its neighbours until the table edge,
//     which is how beam and line-of-sight puzzles are usually simulated.
//   - Region is a set of cells of one table shape, keyed by row-major index.
//     FloodFill and Regions compute connected areas of matching cells.
//
// Scan order:
//
//   - Cells, Find, FindAll, Border and SubRegion visit cells row by row
//     (y outer, x inner). Region.Points uses the same order.
//
// Complexity:
//
//   - At/Set/Update: O(1).
//   - Transforms, Fill, Count, Find: O(W×H).
//   - FloodFill/Regions: O(W×H×d), d = 4 or 8.
//
// Errors:
//
//   - ErrBadShape:       width or height would not be positive.
//   - ErrEmptyGrid:      input rows are empty.
//   - ErrNonRectangular: input rows differ in length.
//   - ErrOutOfRange:     a coordinate lies outside the table.
//   - ErrNotFound:       a searched value is absent.
//   - ErrNotNeighbor:    Ray was given a second cell that is not adjacent to the first.
//
// A Table is not safe for concurrent writes; callers that share one across
// goroutines must synchronise externally.
package grid
