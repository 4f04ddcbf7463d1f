// Package gridpath is a toolkit for grid puzzles and implicit-graph search:
// integer geometry, intervals and boxes, rectangular tables of cells, and
// shortest-path solvers that never need the graph materialized.
//
// What is in the box?
//
//	• Coordinates: 2D points, N-D vectors, 4- and 8-way directions, rays
//	• Intervals: inclusive integer ranges and N-D boxes with lazy enumeration
//	• Tables: rectangular grids with ray casting, rotation, mirroring, flood fill
//	• Shortest paths: Dijkstra, Bellman-Ford, BFS over an edge-provider callback
//	• Grid graphs: tables as graphs, connected regions, cheapest bridges
//
// Subpackages:
//
//	geom:        Point, Vector, Dir, Dir8 and the sequence helpers Limit, TakeWhile
//	interval:    Range, Box, bounding boxes
//	grid:        Table[T], Region (roaring bitmap cell sets)
//	core:        Edge, Expander, Result, Path shared by every solver
//	dijkstra:    non-negative weights, multi-source, early exit on target
//	bellmanford: arbitrary weights, negative-cycle detection
//	bfs:         unit weights, level order
//	gridgraph:   grid.Table as core.Expander[geom.Point]
//
// Quick ASCII example:
//
//	S.#
//	..#
//	#.E
//
//	parsed with grid.Parse and wrapped by gridgraph.New, ShortestPath(S, E)
//	returns a 4-step route around the walls.
//
// Coordinates grow right (x) and down (y); North is (0,-1).
//
//	go get github.com/katalvlaran/gridpath
package gridpath
