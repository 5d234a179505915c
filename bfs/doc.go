// Package bfs provides breadth-first search over a core.View, returning
// fewest-stops distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing number of connections from a start vertex.
//   - Returns a BFSResult containing:
//   - Order:  visit sequence
//   - Depth:  dense table vertex → connections from start (Unreached if never seen)
//   - Parent: dense table vertex → predecessor in the BFS tree (path.None for roots)
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a vertex is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual connections via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - Answer "fewest stops" journeys in O(V + E) time, ignoring travel minutes.
//   - Discover the part of the network reachable from a station.
//
// Determinism
//
//	Neighbors are enqueued in adjacency order, which core.Graph keeps in
//	insertion order. A graph built in a fixed order therefore always yields
//	the same Order, Depth, and Parent tables.
//
// Callbacks
//
//	FilterNeighbor runs while the graph's read lock is held; it must not call
//	back into the graph.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)   (each vertex and edge seen at most once)
//   - Memory: O(V)       (queue, Depth, Parent, Order)
//
// Usage
//
//	res, err := bfs.BFS(g, 0)
//	if err != nil {
//	    // ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, ctx error, or hook error
//	}
//	stops, ok, _ := res.PathTo(7)
package bfs
