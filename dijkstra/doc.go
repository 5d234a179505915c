// Package dijkstra provides single-source minimum-time routing over a transit
// graph with non-negative edge weights.
//
// Overview:
//
//   - Dijkstra computes the minimum total weight from one source vertex to every
//     reachable vertex in O((V + E) log V) time, where V = |vertices| and E = |edges|.
//   - It relies on a min-heap (priority queue) to always settle the next-closest vertex.
//   - The full predecessor table is always returned, so one run answers queries
//     for every target via Result.PathTo.
//
// When to use:
//
//   - Journey planning where the cost is travel time in minutes.
//   - Comparing a full network against a reduced one (closures, backbones):
//     run once on each graph and compare Dist.
//
// Key features:
//
//   - Functional options allow fine-tuning behavior without changing the API signature.
//   - MaxDistance: stops exploration beyond a specified distance.
//   - InfEdgeThreshold: treats any edge with weight ≥ threshold as impassable.
//   - Determinism: equal-distance vertices settle in ascending id order and only
//     strict improvements replace a predecessor, so repeated runs on the same
//     graph return identical tables.
//
// Error handling (sentinel errors):
//
//   - ErrNoSource:        no Source option was given.
//   - ErrNilGraph:        the graph is nil.
//   - ErrVertexNotFound:  the source id is outside [0, n).
//   - ErrNegativeWeight:  some edge has a negative weight (O(E) pre-scan).
//   - ErrBadMaxDistance:  panic from WithMaxDistance on a negative value.
//   - ErrBadInfThreshold: panic from WithInfEdgeThreshold on a non-positive value.
//
// API reference:
//
//	func Dijkstra(g core.View, opts ...Option) (*Result, error)
//
//	  - Result.Dist[v]: minimal distance, or +Inf if unreachable.
//	  - Result.Prev[v]: predecessor, or path.None for the source and unreachable vertices.
//	  - Result.PathTo(v): ordered vertex sequence Source → v.
//
// Example:
//
//	res, err := dijkstra.Dijkstra(g, dijkstra.Source(0))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	route, ok, _ := res.PathTo(2)
//	fmt.Println(route, ok, res.Dist[2])
package dijkstra
