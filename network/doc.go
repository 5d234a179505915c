// Package network is the query facade over a frozen transit graph.
//
// A Network pairs a core.Graph with the stations.Index naming its vertices
// and answers questions by station name:
//
//   - ShortestRoute: least total minutes (dijkstra).
//   - FewestStops:   fewest connections (bfs). Never mix the two metrics:
//     a fewest-stops journey may be slower, and a fastest one may stop more.
//   - Backbone:      minimum spanning forest plus the closable connections
//     (prim_kruskal).
//   - Impact:        how much slower a journey gets when every closable
//     connection is removed.
//
// Unreachable targets are results, not errors: Journey.Reachable is false and
// Path is empty. Unknown names fail with stations.ErrUnknownStation.
//
// A Network is read-only after construction; all methods are safe for
// concurrent use. Each query allocates its own scratch tables.
package network
