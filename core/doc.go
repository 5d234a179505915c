// Package core provides the in-memory Graph store of a transit network: an
// undirected, weighted, simple graph over dense integer vertex ids.
//
// The Graph G = (V,E) guarantees:
//
//   - Fixed vertex set 0..n-1, chosen once at construction (arena + index).
//   - Undirected edges: InsertEdge(u,v,w) makes v reachable from u and u from v
//     with the same weight.
//   - Simple graph: no self-loops, at most one edge per unordered pair.
//     A second insert for a stored pair fails with ErrDuplicateEdge; merging
//     duplicates (minimum weight wins) is the ingestion layer's job.
//   - Non-negative weights (minutes); NaN and negatives fail with ErrNegativeWeight.
//   - Deterministic iteration: Edges() is sorted by (U, V); adjacency lists keep
//     insertion order.
//
// Core Methods:
//
//	NewGraph(n int) (*Graph, error)                   // O(n)
//	InsertEdge(u, v int, w float64, opts...) error    // O(1) amortized
//	HasEdge(u, v int) bool                            // O(1)
//	FindEdge(u, v int) (Edge, bool)                   // O(1)
//	Neighbors(u int) ([]Neighbor, error)              // O(deg u)
//	VisitNeighbors(u int, fn) error                   // O(deg u), no copy
//	Degree(u int) (int, error)                        // O(1)
//	Edges() []Edge                                    // O(E log E)
//	VertexCount() int / EdgeCount() int               // O(1)
//	Stats() *GraphStats                               // O(V+E)
//	Clone() *Graph / CloneEmpty() *Graph              // O(V+E) / O(V)
//	Subgraph(keep []Edge) (*Graph, error)             // O(V+K)
//
// Concurrency:
//
//	A single sync.RWMutex guards edges and adjacency. Once ingestion is done
//	the graph is only read, so any number of engine runs may share it; each
//	run owns its own distance/predecessor tables.
//
// Quick ASCII example:
//
//	  A ──4── B
//	   \      │
//	   10     3
//	     \    │
//	      ─── C
//
//	n=3, edges {0,1,4}, {1,2,3}, {0,2,10}.
package core
