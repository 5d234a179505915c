// File: view.go
// Role: Read-only contract consumed by the algorithm packages.

package core

// View is the read-only surface the engines (dijkstra, bfs, prim_kruskal)
// run against. *Graph implements it; tests may supply their own.
type View interface {
	// VertexCount returns n; vertex ids are 0..n-1.
	VertexCount() int

	// Edges returns each undirected edge once, U < V, sorted by (U, V).
	Edges() []Edge

	// VisitNeighbors calls fn for each neighbor of u until fn returns false.
	VisitNeighbors(u int, fn func(nb Neighbor) bool) error
}

var _ View = (*Graph)(nil)
