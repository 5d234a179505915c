// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, Degree, Walk).
// Determinism:
//   - Neighbors() returns entries in insertion order; ingestion inserts in
//     canonical (U, V) order, so identical input yields identical lists.
// Concurrency:
//   - Read operations hold mu read lock.

package core

// Neighbors returns a copy of the adjacency list of u.
//
// Behavior highlights:
//   - Every undirected edge appears in both endpoints' lists with the same weight.
//   - The returned slice is independent of the store (safe to mutate).
//
// Errors:
//   - ErrVertexOutOfRange if u is not in [0, n).
//
// Complexity: O(deg(u)).
func (g *Graph) Neighbors(u int) ([]Neighbor, error) {
	if err := g.checkVertex(u); err != nil {
		return nil, err
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Neighbor, len(g.adjacency[u]))
	copy(out, g.adjacency[u])

	return out, nil
}

// VisitNeighbors calls fn for each neighbor of u without copying the list.
// Iteration stops early when fn returns false. fn must not call back into g.
//
// Engines use this on the hot path to avoid an allocation per settled vertex.
//
// Complexity: O(deg(u)).
func (g *Graph) VisitNeighbors(u int, fn func(nb Neighbor) bool) error {
	if err := g.checkVertex(u); err != nil {
		return err
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, nb := range g.adjacency[u] {
		if !fn(nb) {
			break
		}
	}

	return nil
}

// Degree returns the number of edges incident to u.
// Complexity: O(1).
func (g *Graph) Degree(u int) (int, error) {
	if err := g.checkVertex(u); err != nil {
		return 0, err
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[u]), nil
}
