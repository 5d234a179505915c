// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade exposing read-only getters.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go/doc.go.
//   - Every exported function documents complexity and locking strategy.

package core

// VertexCount returns the fixed number of vertices n.
//
// Implementation:
//   - n is set once by NewGraph and never mutated, so no lock is taken.
//   - A nil *Graph reports 0 vertices.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) VertexCount() int {
	if g == nil {
		return 0
	}

	return g.n
}

// Stats produces a deterministic, read-only snapshot of graph sizes.
//
// Implementation:
//   - Stage 1: Acquire mu.RLock.
//   - Stage 2: Scan the edge catalog for total weight, then adjacency for degrees.
//
// Returns:
//   - *GraphStats: immutable-by-convention snapshot.
//
// Determinism:
//   - TotalWeight is summed in insertion order, so repeated calls on the
//     same graph return bit-identical values.
//
// Complexity:
//   - Time O(V+E), Space O(1) plus the returned struct.
//
// A nil *Graph reports an empty snapshot.
func (g *Graph) Stats() *GraphStats {
	if g == nil {
		return &GraphStats{}
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		VertexCount: g.n,
		EdgeCount:   len(g.edges),
	}
	for _, e := range g.edges {
		stats.TotalWeight += e.Weight
	}
	for _, adj := range g.adjacency {
		d := len(adj)
		if d == 0 {
			stats.IsolatedCount++
		}
		if d > stats.MaxDegree {
			stats.MaxDegree = d
		}
	}

	return &stats
}
