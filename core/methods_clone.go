// File: methods_clone.go
// Role: Cloning and edge-subset views of a graph.
// Determinism:
//   - Clone and Subgraph insert edges in (U, V) order, so their adjacency
//     lists are canonical regardless of the source's insertion history.
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graph.

package core

import "fmt"

// CloneEmpty returns a new Graph with the same vertex count and no edges.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	clone, _ := NewGraph(g.VertexCount()) // n >= 0 by construction

	return clone
}

// Clone returns a deep copy of the Graph.
// Complexity: O(V + E log E).
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()
	for _, e := range g.Edges() {
		// Cannot fail: e was validated when inserted into g.
		_ = clone.InsertEdge(e.U, e.V, e.Weight, WithLine(e.Line))
	}

	return clone
}

// Subgraph returns a new Graph over the same vertex set holding only keep.
//
// Every edge in keep must exist in g with the same weight; this is how the
// backbone (spanning forest) of a network is turned back into a routable graph.
//
// Errors:
//   - ErrVertexOutOfRange, ErrLoopNotAllowed, ErrNegativeWeight, ErrDuplicateEdge
//     from InsertEdge.
//   - an error wrapping nothing if an edge of keep is not present in g.
//
// Complexity: O(V + K).
func (g *Graph) Subgraph(keep []Edge) (*Graph, error) {
	sub := g.CloneEmpty()
	for _, e := range keep {
		orig, ok := g.FindEdge(e.U, e.V)
		if !ok || orig.Weight != e.Weight {
			return nil, fmt.Errorf("core: subgraph edge %d-%d (w=%g) not present in source graph", e.U, e.V, e.Weight)
		}
		if err := sub.InsertEdge(orig.U, orig.V, orig.Weight, WithLine(orig.Line)); err != nil {
			return nil, fmt.Errorf("core: subgraph: %w", err)
		}
	}

	return sub, nil
}
