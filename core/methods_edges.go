// File: methods_edges.go
// Role: Edge lifecycle & queries: InsertEdge/HasEdge/FindEdge/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges sorted by (U, V) asc.
//   - Adjacency lists keep insertion order.
// Concurrency:
//   - Mutations under mu write lock.
//   - Read queries under mu read lock.

package core

import (
	"fmt"
	"math"
	"sort"
)

// canon returns the canonical (min,max) orientation of a pair.
func canon(u, v int) (int, int) {
	if u > v {
		return v, u
	}

	return u, v
}

// checkVertex reports ErrVertexOutOfRange for ids outside [0, n).
// Every id is out of range on a nil *Graph.
func (g *Graph) checkVertex(id int) error {
	if n := g.VertexCount(); id < 0 || id >= n {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrVertexOutOfRange, id, n)
	}

	return nil
}

// InsertEdge stores the undirected edge {u,v} with weight w.
//
// Steps:
//  1. Validate ids, loop and weight.
//  2. Lock mu, reject an already stored pair with ErrDuplicateEdge.
//  3. Append the canonical edge to the catalog and mirror it into both adjacency lists.
//
// The store never merges duplicates itself: callers that want the
// min-weight policy compare against FindEdge before inserting.
//
// Complexity: O(1) amortized.
func (g *Graph) InsertEdge(u, v int, w float64, opts ...EdgeOption) error {
	if err := g.checkVertex(u); err != nil {
		return err
	}
	if err := g.checkVertex(v); err != nil {
		return err
	}
	if u == v {
		return fmt.Errorf("%w: vertex %d", ErrLoopNotAllowed, u)
	}
	if w < 0 || math.IsNaN(w) {
		return fmt.Errorf("%w: edge %d-%d weight=%g", ErrNegativeWeight, u, v, w)
	}

	a, b := canon(u, v)
	e := Edge{U: a, V: b, Weight: w}
	for _, opt := range opts {
		opt(&e)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	key := pairKey{a, b}
	if _, ok := g.index[key]; ok {
		return fmt.Errorf("%w: %d-%d", ErrDuplicateEdge, a, b)
	}

	g.index[key] = len(g.edges)
	g.edges = append(g.edges, e)
	g.adjacency[u] = append(g.adjacency[u], Neighbor{To: v, Weight: w, Line: e.Line})
	g.adjacency[v] = append(g.adjacency[v], Neighbor{To: u, Weight: w, Line: e.Line})

	return nil
}

// HasEdge reports whether an edge between u and v is stored.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	_, ok := g.FindEdge(u, v)

	return ok
}

// FindEdge returns the stored edge between u and v in canonical orientation.
// ok is false when no such edge exists or the ids are out of range.
// Complexity: O(1).
func (g *Graph) FindEdge(u, v int) (Edge, bool) {
	if g == nil {
		return Edge{}, false
	}
	a, b := canon(u, v)

	g.mu.RLock()
	defer g.mu.RUnlock()

	i, ok := g.index[pairKey{a, b}]
	if !ok {
		return Edge{}, false
	}

	return g.edges[i], true
}

// Edges returns a copy of every edge exactly once, oriented U < V and
// sorted by (U, V) ascending.
// A nil *Graph has no edges.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	if g == nil {
		return []Edge{}
	}
	g.mu.RLock()
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	g.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}

		return out[i].V < out[j].V
	})

	return out
}

// EdgeCount returns the number of stored undirected edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	if g == nil {
		return 0
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}
