// Package prim_kruskal provides an implementation of Prim’s minimum spanning forest algorithm.
// It grows a tree from a root vertex using a min-heap, then restarts from every
// uncovered vertex so disconnected graphs yield a forest.
package prim_kruskal

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/tubenet/core"
)

// Prim computes the minimum spanning forest of an undirected, weighted graph
// by growing outwards from root using a min-heap of candidate edges.
//
// Error Conditions:
//   - ErrNilGraph       : if graph is nil.
//   - ErrRootOutOfRange : if root is not in [0, n) on a non-empty graph.
//
// Steps:
//  1. Validate graph and root.
//  2. Grow a tree from root:
//     a. Mark root visited and push all its edges to unvisited neighbors.
//     b. Pop the lightest candidate; skip it if its far end is visited.
//     c. Otherwise accept it, mark the far end, push its outgoing candidates.
//  3. Restart step 2 from each still-unvisited vertex in ascending id order;
//     each restart is one more component.
//
// Candidates are ordered by (Weight, U, V) on their canonical form, the same
// key Kruskal sorts by, so the total weight always agrees with Kruskal.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(graph core.View, root int) (*Forest, error) {
	// 1. Validate.
	if graph == nil {
		return nil, ErrNilGraph
	}
	n := graph.VertexCount()
	if n == 0 {
		return &Forest{}, nil
	}
	if root < 0 || root >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrRootOutOfRange, root, n)
	}

	p := &primRunner{
		graph:   graph,
		visited: make([]bool, n),
		pq:      make(edgePQ, 0, n),
		forest:  &Forest{Edges: make([]core.Edge, 0, n-1)},
	}

	// 2. First tree from root.
	if err := p.grow(root); err != nil {
		return nil, err
	}
	// 3. Remaining components.
	for v := 0; v < n; v++ {
		if p.visited[v] {
			continue
		}
		if err := p.grow(v); err != nil {
			return nil, err
		}
	}

	return p.forest, nil
}

// primRunner holds the state of one Prim execution.
type primRunner struct {
	graph   core.View
	visited []bool
	pq      edgePQ
	forest  *Forest
}

// grow builds the minimum spanning tree of root's component.
func (p *primRunner) grow(root int) error {
	p.forest.Components++
	p.pq = p.pq[:0]
	if err := p.take(root); err != nil {
		return err
	}

	for p.pq.Len() > 0 {
		e := heap.Pop(&p.pq).(candidate)
		if p.visited[e.to] {
			continue
		}
		p.forest.Edges = append(p.forest.Edges, e.edge)
		p.forest.TotalWeight += e.edge.Weight
		if err := p.take(e.to); err != nil {
			return err
		}
	}

	return nil
}

// take marks v visited and pushes every edge from v to an unvisited vertex.
func (p *primRunner) take(v int) error {
	p.visited[v] = true

	return p.graph.VisitNeighbors(v, func(nb core.Neighbor) bool {
		if p.visited[nb.To] {
			return true
		}
		e := core.Edge{U: v, V: nb.To, Weight: nb.Weight, Line: nb.Line}
		if e.U > e.V {
			e.U, e.V = e.V, e.U
		}
		heap.Push(&p.pq, candidate{edge: e, to: nb.To})

		return true
	})
}

// candidate is an edge crossing the current cut, with the endpoint outside the tree.
type candidate struct {
	edge core.Edge
	to   int
}

// edgePQ implements heap.Interface for a min‐heap of candidates, ordered by edgeLess.
type edgePQ []candidate

// Len returns the number of edges in the priority queue.
func (pq edgePQ) Len() int { return len(pq) }

// Less compares canonical edges by (Weight, U, V).
func (pq edgePQ) Less(i, j int) bool { return edgeLess(pq[i].edge, pq[j].edge) }

// Swap swaps elements at indices i and j.
func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a new candidate to the heap. Called by heap.Push.
func (pq *edgePQ) Push(x any) { *pq = append(*pq, x.(candidate)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *edgePQ) Pop() any {
	old := *pq
	n := len(old)
	e := old[n-1]
	*pq = old[:n-1]

	return e
}
