// Package prim_kruskal provides an implementation of Kruskal’s minimum spanning forest algorithm.
// It accepts any core.View and produces a Forest of canonical edges.
package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/tubenet/core"
	"github.com/katalvlaran/tubenet/unionfind"
)

// Kruskal computes the minimum spanning forest of an undirected, weighted graph.
// It uses a disjoint-set (unionfind.Forest) with path compression and union by rank.
//
// A disconnected graph is not an error: the result holds one tree per
// component and Forest.Components says how many.
//
// Steps:
//  1. Validate: graph != nil.
//  2. Collect all edges via graph.Edges() (canonical, U < V).
//  3. Sort by (Weight, U, V). The key is a total order, so equal weights break
//     the same way on every run.
//  4. Initialize one singleton set per vertex.
//  5. For each edge (u,v): if Find(u) != Find(v), Union and accept; otherwise
//     it would close a cycle and is skipped.
//  6. Stop early once n-1 edges are accepted (the forest is a single tree).
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V). Memory: O(E + V).
func Kruskal(graph core.View) (*Forest, error) {
	// 1. Validate input.
	if graph == nil {
		return nil, ErrNilGraph
	}
	n := graph.VertexCount()

	// 2-3. Edges come back as a fresh copy, so sorting in place is safe.
	edges := graph.Edges()
	sort.Slice(edges, func(i, j int) bool {
		return edgeLess(edges[i], edges[j])
	})

	// 4. Disjoint-set forest owned by this run.
	sets := unionfind.New(n)

	// 5. Scan.
	f := &Forest{Edges: make([]core.Edge, 0, max(n-1, 0))}
	for _, e := range edges {
		if !sets.Union(e.U, e.V) {
			continue
		}
		f.Edges = append(f.Edges, e)
		f.TotalWeight += e.Weight
		// 6. A spanning tree is complete.
		if len(f.Edges) == n-1 {
			break
		}
	}
	f.Components = sets.Count()

	return f, nil
}

// edgeLess orders edges by (Weight, U, V).
func edgeLess(a, b core.Edge) bool {
	if a.Weight != b.Weight {
		return a.Weight < b.Weight
	}
	if a.U != b.U {
		return a.U < b.U
	}

	return a.V < b.V
}
