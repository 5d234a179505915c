// File: bridges.go
// Role: bridge detection (connections whose removal splits a component).
// Method: one forest DFS recording discovery time and low-link per vertex.
//   low[v] = min(disc[v], disc[w] for back edges v-w, low[c] for tree children c)
//   tree edge p-c is a bridge  ⇔  low[c] > disc[p]
// The graph is simple, so skipping the parent vertex once is exact.

package dfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/tubenet/core"
)

// Bridges returns every edge of g whose removal increases the number of
// connected components, in canonical (U < V) form sorted by (U, V).
//
// Every bridge belongs to every spanning forest of g.
//
// Complexity: O(V + E) time, O(V) space.
func Bridges(g core.View) ([]core.Edge, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	n := g.VertexCount()
	b := &bridgeFinder{
		g:    g,
		disc: make([]int, n),
		low:  make([]int, n),
	}
	for v := range b.disc {
		b.disc[v] = -1
	}
	for v := 0; v < n; v++ {
		if b.disc[v] < 0 {
			if err := b.visit(v, -1); err != nil {
				return nil, err
			}
		}
	}

	sort.Slice(b.found, func(i, j int) bool {
		if b.found[i].U != b.found[j].U {
			return b.found[i].U < b.found[j].U
		}
		return b.found[i].V < b.found[j].V
	})

	return b.found, nil
}

// bridgeFinder holds low-link state for one Bridges call.
type bridgeFinder struct {
	g     core.View
	disc  []int // discovery time, -1 if unvisited
	low   []int
	timer int
	found []core.Edge
}

func (b *bridgeFinder) visit(u, parent int) error {
	b.disc[u] = b.timer
	b.low[u] = b.timer
	b.timer++

	var nbs []core.Neighbor
	if err := b.g.VisitNeighbors(u, func(nb core.Neighbor) bool {
		nbs = append(nbs, nb)
		return true
	}); err != nil {
		return fmt.Errorf("dfs: neighbors of %d: %w", u, err)
	}

	for _, nb := range nbs {
		v := nb.To
		if v == parent {
			continue
		}
		if b.disc[v] >= 0 {
			b.low[u] = min(b.low[u], b.disc[v])
			continue
		}
		if err := b.visit(v, u); err != nil {
			return err
		}
		b.low[u] = min(b.low[u], b.low[v])
		if b.low[v] > b.disc[u] {
			e := core.Edge{U: u, V: v, Weight: nb.Weight, Line: nb.Line}
			if e.U > e.V {
				e.U, e.V = e.V, e.U
			}
			b.found = append(b.found, e)
		}
	}

	return nil
}
