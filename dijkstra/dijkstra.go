// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted
// transit graphs.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) to detect negative weights and fail fast.
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable “wall”.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - Heap order is (dist, vertex id), a total order, so equal-distance vertices
//     are always settled smallest id first and runs are reproducible.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/tubenet/core"
	"github.com/katalvlaran/tubenet/path"
)

// Dijkstra computes shortest distances from Options.Source to every vertex of g.
//
// Returns:
//
//   - *Result with full distance and predecessor tables, so one run answers
//     queries for every target.
//   - err: error if inputs are invalid or if a negative weight is detected.
//
// Preconditions and validation (in order):
//  1. A Source option must be given (ErrNoSource).
//  2. g must be non-nil (ErrNilGraph).
//  3. Source must be in [0, n) (ErrVertexNotFound).
//  4. No edge in g can have negative or NaN weight (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g core.View, opts ...Option) (*Result, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate
	if cfg.Source == noSource {
		return nil, ErrNoSource
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.VertexCount()
	if cfg.Source < 0 || cfg.Source >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrVertexNotFound, cfg.Source, n)
	}

	// 3) Pre-scan all edges to detect negative weights.
	for _, e := range g.Edges() {
		if e.Weight < 0 || math.IsNaN(e.Weight) {
			return nil, fmt.Errorf("%w: edge %d-%d weight=%g", ErrNegativeWeight, e.U, e.V, e.Weight)
		}
	}

	// 4) Run.
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]float64, n),
		prev:    path.NewTable(n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	return &Result{Source: cfg.Source, Dist: r.dist, Prev: r.prev}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       core.View // The input graph; read-only within Dijkstra.
	options Options   // Configuration options (Source, thresholds).
	dist    []float64 // dist[v] = current best distance from Source.
	prev    []int     // prev[v] = predecessor on the shortest path.
	visited []bool    // visited[v] = distance of v is final.
	pq      nodePQ    // Min-heap of nodeItem for lazy priority queue.
}

// init sets dist to +Inf everywhere except the source and seeds the heap.
func (r *runner) init() {
	inf := math.Inf(1)
	for v := range r.dist {
		r.dist[v] = inf
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, nodeItem{id: r.options.Source, dist: 0})
}

// process is the core loop: extract the closest unsettled vertex, settle it,
// relax its edges.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable vertices processed).
//   - The minimum distance in the heap exceeds MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem)
		u := item.id

		// Skip stale heap entries.
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax attempts to improve the distance of every neighbor of the settled vertex u.
// Only strict improvements are taken, so the first predecessor found at a
// given distance is kept.
func (r *runner) relax(u int) error {
	du := r.dist[u]

	return r.g.VisitNeighbors(u, func(nb core.Neighbor) bool {
		v := nb.To
		if r.visited[v] {
			return true
		}
		// Closed connections are walls.
		if nb.Weight >= r.options.InfEdgeThreshold {
			return true
		}
		nd := du + nb.Weight
		if nd > r.options.MaxDistance {
			return true
		}
		if nd < r.dist[v] {
			r.dist[v] = nd
			r.prev[v] = u
			heap.Push(&r.pq, nodeItem{id: v, dist: nd})
		}

		return true
	})
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem struct {
	id   int     // vertex id
	dist float64 // distance from source
}

// nodePQ is a min-heap of nodeItem ordered by (dist, id).
type nodePQ []nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, breaking ties by vertex id.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(nodeItem)) }

// Pop removes and returns the last element (heap.Pop moves the minimum there).
func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
