// Package dfs implements depth-first search (single-source and forest) on a
// transit graph view.
//
// Key features:
//   - DFS(g, start, opts...): traverse from a root or the full forest via WithFullTraversal
//   - Hooks: OnVisit (pre-order) & OnExit (post-order) with error aborts
//   - Limits: MaxDepth, FilterNeighbor, SkippedNeighbors diagnostic count
//   - Cancellation via context.Context
//
// Complexity:
//
//   - Time:   O(V + E), plus overhead of hooks and filters.
//   - Memory: O(V) for the recursion stack and result tables.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/tubenet/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph core.View  // underlying graph
	opts  DFSOptions // traversal options
	res   *DFSResult // result collector
}

// DFS performs depth-first search on graph g. If opts include WithFullTraversal,
// it covers all disconnected components; otherwise, it starts only from start.
// Neighbors are explored in adjacency order, so repeated runs are identical.
// Returns DFSResult or error if aborted by context or hook; on abort the
// partial result is returned alongside the error.
func DFS(g core.View, start int, opts ...Option) (*DFSResult, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Single-source mode: verify start
	n := g.VertexCount()
	if !dopts.FullTraversal && (start < 0 || start >= n) {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrStartVertexNotFound, start, n)
	}

	res := newResult(n)
	walker := &dfsWalker{graph: g, opts: dopts, res: res}

	// 4. Traverse: forest or single tree
	if !dopts.FullTraversal {
		return res, walker.traverse(start, 0)
	}
	for v := 0; v < n; v++ {
		if res.Visited[v] {
			continue
		}
		if err := walker.traverse(v, 0); err != nil {
			return res, err
		}
	}

	return res, nil
}

// traverse visits vertex id at given depth, recursing to neighbors.
func (w *dfsWalker) traverse(id, depth int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Depth limit: stop if exceeded
	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	// 3. Mark visited and record depth
	w.res.Visited[id] = true
	w.res.Depth[id] = depth

	// 4. Pre-order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnVisit hook for %d: %w", id, err)
		}
	}

	// 5. Snapshot neighbors, then explore each one.
	var nbs []int
	if err := w.graph.VisitNeighbors(id, func(nb core.Neighbor) bool {
		nbs = append(nbs, nb.To)
		return true
	}); err != nil {
		w.res.Order = nil

		return fmt.Errorf("dfs: neighbors of %d: %w", id, err)
	}
	for _, nid := range nbs {
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(id, nid) {
			w.res.SkippedNeighbors++
			continue
		}
		if w.res.Visited[nid] {
			continue
		}
		// Beyond the depth limit a neighbor stays undiscovered.
		if w.opts.MaxDepth >= 0 && depth+1 > w.opts.MaxDepth {
			continue
		}
		w.res.Parent[nid] = id
		if err := w.traverse(nid, depth+1); err != nil {
			return err
		}
	}

	// 6. Post-order hook
	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(id); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnExit hook for %d: %w", id, err)
		}
	}

	// 7. Record finish order
	w.res.Order = append(w.res.Order, id)

	return nil
}
