// Package path turns predecessor tables produced by the dijkstra and bfs
// engines into ordered vertex sequences.
//
// A predecessor table prev has one entry per vertex: prev[v] is the vertex
// preceding v on the chosen path from the source, or None when v is the
// source itself or was never reached.
//
// Reconstruct distinguishes three outcomes:
//
//   - ok == true:  a path source → … → target.
//   - ok == false: target is unreachable. This is a normal result, not an error.
//   - err != nil:  the table itself is malformed (ErrCorruptPredecessorTable)
//     or the query is out of range (ErrVertexOutOfRange).
package path

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tubenet/core"
)

// None marks "no predecessor" in a predecessor table.
const None = -1

var (
	// ErrCorruptPredecessorTable indicates the walk revisited a vertex or hit an
	// out-of-range predecessor. It always signals an engine bug.
	ErrCorruptPredecessorTable = errors.New("path: corrupt predecessor table")

	// ErrVertexOutOfRange indicates source or target outside the table.
	ErrVertexOutOfRange = errors.New("path: vertex out of range")

	// ErrMissingEdge indicates two consecutive path vertices are not adjacent in the graph.
	ErrMissingEdge = errors.New("path: consecutive vertices are not adjacent")
)

// Reconstruct walks prev from target back to source and returns the vertices
// in source → target order.
//
// Steps:
//  1. Validate source and target against len(prev).
//  2. Walk predecessors, marking each vertex; a repeat means a cycle.
//  3. Stop at source (found) or at None (unreachable).
//  4. Reverse the collected sequence.
//
// Complexity: O(V) time and space.
func Reconstruct(prev []int, source, target int) ([]int, bool, error) {
	n := len(prev)
	if source < 0 || source >= n {
		return nil, false, fmt.Errorf("%w: source %d not in [0,%d)", ErrVertexOutOfRange, source, n)
	}
	if target < 0 || target >= n {
		return nil, false, fmt.Errorf("%w: target %d not in [0,%d)", ErrVertexOutOfRange, target, n)
	}

	visited := make([]bool, n)
	seq := make([]int, 0, 8)
	for cur := target; ; {
		if visited[cur] {
			return nil, false, fmt.Errorf("%w: vertex %d repeated before reaching source %d",
				ErrCorruptPredecessorTable, cur, source)
		}
		visited[cur] = true
		seq = append(seq, cur)

		if cur == source {
			break
		}

		p := prev[cur]
		if p == None {
			// The chain ends before the source: target was not reached.
			return nil, false, nil
		}
		if p < 0 || p >= n {
			return nil, false, fmt.Errorf("%w: prev[%d]=%d not in [0,%d)",
				ErrCorruptPredecessorTable, cur, p, n)
		}
		cur = p
	}

	for i, j := 0, len(seq)-1; i < j; i, j = i+1, j-1 {
		seq[i], seq[j] = seq[j], seq[i]
	}

	return seq, true, nil
}

// Weight sums the edge weights along p in order, starting from zero, so the
// result matches a distance accumulated by relaxation along the same path.
// An empty or single-vertex path weighs 0.
// Complexity: O(len(p)).
func Weight(g *core.Graph, p []int) (float64, error) {
	var total float64
	for i := 1; i < len(p); i++ {
		e, ok := g.FindEdge(p[i-1], p[i])
		if !ok {
			return 0, fmt.Errorf("%w: %d-%d", ErrMissingEdge, p[i-1], p[i])
		}
		total += e.Weight
	}

	return total, nil
}

// NewTable returns a predecessor table of n entries, all None.
func NewTable(n int) []int {
	prev := make([]int, n)
	for i := range prev {
		prev[i] = None
	}

	return prev
}
