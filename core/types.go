// Package core defines the Graph, Edge and Neighbor types of the transit
// network store, and provides thread-safe primitives for building and
// querying it.
//
// Vertices are dense integer ids 0..n-1 handed out by the stations index.
// The vertex count is fixed at construction; edges are undirected, weighted
// (minutes) and unique per unordered pair.
//
// Errors:
//
//	ErrVertexOutOfRange - vertex id outside [0, n).
//	ErrLoopNotAllowed   - edge from a vertex to itself.
//	ErrNegativeWeight   - weight < 0 or NaN.
//	ErrDuplicateEdge    - an edge for the unordered pair is already stored.
//	ErrBadVertexCount   - NewGraph called with n < 0.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexOutOfRange indicates an operation referenced an id outside [0, n).
	ErrVertexOutOfRange = errors.New("core: vertex id out of range")

	// ErrLoopNotAllowed indicates a self-loop was attempted; the store is a simple graph.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrNegativeWeight indicates a negative or NaN edge weight.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrDuplicateEdge indicates a second edge for an already stored unordered pair.
	// Ingestion is expected to merge duplicates (minimum weight wins) before inserting.
	ErrDuplicateEdge = errors.New("core: duplicate edge")

	// ErrBadVertexCount indicates a negative vertex count.
	ErrBadVertexCount = errors.New("core: vertex count must be non-negative")
)

// Edge is an undirected connection between two stations.
//
// Edges returned by the Graph are canonical: U < V.
type Edge struct {
	// U is the smaller endpoint id.
	U int

	// V is the larger endpoint id.
	V int

	// Weight is the travel time in minutes.
	Weight float64

	// Line is an optional display label (line name). Algorithms ignore it.
	Line string
}

// Neighbor is one entry of a vertex's adjacency list.
type Neighbor struct {
	To     int     // adjacent vertex id
	Weight float64 // weight of the connecting edge
	Line   string  // display label of the connecting edge
}

// EdgeOption configures properties of individual edges when inserted.
type EdgeOption func(*Edge)

// WithLine attaches a line name to the edge.
func WithLine(name string) EdgeOption {
	return func(e *Edge) { e.Line = name }
}

// pairKey is the canonical (min,max) key of an unordered pair.
type pairKey struct {
	u, v int
}

// Graph is the adjacency-list store of an undirected, weighted, simple graph.
//
// mu guards adjacency, index and edgeCount. The vertex count n never changes.
type Graph struct {
	mu sync.RWMutex

	n int

	// adjacency[u] lists neighbors of u in insertion order.
	adjacency [][]Neighbor

	// index maps a canonical pair to its position in edges.
	index map[pairKey]int

	// edges holds every edge once, canonical orientation, insertion order.
	edges []Edge
}

// NewGraph creates an empty Graph with n vertices and no edges.
// Complexity: O(n).
func NewGraph(n int) (*Graph, error) {
	if n < 0 {
		return nil, ErrBadVertexCount
	}

	return &Graph{
		n:         n,
		adjacency: make([][]Neighbor, n),
		index:     make(map[pairKey]int),
	}, nil
}

// GraphStats is a read-only snapshot of graph sizes.
type GraphStats struct {
	VertexCount   int     `json:"vertices" yaml:"vertices"`         // number of vertices (stations)
	EdgeCount     int     `json:"edges" yaml:"edges"`               // number of undirected edges (connections)
	TotalWeight   float64 `json:"total_weight" yaml:"total_weight"` // sum of all edge weights
	IsolatedCount int     `json:"isolated" yaml:"isolated"`         // vertices with no incident edge
	MaxDegree     int     `json:"max_degree" yaml:"max_degree"`     // largest adjacency list length
}
