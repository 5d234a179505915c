// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on weighted transit graphs.
//
// Dijkstra computes the minimum-time path from a single source station to all
// other reachable stations in a graph with non-negative edge weights.
//
// Complexity:
//
//	– Time:  O((V + E) log V)   where V = |vertices|, E = |edges|
//	   • Each vertex is settled at most once (V extracts).
//	   • Each edge relaxation may push into the priority queue (up to 2E pushes).
//	– Space: O(V + E)
//	   • O(V) for the distance and predecessor tables.
//	   • O(E) in the priority queue in the worst case (lazy decrease-key).
//
// Options:
//
//	– Source:           id of the starting vertex (required, must be in [0, n)).
//	– MaxDistance:      optional cap on distances to explore; vertices beyond stay unreached.
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//
// Errors (sentinel):
//
//	– ErrNoSource        if no Source option was given.
//	– ErrNilGraph        if the provided graph is nil.
//	– ErrVertexNotFound  if the source id is outside the graph.
//	– ErrNegativeWeight  if a negative (or NaN) edge weight is detected in the graph.
//	– ErrBadMaxDistance  if MaxDistance < 0 (panic from WithMaxDistance).
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0 (panic from WithInfEdgeThreshold).
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/tubenet/path"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNoSource indicates that Dijkstra was called without a Source option.
	ErrNoSource = errors.New("dijkstra: source vertex not set")

	// ErrNilGraph indicates that a nil graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source vertex does not exist in the graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	// Label-setting is incorrect on such graphs, so the run is refused up front.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// noSource marks Options.Source as unset; 0 is a valid vertex id.
const noSource = -1

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting vertex id (required).
// MaxDistance      – optional cap on distances to explore. Default +Inf (no cap).
// InfEdgeThreshold – treat edges with weight ≥ this threshold as impassable.
//
//	Default +Inf (no obstacles).
type Options struct {
	Source           int     // The id of the source vertex
	MaxDistance      float64 // Maximum distance to explore
	InfEdgeThreshold float64 // Weight threshold at or above which edges are non-traversable
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex id. Must be given.
func Source(id int) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are left unreached.
// Panics on negative or NaN values (invalid configuration is a programmer error).
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold at or above which edges are
// considered non-traversable (closed connections).
// Panics on zero, negative or NaN values.
func WithInfEdgeThreshold(threshold float64) Option {
	if threshold <= 0 || math.IsNaN(threshold) {
		panic(ErrBadInfThreshold.Error())
	}

	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct with no source and no limits.
//
// Defaults:
//   - Source:           unset (Dijkstra fails with ErrNoSource).
//   - MaxDistance:      +Inf.
//   - InfEdgeThreshold: +Inf.
func DefaultOptions() Options {
	return Options{
		Source:           noSource,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}

// Result is the full output of one Dijkstra run.
//
// Dist[v] is the minimum total weight from Source to v, or +Inf if v is
// unreachable. Prev[v] is v's predecessor on the chosen shortest path, or
// path.None for the source and for unreachable vertices.
//
// A Result is owned by the caller; the engine keeps no reference to it.
type Result struct {
	Source int
	Dist   []float64
	Prev   []int
}

// Reachable reports whether v was reached from Source.
func (r *Result) Reachable(v int) bool {
	return v >= 0 && v < len(r.Dist) && !math.IsInf(r.Dist[v], 1)
}

// PathTo reconstructs the shortest path Source → v.
// ok is false when v is unreachable.
func (r *Result) PathTo(v int) ([]int, bool, error) {
	if v >= 0 && v < len(r.Dist) && math.IsInf(r.Dist[v], 1) {
		return nil, false, nil
	}

	return path.Reconstruct(r.Prev, r.Source, v)
}
