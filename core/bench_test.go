// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"testing"

	"github.com/katalvlaran/tubenet/core"
)

// BenchmarkInsertEdge measures inserting a star of b.N edges.
func BenchmarkInsertEdge(b *testing.B) {
	g, _ := core.NewGraph(b.N + 1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.InsertEdge(0, i+1, float64(i%10))
	}
}

// BenchmarkNeighbors measures copying the adjacency of a high-degree vertex.
func BenchmarkNeighbors(b *testing.B) {
	const deg = 1000
	g, _ := core.NewGraph(deg + 1)
	for i := 1; i <= deg; i++ {
		_ = g.InsertEdge(0, i, 1)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Neighbors(0)
	}
}

// BenchmarkClone measures deep-copying a chain graph.
func BenchmarkClone(b *testing.B) {
	const n = 2000
	g, _ := core.NewGraph(n)
	for i := 1; i < n; i++ {
		_ = g.InsertEdge(i-1, i, 1)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Clone()
	}
}
