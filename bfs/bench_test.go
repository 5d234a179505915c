package bfs_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tubenet/bfs"
	"github.com/katalvlaran/tubenet/builder"
	"github.com/katalvlaran/tubenet/core"
)

// benchGraph generates a network with cons and freezes it.
func benchGraph(b *testing.B, cons builder.Constructor, opts ...builder.BuilderOption) *core.Graph {
	b.Helper()
	d, err := builder.BuildNetwork(opts, cons)
	require.NoError(b, err)
	g, _, err := d.Graph()
	require.NoError(b, err)

	return g
}

// BenchmarkBFS_Chain measures BFS on one line of 10001 stations.
func BenchmarkBFS_Chain(b *testing.B) {
	g := benchGraph(b, builder.Path(10001), builder.WithIDScheme(builder.DefaultIDFn))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0)
	}
}

// BenchmarkBFS_Grid runs BFS on a 32×32 street grid.
func BenchmarkBFS_Grid(b *testing.B) {
	g := benchGraph(b, builder.Grid(32, 32), builder.WithExcelColumnIDs())

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0)
	}
}
