package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/tubenet/bfs"
	"github.com/katalvlaran/tubenet/core"
)

// ExampleBFS counts stops rather than minutes.
func ExampleBFS() {
	// 0=A, 1=B, 2=C; the direct A-C link is slow but a single stop.
	g, _ := core.NewGraph(3)
	_ = g.InsertEdge(0, 1, 4)
	_ = g.InsertEdge(1, 2, 3)
	_ = g.InsertEdge(0, 2, 10)

	res, _ := bfs.BFS(g, 0)
	route, _, _ := res.PathTo(2)
	fmt.Println("order:", res.Order)
	fmt.Println("route:", route, "stops:", res.Depth[2])

	// Output:
	// order: [0 1 2]
	// route: [0 2] stops: 1
}
