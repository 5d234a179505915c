package core_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tubenet/core"
)

// ExampleGraph demonstrates basic creation, insertion, and queries.
func ExampleGraph() {
	// 1) Three stations: 0=A, 1=B, 2=C.
	g, _ := core.NewGraph(3)

	// 2) Insert undirected connections (minutes).
	_ = g.InsertEdge(0, 1, 4)
	_ = g.InsertEdge(1, 2, 3)
	_ = g.InsertEdge(2, 0, 10)

	// 3) Inspect edges: canonical orientation U < V, sorted.
	for _, e := range g.Edges() {
		fmt.Printf("%d-%d %.0f\n", e.U, e.V, e.Weight)
	}
	fmt.Println("C reaches A?", g.HasEdge(2, 0))

	// Output:
	// 0-1 4
	// 0-2 10
	// 1-2 3
	// C reaches A? true
}

// ExampleGraph_duplicate shows that the store rejects a second edge for a pair.
func ExampleGraph_duplicate() {
	g, _ := core.NewGraph(2)
	_ = g.InsertEdge(0, 1, 5)

	err := g.InsertEdge(1, 0, 2)
	fmt.Println(errors.Is(err, core.ErrDuplicateEdge))

	// Output:
	// true
}
