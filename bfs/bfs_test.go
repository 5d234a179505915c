package bfs_test

import (
	"context"
	"errors"
	"math/rand"
	"reflect"
	"testing"

	"github.com/katalvlaran/tubenet/bfs"
	"github.com/katalvlaran/tubenet/core"
	"github.com/katalvlaran/tubenet/path"
)

// mustGraph builds an n-vertex graph from (u, v, w) triples or fails the test.
func mustGraph(t *testing.T, n int, edges [][3]int) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n)
	if err != nil {
		t.Fatalf("NewGraph(%d): %v", n, err)
	}
	for _, e := range edges {
		if err := g.InsertEdge(e[0], e[1], float64(e[2])); err != nil {
			t.Fatalf("InsertEdge(%v): %v", e, err)
		}
	}

	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, 0); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := mustGraph(t, 1, nil)
	if _, err := bfs.BFS(g, 1); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("out of range start: want ErrStartVertexNotFound, got %v", err)
	}
	if _, err := bfs.BFS(g, -1); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("negative start: want ErrStartVertexNotFound, got %v", err)
	}
	if _, err := bfs.BFS(g, 0, bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_SingleVertex covers the trivial one-vertex graph.
func TestBFS_SingleVertex(t *testing.T) {
	res, err := bfs.BFS(mustGraph(t, 1, nil), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int{0}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if d := res.Depth[0]; d != 0 {
		t.Errorf("Depth[0] = %d; want 0", d)
	}
	p, ok, err := res.PathTo(0)
	if err != nil || !ok || !reflect.DeepEqual(p, []int{0}) {
		t.Errorf("PathTo(0) = %v, %v, %v; want [0], true, nil", p, ok, err)
	}
}

// TestBFS_IgnoresWeights: the slow direct link wins on stops.
func TestBFS_IgnoresWeights(t *testing.T) {
	// Triangle A-B:4, B-C:3, A-C:10.
	g := mustGraph(t, 3, [][3]int{{0, 1, 4}, {1, 2, 3}, {0, 2, 10}})

	res, err := bfs.BFS(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	p, ok, err := res.PathTo(2)
	if err != nil || !ok {
		t.Fatalf("PathTo(2): ok=%v err=%v", ok, err)
	}
	if want := []int{0, 2}; !reflect.DeepEqual(p, want) {
		t.Errorf("path = %v; want %v", p, want)
	}
	if res.Depth[2] != 1 {
		t.Errorf("Depth[2] = %d; want 1", res.Depth[2])
	}
}

// TestBFS_CycleLayers checks depths and visit order on a 4-cycle.
func TestBFS_CycleLayers(t *testing.T) {
	// 0–1–2–3–0
	g := mustGraph(t, 4, [][3]int{{0, 1, 1}, {1, 2, 1}, {2, 3, 1}, {0, 3, 1}})

	res, err := bfs.BFS(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 1, 3, 2}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if want := []int{0, 1, 2, 1}; !reflect.DeepEqual(res.Depth, want) {
		t.Errorf("Depth = %v; want %v", res.Depth, want)
	}
	// 2 is first discovered from 1, so that parent sticks.
	if res.Parent[2] != 1 {
		t.Errorf("Parent[2] = %d; want 1", res.Parent[2])
	}
}

// TestBFS_Disconnected leaves the far component unreached.
func TestBFS_Disconnected(t *testing.T) {
	g := mustGraph(t, 4, [][3]int{{0, 1, 1}, {2, 3, 1}})

	res, err := bfs.BFS(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if res.Reached(2) || res.Depth[3] != bfs.Unreached || res.Parent[3] != path.None {
		t.Errorf("component {2,3} must stay unreached: %+v", res)
	}
	p, ok, err := res.PathTo(3)
	if err != nil || ok || p != nil {
		t.Errorf("PathTo(3) = %v, %v, %v; want nil, false, nil", p, ok, err)
	}
}

// TestBFS_MaxDepth stops the chain at depth 2.
func TestBFS_MaxDepth(t *testing.T) {
	g := mustGraph(t, 5, [][3]int{{0, 1, 1}, {1, 2, 1}, {2, 3, 1}, {3, 4, 1}})

	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(2))
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 1, 2}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if res.Reached(3) {
		t.Errorf("vertex 3 lies beyond MaxDepth")
	}
}

// TestBFS_FilterNeighbor closes one connection.
func TestBFS_FilterNeighbor(t *testing.T) {
	g := mustGraph(t, 3, [][3]int{{0, 1, 1}, {1, 2, 1}, {0, 2, 1}})

	closed := func(curr, nb int) bool {
		return !(curr == 0 && nb == 2)
	}
	res, err := bfs.BFS(g, 0, bfs.WithFilterNeighbor(closed))
	if err != nil {
		t.Fatal(err)
	}
	if res.Depth[2] != 2 {
		t.Errorf("Depth[2] = %d; want 2 via 1", res.Depth[2])
	}
}

// TestBFS_Hooks records hook order and aborts on OnVisit error.
func TestBFS_Hooks(t *testing.T) {
	g := mustGraph(t, 3, [][3]int{{0, 1, 1}, {1, 2, 1}})

	var enq, deq []int
	stop := errors.New("stop")
	_, err := bfs.BFS(g, 0,
		bfs.WithOnEnqueue(func(id, _ int) { enq = append(enq, id) }),
		bfs.WithOnDequeue(func(id, _ int) { deq = append(deq, id) }),
		bfs.WithOnVisit(func(id, _ int) error {
			if id == 1 {
				return stop
			}
			return nil
		}),
	)
	if !errors.Is(err, stop) {
		t.Fatalf("want hook error, got %v", err)
	}
	if want := []int{0, 1}; !reflect.DeepEqual(enq, want) {
		t.Errorf("enqueued = %v; want %v", enq, want)
	}
	if want := []int{0, 1}; !reflect.DeepEqual(deq, want) {
		t.Errorf("dequeued = %v; want %v", deq, want)
	}
}

// TestBFS_Cancellation returns the context error.
func TestBFS_Cancellation(t *testing.T) {
	g := mustGraph(t, 2, [][3]int{{0, 1, 1}})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := bfs.BFS(g, 0, bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
}

// TestBFS_Deterministic repeats a run and compares every table.
func TestBFS_Deterministic(t *testing.T) {
	g := mustGraph(t, 6, [][3]int{{0, 1, 1}, {0, 2, 1}, {1, 3, 1}, {2, 3, 1}, {3, 4, 1}, {2, 5, 1}})

	first, err := bfs.BFS(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		again, err := bfs.BFS(g, 0)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs: %+v vs %+v", i, first, again)
		}
	}
}

// hopCounts is the brute-force reference: Floyd–Warshall over unit weights.
// Unreachable pairs stay at n, which no simple path can reach.
func hopCounts(g *core.Graph) [][]int {
	n := g.VertexCount()
	d := make([][]int, n)
	for i := range d {
		d[i] = make([]int, n)
		for j := range d[i] {
			if i != j {
				d[i][j] = n
			}
		}
	}
	for _, e := range g.Edges() {
		d[e.U][e.V] = 1
		d[e.V][e.U] = 1
	}
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if d[i][k]+d[k][j] < d[i][j] {
					d[i][j] = d[i][k] + d[k][j]
				}
			}
		}
	}

	return d
}

// TestBFS_MatchesBruteForce checks Depth against minimum hop counts on random
// graphs, sparse enough to leave some vertices unreachable.
func TestBFS_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 30; trial++ {
		n := 2 + rng.Intn(14)
		g, err := core.NewGraph(n)
		if err != nil {
			t.Fatal(err)
		}
		for u := 0; u < n; u++ {
			for v := u + 1; v < n; v++ {
				if rng.Float64() < 0.2 {
					if err := g.InsertEdge(u, v, float64(1+rng.Intn(50))); err != nil {
						t.Fatal(err)
					}
				}
			}
		}
		want := hopCounts(g)

		for s := 0; s < n; s++ {
			res, err := bfs.BFS(g, s)
			if err != nil {
				t.Fatal(err)
			}
			for v := 0; v < n; v++ {
				if want[s][v] == n {
					if res.Depth[v] != bfs.Unreached || res.Reached(v) {
						t.Fatalf("trial %d %d→%d: Depth=%d, want Unreached", trial, s, v, res.Depth[v])
					}
					continue
				}
				if res.Depth[v] != want[s][v] {
					t.Fatalf("trial %d %d→%d: Depth=%d, want %d", trial, s, v, res.Depth[v], want[s][v])
				}
				p, ok, err := res.PathTo(v)
				if err != nil || !ok {
					t.Fatalf("trial %d PathTo(%d): ok=%v err=%v", trial, v, ok, err)
				}
				if len(p)-1 != want[s][v] || p[0] != s || p[len(p)-1] != v {
					t.Fatalf("trial %d %d→%d: path %v, want %d hops", trial, s, v, p, want[s][v])
				}
			}
		}
	}
}
