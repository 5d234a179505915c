// Package prim_kruskal computes minimum spanning forests ("backbones") of an
// undirected, weighted transit graph, and splits the remaining connections
// into closable ones.
//
// What & Why
//
//   - A minimum spanning forest of G = (V, E) is a subset T ⊆ E that connects
//     every vertex its component connects, with minimum total weight. On a
//     connected network it is a single spanning tree.
//
//   - For a transit network T is the backbone: the cheapest set of connections
//     that keeps every station reachable. Every edge outside T is closable:
//     dropping it does not disconnect anything (cycle property).
//
// Algorithms Provided
//
//   - Kruskal(g core.View) (*Forest, error)
//
//   - Strategy: sort all edges by (Weight, U, V), scan them once and accept an
//     edge when its endpoints are in different sets of a unionfind.Forest.
//
//   - Complexity: O(E log E + α(V)·E) time, O(V + E) space.
//
//   - Prim(g core.View, root int) (*Forest, error)
//
//   - Strategy: grow a tree from root with a min-heap of crossing edges, then
//     restart from every uncovered vertex in ascending id order.
//
//   - Complexity: O(E log E) time, O(V + E) space.
//
//   - Partition(g core.View, f *Forest) (essential, closable []core.Edge)
//
//   - Set difference of g.Edges() against f.Edges.
//
// Determinism
//
//	Both algorithms order edges by the total key (Weight, U, V). Under weight
//	ties the chosen edge set is therefore fixed for a given graph, and the
//	total weight of Kruskal and Prim always agrees.
//
// Error Conditions
//
//   - ErrNilGraph:       graph is nil.
//   - ErrRootOutOfRange: Prim root outside [0, n).
//   - ErrUnknownMethod:  Compute with a Method other than MethodKruskal or MethodPrim.
//
// A disconnected graph is not an error; Forest.Components reports the number
// of trees.
package prim_kruskal
