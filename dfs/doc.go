// Package dfs implements depth‑first search traversal and the connectivity
// questions built on it: connected components and bridges.
//
// What:
//
//   - DFS (Depth‑First Search): explores as far as possible along each
//     branch before backtracking. Supports:
//   - Pre‑order and post‑order hooks
//   - Cancellation via context.Context
//   - Depth limiting
//   - Neighbor filtering
//   - Components: the islands of a network, each as ascending vertex ids.
//   - Bridges: connections whose closure would split an island in two.
//     No spanning backbone can do without them.
//
// Complexity:
//
//   - DFS:        Time O(V+E), Memory O(V)
//   - Components: Time O(V+E + V log V), Memory O(V)
//   - Bridges:    Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil             graph is nil
//   - ErrStartVertexNotFound  start id not in [0, n)
//   - context.Canceled        DFS canceled via context
//   - hook errors             propagated from OnVisit or OnExit
//
// Functions:
//
//   - DFS(g core.View, start int, opts ...Option) (*DFSResult, error)
//   - Components(g core.View) ([][]int, error)
//   - Bridges(g core.View) ([]core.Edge, error)
//   - DefaultOptions(), WithContext(), WithOnVisit(), WithOnExit(),
//     WithMaxDepth(), WithFilterNeighbor(), WithFullTraversal()
package dfs
