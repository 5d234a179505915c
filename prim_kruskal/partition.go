package prim_kruskal

import "github.com/katalvlaran/tubenet/core"

// Partition splits every edge of graph into essential (in the forest) and
// closable (not in it). Both slices are canonical and sorted by (U, V).
//
// Closable edges each close a cycle with lighter-or-equal forest edges, so
// removing any one of them leaves the component structure unchanged. The
// two sets are disjoint and together are exactly graph.Edges().
//
// A nil forest marks every edge closable; a nil graph yields nothing.
//
// Complexity: O(E) time with an O(V) map of accepted pairs.
func Partition(graph core.View, forest *Forest) (essential, closable []core.Edge) {
	if graph == nil {
		return nil, nil
	}

	type pair struct{ u, v int }
	accepted := make(map[pair]struct{})
	if forest != nil {
		for _, e := range forest.Edges {
			u, v := e.U, e.V
			if u > v {
				u, v = v, u
			}
			accepted[pair{u, v}] = struct{}{}
		}
	}

	for _, e := range graph.Edges() {
		if _, ok := accepted[pair{e.U, e.V}]; ok {
			essential = append(essential, e)
			continue
		}
		closable = append(closable, e)
	}

	return essential, closable
}
