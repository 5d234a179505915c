// File: components.go
// Role: connected components ("islands") via forest DFS.

package dfs

import (
	"sort"

	"github.com/katalvlaran/tubenet/core"
)

// Components returns the connected components of g. Each component lists
// its vertex ids ascending; components are ordered by their smallest id.
// An isolated vertex is a component of its own.
//
// Complexity: O(V + E) plus sorting each component.
func Components(g core.View) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	var preorder []int
	res, err := DFS(g, 0, WithFullTraversal(), WithOnVisit(func(id int) error {
		preorder = append(preorder, id)
		return nil
	}))
	if err != nil {
		return nil, err
	}

	// Roots are tried in ascending id order and only roots sit at depth 0,
	// so each depth-0 vertex in pre-order opens a new component.
	var comps [][]int
	for _, v := range preorder {
		if res.Depth[v] == 0 {
			comps = append(comps, nil)
		}
		comps[len(comps)-1] = append(comps[len(comps)-1], v)
	}
	for _, c := range comps {
		sort.Ints(c)
	}

	return comps, nil
}
