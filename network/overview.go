package network

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/tubenet/dfs"
)

// Overview reports graph sizes and the islands of the network.
func (n *Network) Overview() (*Overview, error) {
	comps, err := dfs.Components(n.graph)
	if err != nil {
		return nil, fmt.Errorf("network: overview: %w", err)
	}
	// Stable: equal sizes keep ascending first-id order.
	sort.SliceStable(comps, func(i, j int) bool { return len(comps[i]) > len(comps[j]) })

	ov := &Overview{Stats: n.graph.Stats(), Islands: make([][]string, 0, len(comps))}
	for _, c := range comps {
		names := make([]string, 0, len(c))
		for _, id := range c {
			name, err := n.index.NameOf(id)
			if err != nil {
				return nil, fmt.Errorf("network: overview: %w", err)
			}
			names = append(names, name)
		}
		ov.Islands = append(ov.Islands, names)
	}

	return ov, nil
}
