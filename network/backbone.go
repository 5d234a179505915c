package network

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/katalvlaran/tubenet/core"
	"github.com/katalvlaran/tubenet/dfs"
	"github.com/katalvlaran/tubenet/prim_kruskal"
)

// Backbone computes the minimum spanning forest with Kruskal and splits the
// connections into essential and closable. Essential is sorted by station id
// pair; Closable lists the lightest connection first, ties by id pair.
func (n *Network) Backbone() (*Backbone, error) {
	bb, _, err := n.backbone()

	return bb, err
}

// backbone also returns the essential edges for building the reduced graph.
func (n *Network) backbone() (*Backbone, []core.Edge, error) {
	start := time.Now()
	forest, err := prim_kruskal.Kruskal(n.graph)
	if err != nil {
		return nil, nil, fmt.Errorf("network: backbone: %w", err)
	}
	essential, closable := prim_kruskal.Partition(n.graph, forest)
	// Partition keeps (U, V) order, so a stable sort by weight breaks ties by id pair.
	sort.SliceStable(closable, func(i, j int) bool { return closable[i].Weight < closable[j].Weight })
	bridges, err := dfs.Bridges(n.graph)
	if err != nil {
		return nil, nil, fmt.Errorf("network: backbone: %w", err)
	}

	bb := &Backbone{
		Essential:   make([]Connection, 0, len(essential)),
		Closable:    make([]Connection, 0, len(closable)),
		Critical:    make([]Connection, 0, len(bridges)),
		TotalWeight: forest.TotalWeight,
		Components:  forest.Components,
	}
	for _, e := range essential {
		c, err := n.connection(e)
		if err != nil {
			return nil, nil, err
		}
		bb.Essential = append(bb.Essential, c)
	}
	for _, e := range closable {
		c, err := n.connection(e)
		if err != nil {
			return nil, nil, err
		}
		bb.Closable = append(bb.Closable, c)
		bb.ClosableWeight += e.Weight
	}
	for _, e := range bridges {
		c, err := n.connection(e)
		if err != nil {
			return nil, nil, err
		}
		bb.Critical = append(bb.Critical, c)
	}
	n.logger.Debug("backbone",
		"essential", len(bb.Essential), "closable", len(bb.Closable), "critical", len(bb.Critical),
		"total_weight", bb.TotalWeight, "components", bb.Components,
		"elapsed", time.Since(start),
	)

	return bb, essential, nil
}

// Impact compares the fastest journey on the full network with the fastest
// journey using backbone connections only.
//
// The backbone keeps every component intact, so both journeys are reachable
// or neither is.
func (n *Network) Impact(from, to string) (*Impact, error) {
	u, v, err := n.resolve(from, to)
	if err != nil {
		return nil, err
	}
	an, err := n.newImpactAnalyzer()
	if err != nil {
		return nil, err
	}

	return an.compare(u, v)
}

// AffectedJourneys samples random station pairs, at most tries of them, and
// returns up to limit impacts whose fastest full-network route uses a
// closable connection. rng drives the sampling; pass a seeded source for
// reproducible output.
func (n *Network) AffectedJourneys(rng *rand.Rand, tries, limit int) ([]*Impact, error) {
	count := n.graph.VertexCount()
	if count < 2 || tries <= 0 || limit <= 0 {
		return nil, nil
	}
	an, err := n.newImpactAnalyzer()
	if err != nil {
		return nil, err
	}

	var out []*Impact
	for tested := 0; tested < tries && len(out) < limit; {
		u, v := rng.Intn(count), rng.Intn(count)
		if u == v {
			continue
		}
		tested++
		im, err := an.compare(u, v)
		if err != nil {
			return nil, err
		}
		if im.Full.Reachable && im.UsesClosable() {
			out = append(out, im)
		}
	}

	return out, nil
}

// impactAnalyzer holds the reduced graph shared by several comparisons.
type impactAnalyzer struct {
	n        *Network
	backbone *core.Graph
}

func (n *Network) newImpactAnalyzer() (*impactAnalyzer, error) {
	_, essential, err := n.backbone()
	if err != nil {
		return nil, err
	}
	reduced, err := n.graph.Subgraph(essential)
	if err != nil {
		return nil, fmt.Errorf("network: backbone graph: %w", err)
	}

	return &impactAnalyzer{n: n, backbone: reduced}, nil
}

func (a *impactAnalyzer) compare(u, v int) (*Impact, error) {
	full, err := a.n.shortestOn(a.n.graph, u, v)
	if err != nil {
		return nil, err
	}
	reduced, err := a.n.shortestOn(a.backbone, u, v)
	if err != nil {
		return nil, err
	}

	im := &Impact{Full: full, Backbone: reduced}
	if full.Reachable && reduced.Reachable {
		im.ExtraMinutes = reduced.TotalMinutes - full.TotalMinutes
		if full.TotalMinutes > 0 {
			im.ExtraPercent = 100 * im.ExtraMinutes / full.TotalMinutes
		}
	}
	for _, leg := range full.Legs {
		uu, vv, err := a.n.resolve(leg.From, leg.To)
		if err != nil {
			return nil, err
		}
		if a.backbone.HasEdge(uu, vv) {
			continue
		}
		im.ClosedOnRoute = append(im.ClosedOnRoute, Connection{A: leg.From, B: leg.To, Weight: leg.Minutes, Line: leg.Line})
	}

	return im, nil
}
