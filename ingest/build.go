// File: build.go
// Role: BuildGraph, the only path from records to a frozen graph.
// Determinism:
//   - ids follow sorted station names.
//   - edges are inserted in ascending (u, v), so adjacency order is canonical.

package ingest

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/tubenet/core"
	"github.com/katalvlaran/tubenet/stations"
)

// Options tunes BuildGraph.
type Options struct {
	// Stations lists names that become vertices even without a connection.
	Stations []string
}

// Option configures BuildGraph.
type Option func(*Options)

// WithStations adds names that must exist as vertices, connected or not.
func WithStations(names ...string) Option {
	return func(o *Options) {
		o.Stations = append(o.Stations, names...)
	}
}

// Summary describes what BuildGraph did with its input.
type Summary struct {
	Records    int // records received
	SelfLoops  int // records dropped because From == To
	Duplicates int // records merged into an existing pair
	Edges      int // edges stored
}

// Network is the output of Build.
type Network struct {
	Graph   *core.Graph
	Index   *stations.Index
	Summary Summary
}

// BuildGraph builds the graph for records and the index naming its vertices.
// See Build for the rules.
func BuildGraph(records []Record, opts ...Option) (*core.Graph, *stations.Index, error) {
	n, err := Build(records, opts...)
	if err != nil {
		return nil, nil, err
	}

	return n.Graph, n.Index, nil
}

// pairKey is an unordered station pair in canonical (u < v) form.
type pairKey struct{ u, v int }

// Build builds the graph for records and reports what it merged or dropped.
//
// Steps:
//  1. Normalize and validate every record (ErrEmptyStation, ErrBadWeight).
//  2. Intern every station name, plus Options.Stations, in sorted order.
//  3. Merge records by unordered pair, keeping the minimum weight. On equal
//     weights the earlier record, and so its line label, wins.
//  4. Insert edges in ascending (u, v).
//
// Self-loops are dropped and counted, never stored.
//
// Complexity: O(R log R + V log V) for R records.
func Build(records []Record, opts ...Option) (*Network, error) {
	cfg := Options{}
	for _, opt := range opts {
		opt(&cfg)
	}
	sum := Summary{Records: len(records)}

	// 1. Normalize and validate.
	clean := make([]Record, 0, len(records))
	names := make([]string, 0, 2*len(records)+len(cfg.Stations))
	for i, r := range records {
		r = r.normalized()
		if err := r.validate(); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		clean = append(clean, r)
		names = append(names, r.From, r.To)
	}
	names = append(names, cfg.Stations...)

	// 2. Deterministic ids.
	idx := stations.NewIndex(names)

	// 3. Merge by pair.
	best := make(map[pairKey]Record, len(clean))
	for _, r := range clean {
		u, err := idx.ID(r.From)
		if err != nil {
			return nil, err
		}
		v, err := idx.ID(r.To)
		if err != nil {
			return nil, err
		}
		if u == v {
			sum.SelfLoops++
			continue
		}
		if u > v {
			u, v = v, u
		}
		k := pairKey{u, v}
		if prev, ok := best[k]; ok {
			sum.Duplicates++
			if r.Weight >= prev.Weight {
				continue
			}
		}
		best[k] = r
	}

	// 4. Canonical insertion order.
	keys := make([]pairKey, 0, len(best))
	for k := range best {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].u != keys[j].u {
			return keys[i].u < keys[j].u
		}

		return keys[i].v < keys[j].v
	})

	g, err := core.NewGraph(idx.Len())
	if err != nil {
		return nil, err
	}
	for _, k := range keys {
		r := best[k]
		if err := g.InsertEdge(k.u, k.v, r.Weight, core.WithLine(r.Line)); err != nil {
			return nil, fmt.Errorf("insert %s-%s: %w", r.From, r.To, err)
		}
	}
	sum.Edges = len(keys)

	return &Network{Graph: g, Index: idx, Summary: sum}, nil
}
