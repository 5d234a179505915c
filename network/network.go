package network

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/tubenet/bfs"
	"github.com/katalvlaran/tubenet/core"
	"github.com/katalvlaran/tubenet/dijkstra"
	"github.com/katalvlaran/tubenet/ingest"
	"github.com/katalvlaran/tubenet/path"
	"github.com/katalvlaran/tubenet/stations"
)

// Network is a frozen graph with named vertices.
type Network struct {
	graph  *core.Graph
	index  *stations.Index
	logger *slog.Logger
}

// New wraps an already built graph and its index.
func New(g *core.Graph, idx *stations.Index, opts ...Option) (*Network, error) {
	if g == nil || idx == nil {
		return nil, ErrNilGraph
	}
	if g.VertexCount() != idx.Len() {
		return nil, fmt.Errorf("%w: %d vertices, %d names", ErrIndexMismatch, g.VertexCount(), idx.Len())
	}

	n := &Network{graph: g, index: idx, logger: discardLogger()}
	for _, opt := range opts {
		opt(n)
	}

	return n, nil
}

// FromRecords builds the graph with ingest.Build and wraps it.
// extra names stations that must exist even without connections.
func FromRecords(records []ingest.Record, extra []string, opts ...Option) (*Network, error) {
	start := time.Now()
	built, err := ingest.Build(records, ingest.WithStations(extra...))
	if err != nil {
		return nil, fmt.Errorf("network: %w", err)
	}
	n, err := New(built.Graph, built.Index, opts...)
	if err != nil {
		return nil, err
	}
	n.logger.Debug("network built",
		"stations", built.Graph.VertexCount(),
		"connections", built.Summary.Edges,
		"duplicates", built.Summary.Duplicates,
		"self_loops", built.Summary.SelfLoops,
		"elapsed", time.Since(start),
	)

	return n, nil
}

// Graph returns the underlying graph. Callers must not mutate it.
func (n *Network) Graph() *core.Graph { return n.graph }

// Index returns the station index.
func (n *Network) Index() *stations.Index { return n.index }

// Stations returns every station name ordered by id.
func (n *Network) Stations() []string { return n.index.Names() }

// Stats summarizes the graph.
func (n *Network) Stats() *core.GraphStats { return n.graph.Stats() }

// resolve maps a pair of names to ids.
func (n *Network) resolve(from, to string) (int, int, error) {
	u, err := n.index.ID(from)
	if err != nil {
		return 0, 0, fmt.Errorf("network: from: %w", err)
	}
	v, err := n.index.ID(to)
	if err != nil {
		return 0, 0, fmt.Errorf("network: to: %w", err)
	}

	return u, v, nil
}

// ShortestRoute returns the least-minutes journey between two stations.
func (n *Network) ShortestRoute(from, to string) (*Journey, error) {
	u, v, err := n.resolve(from, to)
	if err != nil {
		return nil, err
	}

	return n.shortestOn(n.graph, u, v)
}

// shortestOn runs dijkstra on g, which must share n's vertex ids.
func (n *Network) shortestOn(g *core.Graph, u, v int) (*Journey, error) {
	start := time.Now()
	res, err := dijkstra.Dijkstra(g, dijkstra.Source(u))
	if err != nil {
		return nil, fmt.Errorf("network: shortest route: %w", err)
	}
	p, ok, err := res.PathTo(v)
	if err != nil {
		return nil, fmt.Errorf("network: shortest route: %w", err)
	}
	j, err := n.journey(g, u, v, p, ok)
	if err != nil {
		return nil, err
	}
	n.logger.Debug("shortest route",
		"from", j.Source, "to", j.Target,
		"reachable", j.Reachable, "minutes", j.TotalMinutes,
		"elapsed", time.Since(start),
	)

	return j, nil
}

// FewestStops returns the journey with the fewest connections between two
// stations. Its TotalMinutes is the time of that route, which may exceed
// the ShortestRoute time.
func (n *Network) FewestStops(from, to string) (*Journey, error) {
	u, v, err := n.resolve(from, to)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	res, err := bfs.BFS(n.graph, u)
	if err != nil {
		return nil, fmt.Errorf("network: fewest stops: %w", err)
	}
	p, ok, err := res.PathTo(v)
	if err != nil {
		return nil, fmt.Errorf("network: fewest stops: %w", err)
	}
	j, err := n.journey(n.graph, u, v, p, ok)
	if err != nil {
		return nil, err
	}
	n.logger.Debug("fewest stops",
		"from", j.Source, "to", j.Target,
		"reachable", j.Reachable, "stops", j.TotalStops,
		"elapsed", time.Since(start),
	)

	return j, nil
}

// journey turns an id path into named legs. Minutes are summed in path order
// from zero, matching dijkstra's accumulation exactly.
func (n *Network) journey(g *core.Graph, u, v int, p []int, ok bool) (*Journey, error) {
	src, err := n.index.NameOf(u)
	if err != nil {
		return nil, err
	}
	dst, err := n.index.NameOf(v)
	if err != nil {
		return nil, err
	}
	j := &Journey{Source: src, Target: dst, Reachable: ok}
	if !ok {
		return j, nil
	}

	j.Path = make([]string, len(p))
	for i, id := range p {
		if j.Path[i], err = n.index.NameOf(id); err != nil {
			return nil, err
		}
	}
	j.Legs = make([]Leg, 0, len(p)-1)
	for i := 1; i < len(p); i++ {
		e, found := g.FindEdge(p[i-1], p[i])
		if !found {
			return nil, fmt.Errorf("network: %w: %d-%d", path.ErrMissingEdge, p[i-1], p[i])
		}
		j.Legs = append(j.Legs, Leg{From: j.Path[i-1], To: j.Path[i], Line: e.Line, Minutes: e.Weight})
		j.TotalMinutes += e.Weight
	}
	j.TotalStops = len(j.Legs)

	return j, nil
}

// connection names a canonical edge.
func (n *Network) connection(e core.Edge) (Connection, error) {
	a, err := n.index.NameOf(e.U)
	if err != nil {
		return Connection{}, err
	}
	b, err := n.index.NameOf(e.V)
	if err != nil {
		return Connection{}, err
	}

	return Connection{A: a, B: b, Weight: e.Weight, Line: e.Line}, nil
}
