// SPDX-License-Identifier: MIT
// Package: tubenet/builder
//
// draft.go — the mutable record set a constructor writes into.

package builder

import (
	"github.com/katalvlaran/tubenet/core"
	"github.com/katalvlaran/tubenet/ingest"
	"github.com/katalvlaran/tubenet/stations"
)

// Draft accumulates generated stations and connections.
// A Draft is not safe for concurrent use.
type Draft struct {
	stations []string            // first-seen order
	seen     map[string]struct{} // station set
	pairs    map[[2]string]struct{}
	records  []ingest.Record
}

// NewDraft returns an empty Draft.
func NewDraft() *Draft {
	return &Draft{
		seen:  make(map[string]struct{}),
		pairs: make(map[[2]string]struct{}),
	}
}

// AddStation registers name without connecting it. Repeated names are no-ops.
func (d *Draft) AddStation(name string) {
	if _, ok := d.seen[name]; ok {
		return
	}
	d.seen[name] = struct{}{}
	d.stations = append(d.stations, name)
}

// Connect joins a and b with a connection of w minutes on line.
// Returns false, leaving d unchanged, for a self-loop or a pair that is
// already connected (in either direction).
func (d *Draft) Connect(line, a, b string, w float64) bool {
	if a == b || d.Connected(a, b) {
		return false
	}
	d.AddStation(a)
	d.AddStation(b)
	d.pairs[pair(a, b)] = struct{}{}
	d.records = append(d.records, ingest.Record{Line: line, From: a, To: b, Weight: w})

	return true
}

// Connected reports whether a and b were already joined.
func (d *Draft) Connected(a, b string) bool {
	_, ok := d.pairs[pair(a, b)]
	return ok
}

// Records returns a copy of the connections in insertion order.
func (d *Draft) Records() []ingest.Record {
	out := make([]ingest.Record, len(d.records))
	copy(out, d.records)

	return out
}

// Stations returns a copy of all station names in first-seen order.
func (d *Draft) Stations() []string {
	out := make([]string, len(d.stations))
	copy(out, d.stations)

	return out
}

// Isolated returns stations without any connection, in first-seen order.
func (d *Draft) Isolated() []string {
	linked := make(map[string]struct{}, len(d.stations))
	for _, r := range d.records {
		linked[r.From] = struct{}{}
		linked[r.To] = struct{}{}
	}
	var out []string
	for _, s := range d.stations {
		if _, ok := linked[s]; !ok {
			out = append(out, s)
		}
	}

	return out
}

// Graph ingests the draft, isolated stations included.
// Vertex ids follow sorted station names, not generation order.
func (d *Draft) Graph() (*core.Graph, *stations.Index, error) {
	return ingest.BuildGraph(d.Records(), ingest.WithStations(d.Isolated()...))
}

// ConnectionCount returns the number of connections.
func (d *Draft) ConnectionCount() int { return len(d.records) }

// StationCount returns the number of stations.
func (d *Draft) StationCount() int { return len(d.stations) }

func pair(a, b string) [2]string {
	if b < a {
		a, b = b, a
	}

	return [2]string{a, b}
}
