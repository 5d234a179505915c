package network

import (
	"errors"
	"io"
	"log/slog"

	"github.com/katalvlaran/tubenet/core"
)

var (
	// ErrNilGraph indicates New was called without a graph or index.
	ErrNilGraph = errors.New("network: graph or index is nil")

	// ErrIndexMismatch indicates the index names a different number of
	// stations than the graph has vertices.
	ErrIndexMismatch = errors.New("network: index size does not match graph")
)

// Leg is one traversed connection of a Journey.
type Leg struct {
	From    string  `json:"from" yaml:"from"`
	To      string  `json:"to" yaml:"to"`
	Line    string  `json:"line,omitempty" yaml:"line,omitempty"`
	Minutes float64 `json:"minutes" yaml:"minutes"`
}

// Journey is the answer to a point-to-point query.
//
// When Reachable is false, Path and Legs are empty and both totals are zero.
// TotalStops is always len(Legs); TotalMinutes is always the sum of the leg
// minutes in order.
type Journey struct {
	Source       string   `json:"source" yaml:"source"`
	Target       string   `json:"target" yaml:"target"`
	Reachable    bool     `json:"reachable" yaml:"reachable"`
	Path         []string `json:"path,omitempty" yaml:"path,omitempty"`
	Legs         []Leg    `json:"legs,omitempty" yaml:"legs,omitempty"`
	TotalMinutes float64  `json:"total_minutes" yaml:"total_minutes"`
	TotalStops   int      `json:"total_stops" yaml:"total_stops"`
}

// Connection is a named undirected edge.
type Connection struct {
	A      string  `json:"a" yaml:"a"`
	B      string  `json:"b" yaml:"b"`
	Weight float64 `json:"minutes" yaml:"minutes"`
	Line   string  `json:"line,omitempty" yaml:"line,omitempty"`
}

// Backbone is the minimum spanning forest of the network and its complement.
//
// Essential and Closable are disjoint and together list every connection.
// Critical lists the connections whose closure would split the network;
// each of them is also Essential.
type Backbone struct {
	Essential      []Connection `json:"essential" yaml:"essential"`
	Closable       []Connection `json:"closable" yaml:"closable"`
	Critical       []Connection `json:"critical" yaml:"critical"`
	TotalWeight    float64      `json:"total_weight" yaml:"total_weight"`
	ClosableWeight float64      `json:"closable_weight" yaml:"closable_weight"`
	Components     int          `json:"components" yaml:"components"`
}

// Impact compares a journey on the full network with the same journey on the
// backbone alone.
type Impact struct {
	Full     *Journey `json:"full" yaml:"full"`
	Backbone *Journey `json:"backbone" yaml:"backbone"`

	// ExtraMinutes is Backbone.TotalMinutes - Full.TotalMinutes, never negative.
	ExtraMinutes float64 `json:"extra_minutes" yaml:"extra_minutes"`
	// ExtraPercent is ExtraMinutes relative to Full.TotalMinutes; 0 when the
	// full journey takes no time.
	ExtraPercent float64 `json:"extra_percent" yaml:"extra_percent"`
	// ClosedOnRoute lists the closable connections the full journey uses.
	ClosedOnRoute []Connection `json:"closed_on_route,omitempty" yaml:"closed_on_route,omitempty"`
}

// UsesClosable reports whether the fastest full-network journey relies on at
// least one closable connection.
func (im *Impact) UsesClosable() bool {
	return len(im.ClosedOnRoute) > 0
}

// Overview summarizes the network's size and its islands.
type Overview struct {
	Stats *core.GraphStats `json:"stats" yaml:"stats"`
	// Islands are the connected components, each sorted by station id,
	// largest first (ties by first station).
	Islands [][]string `json:"islands" yaml:"islands"`
}

// Option configures a Network.
type Option func(*Network)

// WithLogger sets the logger used for debug traces of queries.
// A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(n *Network) {
		if logger != nil {
			n.logger = logger
		}
	}
}

// discardLogger is the default: queries are silent unless a logger is set.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
