// File: record.go
// Role: Ingestion input types and row validation.

package ingest

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/tubenet/stations"
)

var (
	// ErrEmptyStation indicates a record with a blank station name.
	ErrEmptyStation = errors.New("ingest: empty station name")

	// ErrBadWeight indicates a record with a negative, NaN or infinite time.
	ErrBadWeight = errors.New("ingest: weight must be a finite non-negative number")
)

// Record is one timed connection between two named stations.
// Line is a display label only.
type Record struct {
	Line   string  `json:"line,omitempty" yaml:"line,omitempty"`
	From   string  `json:"from" yaml:"from"`
	To     string  `json:"to" yaml:"to"`
	Weight float64 `json:"minutes" yaml:"minutes"`
}

// normalized returns r with station and line names normalized.
func (r Record) normalized() Record {
	return Record{
		Line:   stations.Normalize(r.Line),
		From:   stations.Normalize(r.From),
		To:     stations.Normalize(r.To),
		Weight: r.Weight,
	}
}

// validate reports why r cannot become an edge, or nil.
func (r Record) validate() error {
	if r.From == "" || r.To == "" {
		return fmt.Errorf("%w: %q-%q", ErrEmptyStation, r.From, r.To)
	}
	if r.Weight < 0 || math.IsNaN(r.Weight) || math.IsInf(r.Weight, 0) {
		return fmt.Errorf("%w: %s-%s %g", ErrBadWeight, r.From, r.To, r.Weight)
	}

	return nil
}
