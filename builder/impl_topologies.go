// SPDX-License-Identifier: MIT
// Package: tubenet/builder
//
// impl_topologies.go — fixed topologies: Path, Cycle, Star, Complete, Grid.
//
// Contract:
//   • Station i is named cfg.idFn(i); Grid uses row*cols+col.
//   • Every connection gets cfg.weight() minutes on cfg.line.
//   • Connections are added in ascending index order for determinism.

package builder

import "fmt"

const (
	minPathVertices     = 2
	minCycleVertices    = 3
	minStarVertices     = 2
	minCompleteVertices = 1
	minGridDim          = 1
)

// Path returns a Constructor for a chain 0–1–…–(n-1).
// Requires n ≥ 2.
func Path(n int) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if n < minPathVertices {
			return fmt.Errorf("Path: n=%d < min=%d: %w", n, minPathVertices, ErrTooFewVertices)
		}
		for i := 1; i < n; i++ {
			d.Connect(cfg.line, cfg.idFn(i-1), cfg.idFn(i), cfg.weight())
		}

		return nil
	}
}

// Cycle returns a Constructor for a ring 0–1–…–(n-1)–0, a circle line.
// Requires n ≥ 3.
func Cycle(n int) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if n < minCycleVertices {
			return fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleVertices, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			d.Connect(cfg.line, cfg.idFn(i), cfg.idFn((i+1)%n), cfg.weight())
		}

		return nil
	}
}

// Star returns a Constructor for a hub (index 0) joined to n-1 spokes.
// Requires n ≥ 2.
func Star(n int) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if n < minStarVertices {
			return fmt.Errorf("Star: n=%d < min=%d: %w", n, minStarVertices, ErrTooFewVertices)
		}
		hub := cfg.idFn(0)
		for i := 1; i < n; i++ {
			d.Connect(cfg.line, hub, cfg.idFn(i), cfg.weight())
		}

		return nil
	}
}

// Complete returns a Constructor joining every pair of n stations.
// n == 1 yields a single unconnected station. Requires n ≥ 1.
func Complete(n int) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if n < minCompleteVertices {
			return fmt.Errorf("Complete: n=%d < min=%d: %w", n, minCompleteVertices, ErrTooFewVertices)
		}
		d.AddStation(cfg.idFn(0))
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				d.Connect(cfg.line, cfg.idFn(i), cfg.idFn(j), cfg.weight())
			}
		}

		return nil
	}
}

// Grid returns a Constructor for a rows×cols street grid with 4-neighborhood.
// Requires rows ≥ 1 and cols ≥ 1.
func Grid(rows, cols int) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("Grid: rows=%d cols=%d < min=%d: %w", rows, cols, minGridDim, ErrTooFewVertices)
		}
		id := func(r, c int) string { return cfg.idFn(r*cols + c) }
		d.AddStation(id(0, 0))
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					d.Connect(cfg.line, id(r, c), id(r, c+1), cfg.weight())
				}
				if r+1 < rows {
					d.Connect(cfg.line, id(r, c), id(r+1, c), cfg.weight())
				}
			}
		}

		return nil
	}
}
