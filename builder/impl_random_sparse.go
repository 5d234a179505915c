// SPDX-License-Identifier: MIT
// Package: tubenet/builder
//
// impl_random_sparse.go — Erdős–Rényi style network with forced connectivity.
//
// Contract:
//   • n ≥ 1, p ∈ [0,1]; 0 < p < 1 requires an RNG (WithSeed/WithRand).
//   • For every pair i<j, a connection is added iff rng.Float64() < p.
//   • Afterwards, for i = 0..n-2, stations i and i+1 are joined whenever
//     they are still in different components, so the result is always
//     connected and no cycle is added by the repair.
//   • Minutes come from cfg.weightFn; pairs are visited in ascending order.
//
// Complexity: O(n²) RNG draws.

package builder

import (
	"fmt"

	"github.com/katalvlaran/tubenet/unionfind"
)

const (
	minRandomVertices = 1
	minProbability    = 0.0
	maxProbability    = 1.0
)

// RandomSparse returns a Constructor for a random connected network of n stations.
func RandomSparse(n int, p float64) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if n < minRandomVertices {
			return fmt.Errorf("RandomSparse: n=%d < min=%d: %w", n, minRandomVertices, ErrTooFewVertices)
		}
		if !(p >= minProbability && p <= maxProbability) {
			return fmt.Errorf("RandomSparse: p=%.6g not in [0,1]: %w", p, ErrInvalidProbability)
		}
		if p > minProbability && p < maxProbability && cfg.rng == nil {
			return fmt.Errorf("RandomSparse: rng is nil with 0<p<1: %w", ErrNeedRandSource)
		}

		for i := 0; i < n; i++ {
			d.AddStation(cfg.idFn(i))
		}

		parts := unionfind.New(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				var take bool
				switch p {
				case minProbability:
					take = false
				case maxProbability:
					take = true
				default:
					take = cfg.rng.Float64() < p
				}
				if take && d.Connect(cfg.line, cfg.idFn(i), cfg.idFn(j), cfg.weight()) {
					parts.Union(i, j)
				}
			}
		}

		// Bridge leftover components along the index chain.
		for i := 0; i+1 < n; i++ {
			if parts.Union(i, i+1) {
				d.Connect(cfg.line, cfg.idFn(i), cfg.idFn(i+1), cfg.weight())
			}
		}

		return nil
	}
}
