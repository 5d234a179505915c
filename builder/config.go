// SPDX-License-Identifier: MIT
// Package: tubenet/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn     = StationIDFn     ("Station_0","Station_1",...)
//   • rng      = nil             (pure unless seeded)
//   • weightFn = DefaultWeightFn (1 minute)
//   • line     = ""              (no label)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Station naming: index -> name (deterministic).
	idFn IDFn
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Minutes per generated connection.
	weightFn WeightFn
	// Line label for connections of fixed topologies.
	line string
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     StationIDFn,
		rng:      nil,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weight draws one connection time.
func (c builderConfig) weight() float64 {
	return c.weightFn(c.rng)
}
