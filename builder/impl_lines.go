// SPDX-License-Identifier: MIT
// Package: tubenet/builder
//
// impl_lines.go — tube-like networks made of named lines.
//
// Contract:
//   • nLines ≥ 1, totalStations ≥ nLines, RNG required.
//   • Line k (1-based) is named "Line<k>"; its stations "Line<k>_Station<c>"
//     where c is a global 1-based counter, so every name is unique.
//   • Stations per line: totalStations/nLines, the first totalStations%nLines
//     lines get one more.
//   • Consecutive stations on a line: IntraMinutes range.
//   • Each line (when nLines > 1) gets one link from a random own station to a
//     random station of a different random line: InterMinutes range.
//     A link that repeats an existing pair is skipped.

package builder

import "fmt"

// Minute ranges used by Lines (inclusive).
const (
	IntraMinMinutes = 2
	IntraMaxMinutes = 10
	InterMinMinutes = 3
	InterMaxMinutes = 12
)

// Lines returns a Constructor for a network of nLines lines holding
// totalStations stations overall.
func Lines(nLines, totalStations int) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if nLines < 1 {
			return fmt.Errorf("Lines: nLines=%d < min=1: %w", nLines, ErrTooFewVertices)
		}
		if totalStations < nLines {
			return fmt.Errorf("Lines: totalStations=%d < nLines=%d: %w", totalStations, nLines, ErrConstructFailed)
		}
		if cfg.rng == nil {
			return fmt.Errorf("Lines: %w", ErrNeedRandSource)
		}
		intra := UniformIntWeightFn(IntraMinMinutes, IntraMaxMinutes)
		inter := UniformIntWeightFn(InterMinMinutes, InterMaxMinutes)

		base, extra := totalStations/nLines, totalStations%nLines
		members := make([][]string, nLines)
		counter := 0
		for k := 0; k < nLines; k++ {
			size := base
			if k < extra {
				size++
			}
			line := lineName(k)
			for s := 0; s < size; s++ {
				counter++
				name := fmt.Sprintf("%s_Station%d", line, counter)
				d.AddStation(name)
				members[k] = append(members[k], name)
			}
			for s := 1; s < size; s++ {
				d.Connect(line, members[k][s-1], members[k][s], intra(cfg.rng))
			}
		}

		if nLines < 2 {
			return nil
		}
		for k := 0; k < nLines; k++ {
			other := cfg.rng.Intn(nLines - 1)
			if other >= k {
				other++
			}
			a := members[k][cfg.rng.Intn(len(members[k]))]
			b := members[other][cfg.rng.Intn(len(members[other]))]
			d.Connect(fmt.Sprintf("%s-%s", lineName(k), lineName(other)), a, b, inter(cfg.rng))
		}

		return nil
	}
}

func lineName(k int) string {
	return fmt.Sprintf("Line%d", k+1)
}
