// SPDX-License-Identifier: MIT
// Package: tubenet/builder
//
// api.go — public entry point and the Constructor contract.
//
// Contract:
//   • Constructors validate their own parameters and return sentinel errors.
//   • BuildNetwork resolves options once and runs constructors in order.
//   • The first failing constructor aborts the build.

package builder

import "fmt"

// Constructor appends stations and connections to d using cfg.
type Constructor func(d *Draft, cfg builderConfig) error

// BuildNetwork runs cons in order against a fresh Draft.
// Returns the populated Draft, or the first constructor error wrapped
// with "BuildNetwork: ".
func BuildNetwork(bopts []BuilderOption, cons ...Constructor) (*Draft, error) {
	cfg := newBuilderConfig(bopts...)
	d := NewDraft()
	for i, c := range cons {
		if c == nil {
			return nil, fmt.Errorf("BuildNetwork: constructor #%d is nil: %w", i, ErrConstructFailed)
		}
		if err := c(d, cfg); err != nil {
			return nil, fmt.Errorf("BuildNetwork: %w", err)
		}
	}

	return d, nil
}
