// SPDX-License-Identifier: MIT
// Package: lvpath/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn   = DefaultIDFn ("0","1","2",...)
//   • rng    = nil         (RandomLabeled requires WithSeed or WithRand)
//   • offset = 0           (first vertex index used by constructors)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Vertex ID strategy: index -> ID.
	idFn IDFn
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// offset is added to every vertex index, so consecutive constructors can
	// either share vertices (same offset) or stay disjoint.
	offset int
}

// newBuilderConfig applies options over the defaults, last one wins.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{idFn: DefaultIDFn}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// id returns the vertex ID of local index i.
func (c builderConfig) id(i int) string { return c.idFn(c.offset + i) }
