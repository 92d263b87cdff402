// SPDX-License-Identifier: MIT
// Package: lvpath/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Seeding is explicit: WithSeed or WithRand.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvpath/core"
)

// BuilderOption customizes the builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex ID generator. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand provides an explicit RNG for RandomLabeled. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithOffset shifts the vertex indices of every constructor by k, so a
// second BuildGraph pass (or a constructor applied through Apply) can add a
// disjoint component. Panics if k < 0.
func WithOffset(k int) BuilderOption {
	if k < 0 {
		panic(fmt.Sprintf("builder: WithOffset(%d): negative", k))
	}

	return func(c *builderConfig) { c.offset = k }
}

// Apply runs a single constructor against an existing graph with its own
// options, for extending graphs loaded from files.
func Apply(g *core.Graph, con Constructor, opts ...BuilderOption) error {
	if g == nil || con == nil {
		return fmt.Errorf("Apply: nil graph or constructor: %w", ErrConstructFailed)
	}

	return con(g, newBuilderConfig(opts...))
}
