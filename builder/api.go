// SPDX-License-Identifier: MIT
// Package: lvpath/builder
//
// api.go - public entry point for composing labeled graph fixtures.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates a labeled
//     graph, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same inputs, options, seed and constructor order give the
//     same graph, edge IDs included.
//   - Constructors return sentinel errors; they never panic.
//
// AI-Hints:
//   - Compose constructors to assemble a query fixture, e.g. a path feeding
//     into a two-cycles graph, and share vertex IDs through WithIDScheme.
//   - WithSeed freezes RandomLabeled.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvpath/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate their parameters before touching g.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a core.NewLabeledGraph with graph options gopts,
// resolves the builder configuration from bopts and applies all
// constructors in order. The first constructor error is wrapped with
// "BuildGraph: %w" and returned; the partial graph is discarded.
//
// Errors:
//   - ErrConstructFailed for a nil constructor, otherwise whatever the
//     constructor returned (branch with errors.Is on the builder sentinels).
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewLabeledGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Build is BuildGraph with default graph options, for the common case.
func Build(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	return BuildGraph(nil, bopts, cons...)
}
