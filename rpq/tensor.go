// SPDX-License-Identifier: MIT

// File: tensor.go
// Role: RPQ by product automaton and transitive closure.

package rpq

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/katalvlaran/lvpath/automaton"
	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/query"
	"github.com/katalvlaran/lvpath/regex"
)

// Tensor answers the regular path query pattern over g by intersecting the
// pattern DFA with the graph automaton and closing the product.
//
// Result: every (u, v) with u a start node, v a final node, and some path
// u → v whose label word matches pattern. Start/final nodes default to all
// nodes (query.WithStartNodes, query.WithFinalNodes).
//
// Errors:
//   - query.ErrGraphNil; regex.ErrSyntax for a malformed pattern;
//     ctx.Err() on cancellation between rounds; query.ErrRoundLimit.
//
// Complexity: dominated by the closure, O((|R|·|V|)³/64) dense worst case.
func Tensor(ctx context.Context, pattern string, g *core.Graph, opts ...query.Option) (query.Result, error) {
	o := query.Gather(opts...)
	ctx, run := query.Begin(ctx, "rpq.tensor", o, attribute.String("lvpath.pattern", pattern))

	r, gr, err := build(pattern, g, o)
	if err != nil {
		return query.Result{}, run.End(ctx, query.Result{}, err)
	}
	res, err := tensor(ctx, run, r, gr, o)

	return res, run.End(ctx, res, err)
}

// TensorAutomata is Tensor over prebuilt automata: r is the pattern
// automaton and gr the graph automaton, whose start and final states select
// the reported pairs. Pairs are named by gr's state names.
//
// Errors:
//   - query.ErrPatternNil, query.ErrGraphNil; cancellation and round limit as Tensor.
func TensorAutomata(ctx context.Context, r, gr *automaton.Automaton, opts ...query.Option) (query.Result, error) {
	o := query.Gather(opts...)
	ctx, run := query.Begin(ctx, "rpq.tensor", o)

	if err := validate(r, gr); err != nil {
		return query.Result{}, run.End(ctx, query.Result{}, err)
	}
	res, err := tensor(ctx, run, r, gr, o)

	return res, run.End(ctx, res, err)
}

// tensor is the algorithm proper.
//
// Implementation:
//   - Stage 1: P = Intersect(R, G); product index of (r, v) is r·|G| + v.
//   - Stage 2: C = closure(P).
//   - Stage 3: (u, v) is an answer iff C[(rs, u), (rf, v)] for some regex
//     start rs, regex final rf, graph start u, graph final v.
func tensor(ctx context.Context, run *query.Run, r, gr *automaton.Automaton, o query.Options) (query.Result, error) {
	product, err := automaton.IntersectContext(ctx, r, gr, o.Parallelism)
	if err != nil {
		return query.Result{}, err
	}
	run.Logger.DebugContext(ctx, "product built",
		"states", product.NumStates(),
		"symbols", len(product.Symbols()),
	)

	closure, err := product.TransitiveClosureContext(ctx, run.NextRound)
	if err != nil {
		return query.Result{}, err
	}
	run.RoundDone(ctx, 0, closure.Nonzero())

	nG := gr.NumStates()
	var res query.Result
	for _, rs := range r.StartIndices() {
		for _, u := range gr.StartIndices() {
			for _, col := range closure.Row(rs*nG + u) {
				rf, v := col/nG, col%nG
				if r.IsFinal(rf) && gr.IsFinal(v) {
					res.Add(gr.StateAt(u), gr.StateAt(v))
				}
			}
		}
	}

	return res, nil
}

// build compiles pattern and g into the two automata both algorithms consume.
func build(pattern string, g *core.Graph, o query.Options) (r, gr *automaton.Automaton, err error) {
	if g == nil {
		return nil, nil, query.ErrGraphNil
	}
	cfg := o.MatrixConfig()
	if r, err = regex.Automaton(pattern, cfg); err != nil {
		return nil, nil, err
	}
	if gr, err = automaton.FromGraph(g, o.Start, o.Final, cfg); err != nil {
		return nil, nil, err
	}

	return r, gr, nil
}

func validate(r, gr *automaton.Automaton) error {
	switch {
	case r == nil:
		return query.ErrPatternNil
	case gr == nil:
		return query.ErrGraphNil
	}

	return nil
}
