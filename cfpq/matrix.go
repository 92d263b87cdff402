// SPDX-License-Identifier: MIT

// File: matrix.go
// Role: CFPQ by per-nonterminal boolean matrix fixpoint.
// Concurrency:
//   - One pass multiplies every binary production against the matrices as
//     they stood at the start of the pass, on up to Parallelism goroutines.
//     errgroup.Wait is the barrier; the OR-merge and the change test run
//     after it on the merged state.

package cfpq

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/grammar"
	"github.com/katalvlaran/lvpath/matrix"
	"github.com/katalvlaran/lvpath/query"
)

// Matrix answers the context-free path query cfg over g with one boolean
// matrix per nonterminal.
//
// Implementation:
//   - Stage 1: Normalize cfg to weak CNF.
//   - Stage 2: M[H][u][v] = 1 for every H → a and arc u -a-> v; the diagonal
//     of M[N] is set for every nullable N.
//   - Stage 3: Passes: M[H] |= M[B]·M[C] for every H → B C, until a pass
//     changes no matrix.
//   - Stage 4: Answers are the entries of M[Start], filtered by start/final nodes.
//
// Errors: as Hellings.
//
// Complexity: O(|V|² · |N|) passes worst case, each |P| multiplications.
func Matrix(ctx context.Context, cfg *grammar.CFG, g *core.Graph, opts ...query.Option) (query.Result, error) {
	o := query.Gather(opts...)
	ctx, run := query.Begin(ctx, "cfpq.matrix", o)

	w, err := weakCNF(cfg, g)
	if err != nil {
		return query.Result{}, run.End(ctx, query.Result{}, err)
	}
	res, err := runMatrix(ctx, run, w, g, o)

	return res, run.End(ctx, res, err)
}

func runMatrix(ctx context.Context, run *query.Run, w *grammar.CFG, g *core.Graph, o query.Options) (query.Result, error) {
	ix := indexGraph(g)
	cfg := o.MatrixConfig()
	n := len(ix.nodes)

	m := make(map[string]matrix.Bool)
	for _, nt := range w.Nonterminals() {
		m[nt] = matrix.New(cfg, n, n)
	}
	heads := terminalHeads(w)
	for _, a := range ix.arcs {
		for _, h := range heads[a.Label] {
			m[h].Set(ix.index[a.From], ix.index[a.To])
		}
	}
	for _, h := range epsilonHeads(w) {
		if err := matrix.SetDiagonal(m[h]); err != nil {
			return query.Result{}, err
		}
	}

	var binary []grammar.Production
	for _, p := range w.Productions {
		if p.IsBinary() {
			binary = append(binary, p)
		}
	}

	for changed := true; changed; {
		if err := run.NextRound(ctx); err != nil {
			return query.Result{}, err
		}

		products := make([]matrix.Bool, len(binary))
		eg, egctx := errgroup.WithContext(ctx)
		eg.SetLimit(max(o.Parallelism, 1))
		for k, p := range binary {
			eg.Go(func() error {
				if err := egctx.Err(); err != nil {
					return err
				}
				prod, err := matrix.Mul(m[p.Body[0].Name], m[p.Body[1].Name])
				products[k] = prod
				return err
			})
		}
		if err := eg.Wait(); err != nil {
			return query.Result{}, err
		}

		changed = false
		nnz := 0
		for k, p := range binary {
			c, err := matrix.OrInPlace(m[p.Head], products[k])
			if err != nil {
				return query.Result{}, err
			}
			changed = changed || c
		}
		for _, mm := range m {
			nnz += mm.Nonzero()
		}
		run.RoundDone(ctx, boolInt(changed), nnz)
	}

	start, ok := m[w.Start]
	if !ok {
		return query.Result{}, nil
	}

	return collect(ix, o, g, start.Each), nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
