// SPDX-License-Identifier: MIT

// File: intersect.go
// Role: product (Kronecker) construction of two automata.
// AI-HINT (file):
//   - Only symbols present in BOTH operands get a product matrix. A symbol that
//     one side lacks contributes no transitions; this is intended, not an error.
//   - Product index: idx(left)*|B| + idx(right).

package automaton

import (
	"context"

	"github.com/emirpasic/gods/sets/treeset"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvpath/matrix"
)

// Intersect returns the product automaton of a and b, sequentially.
// See IntersectContext.
func Intersect(a, b *Automaton) (*Automaton, error) {
	return IntersectContext(context.Background(), a, b, 1)
}

// IntersectContext returns the product automaton of a and b.
//
// Implementation:
//   - Stage 1: States are the pairs (a_i, b_j) at index i*|B|+j, named Pair{a_i, b_j}.
//   - Stage 2: Start/final are componentwise: (i, j) is start iff i and j are.
//   - Stage 3: For each shared symbol s, M[s] = Kron(A[s], B[s]); the products
//     run on up to workers goroutines (workers ≤ 0 means unbounded) and
//     Wait is the barrier before the result is assembled.
//
// The product uses a's matrix configuration.
//
// Errors:
//   - ErrNilAutomaton; ctx.Err() if the context ends before all products finish.
//
// Complexity:
//   - O(Σ_s nnz(A[s])·nnz(B[s]) + |A|·|B|).
func IntersectContext(ctx context.Context, a, b *Automaton, workers int) (*Automaton, error) {
	if a == nil || b == nil {
		return nil, automatonErrorf("Intersect", ErrNilAutomaton)
	}

	na, nb := a.NumStates(), b.NumStates()
	p := newAutomaton(a.cfg, na*nb)
	p.pairs = make([]Pair, 0, na*nb)
	for i := 0; i < na; i++ {
		for j := 0; j < nb; j++ {
			pair := Pair{Left: a.states[i], Right: b.states[j]}
			name := pair.String()
			if _, dup := p.index[name]; !dup {
				p.index[name] = len(p.states)
			}
			p.states = append(p.states, name)
			p.pairs = append(p.pairs, pair)
		}
	}
	for _, i := range a.StartIndices() {
		for _, j := range b.StartIndices() {
			p.start.Set(uint(i*nb + j))
		}
	}
	for _, i := range a.FinalIndices() {
		for _, j := range b.FinalIndices() {
			p.final.Set(uint(i*nb + j))
		}
	}

	shared := sharedSymbols(a, b)
	products := make([]matrix.Bool, len(shared))

	eg, egctx := errgroup.WithContext(ctx)
	if workers > 0 {
		eg.SetLimit(workers)
	}
	for k, sym := range shared {
		eg.Go(func() error {
			if err := egctx.Err(); err != nil {
				return err
			}
			m, err := matrix.Kron(a.matrices[sym], b.matrices[sym])
			if err != nil {
				return automatonErrorf("Intersect("+sym+")", err)
			}
			products[k] = m
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for k, sym := range shared {
		p.matrices[sym] = products[k]
	}

	return p, nil
}

// SharedSymbols returns the sorted symbols that both a and b have matrices for.
func SharedSymbols(a, b *Automaton) []Symbol { return sharedSymbols(a, b) }

func sharedSymbols(a, b *Automaton) []Symbol {
	left := treeset.NewWithStringComparator()
	for sym := range a.matrices {
		left.Add(sym)
	}
	right := treeset.NewWithStringComparator()
	for sym := range b.matrices {
		right.Add(sym)
	}

	both := left.Intersection(right)
	out := make([]Symbol, 0, both.Size())
	for _, v := range both.Values() {
		out = append(out, v.(string))
	}

	return out
}
