// SPDX-License-Identifier: MIT

// Package matrix - boolean semiring algebra: Mul, Kron, Transpose.
//
// Purpose:
//   - The three products path-query algorithms are built from:
//     Mul for reachability steps, Kron for automaton intersection,
//     Transpose for the backward half of the frontier update.
//
// Contract:
//   - Operands are never mutated; results are fresh matrices in the backend of
//     the left operand.
//   - Shape errors wrap ErrDimensionMismatch; nil operands wrap ErrNilMatrix.
//
// AI-Hints:
//   - Mixing backends is legal; the fast paths apply only to *Dense·*Dense
//     and *Sparse·*Sparse, the generic path reads rows through Row().

package matrix

const (
	ctxMul       = "Mul"
	ctxKron      = "Kron"
	ctxTranspose = "Transpose"
)

// Mul returns the boolean product a·b: (a·b)[i][j] = ∨_k a[i][k] ∧ b[k][j].
//
// Implementation:
//   - Stage 1: Validate non-nil operands and a.Cols() == b.Rows().
//   - Stage 2 (Dense·Dense): for every set a[i][k], union row k of b into row i.
//   - Stage 2 (otherwise): merge the sorted rows of b selected by row i of a.
//
// Complexity:
//   - Dense·Dense: O(nnz(a) · cols/64).
//   - Generic: O(Σ_i Σ_{k∈a_i} |b_k|).
func Mul(a, b Bool) (Bool, error) {
	if err := ValidateNotNil(a, b); err != nil {
		return nil, matrixErrorf(ctxMul, err)
	}
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(ctxMul, err)
	}

	if ad, ok := a.(*Dense); ok {
		if bd, ok := b.(*Dense); ok {
			return mulDense(ad, bd), nil
		}
	}

	out := New(configOf(a), a.Rows(), b.Cols())
	for i := 0; i < a.Rows(); i++ {
		var acc []int
		for _, k := range rowView(a, i) {
			acc = unionSorted(acc, rowView(b, k))
		}
		if len(acc) > 0 {
			putRow(out, i, acc)
		}
	}

	return out, nil
}

func mulDense(a, b *Dense) *Dense {
	out := newDense(a.r, b.c)
	for i, row := range a.rows {
		dst := out.rows[i]
		for k, ok := row.NextSet(0); ok; k, ok = row.NextSet(k + 1) {
			dst.InPlaceUnion(b.rows[k])
		}
	}

	return out
}

// Kron returns the Kronecker product a ⊗ b of shape (a.Rows·b.Rows)×(a.Cols·b.Cols):
// (a ⊗ b)[i·b.Rows+k][j·b.Cols+l] = a[i][j] ∧ b[k][l].
//
// Implementation:
//   - For every row pair (i, k) the output row is the ordered concatenation of
//     b's row k shifted by j·b.Cols for each j in a's row i; it is already sorted.
//
// Complexity:
//   - O(nnz(a) · nnz(b)) plus O(a.Rows·b.Rows) row visits.
func Kron(a, b Bool) (Bool, error) {
	if err := ValidateNotNil(a, b); err != nil {
		return nil, matrixErrorf(ctxKron, err)
	}

	br, bc := b.Rows(), b.Cols()
	out := New(configOf(a), a.Rows()*br, a.Cols()*bc)
	if a.Nonzero() == 0 || b.Nonzero() == 0 {
		return out, nil
	}

	bRows := make([][]int, br)
	for k := 0; k < br; k++ {
		bRows[k] = rowView(b, k)
	}
	for i := 0; i < a.Rows(); i++ {
		ai := rowView(a, i)
		if len(ai) == 0 {
			continue
		}
		for k, bk := range bRows {
			if len(bk) == 0 {
				continue
			}
			cols := make([]int, 0, len(ai)*len(bk))
			for _, j := range ai {
				for _, l := range bk {
					cols = append(cols, j*bc+l)
				}
			}
			putRow(out, i*br+k, cols)
		}
	}

	return out, nil
}

// Transpose returns aᵀ.
// Complexity: O(rows + cols + nnz).
func Transpose(a Bool) (Bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(ctxTranspose, err)
	}

	cols := make([][]int, a.Cols())
	a.Each(func(i, j int) { cols[j] = append(cols[j], i) })

	out := New(configOf(a), a.Cols(), a.Rows())
	for j, rows := range cols {
		if len(rows) > 0 {
			putRow(out, j, rows)
		}
	}

	return out, nil
}
