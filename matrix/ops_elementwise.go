// SPDX-License-Identifier: MIT

// Package matrix - element-wise boolean operations and row-block helpers.
//
// Purpose:
//   - Or / OrInPlace accumulate reachability; OrInPlace reports change so
//     fixpoint loops know when to stop.
//   - AndNot removes already visited entries; entries are exactly true or
//     false, so a \ b is exact with no numeric threshold.
//   - Slice / PutRows confine work to one row block of a stacked frontier.
//
// Contract:
//   - All binary operations require equal shapes (ErrDimensionMismatch).

package matrix

import "github.com/bits-and-blooms/bitset"

const (
	ctxOr          = "Or"
	ctxOrInPlace   = "OrInPlace"
	ctxAndNot      = "AndNot"
	ctxSetDiagonal = "SetDiagonal"
	ctxSlice       = "Slice"
	ctxPutRows     = "PutRows"
)

// Or returns a ∨ b in the backend of a.
// Complexity: O(nnz(a) + nnz(b)) (Dense·Dense: O(rows · cols/64)).
func Or(a, b Bool) (Bool, error) {
	if err := ValidateNotNil(a, b); err != nil {
		return nil, matrixErrorf(ctxOr, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(ctxOr, err)
	}
	out := a.Clone()
	orInto(out, b)

	return out, nil
}

// OrInPlace sets dst |= src and reports whether any entry of dst changed.
//
// AI-Hints:
//   - This is the fixpoint primitive: loop while OrInPlace reports true.
func OrInPlace(dst, src Bool) (bool, error) {
	if err := ValidateNotNil(dst, src); err != nil {
		return false, matrixErrorf(ctxOrInPlace, err)
	}
	if err := ValidateSameShape(dst, src); err != nil {
		return false, matrixErrorf(ctxOrInPlace, err)
	}

	return orInto(dst, src), nil
}

func orInto(dst, src Bool) bool {
	changed := false
	switch d := dst.(type) {
	case *Dense:
		if s, ok := src.(*Dense); ok {
			for i, row := range d.rows {
				before := row.Count()
				row.InPlaceUnion(s.rows[i])
				if row.Count() != before {
					changed = true
				}
			}
			return changed
		}
	case *Sparse:
		for i := range d.rows {
			add := rowView(src, i)
			if len(add) == 0 {
				continue
			}
			merged := unionSorted(d.rows[i], add)
			if len(merged) != len(d.rows[i]) {
				d.rows[i] = merged
				changed = true
			}
		}
		return changed
	}

	src.Each(func(i, j int) {
		if !dst.At(i, j) {
			dst.Set(i, j)
			changed = true
		}
	})

	return changed
}

// AndNot returns a ∧ ¬b in the backend of a.
// Complexity: O(nnz(a) + nnz(b)).
func AndNot(a, b Bool) (Bool, error) {
	if err := ValidateNotNil(a, b); err != nil {
		return nil, matrixErrorf(ctxAndNot, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(ctxAndNot, err)
	}

	if ad, ok := a.(*Dense); ok {
		if bd, ok := b.(*Dense); ok {
			out := &Dense{r: ad.r, c: ad.c, rows: make([]*bitset.BitSet, ad.r)}
			for i := range ad.rows {
				out.rows[i] = ad.rows[i].Difference(bd.rows[i])
			}
			return out, nil
		}
	}

	out := New(configOf(a), a.Rows(), a.Cols())
	for i := 0; i < a.Rows(); i++ {
		if rest := diffSorted(rowView(a, i), rowView(b, i)); len(rest) > 0 {
			putRow(out, i, rest)
		}
	}

	return out, nil
}

// SetDiagonal sets m[i][i] for every i in place. m must be square.
func SetDiagonal(m Bool) error {
	if err := ValidateSquare(m); err != nil {
		return matrixErrorf(ctxSetDiagonal, err)
	}
	for i := 0; i < m.Rows(); i++ {
		m.Set(i, i)
	}

	return nil
}

// Slice returns a copy of rows [r0, r1) of m.
func Slice(m Bool, r0, r1 int) (Bool, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(ctxSlice, err)
	}
	if err := validateRowRange(m, r0, r1); err != nil {
		return nil, matrixErrorf(ctxSlice, err)
	}
	out := New(configOf(m), r1-r0, m.Cols())
	for i := r0; i < r1; i++ {
		if row := rowView(m, i); len(row) > 0 {
			putRow(out, i-r0, row)
		}
	}

	return out, nil
}

// PutRows overwrites rows [r0, r0+src.Rows()) of dst with the rows of src.
// dst and src must have the same number of columns.
func PutRows(dst Bool, r0 int, src Bool) error {
	if err := ValidateNotNil(dst, src); err != nil {
		return matrixErrorf(ctxPutRows, err)
	}
	if dst.Cols() != src.Cols() {
		return matrixErrorf(ctxPutRows, ErrDimensionMismatch)
	}
	if err := validateRowRange(dst, r0, r0+src.Rows()); err != nil {
		return matrixErrorf(ctxPutRows, err)
	}
	for i := 0; i < src.Rows(); i++ {
		putRow(dst, r0+i, rowView(src, i))
	}

	return nil
}
