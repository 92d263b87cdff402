// SPDX-License-Identifier: MIT

// Package matrix - constructors and format conversion.
//
// Purpose:
//   - New is the only place that maps a Config to a concrete backend.
//   - Identity and Convert build on it so no caller ever switches on Format.

package matrix

import "fmt"

// New allocates an all-false rows×cols matrix in the backend cfg selects.
// An unset Config selects DefaultFormat.
//
// Panics on negative dimensions or an invalid Format: shapes here are derived
// from automaton sizes and a negative one is a bug in the caller.
func New(cfg Config, rows, cols int) Bool {
	if rows < 0 || cols < 0 {
		panic(panicShape)
	}
	switch cfg.Format {
	case FormatDense:
		return newDense(rows, cols)
	case FormatSparse:
		return newSparse(rows, cols)
	default:
		panic(fmt.Sprintf("%s: %d", panicUnknownFormat, int(cfg.Format)))
	}
}

// Identity returns the n×n identity matrix.
func Identity(cfg Config, n int) Bool {
	m := New(cfg, n, n)
	for i := 0; i < n; i++ {
		m.Set(i, i)
	}

	return m
}

// Convert returns a copy of m stored in the backend cfg selects.
// A matrix already in that backend is cloned.
func Convert(m Bool, cfg Config) (Bool, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("Convert", err)
	}
	if m.Format() == cfg.Format {
		return m.Clone(), nil
	}
	out := New(cfg, m.Rows(), m.Cols())
	for i := 0; i < m.Rows(); i++ {
		putRow(out, i, m.Row(i))
	}

	return out, nil
}

// configOf returns the Config that reproduces m's backend.
func configOf(m Bool) Config { return Config{Format: m.Format()} }

// rowView returns row i without copying when the backend allows it.
// The result must not be mutated.
func rowView(m Bool, i int) []int {
	if s, ok := m.(*Sparse); ok {
		return s.rows[i]
	}

	return m.Row(i)
}

// putRow overwrites row i of m with the sorted columns cols.
func putRow(m Bool, i int, cols []int) {
	switch t := m.(type) {
	case *Sparse:
		if len(cols) == 0 {
			t.rows[i] = nil
			return
		}
		t.rows[i] = append([]int(nil), cols...)
	case *Dense:
		t.rows[i].ClearAll()
		for _, j := range cols {
			t.rows[i].Set(uint(j))
		}
	default:
		for _, j := range m.Row(i) {
			m.Unset(i, j)
		}
		for _, j := range cols {
			m.Set(i, j)
		}
	}
}

// sameEntries compares two equally shaped matrices row by row.
func sameEntries(a, b Bool) bool {
	for i := 0; i < a.Rows(); i++ {
		if !equalInts(rowView(a, i), rowView(b, i)) {
			return false
		}
	}

	return true
}
