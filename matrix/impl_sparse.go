// SPDX-License-Identifier: MIT

// Package matrix - Sparse storage: a sorted column slice per row.
//
// Purpose:
//   - Memory proportional to the number of set entries; the right choice for
//     graph adjacency where most rows hold a handful of edges.
//   - Binary search membership, merge-based row union.
//
// Complexity quicksheet:
//   - At: O(log k); Set/Unset: O(k) insertion; Row: O(k) copy; Clone: O(nnz).

package matrix

import (
	"fmt"
	"sort"
)

const panicSparseIndex = "matrix: Sparse index out of range"

// Sparse is a boolean matrix storing, per row, the sorted set columns.
type Sparse struct {
	r, c int
	rows [][]int
}

// NewSparse allocates an all-false rows×cols Sparse matrix.
// Returns ErrBadShape if rows or cols is negative.
func NewSparse(rows, cols int) (*Sparse, error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf(fmt.Sprintf("NewSparse(%d,%d)", rows, cols), ErrBadShape)
	}

	return newSparse(rows, cols), nil
}

func newSparse(rows, cols int) *Sparse {
	return &Sparse{r: rows, c: cols, rows: make([][]int, rows)}
}

// Rows returns the number of rows.
func (s *Sparse) Rows() int { return s.r }

// Cols returns the number of columns.
func (s *Sparse) Cols() int { return s.c }

// Format reports FormatSparse.
func (s *Sparse) Format() Format { return FormatSparse }

func (s *Sparse) mustIndex(i, j int) {
	if i < 0 || i >= s.r || j < 0 || j >= s.c {
		panic(panicSparseIndex)
	}
}

// search returns the insertion point of j in row i and whether j is present.
func (s *Sparse) search(i, j int) (int, bool) {
	row := s.rows[i]
	k := sort.SearchInts(row, j)

	return k, k < len(row) && row[k] == j
}

// At reports whether (i, j) is set. Panics outside the shape.
func (s *Sparse) At(i, j int) bool {
	s.mustIndex(i, j)
	_, ok := s.search(i, j)

	return ok
}

// Set sets (i, j). Panics outside the shape.
func (s *Sparse) Set(i, j int) {
	s.mustIndex(i, j)
	k, ok := s.search(i, j)
	if ok {
		return
	}
	row := append(s.rows[i], 0)
	copy(row[k+1:], row[k:])
	row[k] = j
	s.rows[i] = row
}

// Unset clears (i, j). Panics outside the shape.
func (s *Sparse) Unset(i, j int) {
	s.mustIndex(i, j)
	k, ok := s.search(i, j)
	if !ok {
		return
	}
	s.rows[i] = append(s.rows[i][:k], s.rows[i][k+1:]...)
}

// Get is the checked variant of At.
func (s *Sparse) Get(i, j int) (bool, error) {
	if i < 0 || i >= s.r || j < 0 || j >= s.c {
		return false, matrixErrorf(fmt.Sprintf("Sparse.%s(%d,%d)", ctxGet, i, j), ErrOutOfRange)
	}
	_, ok := s.search(i, j)

	return ok, nil
}

// Put is the checked variant of Set/Unset.
func (s *Sparse) Put(i, j int, v bool) error {
	if i < 0 || i >= s.r || j < 0 || j >= s.c {
		return matrixErrorf(fmt.Sprintf("Sparse.%s(%d,%d)", ctxPut, i, j), ErrOutOfRange)
	}
	if v {
		s.Set(i, j)
	} else {
		s.Unset(i, j)
	}

	return nil
}

// Nonzero counts set entries.
func (s *Sparse) Nonzero() int {
	n := 0
	for _, row := range s.rows {
		n += len(row)
	}

	return n
}

// Each visits set entries in row-major order.
func (s *Sparse) Each(fn func(i, j int)) {
	for i, row := range s.rows {
		for _, j := range row {
			fn(i, j)
		}
	}
}

// Row returns a copy of the sorted set columns of row i. Panics outside the shape.
func (s *Sparse) Row(i int) []int {
	if i < 0 || i >= s.r {
		panic(panicSparseIndex)
	}

	return append([]int(nil), s.rows[i]...)
}

// Clone returns a deep copy.
func (s *Sparse) Clone() Bool {
	out := newSparse(s.r, s.c)
	for i, row := range s.rows {
		if len(row) > 0 {
			out.rows[i] = append([]int(nil), row...)
		}
	}

	return out
}

// Equal compares shape and entries against any backend.
func (s *Sparse) Equal(other Bool) bool {
	if other == nil || s.r != other.Rows() || s.c != other.Cols() {
		return false
	}
	if o, ok := other.(*Sparse); ok {
		for i := range s.rows {
			if !equalInts(s.rows[i], o.rows[i]) {
				return false
			}
		}

		return true
	}

	return sameEntries(s, other)
}

// unionSorted merges two sorted, duplicate-free slices.
func unionSorted(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			out = append(out, b[j])
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	out = append(out, a[i:]...)

	return append(out, b[j:]...)
}

// diffSorted returns a \ b for sorted, duplicate-free slices.
func diffSorted(a, b []int) []int {
	out := make([]int, 0, len(a))
	j := 0
	for _, x := range a {
		for j < len(b) && b[j] < x {
			j++
		}
		if j < len(b) && b[j] == x {
			continue
		}
		out = append(out, x)
	}

	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
