// SPDX-License-Identifier: MIT

package dfs

import (
	"strings"

	"github.com/emirpasic/gods/sets/treeset"

	"github.com/katalvlaran/lvpath/core"
)

// successors returns the sorted, duplicate-free arc successors of every
// vertex, restricted to labels when non-empty.
func successors(g *core.Graph, labels []string) map[string][]string {
	allowed := make(map[string]bool, len(labels))
	for _, l := range labels {
		allowed[l] = true
	}

	sets := make(map[string]*treeset.Set)
	for _, a := range g.Arcs() {
		if len(allowed) > 0 && !allowed[a.Label] {
			continue
		}
		s, ok := sets[a.From]
		if !ok {
			s = treeset.NewWithStringComparator()
			sets[a.From] = s
		}
		s.Add(a.To)
	}

	out := make(map[string][]string, len(sets))
	for id, s := range sets {
		ids := make([]string, 0, s.Size())
		for _, v := range s.Values() {
			ids = append(ids, v.(string))
		}
		out[id] = ids
	}

	return out
}

// IndexOf returns the first index of val in s, or -1 if not found.
func IndexOf(s []string, val string) int {
	for i, x := range s {
		if x == val {
			return i
		}
	}

	return -1
}

// JoinSig concatenates the elements of c with commas.
func JoinSig(c []string) string {
	return strings.Join(c, ",")
}

// MinimalRotation returns the lexicographically minimal rotation of s
// (Booth's algorithm) as a new slice.
//
// Complexity: O(n).
func MinimalRotation(s []string) []string {
	n := len(s)
	if n == 0 {
		return nil
	}
	doubled := make([]string, 0, 2*n)
	doubled = append(append(doubled, s...), s...)
	f := make([]int, 2*n)
	for i := range f {
		f[i] = -1
	}
	k := 0
	for j := 1; j < 2*n; j++ {
		i := f[j-k-1]
		for i != -1 && doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k+i+1] {
				k = j - i - 1
			}
			i = f[i]
		}
		if doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k] {
				k = j
			}
			f[j-k] = -1
		} else {
			f[j-k] = i + 1
		}
	}

	return append([]string(nil), doubled[k:k+n]...)
}
