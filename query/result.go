// SPDX-License-Identifier: MIT

// File: result.go
// Role: the node-pair set every path query returns.

package query

import (
	"sort"
	"strings"

	"github.com/katalvlaran/lvpath/core"
)

// Pair is one answer: a path labeled by a word of the query language runs
// from From to To.
type Pair struct {
	From string
	To   string
}

// Result is a set of Pairs. The zero value is an empty, usable set.
type Result struct {
	set map[Pair]struct{}
}

// NewResult returns a set holding pairs.
func NewResult(pairs ...Pair) Result {
	r := Result{set: make(map[Pair]struct{}, len(pairs))}
	for _, p := range pairs {
		r.set[p] = struct{}{}
	}

	return r
}

// Add inserts (from, to) and reports whether it was new.
func (r *Result) Add(from, to string) bool {
	if r.set == nil {
		r.set = make(map[Pair]struct{})
	}
	p := Pair{From: from, To: to}
	if _, ok := r.set[p]; ok {
		return false
	}
	r.set[p] = struct{}{}

	return true
}

// Len returns the number of pairs.
func (r Result) Len() int { return len(r.set) }

// Has reports whether (from, to) is in the set.
func (r Result) Has(from, to string) bool {
	_, ok := r.set[Pair{From: from, To: to}]
	return ok
}

// Pairs returns the pairs sorted by (From, To).
func (r Result) Pairs() []Pair {
	out := make([]Pair, 0, len(r.set))
	for p := range r.set {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// Equal reports whether r and other hold the same pairs.
func (r Result) Equal(other Result) bool {
	if len(r.set) != len(other.set) {
		return false
	}
	for p := range r.set {
		if _, ok := other.set[p]; !ok {
			return false
		}
	}

	return true
}

// String renders one "from\tto" line per pair, sorted.
func (r Result) String() string {
	var sb strings.Builder
	for _, p := range r.Pairs() {
		sb.WriteString(p.From)
		sb.WriteByte('\t')
		sb.WriteString(p.To)
		sb.WriteByte('\n')
	}

	return sb.String()
}

// NodeFilter is a resolved start or final node restriction.
type NodeFilter struct {
	all bool
	ids map[string]bool
}

// Filter resolves ids against g: empty ids admit every node; otherwise only
// the listed IDs that exist in g are admitted.
func Filter(g *core.Graph, ids []string) NodeFilter {
	if len(ids) == 0 {
		return NodeFilter{all: true}
	}
	f := NodeFilter{ids: make(map[string]bool, len(ids))}
	for _, id := range ids {
		if g.HasVertex(id) {
			f.ids[id] = true
		}
	}

	return f
}

// Admits reports whether id passes the filter.
func (f NodeFilter) Admits(id string) bool { return f.all || f.ids[id] }
