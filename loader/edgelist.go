// SPDX-License-Identifier: MIT

// File: edgelist.go
// Role: the plain edge-list format used by the CFPQ benchmark datasets.
//
// Format:
//   - One edge per line: `from to label`. Fields are separated by a comma
//     (then exactly three fields, each trimmed) or by whitespace (then the
//     label is the rest of the line with inner runs of spaces collapsed).
//   - Blank lines and lines starting with '#' are skipped.

package loader

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	pkgerrors "github.com/pkg/errors"

	"github.com/katalvlaran/lvpath/core"
)

// ReadEdgeList parses an edge list into a new core.NewLabeledGraph.
//
// Errors:
//   - ErrFormat (wrapped with the line number) for a line with too few
//     fields or an empty field; read errors from r, wrapped.
func ReadEdgeList(r io.Reader) (*core.Graph, error) {
	g := core.NewLabeledGraph()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		from, to, label, err := splitEdge(text)
		if err != nil {
			return nil, pkgerrors.Wrapf(err, "line %d", line)
		}
		if _, err := g.AddEdge(from, to, label); err != nil {
			return nil, pkgerrors.Wrapf(err, "line %d", line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, pkgerrors.Wrap(err, "read edge list")
	}

	return g, nil
}

func splitEdge(text string) (from, to, label string, err error) {
	var fields []string
	if strings.Contains(text, ",") {
		fields = strings.Split(text, ",")
		if len(fields) != 3 {
			return "", "", "", fmt.Errorf("%w: want 3 comma-separated fields, got %d", ErrFormat, len(fields))
		}
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
	} else {
		fields = strings.Fields(text)
		if len(fields) < 3 {
			return "", "", "", fmt.Errorf("%w: want `from to label`, got %q", ErrFormat, text)
		}
		fields = []string{fields[0], fields[1], strings.Join(fields[2:], " ")}
	}
	for _, f := range fields {
		if f == "" {
			return "", "", "", fmt.Errorf("%w: empty field in %q", ErrFormat, text)
		}
	}

	return fields[0], fields[1], fields[2], nil
}

// WriteEdgeList writes one `from to label` line per traversable arc of g
// (see core.Graph.Arcs), so reading it back yields a directed graph with
// the same arcs. Labels containing a comma are not representable.
func WriteEdgeList(w io.Writer, g *core.Graph) error {
	if g == nil {
		return ErrGraphNil
	}
	bw := bufio.NewWriter(w)
	for _, a := range g.Arcs() {
		if _, err := fmt.Fprintf(bw, "%s %s %s\n", a.From, a.To, a.Label); err != nil {
			return pkgerrors.Wrap(err, "write edge list")
		}
	}

	return pkgerrors.Wrap(bw.Flush(), "write edge list")
}
