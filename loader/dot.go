// SPDX-License-Identifier: MIT

package loader

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	pkgerrors "github.com/pkg/errors"

	"github.com/katalvlaran/lvpath/core"
)

// WriteDOT renders g in Graphviz DOT: a digraph whose edges keep their
// labels as `label` attributes. Undirected edges get `dir=none`. Vertices
// are listed first in sorted order, then edges in insertion order.
func WriteDOT(w io.Writer, name string, g *core.Graph) error {
	if g == nil {
		return ErrGraphNil
	}
	if name == "" {
		name = "G"
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "digraph %s {\n", strconv.Quote(name))
	for _, v := range g.Vertices() {
		fmt.Fprintf(bw, "\t%s;\n", strconv.Quote(v))
	}
	for _, e := range g.Edges() {
		fmt.Fprintf(bw, "\t%s -> %s [label=%s", strconv.Quote(e.From), strconv.Quote(e.To), strconv.Quote(e.Label))
		if !e.Directed {
			bw.WriteString(", dir=none")
		}
		bw.WriteString("];\n")
	}
	bw.WriteString("}\n")

	return pkgerrors.Wrap(bw.Flush(), "write dot")
}
