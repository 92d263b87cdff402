// SPDX-License-Identifier: MIT

// Package loader reads and writes labeled graphs for path queries.
//
// Formats:
//
//   - Edge list (ReadEdgeList, WriteEdgeList): `from to label` lines, comma
//     or whitespace separated, '#' comments. This is the shape of the
//     public CFPQ benchmark datasets.
//   - YAML dataset (ReadYAML, WriteYAML): name, optional directed flag,
//     optional node list, and edges as {from, to, label} maps.
//   - Graphviz DOT (WriteDOT), write-only.
//
// Load and Save pick the format from the file extension. Info summarizes a
// graph: counts, label set and weakly connected components.
package loader
