// SPDX-License-Identifier: MIT

// File: yaml.go
// Role: YAML graph datasets.
//
// Document shape:
//
//	name: two-cycles
//	directed: true        # optional, default true
//	nodes: [a, b, c]      # optional, for isolated vertices
//	edges:
//	  - {from: a, to: b, label: x}

package loader

import (
	"fmt"
	"io"

	pkgerrors "github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvpath/core"
)

// Dataset is the YAML document form of a labeled graph.
type Dataset struct {
	Name     string        `yaml:"name,omitempty"`
	Directed *bool         `yaml:"directed,omitempty"`
	Nodes    []string      `yaml:"nodes,omitempty"`
	Edges    []DatasetEdge `yaml:"edges"`
}

// DatasetEdge is one labeled edge of a Dataset.
type DatasetEdge struct {
	From  string `yaml:"from"`
	To    string `yaml:"to"`
	Label string `yaml:"label"`
}

// Graph builds the labeled graph described by d.
//
// Errors: ErrFormat for an edge with an empty endpoint or label.
func (d *Dataset) Graph() (*core.Graph, error) {
	var opts []core.GraphOption
	if d.Directed != nil && !*d.Directed {
		opts = append(opts, core.WithDirected(false))
	}
	g := core.NewLabeledGraph(opts...)

	for _, n := range d.Nodes {
		if err := g.AddVertex(n); err != nil {
			return nil, fmt.Errorf("%w: node %q: %v", ErrFormat, n, err)
		}
	}
	for i, e := range d.Edges {
		if e.From == "" || e.To == "" || e.Label == "" {
			return nil, fmt.Errorf("%w: edge %d: from, to and label are required", ErrFormat, i)
		}
		if _, err := g.AddEdge(e.From, e.To, e.Label); err != nil {
			return nil, pkgerrors.Wrapf(err, "edge %d", i)
		}
	}

	return g, nil
}

// ReadYAML decodes a Dataset from r and builds its graph. The dataset name
// is returned alongside.
func ReadYAML(r io.Reader) (*core.Graph, string, error) {
	var d Dataset
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil {
		if err == io.EOF {
			return core.NewLabeledGraph(), "", nil
		}
		return nil, "", fmt.Errorf("%w: %v", ErrFormat, err)
	}
	g, err := d.Graph()
	if err != nil {
		return nil, "", err
	}

	return g, d.Name, nil
}

// DatasetOf snapshots g as a Dataset: vertices sorted, one edge per stored
// labeled edge in edge-ID order. Unlabeled edges are dropped.
func DatasetOf(name string, g *core.Graph) (*Dataset, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	directed := g.Directed()
	d := &Dataset{Name: name, Directed: &directed, Nodes: g.Vertices()}
	for _, e := range g.Edges() {
		if e.Label == "" {
			continue
		}
		d.Edges = append(d.Edges, DatasetEdge{From: e.From, To: e.To, Label: e.Label})
	}

	return d, nil
}

// WriteYAML encodes g as a Dataset named name.
func WriteYAML(w io.Writer, name string, g *core.Graph) error {
	d, err := DatasetOf(name, g)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return pkgerrors.Wrap(err, "write yaml")
	}

	return pkgerrors.Wrap(enc.Close(), "write yaml")
}
