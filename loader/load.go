// SPDX-License-Identifier: MIT

package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	pkgerrors "github.com/pkg/errors"

	"github.com/katalvlaran/lvpath/core"
)

// Load reads the graph file at path, choosing the format by extension:
// .yaml/.yml are datasets (ReadYAML); .csv, .txt, .tsv, .edges and no
// extension are edge lists (ReadEdgeList).
//
// Errors: ErrFormat for any other extension; open and parse errors, wrapped
// with the path.
func Load(path string) (*core.Graph, error) {
	ext := strings.ToLower(filepath.Ext(path))
	read, ok := readers[ext]
	if !ok {
		return nil, fmt.Errorf("%w: unknown extension %q", ErrFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "load graph")
	}
	defer f.Close()

	g, err := read(f)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "load %s", path)
	}

	return g, nil
}

var readers = map[string]func(*os.File) (*core.Graph, error){
	".yaml":  readYAMLGraph,
	".yml":   readYAMLGraph,
	".csv":   readEdgeListFile,
	".txt":   readEdgeListFile,
	".tsv":   readEdgeListFile,
	".edges": readEdgeListFile,
	"":       readEdgeListFile,
}

func readYAMLGraph(f *os.File) (*core.Graph, error) {
	g, _, err := ReadYAML(f)
	return g, err
}

func readEdgeListFile(f *os.File) (*core.Graph, error) { return ReadEdgeList(f) }

// Save writes g to path in the format chosen by its extension, as Load reads it.
func Save(path string, g *core.Graph) error {
	if g == nil {
		return ErrGraphNil
	}
	ext := strings.ToLower(filepath.Ext(path))
	if _, ok := readers[ext]; !ok && ext != ".dot" {
		return fmt.Errorf("%w: unknown extension %q", ErrFormat, ext)
	}

	f, err := os.Create(path)
	if err != nil {
		return pkgerrors.Wrap(err, "save graph")
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		err = WriteYAML(f, name, g)
	case ".dot":
		err = WriteDOT(f, name, g)
	default:
		err = WriteEdgeList(f, g)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}

	return pkgerrors.Wrapf(err, "save %s", path)
}
