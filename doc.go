// Package lvpath answers path queries over edge-labeled graphs: which pairs
// of nodes (u, v) are connected by a path whose label word belongs to a
// given language.
//
// 🚀 What is lvpath?
//
//	An in-memory toolkit built on boolean adjacency matrices:
//		• Core primitives: labeled, directed or undirected, multi-edge graphs
//		• Matrices: dense (bitset) and sparse boolean matrices with Mul, Kron, Or
//		• Automata: one boolean matrix per symbol, Kronecker intersection, closure
//		• Regular path queries (RPQ): tensor product and multi-source BFS
//		• Context-free path queries (CFPQ): Hellings, matrix (CNF) and tensor (RSM)
//		• Loaders: edge lists, YAML datasets, DOT export, synthetic generators
//
// Under the hood, everything is organized under these subpackages:
//
//	core/       Graph, Vertex, Edge and labeled arcs
//	matrix/     Bool matrices, Dense and Sparse backends
//	automaton/  matrix automata, Intersect, TransitiveClosure, SummaryGraph
//	regex/      regular expressions over labels, minimal DFAs
//	grammar/    CFGs, weak CNF, recursive state machines
//	bfs/        label-restricted breadth-first search
//	dfs/        depth-first search, cycles and topological order over arcs
//	query/      shared query options, results and telemetry
//	rpq/        regular path queries
//	cfpq/       context-free path queries
//	builder/    synthetic labeled graphs (cycles, paths, grids, random)
//	loader/     graph files in and out
//	cmd/lvpath  the command-line front end
//
// Quick ASCII example:
//
//	    0 ──a──▶ 1 ──b──▶ 2
//
//	The pattern "a* b" relates (0, 2) and (1, 2); the grammar
//	"S -> a S b | $" relates (0, 2) and every node to itself.
//
//	go get github.com/katalvlaran/lvpath
package lvpath
