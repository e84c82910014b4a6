// Package lexgraph is an in-memory engine for undirected, weighted graphs
// with fully deterministic algorithm output.
//
// Every operation that enumerates vertices resolves ties the same way:
// ascending lexicographic order of vertex names. Two runs over the same
// graph always produce byte-identical output, which makes every result
// pinnable in tests and diffable between runs.
//
// The module is organized as small single-purpose packages:
//
//	core/     — the graph store: vertices, edges, queries, snapshots, printing
//	pqueue/   — slot-addressable binary min-heap with decrease-key
//	scratch/  — reusable stack and queue workspaces for traversals
//	bfs/      — breadth-first traversal
//	dfs/      — depth-first traversal and reachability
//	mst/      — Prim minimum spanning tree
//	dijkstra/ — single-source shortest paths
//	shell/    — the line-oriented command protocol over one graph
//
// Start with core.New, add vertices and edges, then hand the graph to any
// algorithm package. The cmd/lexgraph binary wires the shell to stdin and
// stdout.
package lexgraph
