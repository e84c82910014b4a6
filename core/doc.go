// Package core defines the central Graph type: an in-memory, undirected,
// weighted graph whose vertex table and per-vertex adjacency lists are kept
// permanently sorted in ascending lexicographic order of vertex name.
//
// The sorted representation is the point. Every consumer of a Graph
// (traversals, spanning trees, shortest paths, printing) inherits a single
// deterministic iteration order for free, so equal inputs always produce
// byte-identical output.
//
// Data model:
//
//   - Vertex names are 1–256 bytes drawn from [A-Za-z0-9_]; identity is the
//     name itself, case-sensitive.
//   - Edges are undirected with integer weights in [MinWeight, MaxWeight].
//     Each logical edge is stored as two mirrored adjacency entries with
//     identical weight; EdgeCount reports logical edges, not entries.
//   - Re-adding an existing edge overwrites its weight on both mirrors
//     without changing structure or edge count.
//
// Every mutation is atomic: it either fully succeeds, preserving all
// invariants, or fails with a sentinel error and zero side effects.
//
// Concurrency: a Graph is not internally synchronized. Callers must
// serialize mutation against reads; algorithm packages treat the Graph as
// read-only for the duration of each call.
//
// Algorithms should not poke at adjacency directly; take a View, which
// snapshots the vertex table into a dense index space and exposes
// sorted-neighbor iteration over integer indices.
//
// Errors:
//
//	ErrInvalidName     - name is empty, too long, or has a bad character.
//	ErrDuplicateVertex - vertex with that name already exists.
//	ErrVertexNotFound  - referenced vertex does not exist.
//	ErrEdgeNotFound    - referenced edge does not exist.
//	ErrBadWeight       - weight outside [MinWeight, MaxWeight].
//	ErrSelfLoop        - both edge endpoints name the same vertex.
package core
