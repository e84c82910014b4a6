// This file declares the Graph, Edge and Arc types, the validation
// constants, the sentinel errors, and the New constructor.

package core

import "errors"

// Validation bounds for vertex names and edge weights.
const (
	// MaxNameLen is the maximum vertex name length in bytes.
	MaxNameLen = 256

	// MinWeight and MaxWeight bound the inclusive edge weight domain.
	MinWeight = 1
	MaxWeight = 100
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidName indicates a vertex name that violates the
	// [A-Za-z0-9_]{1,256} rule.
	ErrInvalidName = errors.New("core: invalid vertex name")

	// ErrDuplicateVertex indicates an AddVertex for a name already present.
	ErrDuplicateVertex = errors.New("core: vertex already exists")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates an edge weight outside [MinWeight, MaxWeight].
	ErrBadWeight = errors.New("core: edge weight out of range")

	// ErrSelfLoop indicates an edge whose endpoints are the same vertex.
	ErrSelfLoop = errors.New("core: self-loop not allowed")
)

// Edge is one logical undirected edge, reported with its lexicographically
// smaller endpoint first (U < V). Used by listings and results; the Graph
// itself stores mirrored adjacency entries, not Edge values.
type Edge struct {
	// U is the lexicographically smaller endpoint name.
	U string

	// V is the lexicographically larger endpoint name.
	V string

	// Weight is the edge weight in [MinWeight, MaxWeight].
	Weight int
}

// arc is one adjacency entry: the neighbor's name plus the edge weight.
// Each vertex keeps its arcs sorted ascending by neighbor name.
type arc struct {
	to     string
	weight int
}

// vertex is one entry of the sorted vertex table.
type vertex struct {
	name string
	adj  []arc // sorted ascending by arc.to, no duplicates, no self-arcs
}

// Graph is the core in-memory graph store.
//
// The vertex table is kept sorted ascending by name; each vertex keeps its
// adjacency entries sorted ascending by neighbor name. edgeCount tracks
// logical undirected edges (always half the number of adjacency entries).
type Graph struct {
	vertices  []*vertex
	edgeCount int
}

// New creates an empty Graph.
// Complexity: O(1).
func New() *Graph {
	return &Graph{}
}

// ValidName reports whether name satisfies the vertex-name rule:
// 1 to MaxNameLen bytes, each of which is a letter, digit, or underscore.
// Complexity: O(len(name)).
func ValidName(name string) bool {
	if len(name) == 0 || len(name) > MaxNameLen {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_' {
			continue
		}
		return false
	}

	return true
}
