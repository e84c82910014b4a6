// Mutating operations: AddVertex and AddEdge. Both validate fully before
// touching any state, so a failed call leaves the Graph byte-identical to
// what it was; there is no partial mutation to roll back.

package core

import "sort"

// findVertex binary-searches the sorted vertex table for name.
// Returns the table index and whether the vertex is present; when absent,
// the index is the sorted insertion position.
// Complexity: O(log V).
func (g *Graph) findVertex(name string) (int, bool) {
	i := sort.Search(len(g.vertices), func(k int) bool {
		return g.vertices[k].name >= name
	})
	if i < len(g.vertices) && g.vertices[i].name == name {
		return i, true
	}

	return i, false
}

// findArc binary-searches a vertex's sorted adjacency for neighbor to.
// Same return convention as findVertex.
// Complexity: O(log deg).
func (v *vertex) findArc(to string) (int, bool) {
	i := sort.Search(len(v.adj), func(k int) bool {
		return v.adj[k].to >= to
	})
	if i < len(v.adj) && v.adj[i].to == to {
		return i, true
	}

	return i, false
}

// insertArc places arc a at sorted position i in v's adjacency.
func (v *vertex) insertArc(i int, a arc) {
	v.adj = append(v.adj, arc{})
	copy(v.adj[i+1:], v.adj[i:])
	v.adj[i] = a
}

// AddVertex inserts a new vertex with the given name at its sorted position.
//
// Returns ErrInvalidName if name violates the charset/length rule, or
// ErrDuplicateVertex if the name is already present. On error nothing changes.
// Complexity: O(V) for the sorted insertion, O(log V) for the lookup.
func (g *Graph) AddVertex(name string) error {
	// 1. Validate syntax before probing the table.
	if !ValidName(name) {
		return ErrInvalidName
	}

	// 2. Locate the sorted slot; duplicates are rejected, not overwritten.
	i, found := g.findVertex(name)
	if found {
		return ErrDuplicateVertex
	}

	// 3. Insert at the sorted position.
	g.vertices = append(g.vertices, nil)
	copy(g.vertices[i+1:], g.vertices[i:])
	g.vertices[i] = &vertex{name: name}

	return nil
}

// AddEdge adds or updates the undirected edge (u, v) with the given weight.
//
// If the edge already exists, its weight is overwritten on both mirrored
// adjacency entries; structure and edge count are untouched. Otherwise both
// mirrors are inserted at their sorted positions and the logical edge count
// is incremented.
//
// Returns ErrInvalidName for a syntactically bad endpoint, ErrSelfLoop when
// u == v, ErrBadWeight for a weight outside [MinWeight, MaxWeight], or
// ErrVertexNotFound when either endpoint is absent. All checks run before
// any mutation, so a failure has zero side effects.
// Complexity: O(log V + deg(u) + deg(v)).
func (g *Graph) AddEdge(u, v string, weight int) error {
	// 1. Syntactic validation of both endpoints.
	if !ValidName(u) || !ValidName(v) {
		return ErrInvalidName
	}

	// 2. Self-loops are never representable.
	if u == v {
		return ErrSelfLoop
	}

	// 3. Weight domain check.
	if weight < MinWeight || weight > MaxWeight {
		return ErrBadWeight
	}

	// 4. Both endpoints must already exist.
	ui, ok := g.findVertex(u)
	if !ok {
		return ErrVertexNotFound
	}
	vi, ok := g.findVertex(v)
	if !ok {
		return ErrVertexNotFound
	}
	uv, vv := g.vertices[ui], g.vertices[vi]

	// 5. Existing edge: overwrite the weight on both mirrors.
	//    Symmetry invariant: the mirror arc exists iff the forward arc does.
	if ai, exists := uv.findArc(v); exists {
		uv.adj[ai].weight = weight
		bi, _ := vv.findArc(u)
		vv.adj[bi].weight = weight

		return nil
	}

	// 6. New edge: insert both mirrors sorted, count one logical edge.
	ai, _ := uv.findArc(v)
	uv.insertArc(ai, arc{to: v, weight: weight})
	bi, _ := vv.findArc(u)
	vv.insertArc(bi, arc{to: u, weight: weight})
	g.edgeCount++

	return nil
}
