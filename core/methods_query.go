// Read-only queries over the sorted store. All orderings fall out of the
// representation invariant; nothing here re-sorts.

package core

// HasVertex reports whether a vertex with the given name exists.
// Complexity: O(log V).
func (g *Graph) HasVertex(name string) bool {
	_, found := g.findVertex(name)

	return found
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the number of logical undirected edges. This is always
// exactly half the number of stored adjacency entries.
// Complexity: O(1).
func (g *Graph) EdgeCount() int { return g.edgeCount }

// Degree returns the number of adjacency entries for the named vertex,
// or ErrVertexNotFound if it does not exist.
// Complexity: O(log V).
func (g *Graph) Degree(name string) (int, error) {
	i, found := g.findVertex(name)
	if !found {
		return 0, ErrVertexNotFound
	}

	return len(g.vertices[i].adj), nil
}

// HasEdge reports whether the undirected edge (u, v) exists.
// Either endpoint being absent simply yields false.
// Complexity: O(log V + log deg).
func (g *Graph) HasEdge(u, v string) bool {
	i, found := g.findVertex(u)
	if !found {
		return false
	}
	_, exists := g.vertices[i].findArc(v)

	return exists
}

// EdgeWeight returns the weight of edge (u, v), ErrVertexNotFound if either
// endpoint is absent, or ErrEdgeNotFound if the vertices are not connected.
// Complexity: O(log V + log deg).
func (g *Graph) EdgeWeight(u, v string) (int, error) {
	i, found := g.findVertex(u)
	if !found {
		return 0, ErrVertexNotFound
	}
	if !g.HasVertex(v) {
		return 0, ErrVertexNotFound
	}
	ai, exists := g.vertices[i].findArc(v)
	if !exists {
		return 0, ErrEdgeNotFound
	}

	return g.vertices[i].adj[ai].weight, nil
}

// NeighborIDs returns the names adjacent to the given vertex in ascending
// lexicographic order, or ErrVertexNotFound.
// The result is freshly allocated; callers may retain it.
// Complexity: O(log V + deg).
func (g *Graph) NeighborIDs(name string) ([]string, error) {
	i, found := g.findVertex(name)
	if !found {
		return nil, ErrVertexNotFound
	}
	v := g.vertices[i]
	ids := make([]string, len(v.adj))
	for k, a := range v.adj {
		ids[k] = a.to
	}

	return ids, nil
}

// Vertices returns all vertex names in ascending lexicographic order.
// The result is freshly allocated; callers may retain it.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	names := make([]string, len(g.vertices))
	for i, v := range g.vertices {
		names[i] = v.name
	}

	return names
}

// Edges returns every logical edge exactly once, smaller endpoint first,
// ordered ascending by (U, V). The order falls out of scanning the sorted
// vertex table and each sorted adjacency list.
// Complexity: O(V + E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edgeCount)
	for _, u := range g.vertices {
		for _, a := range u.adj {
			// Emit each undirected edge from its smaller endpoint only.
			if u.name < a.to {
				out = append(out, Edge{U: u.name, V: a.to, Weight: a.weight})
			}
		}
	}

	return out
}
