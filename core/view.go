// File: view.go
// Role: Read-only index snapshot consumed by the algorithm packages.
//
// A View maps the sorted vertex table into the dense index space 0..n-1 so
// per-call state (visited bitmaps, distance/key/parent arrays, heap slot
// tables) can live in plain slices instead of name-keyed maps. Because the
// table is sorted, ascending index order IS ascending lexicographic order,
// and so is the neighbor order within each adjacency slice; algorithms get
// the deterministic tie-break without ever re-sorting.

package core

import "sort"

// Arc is one neighbor reference inside a View: the neighbor's dense index
// plus the connecting edge weight.
type Arc struct {
	// To is the neighbor's index in the View's 0..n-1 space.
	To int

	// Weight is the edge weight in [MinWeight, MaxWeight].
	Weight int
}

// View is an immutable index-space snapshot of a Graph, taken at a single
// point in time. Mutating the Graph afterwards does not disturb the View;
// take a fresh one per algorithm call.
type View struct {
	names []string // ascending; Name(i) < Name(j) iff i < j
	adj   [][]Arc  // adj[i] sorted ascending by To
}

// View snapshots the current graph into dense index space.
// Complexity: O(V + E log V); each adjacency entry resolves its neighbor
// index with one binary search over the name table.
func (g *Graph) View() *View {
	n := len(g.vertices)
	w := &View{
		names: make([]string, n),
		adj:   make([][]Arc, n),
	}
	for i, v := range g.vertices {
		w.names[i] = v.name
	}
	for i, v := range g.vertices {
		arcs := make([]Arc, len(v.adj))
		for k, a := range v.adj {
			// The neighbor is guaranteed present: adjacency never references
			// a vertex outside the table.
			j := sort.SearchStrings(w.names, a.to)
			arcs[k] = Arc{To: j, Weight: a.weight}
		}
		w.adj[i] = arcs
	}

	return w
}

// Order returns the number of vertices in the snapshot.
func (w *View) Order() int { return len(w.names) }

// Name returns the vertex name at dense index i.
func (w *View) Name(i int) string { return w.names[i] }

// Names returns the full ascending name table. Callers must treat the
// returned slice as read-only.
func (w *View) Names() []string { return w.names }

// IndexOf returns the dense index of name and whether it is present.
// Complexity: O(log V).
func (w *View) IndexOf(name string) (int, bool) {
	i := sort.SearchStrings(w.names, name)
	if i < len(w.names) && w.names[i] == name {
		return i, true
	}

	return 0, false
}

// Arcs returns vertex i's neighbors in ascending index (hence ascending
// lexicographic) order. Callers must treat the returned slice as read-only.
func (w *View) Arcs(i int) []Arc { return w.adj[i] }
