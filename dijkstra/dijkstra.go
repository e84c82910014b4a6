// Package dijkstra implements single-source shortest paths over an
// undirected, weighted core.Graph.
//
// Edge weights live in [core.MinWeight, core.MaxWeight], so they are always
// positive and Dijkstra's greedy settlement argument holds: once a vertex is
// extracted with the minimum tentative distance, that distance is final.
//
// Like the mst package, relaxation uses true decrease-key: at most one heap
// entry per vertex, with a vertex-index → heap-slot side table kept current
// through the heap's move hook. Ties in distance settle toward the
// lexicographically smaller vertex because relaxation scans sorted
// adjacency and only a strict improvement updates a tentative distance.
//
// Complexity: O((V + E) log V) time, O(V) transient space per call.
package dijkstra

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/lexgraph/lexgraph/core"
	"github.com/lexgraph/lexgraph/pqueue"
)

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = errors.New("dijkstra: graph is nil")

// Infinity is the distance reported for vertices unreachable from the
// source.
const Infinity = math.MaxInt

// noParent marks a vertex with no predecessor in the shortest-path tree.
const noParent = -1

// TreeResult is the full shortest-path tree from a single source, in the
// graph's dense index space: position i of every slice refers to the i-th
// vertex of Names (ascending lexicographic order).
type TreeResult struct {
	// Names lists every vertex name ascending.
	Names []string

	// Dist holds the final distance from the source per vertex, or
	// Infinity where unreachable.
	Dist []int

	// Parent holds each vertex's predecessor index on its shortest path,
	// or noParent for the source and unreachable vertices.
	Parent []int
}

// PathTo reconstructs the shortest path from the source to the named
// destination by following parent links and reversing. Returns the ordered
// vertex sequence, the total cost, and false when dst is absent or
// unreachable.
func (t *TreeResult) PathTo(dst string) ([]string, int, bool) {
	d := -1
	for i, name := range t.Names {
		if name == dst {
			d = i
			break
		}
	}
	if d == -1 || t.Dist[d] == Infinity {
		return nil, 0, false
	}

	var path []string
	for v := d; v != noParent; v = t.Parent[v] {
		path = append(path, t.Names[v])
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, t.Dist[d], true
}

// Result holds one source-to-destination shortest path query.
type Result struct {
	// Path is the ordered vertex sequence from source to destination.
	// Empty when Reachable is false.
	Path []string

	// Cost is the total edge cost along Path.
	Cost int

	// Reachable is false when either endpoint is absent or no path exists.
	Reachable bool
}

// Text renders the query in its command-output form:
//
//	A -> B -> C; Total edge cost = 3
//
// or the sentinel "0" line when unreachable.
func (r *Result) Text() string {
	if !r.Reachable {
		return "0\n"
	}

	return fmt.Sprintf("%s; Total edge cost = %d\n", strings.Join(r.Path, " -> "), r.Cost)
}

// Tree computes the full shortest-path tree from src across g.
// Returns core.ErrVertexNotFound when src is absent.
func Tree(g *core.Graph, src string) (*TreeResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	view := g.View()
	s, ok := view.IndexOf(src)
	if !ok {
		return nil, core.ErrVertexNotFound
	}

	dist, parent := run(view, s, noParent)

	return &TreeResult{
		Names:  append([]string(nil), view.Names()...),
		Dist:   dist,
		Parent: parent,
	}, nil
}

// ShortestPath answers a single src → dst query over g. Absent endpoints
// and unreachable destinations both yield an unreachable Result, not an
// error; only a nil graph is an error.
//
// The search stops as soon as dst settles; later settlements cannot
// improve a distance that is already final.
func ShortestPath(g *core.Graph, src, dst string) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	view := g.View()
	s, ok := view.IndexOf(src)
	if !ok {
		return &Result{}, nil
	}
	d, ok := view.IndexOf(dst)
	if !ok {
		return &Result{}, nil
	}

	dist, parent := run(view, s, d)
	if dist[d] == Infinity {
		return &Result{}, nil
	}

	// Reconstruct dst ← src, then reverse.
	var path []string
	for v := d; v != noParent; v = parent[v] {
		path = append(path, view.Name(v))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return &Result{Path: path, Cost: dist[d], Reachable: true}, nil
}

// run is the shared settlement loop. stopAt is a vertex index whose
// settlement ends the search early, or noParent to settle everything
// reachable.
func run(view *core.View, s, stopAt int) (dist, parent []int) {
	// 1. Per-vertex state: tentative distances, tree parents, settlement
	//    flags, and the heap slot per frontier vertex (-1 = not in heap).
	const unset = -1
	n := view.Order()
	dist = make([]int, n)
	parent = make([]int, n)
	settled := make([]bool, n)
	slot := make([]int, n)
	for i := range dist {
		dist[i] = Infinity
		parent[i] = noParent
		slot[i] = unset
	}
	dist[s] = 0

	heap := pqueue.New(pqueue.WithOnMove(func(payload any, hs int) {
		slot[payload.(int)] = hs
	}))
	// Keys derive from dist, which starts at 0 and only ever sums positive
	// weights, so Push cannot reject them.
	_, _ = heap.Push(s, 0)

	// 2. Settle vertices in increasing distance order.
	for !heap.IsEmpty() {
		payload, _, _ := heap.ExtractMin()
		u := payload.(int)
		slot[u] = unset
		if settled[u] {
			continue
		}
		settled[u] = true
		if u == stopAt {
			break
		}

		// 3. Relax u's incident edges in ascending neighbor order.
		for _, a := range view.Arcs(u) {
			if settled[a.To] {
				continue
			}
			next := dist[u] + a.Weight
			if next >= dist[a.To] {
				continue
			}
			dist[a.To] = next
			parent[a.To] = u
			if slot[a.To] == unset {
				_, _ = heap.Push(a.To, next)
			} else {
				_ = heap.DecreaseKey(slot[a.To], next)
			}
		}
	}

	return dist, parent
}
