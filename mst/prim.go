// Package mst computes minimum spanning trees of an undirected, weighted
// core.Graph using Prim's algorithm.
//
// The implementation is the true decrease-key variant: each vertex occupies
// at most one heap entry, and a vertex-index → heap-slot side table, kept
// current through the heap's move hook, makes every relaxation an O(log V)
// DecreaseKey. The classic alternative of pushing a fresh duplicate entry
// per relaxation and filtering stale entries at extraction inflates the
// heap to O(E) entries.
//
// The root is always the lexicographically smallest vertex, and ties among
// equal-weight candidate edges break toward the smaller vertex name because
// relaxation scans sorted adjacency and DecreaseKey demands a strict
// improvement. Output is therefore fully deterministic.
//
// Complexity: O((V + E) log V) time, O(V) transient space per call.
package mst

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/lexgraph/lexgraph/core"
	"github.com/lexgraph/lexgraph/pqueue"
)

// Sentinel errors for MST computation.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("mst: graph is nil")

	// ErrDisconnected is returned when no spanning tree covers every
	// vertex. No partial tree is returned: a silently truncated spanning
	// forest is indistinguishable from a correct tree in the output text,
	// so disconnection is reported loudly instead.
	ErrDisconnected = errors.New("mst: graph is disconnected")
)

// noParent marks a vertex that has not been reached by any tree edge yet.
const noParent = -1

// Result holds a computed minimum spanning tree.
type Result struct {
	// Vertices lists every vertex name ascending.
	Vertices []string

	// Edges lists the tree edges, smaller endpoint first, sorted ascending
	// by (U, V). Empty for graphs with fewer than two vertices.
	Edges []core.Edge

	// Total is the sum of tree edge weights.
	Total int
}

// Text renders the tree in its command-output form:
//
//	MST(G) = (V,E)
//	V = {a, b, c}
//	E = {
//	  (a, b, 1),
//	  (b, c, 2)
//	}
//	Total Edge Weight: 3
func (r *Result) Text() string {
	var b strings.Builder
	b.WriteString("MST(G) = (V,E)\n")
	b.WriteString("V = {")
	b.WriteString(strings.Join(r.Vertices, ", "))
	b.WriteString("}\n")
	b.WriteString("E = {\n")
	for i, e := range r.Edges {
		if i > 0 {
			b.WriteString(",\n")
		}
		fmt.Fprintf(&b, "  (%s, %s, %d)", e.U, e.V, e.Weight)
	}
	b.WriteString("\n}\n")
	fmt.Fprintf(&b, "Total Edge Weight: %d\n", r.Total)

	return b.String()
}

// Prim computes the minimum spanning tree of g, rooted at the
// lexicographically smallest vertex.
//
// Empty and singleton graphs yield trivial trees with no edges. A graph
// whose vertices cannot all be reached from the root yields ErrDisconnected
// and no result.
func Prim(g *core.Graph) (*Result, error) {
	// 1. Validate and snapshot.
	if g == nil {
		return nil, ErrGraphNil
	}
	view := g.View()
	n := view.Order()

	res := &Result{
		Vertices: append([]string(nil), view.Names()...),
		Edges:    []core.Edge{},
	}
	if n <= 1 {
		return res, nil
	}

	// 2. Per-vertex state: best connecting weight, tree parent, membership,
	//    and the heap slot occupied by each frontier vertex (-1 = not in
	//    the heap). The slot table is what makes DecreaseKey reachable.
	const unset = -1
	key := make([]int, n)
	parent := make([]int, n)
	inTree := make([]bool, n)
	slot := make([]int, n)
	for i := range key {
		parent[i] = noParent
		slot[i] = unset
	}

	heap := pqueue.New(pqueue.WithOnMove(func(payload any, s int) {
		slot[payload.(int)] = s
	}))

	// 3. Seed with the root (index 0 = smallest name) at key 0.
	const root = 0
	if _, err := heap.Push(root, 0); err != nil {
		return nil, fmt.Errorf("mst: seeding heap: %w", err)
	}

	// 4. Grow the tree: extract the cheapest frontier vertex, record its
	//    connecting edge, then relax its neighbors.
	reached := 0
	total := 0
	for !heap.IsEmpty() {
		payload, k, _ := heap.ExtractMin()
		u := payload.(int)
		slot[u] = unset
		if inTree[u] {
			continue
		}
		inTree[u] = true
		reached++

		if u != root {
			uName, pName := view.Name(u), view.Name(parent[u])
			e := core.Edge{U: pName, V: uName, Weight: k}
			if uName < pName {
				e.U, e.V = uName, pName
			}
			res.Edges = append(res.Edges, e)
			total += k
		}

		for _, a := range view.Arcs(u) {
			if inTree[a.To] {
				continue
			}
			if slot[a.To] == unset {
				// First sighting of this frontier vertex.
				key[a.To] = a.Weight
				parent[a.To] = u
				if _, err := heap.Push(a.To, a.Weight); err != nil {
					return nil, fmt.Errorf("mst: relaxing %s: %w", view.Name(a.To), err)
				}
				continue
			}
			if a.Weight < key[a.To] {
				key[a.To] = a.Weight
				parent[a.To] = u
				if err := heap.DecreaseKey(slot[a.To], a.Weight); err != nil {
					return nil, fmt.Errorf("mst: relaxing %s: %w", view.Name(a.To), err)
				}
			}
		}
	}

	// 5. A spanning tree must cover every vertex.
	if reached < n {
		return nil, ErrDisconnected
	}

	// 6. Deterministic edge listing: ascending by (U, V).
	sort.Slice(res.Edges, func(i, j int) bool {
		if res.Edges[i].U != res.Edges[j].U {
			return res.Edges[i].U < res.Edges[j].U
		}
		return res.Edges[i].V < res.Edges[j].V
	})
	res.Total = total

	return res, nil
}
