// Package bfs provides breadth-first traversal over a core.Graph.
//
// BFS explores vertices in increasing distance from a start vertex, emitting
// each vertex exactly once at the moment of first discovery. Neighbors are
// expanded in ascending lexicographic order, guaranteed by the graph's
// sorted adjacency with no re-sort here, which makes the visitation order
// fully deterministic.
//
// Complexity: O(V + E) time, O(V) transient space per call.
package bfs

import (
	"errors"
	"strings"

	"github.com/lexgraph/lexgraph/core"
	"github.com/lexgraph/lexgraph/scratch"
)

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = errors.New("bfs: graph is nil")

// Result holds the outcome of a breadth-first traversal.
type Result struct {
	// Order lists vertex names in first-discovery order.
	// Empty when the start vertex does not exist.
	Order []string
}

// Text renders the traversal in its command-output form: names in discovery
// order, space-separated, newline-terminated, no trailing space. An empty
// traversal renders as a single blank line.
func (r *Result) Text() string {
	return strings.Join(r.Order, " ") + "\n"
}

// BFS runs breadth-first traversal on g from the start vertex, using ws as
// the FIFO frontier. A nil ws allocates a private queue; a non-nil ws is
// drained at entry and left empty on return, so one queue can be reused
// across any number of calls without reallocation.
//
// An absent start vertex yields an empty Result, not an error; the graph
// itself being nil yields ErrGraphNil.
func BFS(g *core.Graph, start string, ws *scratch.Queue) (*Result, error) {
	// 1. Validate the graph pointer.
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Honor the workspace contract: drain residue from prior calls.
	if ws == nil {
		ws = scratch.NewQueue(g.VertexCount())
	} else {
		ws.Reset()
	}

	// 3. Snapshot into index space; resolve the start vertex.
	view := g.View()
	res := &Result{Order: []string{}}
	s, ok := view.IndexOf(start)
	if !ok {
		return res, nil
	}

	// 4. Seed: the start is discovered and emitted immediately.
	discovered := make([]bool, view.Order())
	discovered[s] = true
	ws.Enqueue(s)
	res.Order = append(res.Order, view.Name(s))

	// 5. Expand the frontier. Arcs(u) ascends lexicographically, so each
	//    layer is discovered in sorted order.
	for {
		u, ok := ws.Dequeue()
		if !ok {
			break
		}
		for _, a := range view.Arcs(u) {
			if discovered[a.To] {
				continue
			}
			discovered[a.To] = true
			ws.Enqueue(a.To)
			res.Order = append(res.Order, view.Name(a.To))
		}
	}

	return res, nil
}
