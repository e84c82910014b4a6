// Package dfs provides iterative depth-first traversal and path-existence
// testing over a core.Graph.
//
// The traversal is explicitly iterative: an index stack replaces the call
// stack, so arbitrarily deep graphs cannot overflow goroutine stacks.
// Neighbors are pushed in descending lexicographic order, which combined
// with LIFO popping yields ascending first-visit order, the same
// deterministic tie-break the rest of the engine uses.
//
// A vertex may sit on the stack several times, pushed by different
// neighbors before its first visit. The authoritative visited check happens
// at pop time only; filtering at push time would change which copy wins and
// break the pre-order contract.
//
// Complexity: O(V + E) time, O(V + E) worst-case stack residency per call.
package dfs

import (
	"errors"
	"strings"

	"github.com/lexgraph/lexgraph/core"
	"github.com/lexgraph/lexgraph/scratch"
)

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = errors.New("dfs: graph is nil")

// Result holds the outcome of a depth-first traversal.
type Result struct {
	// Order lists vertex names in first-visit (pre-order) sequence.
	// Empty when the start vertex does not exist.
	Order []string
}

// Text renders the traversal in its command-output form: names in visit
// order, space-separated, newline-terminated, no trailing space. An empty
// traversal renders as a single blank line.
func (r *Result) Text() string {
	return strings.Join(r.Order, " ") + "\n"
}

// DFS runs iterative depth-first traversal on g from the start vertex,
// using ws as the LIFO frontier. A nil ws allocates a private stack; a
// non-nil ws is drained at entry and left empty on return, so one stack can
// be reused across any number of calls without reallocation.
//
// An absent start vertex yields an empty Result, not an error; the graph
// itself being nil yields ErrGraphNil.
func DFS(g *core.Graph, start string, ws *scratch.Stack) (*Result, error) {
	// 1. Validate the graph pointer.
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Honor the workspace contract: drain residue from prior calls.
	if ws == nil {
		ws = scratch.NewStack(g.VertexCount())
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

	// 4. Walk. Visited is decided at pop time; duplicates on the stack are
	//    discarded when popped.
	visited := make([]bool, view.Order())
	ws.Push(s)
	for {
		u, ok := ws.Pop()
		if !ok {
			break
		}
		if visited[u] {
			continue
		}
		visited[u] = true
		res.Order = append(res.Order, view.Name(u))

		// Push neighbors in descending order so LIFO pops them ascending.
		// No filtering here; visited is decided only at pop time.
		arcs := view.Arcs(u)
		for i := len(arcs) - 1; i >= 0; i-- {
			ws.Push(arcs[i].To)
		}
	}

	return res, nil
}
