// Path existence via the same iterative walk as DFS, with an early exit:
// the search stops the instant the destination is popped and marked visited,
// without exhausting the stack. Only reachability is part of the contract;
// no traversal order is promised here.

package dfs

import (
	"github.com/lexgraph/lexgraph/core"
	"github.com/lexgraph/lexgraph/scratch"
)

// HasPath reports whether an undirected path connects src and dst in g,
// using ws as the LIFO workspace under the same drain-at-entry contract as
// DFS. When src == dst the answer is true iff that vertex exists. If either
// name is absent the answer is false. A nil graph yields ErrGraphNil.
//
// Complexity: O(V + E) worst case; often less thanks to the early exit.
func HasPath(g *core.Graph, src, dst string, ws *scratch.Stack) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	if ws == nil {
		ws = scratch.NewStack(g.VertexCount())
	} else {
		ws.Reset()
	}

	view := g.View()
	s, ok := view.IndexOf(src)
	if !ok {
		return false, nil
	}
	d, ok := view.IndexOf(dst)
	if !ok {
		return false, nil
	}
	if s == d {
		return true, nil
	}

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
		if u == d {
			// Leave the workspace empty for the next caller.
			ws.Reset()

			return true, nil
		}
		arcs := view.Arcs(u)
		for i := len(arcs) - 1; i >= 0; i-- {
			ws.Push(arcs[i].To)
		}
	}

	return false, nil
}
