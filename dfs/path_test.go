package dfs_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexgraph/lexgraph/bfs"
	"github.com/lexgraph/lexgraph/core"
	"github.com/lexgraph/lexgraph/dfs"
	"github.com/lexgraph/lexgraph/scratch"
)

func TestHasPath_Scenario(t *testing.T) {
	g := buildScenario(t)

	ok, err := dfs.HasPath(g, "A", "C", nil)
	require.NoError(t, err)
	assert.True(t, ok)

	// Absent destination.
	ok, err = dfs.HasPath(g, "A", "Z", nil)
	require.NoError(t, err)
	assert.False(t, ok)

	// Absent source.
	ok, err = dfs.HasPath(g, "Z", "A", nil)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHasPath_SameVertex(t *testing.T) {
	g := buildScenario(t)

	// src == dst: true iff the vertex exists.
	ok, err := dfs.HasPath(g, "B", "B", nil)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = dfs.HasPath(g, "Z", "Z", nil)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHasPath_DisconnectedComponents(t *testing.T) {
	g := buildScenario(t)
	require.NoError(t, g.AddVertex("X"))
	require.NoError(t, g.AddVertex("Y"))
	require.NoError(t, g.AddEdge("X", "Y", 4))

	ok, err := dfs.HasPath(g, "A", "X", nil)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = dfs.HasPath(g, "X", "Y", nil)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestHasPath_LeavesWorkspaceEmptyOnEarlyExit(t *testing.T) {
	g := buildScenario(t)
	ws := scratch.NewStack(0)

	// The early exit fires with frontier entries still stacked; the
	// workspace must come back drained regardless.
	ok, err := dfs.HasPath(g, "A", "B", ws)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, ws.IsEmpty())
}

// buildRandomGraph produces a deterministic pseudo-random graph of n
// vertices in two to three components, for the equivalence property below.
func buildRandomGraph(t *testing.T, n int, seed int64) *core.Graph {
	t.Helper()
	g := core.New()
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddVertex(fmt.Sprintf("v%02d", i)))
	}
	r := rand.New(rand.NewSource(seed))
	for k := 0; k < 2*n; k++ {
		u, v := r.Intn(n), r.Intn(n)
		// Keep roughly the first and second halves apart to force at
		// least two components most of the time.
		if u == v || (u < n/2) != (v < n/2) {
			continue
		}
		_ = g.AddEdge(fmt.Sprintf("v%02d", u), fmt.Sprintf("v%02d", v), 1+r.Intn(core.MaxWeight))
	}

	return g
}

// TestComponentEquivalence checks, for every start vertex, that the set
// visited by BFS equals the set visited by DFS equals the set of vertices
// HasPath reports reachable.
func TestComponentEquivalence(t *testing.T) {
	g := buildRandomGraph(t, 16, 1)
	all := g.Vertices()

	for _, start := range all {
		bres, err := bfs.BFS(g, start, nil)
		require.NoError(t, err)
		dres, err := dfs.DFS(g, start, nil)
		require.NoError(t, err)

		assert.ElementsMatch(t, bres.Order, dres.Order, "start %s", start)

		reach := make(map[string]bool, len(bres.Order))
		for _, name := range bres.Order {
			reach[name] = true
		}
		for _, dst := range all {
			ok, err := dfs.HasPath(g, start, dst, nil)
			require.NoError(t, err)
			assert.Equal(t, reach[dst], ok, "start %s dst %s", start, dst)
		}
	}
}
