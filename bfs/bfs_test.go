package bfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexgraph/lexgraph/bfs"
	"github.com/lexgraph/lexgraph/core"
	"github.com/lexgraph/lexgraph/scratch"
)

// buildScenario: vertices {A,B,C,D}, edges (A,B,1), (B,C,2), (A,D,3).
func buildScenario(t *testing.T) *core.Graph {
	t.Helper()
	g := core.New()
	for _, name := range []string{"A", "B", "C", "D"} {
		require.NoError(t, g.AddVertex(name))
	}
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 2))
	require.NoError(t, g.AddEdge("A", "D", 3))

	return g
}

func TestBFS_ScenarioOrder(t *testing.T) {
	g := buildScenario(t)

	// From A: neighbors in order B, D; then B's undiscovered neighbor C.
	res, err := bfs.BFS(g, "A", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "C"}, res.Order)
	assert.Equal(t, "A B D C\n", res.Text())
}

func TestBFS_LayerOrderIsLexicographic(t *testing.T) {
	// Star with shuffled insertion: hub's whole layer must ascend.
	g := core.New()
	for _, name := range []string{"hub", "zeta", "beta", "mary", "alfa"} {
		require.NoError(t, g.AddVertex(name))
	}
	for _, leaf := range []string{"zeta", "beta", "mary", "alfa"} {
		require.NoError(t, g.AddEdge("hub", leaf, 1))
	}

	res, err := bfs.BFS(g, "hub", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"hub", "alfa", "beta", "mary", "zeta"}, res.Order)
}

func TestBFS_AbsentStart(t *testing.T) {
	g := buildScenario(t)

	res, err := bfs.BFS(g, "Z", nil)
	require.NoError(t, err)
	assert.Empty(t, res.Order)
	assert.Equal(t, "\n", res.Text())
}

func TestBFS_NilGraph(t *testing.T) {
	_, err := bfs.BFS(nil, "A", nil)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)
}

// TestBFS_WorkspaceReuse verifies the drain-at-entry contract: a queue
// polluted by a previous caller must not leak entries into the traversal,
// and the same instance must serve repeated calls.
func TestBFS_WorkspaceReuse(t *testing.T) {
	g := buildScenario(t)
	ws := scratch.NewQueue(0)
	ws.Enqueue(99) // residue from a hypothetical aborted call

	res, err := bfs.BFS(g, "A", ws)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "C"}, res.Order)
	assert.True(t, ws.IsEmpty())

	// Second call through the same workspace, different start.
	res, err = bfs.BFS(g, "C", ws)
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "B", "A", "D"}, res.Order)
	assert.True(t, ws.IsEmpty())
}

func TestBFS_SingletonAndIsolated(t *testing.T) {
	g := core.New()
	require.NoError(t, g.AddVertex("lonely"))
	require.NoError(t, g.AddVertex("island"))

	res, err := bfs.BFS(g, "lonely", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"lonely"}, res.Order)
	assert.Equal(t, "lonely\n", res.Text())
}
