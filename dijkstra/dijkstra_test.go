package dijkstra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/refframe/dijkstra"
)

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestDijkstra_NilGraph(t *testing.T) {
	_, err := dijkstra.Dijkstra[string, edge](nil, "A", weightOf)
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestDijkstra_SourceNotFound(t *testing.T) {
	g := newListGraph("A")
	_, err := dijkstra.Dijkstra[string, edge](g, "X", weightOf)
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)

	_, _, err = dijkstra.ShortestPath[string, edge](g, "A", "X", weightOf)
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

func TestDijkstra_NegativeWeightIsLazy(t *testing.T) {
	// The negative arc hangs off an unreachable vertex: never evaluated.
	g := newListGraph().add("A", "B", 1).add("C", "D", -1)
	res, err := dijkstra.Dijkstra[string, edge](g, "A", weightOf)
	require.NoError(t, err)
	assert.Len(t, res.Dist, 2)

	// Reachable negative arc aborts the search.
	g.add("B", "C", 1)
	_, err = dijkstra.Dijkstra[string, edge](g, "A", weightOf)
	require.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}

func TestDijkstra_NaNWeight(t *testing.T) {
	g := newListGraph().add("A", "B", math.NaN())
	_, err := dijkstra.Dijkstra[string, edge](g, "A", weightOf)
	require.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { dijkstra.WithMaxDistance(-1) })
	assert.Panics(t, func() { dijkstra.WithMaxDistance(math.NaN()) })
	assert.Panics(t, func() { dijkstra.WithInfEdgeThreshold(0) })
	assert.Panics(t, func() { dijkstra.WithInfEdgeThreshold(math.NaN()) })
	assert.NotPanics(t, func() { dijkstra.WithMaxDistance(0) })
}

// ------------------------------------------------------------------------
// 2. Basic functionality
// ------------------------------------------------------------------------

func TestDijkstra_TwoHopBeatsDirect(t *testing.T) {
	g := newListGraph().add("F0", "F2", 5).add("F0", "F1", 1).add("F1", "F2", 2)

	path, cost, err := dijkstra.ShortestPath[string, edge](g, "F0", "F2", weightOf)
	require.NoError(t, err)
	assert.Equal(t, 3.0, cost)
	assert.Equal(t, "F0→F1→F2", names(path))
}

func TestDijkstra_AllDistances(t *testing.T) {
	g := newListGraph().
		add("A", "B", 2).add("A", "C", 1).add("C", "B", 1).
		add("B", "D", 3).add("C", "D", 5)

	res, err := dijkstra.Dijkstra[string, edge](g, "A", weightOf, dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"A": 0, "B": 2, "C": 1, "D": 5}, res.Dist)

	// A→B (2) and A→C→B (2) tie; the first relaxed predecessor is kept.
	p, err := res.PathTo("B")
	require.NoError(t, err)
	assert.Equal(t, "A→B", names(p))

	p, err = res.PathTo("A")
	require.NoError(t, err)
	assert.Empty(t, p)
}

func TestDijkstra_PathNotRecorded(t *testing.T) {
	g := newListGraph().add("A", "B", 1)
	res, err := dijkstra.Dijkstra[string, edge](g, "A", weightOf)
	require.NoError(t, err)
	_, err = res.PathTo("B")
	require.ErrorIs(t, err, dijkstra.ErrPathNotRecorded)
}

func TestDijkstra_Unreachable(t *testing.T) {
	g := newListGraph("Z").add("A", "B", 1)

	res, err := dijkstra.Dijkstra[string, edge](g, "A", weightOf, dijkstra.WithReturnPath())
	require.NoError(t, err)
	d, ok := res.Distance("Z")
	assert.False(t, ok)
	assert.True(t, math.IsInf(d, 1))
	_, err = res.PathTo("Z")
	require.ErrorIs(t, err, dijkstra.ErrNoPath)

	_, _, err = dijkstra.ShortestPath[string, edge](g, "A", "Z", weightOf)
	require.ErrorIs(t, err, dijkstra.ErrNoPath)
}

func TestDijkstra_DirectedArcsOnly(t *testing.T) {
	g := newListGraph().add("A", "B", 1)
	_, _, err := dijkstra.ShortestPath[string, edge](g, "B", "A", weightOf)
	require.ErrorIs(t, err, dijkstra.ErrNoPath)
}

func TestShortestPath_SourceEqualsTarget(t *testing.T) {
	g := newListGraph("A")
	path, cost, err := dijkstra.ShortestPath[string, edge](g, "A", "A", weightOf)
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Zero(t, cost)
}

// ------------------------------------------------------------------------
// 3. Thresholds and caps
// ------------------------------------------------------------------------

func TestDijkstra_InfiniteWeightIsImpassable(t *testing.T) {
	g := newListGraph().add("A", "B", math.Inf(1)).add("A", "C", 1).add("C", "B", 10)

	path, cost, err := dijkstra.ShortestPath[string, edge](g, "A", "B", weightOf)
	require.NoError(t, err)
	assert.Equal(t, 11.0, cost)
	assert.Equal(t, "A→C→B", names(path))

	g2 := newListGraph().add("A", "B", math.Inf(1))
	_, _, err = dijkstra.ShortestPath[string, edge](g2, "A", "B", weightOf)
	require.ErrorIs(t, err, dijkstra.ErrNoPath)
}

func TestDijkstra_InfEdgeThreshold(t *testing.T) {
	g := newListGraph().add("A", "B", 5).add("A", "C", 1).add("C", "B", 6)

	path, cost, err := dijkstra.ShortestPath[string, edge](g, "A", "B", weightOf, dijkstra.WithInfEdgeThreshold(5))
	require.NoError(t, err)
	assert.Equal(t, 7.0, cost)
	assert.Equal(t, "A→C→B", names(path))
}

func TestDijkstra_MaxDistance(t *testing.T) {
	g := newListGraph().add("A", "B", 1).add("B", "C", 1).add("C", "D", 1)

	res, err := dijkstra.Dijkstra[string, edge](g, "A", weightOf, dijkstra.WithMaxDistance(2))
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"A": 0, "B": 1, "C": 2}, res.Dist)
}

// ------------------------------------------------------------------------
// 4. Laziness
// ------------------------------------------------------------------------

func TestShortestPath_StopsAtTarget(t *testing.T) {
	g := newListGraph().add("A", "B", 1).add("B", "C", 1).add("C", "D", 1).add("D", "E", 1)

	calls := 0
	counting := func(e edge) float64 {
		calls++
		return e.w
	}

	_, cost, err := dijkstra.ShortestPath[string, edge](g, "A", "B", counting)
	require.NoError(t, err)
	assert.Equal(t, 1.0, cost)
	// Only A's arc is evaluated; B is settled before its arcs are relaxed.
	assert.Equal(t, 1, calls)
}

func TestDijkstra_WeightFuncDecidesRoute(t *testing.T) {
	g := newListGraph().add("A", "B", 1).add("A", "C", 1).add("B", "D", 1).add("C", "D", 1)

	avoidB := func(e edge) float64 {
		if e.to == "B" {
			return math.Inf(1)
		}
		return e.w
	}
	path, _, err := dijkstra.ShortestPath[string, edge](g, "A", "D", avoidB)
	require.NoError(t, err)
	assert.Equal(t, "A→C→D", names(path))

	path, _, err = dijkstra.ShortestPath[string, edge](g, "A", "D", weightOf)
	require.NoError(t, err)
	assert.Equal(t, "A→B→D", names(path))
}
