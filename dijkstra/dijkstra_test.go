// Package dijkstra_test contains unit tests for the Dijkstra implementation:
// validation, the reference fixtures, multi-source search, early termination,
// MaxDistance and the negative-weight failure.
package dijkstra_test

import (
	"bytes"
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/dijkstra"
)

// graph is an adjacency map turned into an Expander with sorted edge order.
type graph map[string]map[string]int64

func (g graph) Edges(n string) []core.Edge[string] {
	keys := make([]string, 0, len(g[n]))
	for k := range g[n] {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]core.Edge[string], 0, len(keys))
	for _, k := range keys {
		out = append(out, core.Edge[string]{To: k, Weight: g[n][k]})
	}
	return out
}

// referenceGraph is the shared non-negative fixture.
func referenceGraph() graph {
	return graph{
		"A": {"B": 1, "C": 1, "D": 1},
		"B": {"E": 2},
		"C": {"E": 3},
		"D": {"G": 4},
		"E": {"D": 5, "F": 5, "G": 5},
		"F": {"B": 6, "G": 6},
	}
}

// countdown is the multi-source fixture: i→i-3 (1) and i→i-7 (2).
var countdown = core.ExpanderFunc[int](func(i int) []core.Edge[int] {
	return []core.Edge[int]{{To: i - 3, Weight: 1}, {To: i - 7, Weight: 2}}
})

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestDijkstra_Validation(t *testing.T) {
	_, err := dijkstra.Dijkstra[string](nil, []string{"A"})
	require.ErrorIs(t, err, core.ErrNilExpander)

	_, err = dijkstra.Dijkstra[string](referenceGraph(), nil)
	require.ErrorIs(t, err, core.ErrNoSources)

	_, err = dijkstra.Dijkstra[string](referenceGraph(), []string{"A"}, dijkstra.WithMaxDistance(-1))
	require.ErrorIs(t, err, dijkstra.ErrBadMaxDistance)

	_, _, err = dijkstra.FindPath[string](nil, []string{"A"}, func(string) bool { return true })
	require.ErrorIs(t, err, core.ErrNilExpander)
}

func TestDijkstra_NegativeWeightFailsImmediately(t *testing.T) {
	g := graph{"A": {"B": 2}, "B": {"C": -1}}
	res, err := dijkstra.Dijkstra[string](g, []string{"A"})
	require.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
	assert.Nil(t, res)

	_, ok, err := dijkstra.FindPath[string](g, []string{"A"}, func(n string) bool { return n == "C" })
	require.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
	assert.False(t, ok)
}

func TestDijkstra_DistanceOverflow(t *testing.T) {
	g := graph{"A": {"B": 1}, "B": {"C": math.MaxInt64}}
	res, err := dijkstra.Dijkstra[string](g, []string{"A"})
	require.ErrorIs(t, err, core.ErrDistanceOverflow)
	assert.Nil(t, res)

	// exactly MaxInt64 still fits
	g = graph{"A": {"B": 0}, "B": {"C": math.MaxInt64}}
	res, err = dijkstra.Dijkstra[string](g, []string{"A"})
	require.NoError(t, err)
	d, err := res.Dist("C")
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), d)
}

func TestFindPath_NilTarget(t *testing.T) {
	_, ok, err := dijkstra.FindPath[string](referenceGraph(), []string{"A"}, nil)
	require.NoError(t, err)
	assert.False(t, ok)
}

// ------------------------------------------------------------------------
// 2. Reference fixtures
// ------------------------------------------------------------------------

func TestDijkstra_ReferenceDistances(t *testing.T) {
	res, err := dijkstra.Dijkstra[string](referenceGraph(), []string{"A"})
	require.NoError(t, err)

	want := map[string]int64{"A": 0, "B": 1, "C": 1, "D": 1, "E": 3, "F": 8, "G": 5}
	for n, d := range want {
		got, err := res.Dist(n)
		require.NoError(t, err, "node %s", n)
		assert.Equal(t, d, got, "dist[%s]", n)
	}
	assert.Equal(t, len(want), res.Len())

	path, err := res.PathTo("F")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "E", "F"}, path.Nodes)

	_, err = res.Dist("Z")
	require.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestDijkstra_SettleOrderIsNonDecreasing(t *testing.T) {
	res, err := dijkstra.Dijkstra[string](referenceGraph(), []string{"A"})
	require.NoError(t, err)
	var last int64
	for n, d := range res.All() {
		require.GreaterOrEqual(t, d, last, "node %s settled out of order", n)
		last = d
	}
}

func TestFindPath_MultiSource(t *testing.T) {
	sources := make([]int, 0, 18)
	for i := 82; i <= 99; i++ {
		sources = append(sources, i)
	}
	path, ok, err := dijkstra.FindPath[int](countdown, sources, func(n int) bool { return n == 42 })
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(12), path.Dist)
	assert.Equal(t, []int{84, 77, 70, 63, 56, 49, 42}, path.Nodes)
}

func TestFindPath_SourceIsTarget(t *testing.T) {
	path, ok, err := dijkstra.FindPath[string](referenceGraph(), []string{"A"}, func(n string) bool { return n == "A" })
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"A"}, path.Nodes)
	assert.Zero(t, path.Dist)
	assert.Zero(t, path.Len())
}

func TestFindPath_Unreachable(t *testing.T) {
	path, ok, err := dijkstra.FindPath[string](referenceGraph(), []string{"B"}, func(n string) bool { return n == "A" })
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, path.Nodes)
}

func TestFindPath_StopsEarly(t *testing.T) {
	expanded := map[int]bool{}
	line := core.ExpanderFunc[int](func(i int) []core.Edge[int] {
		expanded[i] = true
		return []core.Edge[int]{{To: i + 1, Weight: 1}}
	})
	path, ok, err := dijkstra.FindPath[int](line, []int{0}, func(n int) bool { return n == 5 })
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(5), path.Dist)
	assert.False(t, expanded[5], "target must not be expanded")
	assert.Len(t, expanded, 5)
}

// ------------------------------------------------------------------------
// 3. Options
// ------------------------------------------------------------------------

func TestDijkstra_MaxDistance(t *testing.T) {
	res, err := dijkstra.Dijkstra[string](referenceGraph(), []string{"A"}, dijkstra.WithMaxDistance(3))
	require.NoError(t, err)
	assert.True(t, res.Reached("E"))
	assert.False(t, res.Reached("G"))
	assert.False(t, res.Reached("F"))

	res, err = dijkstra.Dijkstra[string](referenceGraph(), []string{"A"}, dijkstra.WithMaxDistance(0))
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, res.Nodes())
}

func TestDijkstra_LogsDebugRecord(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	_, err := dijkstra.Dijkstra[string](referenceGraph(), []string{"A"}, dijkstra.WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "dijkstra: search finished")
	assert.Contains(t, buf.String(), "settled=7")
}

// ------------------------------------------------------------------------
// 4. Properties
// ------------------------------------------------------------------------

// TestDijkstra_PathWeightLaw re-sums edge weights along every reconstructed path.
func TestDijkstra_PathWeightLaw(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for round := 0; round < 30; round++ {
		n := 2 + rng.Intn(12)
		adj := make(map[int][]core.Edge[int], n)
		for u := 0; u < n; u++ {
			for k := rng.Intn(4); k > 0; k-- {
				adj[u] = append(adj[u], core.Edge[int]{To: rng.Intn(n), Weight: int64(rng.Intn(10))})
			}
		}
		exp := core.ExpanderFunc[int](func(u int) []core.Edge[int] { return adj[u] })

		res, err := dijkstra.Dijkstra[int](exp, []int{0})
		require.NoError(t, err)
		for _, node := range res.Nodes() {
			path, err := res.PathTo(node)
			require.NoError(t, err)
			w, err := core.PathWeight[int](exp, path.Nodes)
			require.NoError(t, err)
			require.Equal(t, path.Dist, w, "round %d node %d path %v", round, node, path.Nodes)
		}
	}
}
