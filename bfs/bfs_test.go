package bfs_test

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/core"
)

// undirected builds a symmetric adjacency Expander from an edge list.
func undirected(pairs ...[2]string) core.Expander[string] {
	adj := map[string][]core.Edge[string]{}
	for _, p := range pairs {
		adj[p[0]] = append(adj[p[0]], core.Edge[string]{To: p[1], Weight: 1})
		adj[p[1]] = append(adj[p[1]], core.Edge[string]{To: p[0], Weight: 1})
	}
	return core.ExpanderFunc[string](func(n string) []core.Edge[string] { return adj[n] })
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS[string](nil, []string{"A"})
	require.ErrorIs(t, err, core.ErrNilExpander)

	g := undirected([2]string{"A", "B"})
	_, err = bfs.BFS(g, nil)
	require.ErrorIs(t, err, core.ErrNoSources)

	_, err = bfs.BFS(g, []string{"A"}, bfs.WithMaxDepth[string](-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestBFS_SingleNode covers a source without edges.
func TestBFS_SingleNode(t *testing.T) {
	res, err := bfs.BFS(undirected(), []string{"A"})
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, res.Nodes())
	d, err := res.Dist("A")
	require.NoError(t, err)
	assert.Zero(t, d)
}

// TestBFS_CycleAndDepths covers a simple cycle and checks depths and layering.
func TestBFS_CycleAndDepths(t *testing.T) {
	g := undirected(
		[2]string{"A", "B"}, [2]string{"B", "C"},
		[2]string{"C", "D"}, [2]string{"D", "A"},
	)
	res, err := bfs.BFS(g, []string{"A"})
	require.NoError(t, err)

	order := res.Nodes()
	require.Len(t, order, 4)
	assert.Equal(t, "A", order[0])
	assert.ElementsMatch(t, []string{"B", "D"}, order[1:3])
	assert.Equal(t, "C", order[3])

	want := map[string]int64{"A": 0, "B": 1, "D": 1, "C": 2}
	for n, d := range want {
		got, err := res.Dist(n)
		require.NoError(t, err)
		assert.Equal(t, d, got, "depth[%s]", n)
	}
}

// TestBFS_IgnoresWeights checks that edge weights do not influence depth.
func TestBFS_IgnoresWeights(t *testing.T) {
	adj := map[string][]core.Edge[string]{
		"A": {{To: "B", Weight: 100}, {To: "C", Weight: -4}},
		"C": {{To: "B", Weight: 0}},
	}
	exp := core.ExpanderFunc[string](func(n string) []core.Edge[string] { return adj[n] })
	res, err := bfs.BFS(exp, []string{"A"})
	require.NoError(t, err)
	d, err := res.Dist("B")
	require.NoError(t, err)
	assert.Equal(t, int64(1), d)
	prev, ok := res.Prev("B")
	require.True(t, ok)
	assert.Equal(t, "A", prev)
}

func TestBFS_MaxDepth(t *testing.T) {
	line := core.ExpanderFunc[int](func(i int) []core.Edge[int] {
		return []core.Edge[int]{{To: i + 1, Weight: 1}}
	})
	res, err := bfs.BFS(line, []int{0}, bfs.WithMaxDepth[int](3))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, res.Nodes())
}

func TestBFS_FilterNeighbor(t *testing.T) {
	g := undirected([2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"A", "X"}, [2]string{"X", "C"})
	res, err := bfs.BFS(g, []string{"A"},
		bfs.WithFilterNeighbor(func(_, nbr string) bool { return nbr != "X" }))
	require.NoError(t, err)
	assert.False(t, res.Reached("X"))
	path, err := res.PathTo("C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, path.Nodes)
}

func TestBFS_OnVisitAbort(t *testing.T) {
	stop := errors.New("stop here")
	g := undirected([2]string{"A", "B"}, [2]string{"B", "C"})
	var seen []string
	_, err := bfs.BFS(g, []string{"A"}, bfs.WithOnVisit(func(n string, depth int) error {
		seen = append(seen, fmt.Sprintf("%s@%d", n, depth))
		if n == "B" {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, bfs.ErrVisitAborted)
	require.ErrorIs(t, err, stop)
	assert.Equal(t, []string{"A@0", "B@1"}, seen)
}

func TestBFS_MultiSource(t *testing.T) {
	line := core.ExpanderFunc[int](func(i int) []core.Edge[int] {
		var out []core.Edge[int]
		if i > 0 {
			out = append(out, core.Edge[int]{To: i - 1, Weight: 1})
		}
		if i < 10 {
			out = append(out, core.Edge[int]{To: i + 1, Weight: 1})
		}
		return out
	})
	res, err := bfs.BFS(line, []int{0, 10, 10})
	require.NoError(t, err)
	assert.Equal(t, 11, res.Len())
	d, err := res.Dist(5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), d)
	d, err = res.Dist(7)
	require.NoError(t, err)
	assert.Equal(t, int64(3), d)
}

func TestFindPath(t *testing.T) {
	g := undirected(
		[2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "D"}, [2]string{"D", "K"},
		[2]string{"A", "E"}, [2]string{"E", "F"}, [2]string{"F", "K"},
	)
	path, ok, err := bfs.FindPath(g, []string{"A"}, func(n string) bool { return n == "K" })
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"A", "E", "F", "K"}, path.Nodes)
	assert.Equal(t, int64(3), path.Dist)
	assert.Equal(t, 3, path.Len())

	path, ok, err = bfs.FindPath(g, []string{"A"}, func(n string) bool { return n == "A" })
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"A"}, path.Nodes)

	_, ok, err = bfs.FindPath(g, []string{"A"}, func(n string) bool { return n == "Z" })
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFindPath_NilTarget(t *testing.T) {
	g := undirected([2]string{"A", "B"})
	_, ok, err := bfs.FindPath(g, []string{"A"}, nil)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBFS_LogsDebugRecord(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	g := undirected([2]string{"A", "B"})
	_, err := bfs.BFS(g, []string{"A"}, bfs.WithLogger[string](logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "bfs: search finished")
	assert.Contains(t, buf.String(), "reached=2")
}
