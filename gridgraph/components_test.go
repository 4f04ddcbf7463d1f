package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/geom"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/gridgraph"
)

func land(v int) bool { return v >= 1 }

// TestComponents_Conn4VsConn8 checks that diagonal contact merges islands only under Conn8.
func TestComponents_Conn4VsConn8(t *testing.T) {
	tb, err := grid.FromRows([][]int{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	})
	require.NoError(t, err)

	g4, err := gridgraph.New(tb)
	require.NoError(t, err)
	assert.Len(t, g4.Components(land), 3)

	g8, err := gridgraph.New(tb, gridgraph.WithConnectivity(grid.Conn8))
	require.NoError(t, err)
	comps := g8.Components(land)
	require.Len(t, comps, 1)
	assert.Equal(t, []geom.Point{geom.Pt(0, 0), geom.Pt(1, 1), geom.Pt(2, 2)}, comps[0].Points())
}

// TestComponents_AdjacencyNotValue checks that touching cells with different
// land values form one component.
func TestComponents_AdjacencyNotValue(t *testing.T) {
	tb, err := grid.FromRows([][]int{
		{0, 1, 1, 0, 2},
		{1, 1, 0, 2, 2},
		{3, 0, 2, 2, 0},
	})
	require.NoError(t, err)
	g, err := gridgraph.New(tb)
	require.NoError(t, err)

	comps := g.Components(func(v int) bool { return v != 0 })
	require.Len(t, comps, 2)
	assert.Equal(t, []geom.Point{
		geom.Pt(1, 0), geom.Pt(2, 0), geom.Pt(0, 1), geom.Pt(1, 1), geom.Pt(0, 2),
	}, comps[0].Points())
	assert.True(t, comps[0].Contains(geom.Pt(0, 2)))
}

func TestComponents_AllWater(t *testing.T) {
	tb, err := grid.New(4, 3, 0)
	require.NoError(t, err)
	g, err := gridgraph.New(tb)
	require.NoError(t, err)
	assert.Empty(t, g.Components(land))
}

// waterCost charges one per water cell entered.
func waterCost(v int) int64 {
	if v >= 1 {
		return 0
	}
	return 1
}

func TestBridge_BasicLine(t *testing.T) {
	tb, err := grid.FromRows([][]int{{1, 0, 1}})
	require.NoError(t, err)
	g, err := gridgraph.New(tb)
	require.NoError(t, err)

	comps := g.Components(land)
	require.Len(t, comps, 2)

	path, err := g.Bridge(comps[0], comps[1], waterCost)
	require.NoError(t, err)
	assert.Equal(t, int64(1), path.Dist)
	assert.Equal(t, []geom.Point{geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(2, 0)}, path.Nodes)
}

func TestBridge_MediumRow(t *testing.T) {
	tb, err := grid.FromRows([][]int{{1, 0, 0, 0, 1}})
	require.NoError(t, err)
	g, err := gridgraph.New(tb)
	require.NoError(t, err)
	comps := g.Components(land)
	require.Len(t, comps, 2)

	path, err := g.Bridge(comps[0], comps[1], waterCost)
	require.NoError(t, err)
	assert.Equal(t, int64(3), path.Dist)
	assert.Len(t, path.Nodes, 5)
}

// TestBridge_DiagonalShortcut shows Conn8 crossing a single diagonal gap for free.
func TestBridge_DiagonalShortcut(t *testing.T) {
	tb, err := grid.FromRows([][]int{
		{1, 1, 0, 0},
		{1, 0, 0, 0},
		{0, 0, 0, 1},
		{0, 0, 1, 1},
	})
	require.NoError(t, err)

	g4, err := gridgraph.New(tb)
	require.NoError(t, err)
	comps := g4.Components(land)
	require.Len(t, comps, 2)
	p4, err := g4.Bridge(comps[0], comps[1], waterCost)
	require.NoError(t, err)
	assert.Equal(t, int64(3), p4.Dist)

	g8, err := gridgraph.New(tb, gridgraph.WithConnectivity(grid.Conn8))
	require.NoError(t, err)
	p8, err := g8.Bridge(comps[0], comps[1], waterCost)
	require.NoError(t, err)
	assert.Equal(t, int64(1), p8.Dist)
}

func TestBridge_Errors(t *testing.T) {
	tb, err := grid.FromRows([][]int{{1, 0, 1}})
	require.NoError(t, err)
	g, err := gridgraph.New(tb)
	require.NoError(t, err)
	comps := g.Components(land)

	empty := grid.RegionOf(tb)
	_, err = g.Bridge(empty, comps[1], waterCost)
	require.ErrorIs(t, err, gridgraph.ErrEmptyRegion)
	_, err = g.Bridge(comps[0], nil, waterCost)
	require.ErrorIs(t, err, gridgraph.ErrEmptyRegion)
}
