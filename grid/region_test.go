package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/geom"
	"github.com/katalvlaran/gridpath/grid"
)

func isLand(r rune) bool { return r == '#' }

func TestFloodFill(t *testing.T) {
	tb := mustParse(t, "##.\n#.#\n..#")

	reg, err := tb.FloodFill(geom.Pt(0, 0), grid.Conn4, isLand)
	require.NoError(t, err)
	assert.Equal(t, []geom.Point{{0, 0}, {1, 0}, {0, 1}}, reg.Points())
	assert.True(t, reg.Contains(geom.Pt(0, 1)))
	assert.False(t, reg.Contains(geom.Pt(2, 1)))
	assert.Equal(t, 8, reg.Perimeter())

	reg8, err := tb.FloodFill(geom.Pt(0, 0), grid.Conn8, isLand)
	require.NoError(t, err)
	assert.Equal(t, 5, reg8.Len(), "diagonal step joins both islands")

	water, err := tb.FloodFill(geom.Pt(2, 0), grid.Conn4, isLand)
	require.NoError(t, err)
	assert.True(t, water.IsEmpty())

	_, err = tb.FloodFill(geom.Pt(3, 0), grid.Conn4, isLand)
	require.ErrorIs(t, err, grid.ErrOutOfRange)
}

func TestRegions(t *testing.T) {
	tb := mustParse(t, "#.#\n..#\n#..")

	comps := tb.Regions(grid.Conn4, isLand)
	require.Len(t, comps, 3)
	assert.Equal(t, []geom.Point{{0, 0}}, comps[0].Points())
	assert.Equal(t, []geom.Point{{2, 0}, {2, 1}}, comps[1].Points())
	assert.Equal(t, []geom.Point{{0, 2}}, comps[2].Points())

	total := 0
	for _, c := range comps {
		total += c.Len()
	}
	assert.Equal(t, tb.Count('#'), total)

	u, err := comps[0].Union(comps[1])
	require.NoError(t, err)
	assert.Equal(t, 3, u.Len())
	assert.True(t, u.Intersects(comps[1]))
	assert.False(t, comps[0].Intersects(comps[2]))

	_, err = comps[0].Union(grid.NewRegion(5, 5))
	require.ErrorIs(t, err, grid.ErrShapeMismatch)
}

func TestRegion_Add(t *testing.T) {
	r := grid.NewRegion(2, 2)
	require.NoError(t, r.Add(geom.Pt(1, 1)))
	require.NoError(t, r.Add(geom.Pt(0, 1)))
	require.ErrorIs(t, r.Add(geom.Pt(2, 0)), grid.ErrOutOfRange)
	assert.Equal(t, []geom.Point{{0, 1}, {1, 1}}, r.Points())
	assert.Equal(t, 6, r.Perimeter())
}
