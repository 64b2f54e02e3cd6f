package leveldata

import (
	"os"
	"testing"

	"github.com/cbag/codebird-cave/shared/tilegrid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestLoadLevelFlipsRowsAndReadsObjects(t *testing.T) {
	level, err := LoadLevel(os.DirFS("testdata"), "small.tmx", DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, "small", level.Name)
	assert.Equal(t, 16, level.TileSize)
	g := level.Grid
	require.Equal(t, 6, g.Width)
	require.Equal(t, 4, g.Height)

	for x := 0; x < 6; x++ {
		assert.True(t, g.Occupied(tilegrid.SolidA, x, 0), "floor at x=%d", x)
	}
	assert.True(t, g.Occupied(tilegrid.SolidA, 1, 1))
	assert.True(t, g.Occupied(tilegrid.SolidB, 3, 2))
	assert.False(t, g.Occupied(tilegrid.SolidA, 3, 2))
	assert.True(t, g.Occupied(tilegrid.Exit, 5, 1))
	assert.True(t, g.Occupied(tilegrid.Exit, 5, 2))
	assert.Zero(t, g.Layer(tilegrid.Door).Count())

	assert.Equal(t, dmath.Vec2{X: 1, Y: 1}, level.Spawn, "left-most spawn")
	assert.Equal(t, 5.0, level.End)
	assert.Equal(t, []tilegrid.Rect{{X: 2, Y: 0, W: 1, H: 1}}, level.Hazards)
}

func TestLoadLevelFallsBackToLayerIndex(t *testing.T) {
	level, err := LoadLevel(os.DirFS("testdata"), "indexed.tmx", DefaultOptions())
	require.NoError(t, err)

	g := level.Grid
	assert.True(t, g.Occupied(tilegrid.SolidB, 0, 1))
	assert.True(t, g.Occupied(tilegrid.Exit, 2, 1))
	assert.True(t, g.Occupied(tilegrid.SolidA, 1, 0))

	assert.Equal(t, DefaultOptions().Spawn, level.Spawn)
	assert.Equal(t, DefaultOptions().End, level.End)
	assert.Empty(t, level.Hazards)
}

func TestLoadLevelIndexSkipsObjectGroups(t *testing.T) {
	level, err := LoadLevel(os.DirFS("testdata"), "indexedmixed.tmx", DefaultOptions())
	require.NoError(t, err)

	g := level.Grid
	assert.True(t, g.Occupied(tilegrid.SolidA, 1, 0))
	assert.True(t, g.Occupied(tilegrid.SolidB, 0, 1))
	assert.True(t, g.Occupied(tilegrid.Exit, 2, 1))
	assert.False(t, g.Occupied(tilegrid.SolidA, 0, 1))
}

func TestLoadLevelRejectsObjectGroupForTileRole(t *testing.T) {
	_, err := LoadLevel(os.DirFS("testdata"), "objectexit.tmx", DefaultOptions())
	assert.ErrorIs(t, err, ErrNotTileLayer)
}

func TestLoadLevelMissingRequiredLayer(t *testing.T) {
	opts := DefaultOptions()
	opts.LayerIndex = nil

	_, err := LoadLevel(os.DirFS("testdata"), "missing.tmx", opts)
	assert.ErrorIs(t, err, tilegrid.ErrMissingLayer)
}

func TestLoadLevelMissingFile(t *testing.T) {
	_, err := LoadLevel(os.DirFS("testdata"), "nope.tmx", DefaultOptions())
	assert.Error(t, err)
}

func TestLoadAllLevels(t *testing.T) {
	levels, names, err := LoadAllLevels(os.DirFS("../../assets"), "levels", DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, []string{"level1", "level2", "level3"}, names)
	for _, name := range names {
		l := levels[name]
		assert.Equal(t, 212.0, l.End, name)
		assert.Equal(t, dmath.Vec2{X: 20, Y: 20}, l.Spawn, name)
		assert.NotZero(t, l.Grid.Layer(tilegrid.Exit).Count(), name)
		assert.NotEmpty(t, l.Hazards, name)
	}
}

func TestLoadAllLevelsEmptyDir(t *testing.T) {
	_, _, err := LoadAllLevels(os.DirFS("testdata"), "empty", DefaultOptions())
	assert.Error(t, err)
}
