package factory

import (
	"testing"

	"github.com/cbag/codebird-cave/components"
	"github.com/cbag/codebird-cave/shared/leveldata"
	"github.com/cbag/codebird-cave/shared/progress"
	"github.com/cbag/codebird-cave/shared/tilegrid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/ecs"
)

func TestCreateLevelStartsFirstLevel(t *testing.T) {
	grid, err := tilegrid.FromRows(
		"..........",
		"#########E",
	)
	require.NoError(t, err)
	levels := map[string]*leveldata.Level{
		"level1": {Name: "level1", Grid: grid, Spawn: dmath.Vec2{X: 1, Y: 1}, End: 10, TileSize: 16},
		"level2": {Name: "level2", Grid: grid.Clone(), Spawn: dmath.Vec2{X: 2, Y: 1}, End: 10, TileSize: 16},
	}
	e := ecs.NewECS(donburi.NewWorld())

	entry, err := CreateLevel(e, levels, []string{"level1", "level2"}, nil, progress.Magpie)
	require.NoError(t, err)

	level := components.Level.Get(entry)
	assert.Equal(t, "level1", level.Sequence.Current())
	assert.Equal(t, progress.Magpie, level.Sequence.Avatar)
	assert.Equal(t, 1.0, level.Session.Player.Pos.X)
}

func TestCreateLevelWithoutLevels(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	_, err := CreateLevel(e, map[string]*leveldata.Level{}, nil, nil, progress.Raven)
	assert.Error(t, err)
}
