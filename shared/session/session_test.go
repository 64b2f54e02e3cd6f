package session

import (
	"testing"

	"github.com/cbag/codebird-cave/shared/leveldata"
	"github.com/cbag/codebird-cave/shared/physics"
	"github.com/cbag/codebird-cave/shared/tilegrid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dmath "github.com/yohamta/donburi/features/math"
)

const tick = 1.0 / 60

func testConfig() Config {
	return Config{
		Tuning: physics.Tuning{
			GravityPerTick: -1.5,
			FlyVel:         40,
			MaxVel:         8,
			Damp:           0.87,
			StopSpeed:      1,
			DebugTeleport:  dmath.Vec2{X: 180, Y: 20},
		},
		ActorWidth:  1,
		ActorHeight: 1,
		Margin:      15,
		KillDepth:   2,
	}
}

func testLevel(t *testing.T, hazards []tilegrid.Rect, rows ...string) *leveldata.Level {
	t.Helper()
	g, err := tilegrid.FromRows(rows...)
	require.NoError(t, err)
	return &leveldata.Level{
		Name:     "test",
		Grid:     g,
		Spawn:    dmath.Vec2{X: 1, Y: 1},
		End:      float64(g.Width),
		Hazards:  hazards,
		TileSize: 16,
	}
}

func TestTickReportsHazard(t *testing.T) {
	level := testLevel(t, []tilegrid.Rect{{X: 3, Y: 1, W: 1, H: 0.5}},
		"........",
		"........",
		"########",
	)
	s := New(level, testConfig())

	var hit bool
	for i := 0; i < 60 && !hit; i++ {
		for _, ev := range s.Tick(tick, physics.Intent{Right: true}) {
			hit = hit || ev.Kind == physics.EventHazard
		}
	}
	assert.True(t, hit)
}

func TestTickReportsFallingOut(t *testing.T) {
	level := testLevel(t, nil,
		"....",
		"....",
		"....",
	)
	s := New(level, testConfig())

	var hit bool
	for i := 0; i < 300 && !hit; i++ {
		for _, ev := range s.Tick(tick, physics.Intent{}) {
			hit = hit || ev.Kind == physics.EventHazard
		}
	}
	assert.True(t, hit)
	assert.Less(t, s.Player.Pos.Y+s.Player.Height, -2.0)
}

func TestRestartRestoresBrokenTiles(t *testing.T) {
	level := testLevel(t, nil,
		".B..",
		"....",
		"####",
	)
	s := New(level, testConfig())
	s.Player.Grounded = true

	var broke bool
	for i := 0; i < 30 && !broke; i++ {
		for _, ev := range s.Tick(tick, physics.Intent{Jump: true}) {
			broke = broke || ev.Kind == physics.EventTileBroken
		}
	}
	require.True(t, broke)
	assert.False(t, s.World.Grid.Occupied(tilegrid.SolidB, 1, 2))
	assert.True(t, level.Grid.Occupied(tilegrid.SolidB, 1, 2), "level grid untouched")

	s.Restart()
	assert.True(t, s.World.Grid.Occupied(tilegrid.SolidB, 1, 2))
	assert.Equal(t, level.Spawn, s.Player.Pos)
}

func TestZeroTickRaisesNothing(t *testing.T) {
	level := testLevel(t, []tilegrid.Rect{{X: 0, Y: 0, W: 4, H: 4}}, "....")
	s := New(level, testConfig())

	assert.Empty(t, s.Tick(0, physics.Intent{}))
}

func TestCameraStopsShortOfLevelEnd(t *testing.T) {
	level := testLevel(t, nil, "....")
	level.End = 30
	s := New(level, testConfig())

	s.Player.ScrollAnchor.X = 10
	assert.Equal(t, 10.0, s.CameraX())
	s.Player.ScrollAnchor.X = 29
	assert.Equal(t, 15.0, s.CameraX())
}
