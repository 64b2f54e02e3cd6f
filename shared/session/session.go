// Package session runs one level: it owns the physics world built from a
// leveldata.Level, the player actor and the level's hazard field.
package session

import (
	"github.com/cbag/codebird-cave/shared/hazard"
	"github.com/cbag/codebird-cave/shared/leveldata"
	"github.com/cbag/codebird-cave/shared/physics"
)

// Config sizes the player and the scroll window.
type Config struct {
	Tuning      physics.Tuning
	ActorWidth  float64
	ActorHeight float64
	Margin      float64 // visible margin behind the scroll anchor
	KillDepth   float64 // how far below row 0 the player may fall
}

type Session struct {
	Level   *leveldata.Level
	World   *physics.World
	Player  *physics.Actor
	Hazards *hazard.Field

	cfg    Config
	events []physics.Event
}

// New starts level at its spawn point. The level's grid is never mutated;
// each start works on a copy.
func New(level *leveldata.Level, cfg Config) *Session {
	s := &Session{
		Level:  level,
		cfg:    cfg,
		events: make([]physics.Event, 0, 4),
	}
	s.Hazards = hazard.NewField(level.Grid.Width, level.Grid.Height, level.TileSize, -cfg.KillDepth, level.Hazards)
	s.Restart()
	return s
}

// Restart rebuilds the world and respawns the player.
func (s *Session) Restart() {
	spawn := s.Level.Spawn
	s.Player = physics.NewActor(physics.RolePlayer, spawn.X, spawn.Y, s.cfg.ActorWidth, s.cfg.ActorHeight)
	window := physics.NewScrollWindow(spawn.X, s.Level.End, s.cfg.Margin)
	s.World = physics.NewWorld(s.Level.Grid.Clone(), window, s.cfg.Tuning)
}

// Tick steps the player and adds an EventHazard when it ends the tick in a
// hazard. The returned slice is reused by the next call.
func (s *Session) Tick(dt float64, in physics.Intent) []physics.Event {
	s.events = append(s.events[:0], s.World.Step(s.Player, dt, in)...)
	if dt != 0 && s.Hazards.Hit(s.Player) {
		s.events = append(s.events, physics.Event{Kind: physics.EventHazard})
	}
	return s.events
}

// CameraX is the horizontal camera centre for the current tick.
func (s *Session) CameraX() float64 {
	return s.World.Window.CameraX(s.Player.ScrollAnchor.X)
}
