package physics

import (
	"github.com/cbag/codebird-cave/shared/gamemath"
	"github.com/cbag/codebird-cave/shared/tilegrid"
	dmath "github.com/yohamta/donburi/features/math"
)

// Tuning holds the movement constants of the step.
type Tuning struct {
	GravityPerTick float64 // added to Vel.Y every tick, not scaled by dt
	FlyVel         float64 // jump impulse
	MaxVel         float64 // horizontal speed cap
	Damp           float64 // horizontal damping applied after integration
	StopSpeed      float64 // horizontal speeds below this snap to zero
	DebugTeleport  dmath.Vec2
}

// World steps actors against one level's grid. It owns the scroll window
// and the collision scratch buffers and is not safe for concurrent use.
type World struct {
	Grid   *tilegrid.Grid
	Window ScrollWindow
	Tuning Tuning

	pool   *tilegrid.RectPool
	solids []*tilegrid.Rect
	exits  []*tilegrid.Rect
	events []Event
}

func NewWorld(grid *tilegrid.Grid, window ScrollWindow, tuning Tuning) *World {
	return &World{
		Grid:   grid,
		Window: window,
		Tuning: tuning,
		pool:   tilegrid.NewRectPool(16),
		solids: make([]*tilegrid.Rect, 0, 8),
		exits:  make([]*tilegrid.Rect, 0, 4),
		events: make([]Event, 0, 4),
	}
}

// Pool exposes the collision box pool, mainly for allocation checks.
func (w *World) Pool() *tilegrid.RectPool { return w.pool }

// Step advances a by dt seconds under input in. The returned events are
// valid until the next call. A zero dt leaves everything untouched.
func (w *World) Step(a *Actor, dt float64, in Intent) []Event {
	w.events = w.events[:0]
	if dt == 0 {
		return nil
	}
	a.AnimClock += dt

	if !w.applyCommands(a, in) {
		w.applyMovement(a, in)
	}

	a.Vel.Y += w.Tuning.GravityPerTick
	a.Vel.X = gamemath.ClampSpeed(a.Vel.X, w.Tuning.MaxVel)
	if vx, stopped := gamemath.SnapSlow(a.Vel.X, w.Tuning.StopSpeed); stopped {
		a.Vel.X = vx
		if a.Grounded {
			a.State = Stand
		}
	}

	// Velocity holds this tick's displacement until it is rescaled below.
	a.Vel.X *= dt
	a.Vel.Y *= dt

	box := w.pool.Acquire()
	start := w.resolveX(a, box)
	w.resolveY(a, box)
	w.detectExit(a, box, start)
	w.pool.Release(box)

	a.Pos.X += a.Vel.X
	a.Pos.Y += a.Vel.Y
	if a.Role == RolePlayer {
		a.Pos.X = w.Window.Clamp(a.Pos.X)
	}

	a.Vel.X /= dt
	a.Vel.Y /= dt
	a.Vel.X *= w.Tuning.Damp

	return w.events
}

// applyCommands handles reset and the debug teleport. Either one consumes
// the movement input for this tick.
func (w *World) applyCommands(a *Actor, in Intent) bool {
	if in.Reset {
		w.events = append(w.events, Event{Kind: EventResetRequested})
	}
	if in.DebugTeleport {
		a.Place(w.Tuning.DebugTeleport.X, w.Tuning.DebugTeleport.Y)
		if a.Role == RolePlayer {
			w.Window.Track(a.ScrollAnchor.X)
		}
	}
	return in.Reset || in.DebugTeleport
}

func (w *World) applyMovement(a *Actor, in Intent) {
	if in.Jump && a.Grounded {
		a.Vel.Y += w.Tuning.FlyVel
		a.State = Jump
		a.Grounded = false
	}
	if in.Left {
		a.Vel.X = -w.Tuning.MaxVel
		if a.Grounded {
			a.State = Walk
		}
		a.FacingRight = false
	}
	if in.Right {
		a.Vel.X = w.Tuning.MaxVel
		if a.Grounded {
			a.State = Walk
		}
		a.FacingRight = true
	}
}

// resolveX zeroes the horizontal displacement when the box moved along it
// would run into a solid tile. It returns the motion envelope of the tick so far.
func (w *World) resolveX(a *Actor, box *tilegrid.Rect) tilegrid.CellRange {
	if a.Role == RolePlayer {
		a.Pos.X = w.Window.Clamp(a.Pos.X)
	}
	box.Set(a.Pos.X, a.Pos.Y, a.Width, a.Height)
	sweep := tilegrid.SweptRange(box, a.Vel.X, 0)
	w.solids = w.Grid.QuerySolid(w.pool, w.solids, sweep)

	if a.Role == RolePlayer {
		if a.Pos.X > a.ScrollAnchor.X {
			a.ScrollAnchor.X = a.Pos.X
		}
		w.Window.Track(a.ScrollAnchor.X)
	}

	// First hit in row-major order wins, not the nearest tile.
	for _, tile := range w.solids {
		if box.MovesInto(tile, a.Vel.X, 0) {
			a.Vel.X = 0
			break
		}
	}
	return sweep
}

// resolveY settles vertical motion at the resolved X: landing on a tile
// grounds the actor, hitting one from below breaks it out of solid-b.
func (w *World) resolveY(a *Actor, box *tilegrid.Rect) {
	box.Set(a.Pos.X, a.Pos.Y, a.Width, a.Height)
	w.solids = w.Grid.QuerySolid(w.pool, w.solids, tilegrid.SweptRange(box, 0, a.Vel.Y))

	for _, tile := range w.solids {
		if !box.MovesInto(tile, 0, a.Vel.Y) {
			continue
		}
		if a.Vel.Y > 0 {
			a.Pos.Y = tile.Y - a.Height
			cell := tile.Cell()
			if w.Grid.Remove(tilegrid.SolidB, cell.X, cell.Y) {
				w.events = append(w.events, Event{Kind: EventTileBroken, Cell: cell})
			}
		} else {
			a.Pos.Y = tile.Y + tile.H
			a.Grounded = true
		}
		a.Vel.Y = 0
		break
	}
}

// detectExit raises one EventLevelComplete when the settled box overlaps
// any exit tile inside the tick's motion envelope.
func (w *World) detectExit(a *Actor, box *tilegrid.Rect, sweep tilegrid.CellRange) {
	box.Set(a.Pos.X, a.Pos.Y, a.Width, a.Height)
	sweep = sweep.Union(tilegrid.SweptRange(box, a.Vel.X, a.Vel.Y))
	w.exits = w.Grid.QueryExit(w.pool, w.exits, sweep)

	box.X += a.Vel.X
	box.Y += a.Vel.Y
	for _, exit := range w.exits {
		if box.Overlaps(exit) {
			w.events = append(w.events, Event{Kind: EventLevelComplete})
			return
		}
	}
}
