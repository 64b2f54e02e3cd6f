// Package physics is the per-frame platformer integrator: actor kinematic
// state, the locomotion state machine, the scroll window and the step that
// moves an actor against a tilegrid.Grid.
package physics

import (
	"fmt"

	"github.com/cbag/codebird-cave/shared/tilegrid"
	dmath "github.com/yohamta/donburi/features/math"
)

// Role tags what an actor is. Only players drive the scroll window.
type Role int

const (
	RolePlayer Role = iota
	RoleEnemy
)

func (r Role) String() string {
	switch r {
	case RolePlayer:
		return "player"
	case RoleEnemy:
		return "enemy"
	}
	return fmt.Sprintf("Role(%d)", int(r))
}

// Locomotion is the actor's movement state.
type Locomotion int

const (
	Stand Locomotion = iota
	Walk
	Jump
)

func (l Locomotion) String() string {
	switch l {
	case Stand:
		return "stand"
	case Walk:
		return "walk"
	case Jump:
		return "jump"
	}
	return fmt.Sprintf("Locomotion(%d)", int(l))
}

// Actor is the kinematic state of one body. Velocity is stored in world
// units per second; position in world units with the Y axis pointing up.
type Actor struct {
	Role Role

	Pos          dmath.Vec2
	ScrollAnchor dmath.Vec2 // right-most position reached
	Vel          dmath.Vec2

	Width, Height float64

	FacingRight bool
	Grounded    bool
	State       Locomotion
	AnimClock   float64
}

// NewActor returns an airborne actor standing at (x, y), facing right.
func NewActor(role Role, x, y, width, height float64) *Actor {
	a := &Actor{
		Role:        role,
		Width:       width,
		Height:      height,
		FacingRight: true,
		State:       Stand,
	}
	a.Place(x, y)
	return a
}

// Place moves the actor and its scroll anchor to (x, y) without touching
// velocity. Used for spawning and the debug teleport.
func (a *Actor) Place(x, y float64) {
	a.Pos = dmath.Vec2{X: x, Y: y}
	a.ScrollAnchor = dmath.Vec2{X: x, Y: y}
}

// Bounds returns the actor's bounding box at its current position.
func (a *Actor) Bounds() tilegrid.Rect {
	return tilegrid.Rect{X: a.Pos.X, Y: a.Pos.Y, W: a.Width, H: a.Height}
}
