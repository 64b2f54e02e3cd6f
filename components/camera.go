package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData is in world units, Y up.
type CameraData struct {
	Position math.Vec2

	// Glide eases Position.X toward GlideTo after a jump in the target.
	Glide   *gween.Tween
	GlideTo float64
}

var Camera = donburi.NewComponentType[CameraData]()
