package systems

import (
	"math"

	"github.com/cbag/codebird-cave/components"
	cfg "github.com/cbag/codebird-cave/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera centres the camera on the scroll anchor, capped short of the
// level end. Jumps larger than the glide threshold (respawns, level changes,
// the debug teleport) are eased instead of snapped.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	level := getLevel(e)
	if level == nil || level.Session == nil {
		return
	}
	s := level.Session

	targetX := s.CameraX()
	viewH := float64(cfg.C.Height) / cfg.C.Scale
	camera.Position.Y = CameraY(s.Player.Pos.Y, float64(s.World.Grid.Height), viewH)

	if math.Abs(targetX-camera.GlideTo) > cfg.Camera.GlideThreshold &&
		math.Abs(targetX-camera.Position.X) > cfg.Camera.GlideThreshold {
		camera.Glide = gween.New(float32(camera.Position.X), float32(targetX), cfg.Camera.GlideSeconds, ease.OutCubic)
		camera.GlideTo = targetX
	}
	if camera.Glide != nil {
		x, done := camera.Glide.Update(1 / float32(cfg.C.TPS))
		camera.Position.X = float64(x)
		if !done {
			return
		}
		camera.Glide = nil
	}
	camera.Position.X = targetX
	camera.GlideTo = targetX
}

// CameraY keeps the view inside the level vertically. Levels shorter than
// the view are centred.
func CameraY(playerY, levelH, viewH float64) float64 {
	if levelH <= viewH {
		return levelH / 2
	}
	return math.Max(viewH/2, math.Min(levelH-viewH/2, playerY))
}
