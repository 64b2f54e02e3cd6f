package systems

import (
	"fmt"

	"github.com/cbag/codebird-cave/components"
	cfg "github.com/cbag/codebird-cave/config"
	"github.com/cbag/codebird-cave/fonts"
	"github.com/cbag/codebird-cave/shared/physics"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const debugLineHeight = 12

// SubscribeDebugEvents records step events and level changes in the
// overlay's log.
func SubscribeDebugEvents(w donburi.World) {
	components.StepEvent.Subscribe(w, func(w donburi.World, ev physics.Event) {
		d := getDebug(w)
		if d == nil {
			return
		}
		d.Record(fmt.Sprintf("%5d %s", d.Ticks, ev))
		log.Debug("step event", "tick", d.Ticks, "event", ev)
	})
	components.LevelChanged.Subscribe(w, func(w donburi.World, ev components.LevelChangedEvent) {
		if d := getDebug(w); d != nil {
			d.Record(fmt.Sprintf("%5d %s %s", d.Ticks, ev.Transition, ev.Name))
		}
		log.Info("level changed", "level", ev.Name, "transition", ev.Transition)
	})
}

// UpdateDebug toggles the overlay and counts ticks.
func UpdateDebug(e *ecs.ECS) {
	d := getDebug(e.World)
	if d == nil {
		return
	}
	d.Ticks++
	if GetAction(getOrCreateInput(e), cfg.ActionToggleOverlay).JustPressed {
		d.Overlay = !d.Overlay
	}
}

// DrawDebug outlines the player's box and prints its kinematic state along
// with the latest events.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	d := getDebug(e.World)
	if d == nil || !d.Overlay {
		return
	}
	level := getLevel(e)
	cameraEntry, ok := components.Camera.First(e.World)
	if level == nil || level.Session == nil || !ok {
		return
	}
	view := newView(components.Camera.Get(cameraEntry), screen)
	s := level.Session
	a := s.Player

	x, y, w, h := view.Box(a.Pos.X, a.Pos.Y, a.Width, a.Height)
	vector.StrokeRect(screen, x, y, w, h, 1, cfg.Colors.Hazard, false)
	win := s.World.Window
	minX, _, _, _ := view.Box(win.Min, 0, 0, 0)
	vector.StrokeLine(screen, minX, 0, minX, float32(view.Height), 1, cfg.Colors.Exit, false)

	lines := []string{
		fmt.Sprintf("pos %.2f,%.2f vel %.2f,%.2f", a.Pos.X, a.Pos.Y, a.Vel.X, a.Vel.Y),
		fmt.Sprintf("%s grounded=%t anchor %.2f", a.State, a.Grounded, a.ScrollAnchor.X),
		fmt.Sprintf("window %.2f..%.2f", win.Min, win.Max),
		fmt.Sprintf("%s tick %d", s.Level.Name, d.Ticks),
	}
	lines = append(lines, d.Recent()...)

	face := fonts.HUD.Get()
	top := screen.Bounds().Dy() - len(lines)*debugLineHeight
	for i, line := range lines {
		text.Draw(screen, line, face, 8, top+i*debugLineHeight, cfg.Colors.Text)
	}
}

func getDebug(w donburi.World) *components.DebugData {
	entry, ok := components.Debug.First(w)
	if !ok {
		return nil
	}
	return components.Debug.Get(entry)
}
