package systems

import (
	"github.com/cbag/codebird-cave/components"
	cfg "github.com/cbag/codebird-cave/config"
	"github.com/cbag/codebird-cave/shared/levelseq"
	"github.com/cbag/codebird-cave/shared/physics"
	"github.com/cbag/codebird-cave/shared/session"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger is implemented by the game to swap scenes.
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// SubscribeLevelEvents routes step events into the level sequence. Call once
// per world, before the first UpdatePlayer.
func SubscribeLevelEvents(w donburi.World) {
	components.StepEvent.Subscribe(w, onStepEvent)
}

func onStepEvent(w donburi.World, ev physics.Event) {
	entry, ok := components.Level.First(w)
	if !ok {
		return
	}
	level := components.Level.Get(entry)
	tr, err := level.Sequence.Handle([]physics.Event{ev})
	if err != nil {
		return
	}
	// Advance and Finished outrank Reload, which outranks Stay.
	if tr > level.Pending {
		level.Pending = tr
	}
}

// NewUpdateLevel applies the pending transition after UpdatePlayer. When the
// last level is cleared it switches to the scene built by onFinished.
func NewUpdateLevel(sceneChanger SceneChanger, onFinished func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		level := getLevel(e)
		if level == nil {
			return
		}
		tr := level.Pending
		level.Pending = levelseq.Stay

		switch tr {
		case levelseq.Reload:
			level.Session.Restart()
		case levelseq.Advance:
			next, ok := level.Levels[level.Sequence.Current()]
			if !ok {
				log.Error("next level not loaded", "level", level.Sequence.Current())
				return
			}
			level.Session = session.New(next, cfg.Physics.Session())
		case levelseq.Finished:
			if err := level.Progress.Clear(); err != nil {
				log.Warn("could not clear progress", "error", err)
			}
			sceneChanger.ChangeScene(onFinished())
			return
		default:
			return
		}

		components.LevelChanged.Publish(e.World, components.LevelChangedEvent{
			Name:       level.Session.Level.Name,
			Transition: tr,
		})
		components.LevelChanged.ProcessEvents(e.World)
	}
}
