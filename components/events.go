package components

import (
	"github.com/cbag/codebird-cave/shared/levelseq"
	"github.com/cbag/codebird-cave/shared/physics"
	"github.com/yohamta/donburi/features/events"
)

// LevelChangedEvent is published after a reload or an advance.
type LevelChangedEvent struct {
	Name       string
	Transition levelseq.Transition
}

var (
	StepEvent    = events.NewEventType[physics.Event]()
	LevelChanged = events.NewEventType[LevelChangedEvent]()
)
