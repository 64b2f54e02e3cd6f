package components

import (
	"github.com/cbag/codebird-cave/shared/leveldata"
	"github.com/cbag/codebird-cave/shared/levelseq"
	"github.com/cbag/codebird-cave/shared/progress"
	"github.com/cbag/codebird-cave/shared/session"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Levels   map[string]*leveldata.Level
	Sequence *levelseq.Sequencer
	Session  *session.Session
	Progress *progress.Store

	// Pending is the transition decided from this tick's events, applied
	// after the events are processed.
	Pending levelseq.Transition
}

var Level = donburi.NewComponentType[LevelData]()
