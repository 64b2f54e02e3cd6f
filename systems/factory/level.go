package factory

import (
	"fmt"

	"github.com/cbag/codebird-cave/archetypes"
	"github.com/cbag/codebird-cave/components"
	cfg "github.com/cbag/codebird-cave/config"
	"github.com/cbag/codebird-cave/shared/leveldata"
	"github.com/cbag/codebird-cave/shared/levelseq"
	"github.com/cbag/codebird-cave/shared/progress"
	"github.com/cbag/codebird-cave/shared/session"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel spawns the level entity, resuming from saved progress when
// there is any. The saved avatar replaces avatar.
func CreateLevel(ecs *ecs.ECS, levels map[string]*leveldata.Level, names []string, store *progress.Store, avatar progress.Avatar) (*donburi.Entry, error) {
	seq, err := levelseq.New(levelseq.Order(cfg.Level.Order, names), store, log.Default())
	if err != nil {
		return nil, err
	}
	seq.Avatar = avatar
	if saved, err := store.Load(); err == nil {
		seq.Resume(saved)
	}

	current, ok := levels[seq.Current()]
	if !ok {
		return nil, fmt.Errorf("level %q not loaded", seq.Current())
	}

	level := archetypes.Level.Spawn(ecs)
	components.Level.Set(level, &components.LevelData{
		Levels:   levels,
		Sequence: seq,
		Session:  session.New(current, cfg.Physics.Session()),
		Progress: store,
	})
	log.Info("level started", "level", current.Name, "spawn", current.Spawn, "end", current.End)
	return level, nil
}
