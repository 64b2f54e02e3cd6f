package systems

import (
	"github.com/cbag/codebird-cave/components"
	cfg "github.com/cbag/codebird-cave/config"
	"github.com/cbag/codebird-cave/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer samples the player's intent and advances the level session
// one fixed tick, publishing every event the tick raised.
func UpdatePlayer(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	level := getLevel(e)
	if level == nil || level.Session == nil || level.Sequence.Done() {
		return
	}

	player := components.Player.Get(playerEntry)
	player.Intent = IntentFrom(getOrCreateInput(e))

	dt := 1 / float64(cfg.C.TPS)
	for _, ev := range level.Session.Tick(dt, player.Intent) {
		components.StepEvent.Publish(e.World, ev)
	}
	components.StepEvent.ProcessEvents(e.World)
}

func getLevel(e *ecs.ECS) *components.LevelData {
	entry, ok := components.Level.First(e.World)
	if !ok {
		return nil
	}
	return components.Level.Get(entry)
}
