package components

import (
	"github.com/cbag/codebird-cave/shared/physics"
	"github.com/cbag/codebird-cave/shared/progress"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Avatar progress.Avatar
	Intent physics.Intent // last sampled input
}

var Player = donburi.NewComponentType[PlayerData]()
