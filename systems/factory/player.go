package factory

import (
	"github.com/cbag/codebird-cave/archetypes"
	"github.com/cbag/codebird-cave/components"
	"github.com/cbag/codebird-cave/shared/progress"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player entity. Its kinematic state lives in the
// level session; the entity carries input and presentation data.
func CreatePlayer(ecs *ecs.ECS, avatar progress.Avatar) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)
	components.Player.SetValue(player, components.PlayerData{Avatar: avatar})
	return player
}
