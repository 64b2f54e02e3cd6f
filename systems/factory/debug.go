package factory

import (
	"github.com/cbag/codebird-cave/archetypes"
	"github.com/cbag/codebird-cave/components"
	"github.com/yohamta/donburi/ecs"
)

func CreateDebug(ecs *ecs.ECS, overlay bool) {
	debug := archetypes.Debug.Spawn(ecs)
	components.Debug.SetValue(debug, components.DebugData{Overlay: overlay})
}
