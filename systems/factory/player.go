package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/ninja/archetypes"
	"github.com/automoto/ninja/components"
	"github.com/automoto/ninja/config"
	"github.com/automoto/ninja/shared/kinematics"
)

func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	actor := kinematics.NewActor(config.Physics.Params(), x, y,
		config.Player.CollisionWidth, config.Player.CollisionHeight)
	components.Actor.SetValue(player, components.ActorData{Actor: actor})
	components.SquashStretch.SetValue(player, components.SquashStretchData{ScaleX: 1, ScaleY: 1})

	return player
}
