package archetypes

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/ninja/components"
	"github.com/automoto/ninja/tags"
)

// Default is the only render layer.
const Default ecs.LayerID = 0

var (
	Player = newArchetype(
		tags.Player,
		components.Actor,
		components.SquashStretch,
		components.Flash,
	)
	Level = newArchetype(
		components.Level,
		components.LevelComplete,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Input = newArchetype(
		components.Input,
	)
	HUD = newArchetype(
		components.HUD,
		components.Settings,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		Default,
		append(a.components, cs...)...,
	))
	return e
}
