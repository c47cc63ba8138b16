package factory

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/ninja/archetypes"
	"github.com/automoto/ninja/components"
	"github.com/automoto/ninja/config"
)

func CreateInput(ecs *ecs.ECS) {
	archetypes.Input.Spawn(ecs)
}

func CreateHUD(ecs *ecs.ECS, s config.Settings) {
	hud := archetypes.HUD.Spawn(ecs)
	components.Settings.SetValue(hud, components.SettingsData{Settings: s})
}
