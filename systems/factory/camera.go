package factory

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/ninja/archetypes"
	"github.com/automoto/ninja/components"
)

func CreateCamera(ecs *ecs.ECS, x, y float64) {
	camera := archetypes.Camera.Spawn(ecs)
	c := &components.CameraData{}
	c.Position.X, c.Position.Y = x, y
	components.Camera.Set(camera, c)
}
