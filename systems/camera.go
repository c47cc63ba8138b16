package systems

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/ninja/components"
	"github.com/automoto/ninja/config"
	"github.com/automoto/ninja/shared/gamemath"
	"github.com/automoto/ninja/tags"
)

// UpdateCamera eases the camera toward the actor and recomputes the visible
// window, which stays inside the level or centres a small level.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	level := getLevel(e)
	if level == nil {
		return
	}

	b := &components.Actor.Get(playerEntry).Actor.Body
	targetX := b.CenterX()
	targetY := b.Y + b.H/2

	smoothing := config.Camera.FollowSmoothing
	if smoothing <= 0 || smoothing > 1 {
		smoothing = 1
	}
	camera.Position.X += (targetX - camera.Position.X) * smoothing
	camera.Position.Y += (targetY - camera.Position.Y) * smoothing

	g := level.CurrentLevel.Grid
	camera.View = gamemath.Viewport(
		int(camera.Position.X), int(camera.Position.Y),
		int(g.PixelWidth()), int(g.PixelHeight()),
		config.C.Width, config.C.Height,
	)
}

// getCamera returns the camera singleton or nil before the scene is set up.
func getCamera(e *ecs.ECS) *components.CameraData {
	entry, ok := components.Camera.First(e.World)
	if !ok {
		return nil
	}
	return components.Camera.Get(entry)
}
