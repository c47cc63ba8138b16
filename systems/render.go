package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/ninja/assets"
	"github.com/automoto/ninja/components"
	"github.com/automoto/ninja/tags"
)

var (
	drawOp   = &ebiten.DrawImageOptions{}
	shaderOp = &ebiten.DrawRectShaderOptions{}
)

// flashFrames is how long a fresh respawn flash lasts.
const flashFrames = 20

// DrawPlayer renders the actor's current animation frame with its feet on the
// bottom of the collision box.
func DrawPlayer(e *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	camera := getCamera(e)
	if camera == nil {
		return
	}
	data := components.Actor.Get(playerEntry)
	if data.RespawnTimer > 0 || data.Actor.Anim == nil {
		return
	}

	rect := data.Actor.Anim.Frame()
	img := assets.GetFrame(rect)
	fw, fh := float64(rect.Dx()), float64(rect.Dy())
	b := &data.Actor.Body
	ss := components.SquashStretch.Get(playerEntry)

	geoM := ebiten.GeoM{}
	// Characters: anchor at bottom-center so feet line up with collision box
	geoM.Translate(-fw/2, -fh)
	geoM.Scale(ss.ScaleX, ss.ScaleY)
	geoM.Translate(b.CenterX()-float64(camera.View.Min.X), b.Bottom()-float64(camera.View.Min.Y))

	flash := components.Flash.Get(playerEntry)
	if flash.Duration > 0 && assets.TintShader != nil {
		shaderOp.GeoM = geoM
		shaderOp.Images[0] = img
		shaderOp.Uniforms = map[string]any{
			"Tint": []float32{flash.R, flash.G, flash.B, float32(flash.Duration) / flashFrames},
		}
		screen.DrawRectShader(rect.Dx(), rect.Dy(), assets.TintShader, shaderOp)
		return
	}

	drawOp.GeoM = geoM
	drawOp.ColorScale.Reset()
	screen.DrawImage(img, drawOp)
}
