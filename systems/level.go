package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	cfg "github.com/automoto/ninja/config"
	"github.com/automoto/ninja/shared/leveldata"
)

func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.UI.BackgroundColor)

	camera := getCamera(e)
	level := getLevel(e)
	if camera == nil || level == nil || level.CurrentLevel == nil {
		return
	}
	ox, oy := float64(camera.View.Min.X), float64(camera.View.Min.Y)

	if level.CurrentLevel.Background != nil {
		opts := &ebiten.DrawImageOptions{}
		opts.GeoM.Translate(-ox, -oy)
		screen.DrawImage(level.CurrentLevel.Background, opts)
	}

	for _, r := range level.CurrentLevel.DeadZones {
		fillZone(screen, r, ox, oy, cfg.UI.DeadZoneColor)
	}
	for _, r := range level.CurrentLevel.FinishLines {
		fillZone(screen, r, ox, oy, cfg.UI.FinishColor)
	}
}

func fillZone(screen *ebiten.Image, r leveldata.Rect, ox, oy float64, c color.Color) {
	vector.FillRect(screen, float32(r.X-ox), float32(r.Y-oy), float32(r.W), float32(r.H), c, false)
}
