package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/ninja/components"
	cfg "github.com/automoto/ninja/config"
	"github.com/automoto/ninja/fonts"
)

// getHUD returns the HUD singleton or nil before the scene is set up.
func getHUD(e *ecs.ECS) *components.HUDData {
	entry, ok := components.HUD.First(e.World)
	if !ok {
		return nil
	}
	return components.HUD.Get(entry)
}

// UpdateHUD refreshes the FPS readout every cfg.Debug.FPSEvery frames so the
// number is readable.
func UpdateHUD(e *ecs.ECS) {
	hud := getHUD(e)
	if hud == nil {
		return
	}
	hud.Frames++
	if hud.Frames < max(cfg.Debug.FPSEvery, 1) {
		return
	}
	hud.Frames = 0
	hud.FPS = ebiten.ActualFPS()
	hud.TPS = ebiten.ActualTPS()
}

func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	hud := getHUD(e)
	level := getLevel(e)
	if hud == nil || level == nil {
		return
	}

	face := fonts.HUD.Get()
	margin := int(cfg.UI.HUDMargin)
	lineH := face.Metrics().Height.Ceil()

	line := fmt.Sprintf("FPS %.1f  %s  deaths %d  %s",
		hud.FPS, level.CurrentLevel.Name, hud.Deaths, formatSeconds(GetOrCreateLevelComplete(e).Frames))
	text.Draw(screen, line, face, margin, margin+lineH, cfg.UI.HUDTextColor)
}

func formatSeconds(frames int) string {
	return fmt.Sprintf("%.2fs", float64(frames)/float64(ebiten.TPS()))
}
