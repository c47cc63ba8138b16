package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"

	"github.com/automoto/ninja/components"
	cfg "github.com/automoto/ninja/config"
	"github.com/automoto/ninja/fonts"
	"github.com/automoto/ninja/tags"
)

// GetOrCreateLevelComplete returns the LevelComplete singleton, creating if needed.
func GetOrCreateLevelComplete(ecs *ecs.ECS) *components.LevelCompleteData {
	entry, ok := components.LevelComplete.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.LevelComplete))
	}
	return components.LevelComplete.Get(entry)
}

// WithLevelCompleteCheck skips system once the level is complete.
func WithLevelCompleteCheck(system ecs.System) ecs.System {
	return func(ecs *ecs.ECS) {
		if GetOrCreateLevelComplete(ecs).Complete {
			return
		}
		system(ecs)
	}
}

// WithGameplayChecks wraps systems that only run while the level is live.
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithLevelCompleteCheck(system)
}

// UpdateRestart puts the actor back at the start of the level and clears
// the run when restart is pressed.
func UpdateRestart(e *ecs.ECS) {
	if !getOrCreateInput(e).JustPressed(cfg.ActionRestart) {
		return
	}
	playerEntry, ok := tags.Player.First(e.World)
	level := getLevel(e)
	if !ok || level == nil {
		return
	}

	components.Actor.Get(playerEntry).RespawnTimer = 0
	respawn(playerEntry, level)
	*GetOrCreateLevelComplete(e) = components.LevelCompleteData{}
	if hud := getHUD(e); hud != nil {
		hud.Deaths = 0
	}
}

func DrawLevelComplete(e *ecs.ECS, screen *ebiten.Image) {
	complete := GetOrCreateLevelComplete(e)
	if !complete.Complete {
		return
	}

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.FillRect(screen, 0, 0, float32(w), float32(h), cfg.LevelComplete.OverlayColor, false)

	drawCentered(screen, cfg.LevelComplete.Title, fonts.Title.Get(), h/3, cfg.LevelComplete.TitleColor)
	drawCentered(screen, formatSeconds(complete.Frames), fonts.HUD.Get(), h/3+40, cfg.LevelComplete.HintColor)
	drawCentered(screen, cfg.LevelComplete.Hint, fonts.HUD.Get(), h*2/3, cfg.LevelComplete.HintColor)
}

func drawCentered(screen *ebiten.Image, s string, face font.Face, y int, c color.Color) {
	x := (screen.Bounds().Dx() - font.MeasureString(face, s).Round()) / 2
	text.Draw(screen, s, face, x, y, c)
}
