package systems

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/ninja/components"
	cfg "github.com/automoto/ninja/config"
	"github.com/automoto/ninja/fonts"
	"github.com/automoto/ninja/tags"
)

// DrawDebug shows what the movement core sees: solid cells near the view,
// the corner probes, the latest contact normal and the scanner's surfaces.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	settings := getSettings(e)
	if settings == nil || !settings.DebugOverlay {
		return
	}
	camera := getCamera(e)
	level := getLevel(e)
	playerEntry, ok := tags.Player.First(e.World)
	if camera == nil || level == nil || !ok {
		return
	}
	ox, oy := float32(camera.View.Min.X), float32(camera.View.Min.Y)

	g := level.CurrentLevel.Grid
	c0, r0 := g.CellAt(float64(camera.View.Min.X), float64(camera.View.Min.Y))
	c1, r1 := g.CellAt(float64(camera.View.Max.X), float64(camera.View.Max.Y))
	cw, ch := float32(g.CellWidth()), float32(g.CellHeight())
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if !g.IsSolid(col, row) {
				continue
			}
			x, y := float32(g.CellLeft(col))-ox, float32(g.CellTop(row))-oy
			vector.StrokeRect(screen, x, y, cw, ch, 1, cfg.Debug.SolidColor, false)
		}
	}

	data := components.Actor.Get(playerEntry)
	b := &data.Actor.Body
	bx, by := float32(b.X)-ox, float32(b.Y)-oy
	bw, bh := float32(b.W), float32(b.H)

	// Outline
	vector.FillRect(screen, bx, by, bw, 1, cfg.Debug.ProbeColor, false)      // Top
	vector.FillRect(screen, bx, by+bh-1, bw, 1, cfg.Debug.ProbeColor, false) // Bottom
	vector.FillRect(screen, bx, by, 1, bh, cfg.Debug.ProbeColor, false)      // Left
	vector.FillRect(screen, bx+bw-1, by, 1, bh, cfg.Debug.ProbeColor, false) // Right

	// Corner probes
	for _, p := range [4][2]float32{{bx, by}, {bx + bw, by}, {bx, by + bh}, {bx + bw, by + bh}} {
		vector.FillCircle(screen, p[0], p[1], 2, cfg.Debug.ProbeColor, false)
	}

	contact := data.Last.Contacts.First()
	if contact.Found() {
		cx, cy := bx+bw/2, by+bh/2
		nx, ny := float32(contact.Normal.X)*24, float32(contact.Normal.Y)*24
		vector.StrokeLine(screen, cx, cy, cx+nx, cy+ny, 2, cfg.Debug.NormalColor, false)
	}

	floor := level.Scanner.FloorBelow(b)
	ceiling := level.Scanner.CeilingAbove(b)
	if !math.IsInf(floor, 0) {
		y := float32(floor) - oy
		vector.StrokeLine(screen, bx-8, y, bx+bw+8, y, 1, cfg.Debug.SurfaceColor, false)
	}
	if !math.IsInf(ceiling, 0) {
		y := float32(ceiling) - oy
		vector.StrokeLine(screen, bx-8, y, bx+bw+8, y, 1, cfg.Debug.SurfaceColor, false)
	}

	face := fonts.Debug.Get()
	lineH := face.Metrics().Height.Ceil()
	lines := []string{
		fmt.Sprintf("pos %.1f,%.1f  vel %.1f,%.1f", b.X, b.Y, b.DX, b.DY),
		fmt.Sprintf("floor %t  powering %t  gap %.1f", data.Actor.OnFloor, data.Actor.Jump.Powering, level.Scanner.Gap(b)),
		fmt.Sprintf("contact %s  clip %s", contact, data.Actor.Anim.Current),
	}
	y := screen.Bounds().Dy() - int(cfg.UI.HUDMargin) - lineH*(len(lines)-1)
	for _, l := range lines {
		text.Draw(screen, l, face, int(cfg.UI.HUDMargin), y, cfg.Debug.ProbeColor)
		y += lineH
	}
}
