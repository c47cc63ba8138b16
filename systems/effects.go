package systems

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/ninja/components"
	cfg "github.com/automoto/ninja/config"
	"github.com/automoto/ninja/tags"
)

// UpdateEffects starts squash/stretch on jumps and landings, runs the tweens
// back to 1:1 and counts down the respawn flash.
func UpdateEffects(e *ecs.ECS) {
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		data := components.Actor.Get(entry)
		ss := components.SquashStretch.Get(entry)

		switch {
		case data.Last.Jumped:
			startSquash(ss, cfg.SquashStretch.JumpScaleX, cfg.SquashStretch.JumpScaleY)
		case data.Last.Landed:
			startSquash(ss, cfg.SquashStretch.LandScaleX, cfg.SquashStretch.LandScaleY)
		}
		data.Last.Jumped, data.Last.Landed = false, false

		dt := float32(1) / 60
		if data.Last.Dt > 0 {
			dt = float32(data.Last.Dt)
		}
		if ss.TweenX != nil {
			x, done := ss.TweenX.Update(dt)
			ss.ScaleX = float64(x)
			if done {
				ss.TweenX = nil
			}
		}
		if ss.TweenY != nil {
			y, done := ss.TweenY.Update(dt)
			ss.ScaleY = float64(y)
			if done {
				ss.TweenY = nil
			}
		}

		flash := components.Flash.Get(entry)
		if flash.Duration > 0 {
			flash.Duration--
		}
	})
}

func startSquash(ss *components.SquashStretchData, sx, sy float64) {
	d := cfg.SquashStretch.Duration
	ss.ScaleX, ss.ScaleY = sx, sy
	ss.TweenX = gween.New(float32(sx), 1, d, ease.OutQuad)
	ss.TweenY = gween.New(float32(sy), 1, d, ease.OutQuad)
}
