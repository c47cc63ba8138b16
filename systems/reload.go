package systems

import (
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/ninja/components"
	cfg "github.com/automoto/ninja/config"
	"github.com/automoto/ninja/tags"
)

// NewConfigReloader returns a system that applies config file edits picked
// up by w between frames. A file that fails to parse or validate is logged
// and the running values stay.
func NewConfigReloader(w *cfg.Watcher) ecs.System {
	return func(e *ecs.ECS) {
		select {
		case r, ok := <-w.Updates:
			if !ok {
				return
			}
			if r.Err != nil {
				log.Warn("config reload rejected", "path", w.Path(), "err", r.Err)
				return
			}
			applyConfig(e, r.File)
		case err, ok := <-w.Errors:
			if ok {
				log.Warn("config watcher", "err", err)
			}
		default:
		}
	}
}

func applyConfig(e *ecs.ECS, f cfg.File) {
	prevInput := cfg.Input
	prevOverlay := cfg.Debug.Overlay
	cfg.Apply(f)
	if err := BindInput(); err != nil {
		log.Warn("config reload: bad bindings, keeping the old ones", "err", err)
		cfg.Input = prevInput
		_ = BindInput()
	}

	params := cfg.Physics.Params()
	if playerEntry, ok := tags.Player.First(e.World); ok {
		components.Actor.Get(playerEntry).Actor.SetParams(params)
	}
	if level := getLevel(e); level != nil && level.Resolver != nil {
		level.Resolver.Radius = cfg.Physics.SearchRadius
	}
	if settings := getSettings(e); settings != nil && cfg.Debug.Overlay != prevOverlay {
		settings.DebugOverlay = cfg.Debug.Overlay
	}
	log.Info("config reloaded", "gravity", params.Gravity, "run_speed", params.RunSpeed)
}
