package systems

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/ninja/components"
	cfg "github.com/automoto/ninja/config"
	"github.com/automoto/ninja/shared/kinematics"
	"github.com/automoto/ninja/shared/zones"
	"github.com/automoto/ninja/tags"
)

// UpdatePlayer steps the actor one tick and reacts to the zones it enters.
func UpdatePlayer(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	level := getLevel(e)
	if level == nil || level.Err != nil {
		return
	}
	data := components.Actor.Get(playerEntry)

	if data.RespawnTimer > 0 {
		data.RespawnTimer--
		if data.RespawnTimer == 0 {
			respawn(playerEntry, level)
		}
		return
	}

	input := getOrCreateInput(e)
	in := kinematics.Input{
		Left:  input.Pressed(cfg.ActionMoveLeft),
		Right: input.Pressed(cfg.ActionMoveRight),
		Jump:  input.Pressed(cfg.ActionJump),
		Run:   input.Pressed(cfg.ActionRun),
	}

	dt := 1 / float64(ebiten.TPS())
	data.NowMs += dt * 1000
	f, err := data.Actor.Step(level.Resolver, in, data.NowMs, dt)
	if err != nil {
		level.Err = err
		log.Error("movement step failed", "err", err)
		return
	}
	data.Last = f

	complete := GetOrCreateLevelComplete(e)
	complete.Frames++

	switch level.Zones.Check(data.Actor.Body) {
	case zones.Dead:
		killPlayer(e, playerEntry)
		if data.RespawnTimer == 0 {
			respawn(playerEntry, level)
		}
	case zones.Finish:
		if !complete.Complete {
			complete.Complete = true
			log.Info("level complete", "level", level.CurrentLevel.Name,
				"seconds", float64(complete.Frames)/float64(ebiten.TPS()))
		}
	}
}

func killPlayer(e *ecs.ECS, playerEntry *donburi.Entry) {
	data := components.Actor.Get(playerEntry)
	b := data.Actor.Body
	log.Debug("player died", "x", b.X, "y", b.Y)

	data.RespawnTimer = cfg.DeathZone.RespawnDelayFrames
	if hud := getHUD(e); hud != nil {
		hud.Deaths++
	}
}

// respawn puts the actor back on the level's spawn point with a flash.
func respawn(playerEntry *donburi.Entry, level *components.LevelData) {
	data := components.Actor.Get(playerEntry)
	spawn := level.CurrentLevel.Spawn()
	data.Actor.Teleport(spawn.X, spawn.Y)
	data.Last = kinematics.Frame{}

	components.Flash.SetValue(playerEntry, components.FlashData{Duration: flashFrames, R: 1, G: 1, B: 1})
	ss := components.SquashStretch.Get(playerEntry)
	*ss = components.SquashStretchData{ScaleX: 1, ScaleY: 1}
}

// getLevel returns the level singleton or nil before the scene is set up.
func getLevel(e *ecs.ECS) *components.LevelData {
	entry, ok := components.Level.First(e.World)
	if !ok {
		return nil
	}
	return components.Level.Get(entry)
}
