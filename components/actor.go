package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/ninja/shared/kinematics"
)

// ActorData wraps the movement core's actor for the ECS.
type ActorData struct {
	Actor *kinematics.Actor
	Last  kinematics.Frame // result of the latest step, for effects and debug
	NowMs float64          // game clock driving the jump window

	RespawnTimer int // frames left before a dead actor reappears
}

var Actor = donburi.NewComponentType[ActorData]()
