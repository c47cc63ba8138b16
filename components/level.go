package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/ninja/assets"
	"github.com/automoto/ninja/shared/collision"
	"github.com/automoto/ninja/shared/zones"
)

type LevelData struct {
	CurrentLevel *assets.Level
	Names        []string
	LevelIndex   int

	Resolver *collision.Resolver
	Scanner  collision.Scanner
	Zones    *zones.Zones

	// Err is the first movement core failure; the scene stops on it.
	Err error
}

var Level = donburi.NewComponentType[LevelData]()
