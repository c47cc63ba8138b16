package factory

import (
	"fmt"
	"slices"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/ninja/archetypes"
	"github.com/automoto/ninja/assets"
	"github.com/automoto/ninja/components"
	"github.com/automoto/ninja/config"
	"github.com/automoto/ninja/shared/collision"
	"github.com/automoto/ninja/shared/zones"
)

// CreateLevel loads the named level, or the first one when the name is
// unknown, and builds its collision helpers.
func CreateLevel(ecs *ecs.ECS, loader *assets.LevelLoader, name string) (*donburi.Entry, error) {
	names, err := loader.Names()
	if err != nil {
		return nil, err
	}
	index := slices.Index(names, name)
	if index < 0 {
		index = 0
	}

	level, err := loader.Load(names[index])
	if err != nil {
		return nil, fmt.Errorf("create level: %w", err)
	}

	entry := archetypes.Level.Spawn(ecs)
	res := collision.NewResolver(level.Grid)
	res.Radius = config.Physics.SearchRadius
	components.Level.Set(entry, &components.LevelData{
		CurrentLevel: level,
		Names:        names,
		LevelIndex:   index,
		Resolver:     res,
		Scanner:      collision.Scanner{Grid: level.Grid},
		Zones:        zones.New(level.Level, config.DeathZone.FallMargin),
	})
	return entry, nil
}
