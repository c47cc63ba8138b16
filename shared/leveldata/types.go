// Package leveldata provides the tile grid the movement core collides against
// and TMX level parsing shared by the game and the headless simulator.
// It has no dependencies on ebitengine, donburi, or resolv. Pure data only.
package leveldata

// Level holds everything parsed from a TMX level file.
type Level struct {
	Name        string
	Grid        *Grid
	SpawnPoints []SpawnPoint
	DeadZones   []Rect
	FinishLines []Rect
}

// Spawn returns the first spawn point, or the fallback position when the
// level defines none.
func (l *Level) Spawn() SpawnPoint {
	if len(l.SpawnPoints) == 0 {
		return SpawnPoint{X: DefaultSpawnX, Y: DefaultSpawnY}
	}
	return l.SpawnPoints[0]
}

// Default spawn used when a level has no PlayerSpawn object.
const (
	DefaultSpawnX = 300.0
	DefaultSpawnY = 200.0
)

// SpawnPoint represents a player spawn location.
type SpawnPoint struct {
	X, Y  float64
	Index int
}

// Rect is an axis-aligned rectangle in distance units.
type Rect struct {
	X, Y, W, H float64
}

// TileInfo is the tileset data the core cares about for one tile id.
type TileInfo struct {
	Solid bool
}
