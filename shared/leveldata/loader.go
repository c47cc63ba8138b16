package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// tmxSource adapts a go-tiled map to Source. Tile ids are global ids, so a
// map with several tilesets resolves each id through the tileset that owns it.
type tmxSource struct {
	m *tiled.Map
}

func (s tmxSource) LayerCount() int     { return len(s.m.Layers) }
func (s tmxSource) Width() int          { return s.m.Width }
func (s tmxSource) Height() int         { return s.m.Height }
func (s tmxSource) TileWidth() float64  { return float64(s.m.TileWidth) }
func (s tmxSource) TileHeight() float64 { return float64(s.m.TileHeight) }

func (s tmxSource) TileID(layer, col, row int) uint32 {
	tiles := s.m.Layers[layer].Tiles
	idx := row*s.m.Width + col
	if idx < 0 || idx >= len(tiles) {
		return 0
	}
	tile := tiles[idx]
	if tile == nil || tile.IsNil() || tile.Tileset == nil {
		return 0
	}
	return tile.Tileset.FirstGID + tile.ID
}

func (s tmxSource) Tile(gid uint32) (TileInfo, bool) {
	var owner *tiled.Tileset
	for _, ts := range s.m.Tilesets {
		if ts.FirstGID <= gid && (owner == nil || ts.FirstGID > owner.FirstGID) {
			owner = ts
		}
	}
	if owner == nil {
		return TileInfo{}, false
	}
	tt, err := owner.GetTilesetTile(gid - owner.FirstGID)
	if err != nil {
		return TileInfo{}, false
	}
	return TileInfo{Solid: isTruthy(tt.Properties.GetString("solid"))}, true
}

func isTruthy(v string) bool {
	return v == "1" || strings.EqualFold(v, "true")
}

// NewTMXSource wraps an already parsed go-tiled map.
func NewTMXSource(m *tiled.Map) Source {
	return tmxSource{m: m}
}

// LoadLevel parses a TMX file into a Level. It takes an fs.FS so callers can
// pass embed.FS (game) or os.DirFS (simulator, level tooling).
func LoadLevel(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth <= 0 || levelMap.TileHeight <= 0 {
		return nil, fmt.Errorf("load TMX %s: tile size %dx%d must be positive", tmxPath, levelMap.TileWidth, levelMap.TileHeight)
	}
	for i, layer := range levelMap.Layers {
		if len(layer.Tiles) != levelMap.Width*levelMap.Height {
			return nil, fmt.Errorf("load TMX %s: layer %d (%s): %w", tmxPath, i, layer.Name, ErrLayerMismatch)
		}
	}

	level := &Level{
		Name: strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Grid: NewGrid(NewTMXSource(levelMap)),
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "PlayerSpawn":
			for _, o := range og.Objects {
				level.SpawnPoints = append(level.SpawnPoints, SpawnPoint{
					X:     o.X,
					Y:     o.Y,
					Index: o.Properties.GetInt("spawnIndex"),
				})
			}
		case "DeadZones":
			for _, o := range og.Objects {
				level.DeadZones = append(level.DeadZones, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case "FinishLine":
			for _, o := range og.Objects {
				level.FinishLines = append(level.FinishLines, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		}
	}

	sort.SliceStable(level.SpawnPoints, func(i, j int) bool {
		return level.SpawnPoints[i].Index < level.SpawnPoints[j].Index
	})

	return level, nil
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys, loads each,
// and returns a map keyed by stem name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*Level, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		level, err := LoadLevel(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		levels[level.Name] = level
		names = append(names, level.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}
