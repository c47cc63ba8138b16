package leveldata

import (
	"errors"
	"fmt"
)

// ErrLayerMismatch reports layers that do not share the grid dimensions.
var ErrLayerMismatch = errors.New("layer dimensions mismatch")

// Source is the level data provider the grid is built from. Layer 0 is the
// bottom layer. Tile id 0 means empty.
type Source interface {
	LayerCount() int
	TileID(layer, col, row int) uint32
	Width() int
	Height() int
	TileWidth() float64
	TileHeight() float64
	// Tile resolves a tile id through the tileset. The bool is false when the
	// id has no tileset entry.
	Tile(id uint32) (TileInfo, bool)
}

// MemorySource is an in-memory Source. Layers are indexed [layer][row][col].
type MemorySource struct {
	layers     [][][]uint32
	width      int
	height     int
	tileWidth  float64
	tileHeight float64
	tiles      map[uint32]TileInfo
}

// NewMemorySource validates that every layer has the same dimensions.
func NewMemorySource(tileWidth, tileHeight float64, tiles map[uint32]TileInfo, layers ...[][]uint32) (*MemorySource, error) {
	if len(layers) == 0 {
		return nil, fmt.Errorf("memory source: %w: no layers", ErrLayerMismatch)
	}
	if tileWidth <= 0 || tileHeight <= 0 {
		return nil, fmt.Errorf("memory source: tile size %gx%g must be positive", tileWidth, tileHeight)
	}

	height := len(layers[0])
	width := 0
	if height > 0 {
		width = len(layers[0][0])
	}
	for i, layer := range layers {
		if len(layer) != height {
			return nil, fmt.Errorf("memory source: layer %d has %d rows, want %d: %w", i, len(layer), height, ErrLayerMismatch)
		}
		for r, row := range layer {
			if len(row) != width {
				return nil, fmt.Errorf("memory source: layer %d row %d has %d cols, want %d: %w", i, r, len(row), width, ErrLayerMismatch)
			}
		}
	}

	return &MemorySource{
		layers:     layers,
		width:      width,
		height:     height,
		tileWidth:  tileWidth,
		tileHeight: tileHeight,
		tiles:      tiles,
	}, nil
}

func (m *MemorySource) LayerCount() int     { return len(m.layers) }
func (m *MemorySource) Width() int          { return m.width }
func (m *MemorySource) Height() int         { return m.height }
func (m *MemorySource) TileWidth() float64  { return m.tileWidth }
func (m *MemorySource) TileHeight() float64 { return m.tileHeight }

func (m *MemorySource) TileID(layer, col, row int) uint32 {
	return m.layers[layer][row][col]
}

func (m *MemorySource) Tile(id uint32) (TileInfo, bool) {
	info, ok := m.tiles[id]
	return info, ok
}

// ParseRows builds one layer from strings where '#' is tile 1 and any other
// rune is empty. Handy for tests and scripted levels.
func ParseRows(rows ...string) [][]uint32 {
	layer := make([][]uint32, len(rows))
	for r, s := range rows {
		layer[r] = make([]uint32, len(s))
		for c, ch := range s {
			if ch == '#' {
				layer[r][c] = 1
			}
		}
	}
	return layer
}

// SolidTiles is the tileset used with ParseRows: id 1 is solid.
func SolidTiles() map[uint32]TileInfo {
	return map[uint32]TileInfo{1: {Solid: true}}
}
