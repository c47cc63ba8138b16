package leveldata

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustGrid(t *testing.T, rows ...string) *Grid {
	t.Helper()
	src, err := NewMemorySource(32, 32, SolidTiles(), ParseRows(rows...))
	require.NoError(t, err)
	return NewGrid(src)
}

func TestIsSolidOutOfRange(t *testing.T) {
	g := mustGrid(t,
		"###",
		"###",
	)

	cells := [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 2}, {-100, -100}, {1 << 30, 1 << 30}}
	for _, c := range cells {
		assert.False(t, g.IsSolid(c[0], c[1]), "cell %v", c)
	}
	assert.True(t, g.IsSolid(2, 1))
}

func TestIsSolidAnyLayer(t *testing.T) {
	tiles := map[uint32]TileInfo{
		1: {Solid: true},
		2: {Solid: false},
	}
	bottom := [][]uint32{{1, 0, 0, 7}}
	top := [][]uint32{{2, 2, 0, 0}}

	src, err := NewMemorySource(16, 16, tiles, bottom, top)
	require.NoError(t, err)
	g := NewGrid(src)

	assert.True(t, g.IsSolid(0, 0), "solid bottom tile under a decoration")
	assert.False(t, g.IsSolid(1, 0), "decoration only")
	assert.False(t, g.IsSolid(2, 0), "empty")
	assert.False(t, g.IsSolid(3, 0), "id with no tileset entry")
}

func TestMemorySourceLayerMismatch(t *testing.T) {
	_, err := NewMemorySource(32, 32, SolidTiles(), ParseRows("##", "##"), ParseRows("##"))
	assert.ErrorIs(t, err, ErrLayerMismatch)

	_, err = NewMemorySource(32, 32, SolidTiles(), ParseRows("##", "#"))
	assert.ErrorIs(t, err, ErrLayerMismatch)

	_, err = NewMemorySource(32, 32, SolidTiles())
	assert.ErrorIs(t, err, ErrLayerMismatch)
}

func TestSurfaceBelow(t *testing.T) {
	g := mustGrid(t,
		"....",
		"#...",
		"....",
		"##.#",
	)

	tests := []struct {
		name     string
		x, y     float64
		expected float64
	}{
		{"first solid row", 10, 0, 32},
		{"starting row counts", 10, 40, 32},
		{"below a platform", 10, 70, 96},
		{"open column falls to grid bottom", 70, 0, 128},
		{"above grid", 40, -50, 96},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, g.SurfaceBelow(tc.x, tc.y))
		})
	}
}

func TestSurfaceAbove(t *testing.T) {
	g := mustGrid(t,
		"....",
		"#...",
		"....",
		"##.#",
	)

	assert.Equal(t, 64.0, g.SurfaceAbove(10, 80))
	assert.Equal(t, 0.0, g.SurfaceAbove(70, 120), "open column hits the grid top")
	assert.Equal(t, 128.0, g.SurfaceAbove(40, 500), "below the grid starts from the last row")
}

func TestGridDimensions(t *testing.T) {
	src, err := NewMemorySource(32, 16, SolidTiles(), ParseRows("...", "..."))
	require.NoError(t, err)
	g := NewGrid(src)

	assert.Equal(t, 3, g.Cols())
	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 96.0, g.PixelWidth())
	assert.Equal(t, 32.0, g.PixelHeight())

	col, row := g.CellAt(-1, 17)
	assert.Equal(t, -1, col)
	assert.Equal(t, 1, row)
}

func TestLoadLevel(t *testing.T) {
	level, err := LoadLevel(os.DirFS("testdata"), "levels/basic.tmx")
	require.NoError(t, err)

	assert.Equal(t, "basic", level.Name)
	g := level.Grid
	assert.Equal(t, 8, g.Cols())
	assert.Equal(t, 6, g.Rows())

	assert.True(t, g.IsSolid(7, 2), "wall")
	assert.True(t, g.IsSolid(0, 5), "floor")
	assert.True(t, g.IsSolid(1, 1), "solid tile on the bottom layer")
	assert.False(t, g.IsSolid(6, 3), "solid=0 tile")
	assert.False(t, g.IsSolid(3, 3), "tile with no properties")
	assert.False(t, g.IsSolid(4, 5), "gap")

	assert.Equal(t, 160.0, g.SurfaceBelow(10, 0))
	assert.Equal(t, 192.0, g.SurfaceBelow(140, 0))

	require.Len(t, level.SpawnPoints, 1)
	assert.Equal(t, SpawnPoint{X: 64, Y: 128}, level.Spawn())
	assert.Equal(t, []Rect{{X: 128, Y: 176, W: 32, H: 16}}, level.DeadZones)
	assert.Equal(t, []Rect{{X: 192, Y: 96, W: 16, H: 64}}, level.FinishLines)
}

func TestLoadLevelMissing(t *testing.T) {
	_, err := LoadLevel(os.DirFS("testdata"), "levels/nope.tmx")
	assert.Error(t, err)
}

func TestLoadAllLevels(t *testing.T) {
	levels, names, err := LoadAllLevels(os.DirFS("testdata"), "levels")
	require.NoError(t, err)
	assert.Equal(t, []string{"basic"}, names)
	assert.Contains(t, levels, "basic")

	_, _, err = LoadAllLevels(os.DirFS("testdata"), "empty")
	assert.Error(t, err)
}

func TestSpawnFallback(t *testing.T) {
	l := &Level{}
	assert.Equal(t, SpawnPoint{X: DefaultSpawnX, Y: DefaultSpawnY}, l.Spawn())
}
