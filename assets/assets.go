package assets

import (
	"embed"
	"fmt"
	"image"
	"io/fs"
	"path"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/automoto/ninja/assets/animations"
	"github.com/automoto/ninja/config"
	"github.com/automoto/ninja/shared/leveldata"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// LevelsDir is the embedded directory holding the TMX levels.
const LevelsDir = "levels"

// FS exposes the embedded assets to code that only needs level data.
func FS() fs.FS {
	return assetFS
}

// Level is a parsed level plus its pre-rendered tiles.
type Level struct {
	*leveldata.Level
	Background *ebiten.Image
}

type LevelLoader struct {
	fsys fs.FS
	dir  string
}

// NewLevelLoader loads from the embedded levels.
func NewLevelLoader() *LevelLoader {
	return &LevelLoader{fsys: assetFS, dir: LevelsDir}
}

// NewLevelLoaderFS loads from dir in fsys, for levels kept outside the binary.
func NewLevelLoaderFS(fsys fs.FS, dir string) *LevelLoader {
	return &LevelLoader{fsys: fsys, dir: dir}
}

// Names lists the available levels in load order.
func (l *LevelLoader) Names() ([]string, error) {
	_, names, err := leveldata.LoadAllLevels(l.fsys, l.dir)
	return names, err
}

// LoadData parses one level without touching the GPU.
func (l *LevelLoader) LoadData(name string) (*leveldata.Level, error) {
	return leveldata.LoadLevel(l.fsys, path.Join(l.dir, name+".tmx"))
}

func (l *LevelLoader) Load(name string) (*Level, error) {
	data, err := l.LoadData(name)
	if err != nil {
		return nil, err
	}
	log.Debug("level loaded", "name", data.Name, "cols", data.Grid.Cols(), "rows", data.Grid.Rows(),
		"spawns", len(data.SpawnPoints), "deadzones", len(data.DeadZones))
	return &Level{Level: data, Background: RenderTiles(data.Grid)}, nil
}

func (l *LevelLoader) MustLoadLevel(name string) *Level {
	level, err := l.Load(name)
	if err != nil {
		panic(fmt.Sprintf("Failed to load level %s: %v", name, err))
	}
	return level
}

// RenderTiles paints the solid cells of g onto a level sized image. Cells
// with open space above get a lighter top edge.
func RenderTiles(g *leveldata.Grid) *ebiten.Image {
	w, h := int(g.PixelWidth()), int(g.PixelHeight())
	img := ebiten.NewImage(max(w, 1), max(h, 1))
	cw, ch := float32(g.CellWidth()), float32(g.CellHeight())

	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			if !g.IsSolid(col, row) {
				continue
			}
			x, y := float32(g.CellLeft(col)), float32(g.CellTop(row))
			vector.FillRect(img, x, y, cw, ch, config.UI.TileColor, false)
			if !g.IsSolid(col, row-1) {
				vector.FillRect(img, x, y, cw, 3, config.UI.TileEdgeColor, false)
			}
			vector.StrokeRect(img, x+0.5, y+0.5, cw-1, ch-1, 1, config.UI.BackgroundColor, false)
		}
	}
	return img
}

type AnimationLoader struct {
	sheet      *ebiten.Image
	frameCache map[image.Rectangle]*ebiten.Image
}

func NewAnimationLoader() *AnimationLoader {
	return &AnimationLoader{
		frameCache: make(map[image.Rectangle]*ebiten.Image),
	}
}

// Sheet returns the actor sheet, generating it on first use.
func (l *AnimationLoader) Sheet() *ebiten.Image {
	if l.sheet == nil {
		l.sheet = ebiten.NewImageFromImage(animations.GenerateSheet())
	}
	return l.sheet
}

// GetFrame returns a cached sub-image for a sheet rectangle.
// This prevents creating thousands of duplicate *ebiten.Image structs for the same frame.
func (l *AnimationLoader) GetFrame(srcRect image.Rectangle) *ebiten.Image {
	if img, ok := l.frameCache[srcRect]; ok {
		return img
	}
	frame := l.Sheet().SubImage(srcRect).(*ebiten.Image)
	l.frameCache[srcRect] = frame
	return frame
}

var (
	animationLoader = NewAnimationLoader()
)

func GetFrame(srcRect image.Rectangle) *ebiten.Image {
	return animationLoader.GetFrame(srcRect)
}

// PreloadAllAnimations uploads every actor frame to avoid lag on first render.
func PreloadAllAnimations() {
	for _, c := range animations.DefaultClips() {
		for _, f := range c.Frames {
			_ = GetFrame(f.Rect)
		}
	}
}
