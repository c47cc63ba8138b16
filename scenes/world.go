package scenes

import (
	"errors"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/ninja/archetypes"
	"github.com/automoto/ninja/assets"
	"github.com/automoto/ninja/components"
	cfg "github.com/automoto/ninja/config"
	"github.com/automoto/ninja/fonts"
	"github.com/automoto/ninja/systems"
	"github.com/automoto/ninja/systems/factory"
)

// Options select what the platformer scene loads.
type Options struct {
	Loader   *assets.LevelLoader
	Level    string
	Settings cfg.Settings
	Watcher  *cfg.Watcher // optional config hot reload
}

type PlatformerScene struct {
	ecs  *ecs.ECS
	opts Options
	once sync.Once
	err  error
}

func NewPlatformerScene(opts Options) *PlatformerScene {
	if opts.Loader == nil {
		opts.Loader = assets.NewLevelLoader()
	}
	return &PlatformerScene{opts: opts}
}

// Update runs one tick. It returns ebiten.Termination when the player quits
// and the movement core's error if a step fails.
func (ps *PlatformerScene) Update() error {
	ps.once.Do(func() { ps.err = ps.configure() })
	if ps.err != nil {
		return ps.err
	}
	ps.ecs.Update()

	if level, ok := components.Level.First(ps.ecs.World); ok {
		if err := components.Level.Get(level).Err; err != nil {
			return fmt.Errorf("platformer: %w", err)
		}
	}
	if input, ok := components.Input.First(ps.ecs.World); ok {
		if components.Input.Get(input).JustPressed(cfg.ActionQuit) {
			return ebiten.Termination
		}
	}
	return nil
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.UI.BackgroundColor)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

// Err is the setup error, if configure failed.
func (ps *PlatformerScene) Err() error {
	return ps.err
}

func (ps *PlatformerScene) configure() error {
	if !fonts.Loaded(fonts.HUD) {
		if err := fonts.LoadDefaults(cfg.UI.HUDFontSize); err != nil {
			return err
		}
	}
	// Preload assets to avoid lag on first use (important for WASM)
	assets.PreloadAllAnimations()

	// Load shaders for player tinting
	if err := assets.LoadShaders(); err != nil {
		return fmt.Errorf("failed to load shaders: %w", err)
	}
	if err := systems.BindInput(); err != nil {
		return err
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	if ps.opts.Watcher != nil {
		ecs.AddSystem(systems.NewConfigReloader(ps.opts.Watcher))
	}
	ecs.AddSystem(systems.UpdateRestart)

	// Game systems wrapped with level complete checks
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateEffects))

	// Systems that run even after the finish line
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdateCamera)
	ecs.AddSystem(systems.UpdateHUD)

	// Add renderers
	ecs.AddRenderer(archetypes.Default, systems.DrawLevel)
	ecs.AddRenderer(archetypes.Default, systems.DrawPlayer)
	ecs.AddRenderer(archetypes.Default, systems.DrawDebug)
	ecs.AddRenderer(archetypes.Default, systems.DrawHUD)
	ecs.AddRenderer(archetypes.Default, systems.DrawLevelComplete)

	ps.ecs = ecs

	// Create the level entity and load level data FIRST.
	levelEntry, err := factory.CreateLevel(ps.ecs, ps.opts.Loader, ps.opts.Level)
	if err != nil {
		return err
	}
	level := components.Level.Get(levelEntry)
	if level.CurrentLevel.Grid.Cols() == 0 {
		return errors.New("platformer: level has no tiles")
	}

	spawn := level.CurrentLevel.Spawn()
	factory.CreatePlayer(ps.ecs, spawn.X, spawn.Y)
	factory.CreateCamera(ps.ecs, spawn.X, spawn.Y)
	factory.CreateInput(ps.ecs)

	settings := ps.opts.Settings
	settings.LastLevel = level.CurrentLevel.Name
	factory.CreateHUD(ps.ecs, settings)
	_ = systems.SaveSettings(settings)

	log.Info("level started", "level", level.CurrentLevel.Name, "spawn_x", spawn.X, "spawn_y", spawn.Y)
	return nil
}
