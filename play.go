package main

import (
	"errors"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/automoto/ninja/config"
	"github.com/automoto/ninja/scenes"
	"github.com/automoto/ninja/systems"
)

var (
	flagPlayLevel string
	flagDebug     bool
	flagNoWatch   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a level",
	Long: `Open the game window on a level.

Controls:
  Left/Right, A/D  - Move
  Shift/Z          - Run
  Up/W/X           - Jump (hold to jump higher)
  R                - Restart
  F1               - Debug overlay
  F11              - Fullscreen
  Esc              - Quit

Edits to the config file are applied while the game runs.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayLevel, "level", "", "Level name (default: last played)")
	playCmd.Flags().BoolVar(&flagDebug, "debug", false, "Start with the debug overlay")
	playCmd.Flags().BoolVar(&flagNoWatch, "no-watch", false, "Do not reload the config file on change")
}

func runPlay(cmd *cobra.Command, args []string) error {
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TPS)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Warn("settings will not be saved", "err", err)
	}
	settings := systems.LoadSettings()
	if flagDebug {
		settings.DebugOverlay = true
	}
	systems.ApplySavedSettings(settings)

	level := settings.LastLevel
	if flagPlayLevel != "" {
		level = flagPlayLevel
	}

	opts := scenes.Options{Loader: levelLoader(), Level: level, Settings: settings}
	if configPath != "" && !flagNoWatch {
		w, err := config.NewWatcher(configPath)
		if err != nil {
			log.Warn("config hot reload disabled", "err", err)
		} else {
			defer w.Close()
			opts.Watcher = w
		}
	}

	err := ebiten.RunGame(NewGame(scenes.NewPlatformerScene(opts)))
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
