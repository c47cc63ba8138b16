package systems

import (
	"encoding/json"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/ninja/components"
	cfg "github.com/automoto/ninja/config"
)

const settingsKey = "settings"

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for settings storage.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "ninja",
	})
	if err != nil {
		log.Warn("could not initialize persistence", "err", err)
		return err
	}
	gdataManager = m
	return nil
}

// LoadSettings returns the saved settings, or the defaults when nothing was
// saved yet or persistence is unavailable.
func LoadSettings() cfg.Settings {
	s := cfg.DefaultSettings()
	if gdataManager == nil {
		return s
	}

	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		log.Warn("could not load settings", "err", err)
		return s
	}
	if data == nil {
		return s
	}
	if err := json.Unmarshal(data, &s); err != nil {
		log.Warn("could not parse saved settings", "err", err)
		return cfg.DefaultSettings()
	}
	return s.Sanitize()
}

// SaveSettings writes s to disk. It is a no-op without persistence.
func SaveSettings(s cfg.Settings) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if err := gdataManager.SaveItem(settingsKey, data); err != nil {
		log.Warn("could not save settings", "err", err)
		return err
	}
	return nil
}

// ApplySavedSettings pushes the window related settings to ebiten.
func ApplySavedSettings(s cfg.Settings) {
	ebiten.SetFullscreen(s.Fullscreen)
	ebiten.SetWindowSize(int(float64(cfg.C.Width)*s.WindowScale), int(float64(cfg.C.Height)*s.WindowScale))
}

// getSettings returns the settings singleton or nil before the scene is set up.
func getSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		return nil
	}
	return components.Settings.Get(entry)
}

// UpdateSettings handles the debug and fullscreen toggles and saves after
// either changes.
func UpdateSettings(e *ecs.ECS) {
	settings := getSettings(e)
	if settings == nil {
		return
	}
	input := getOrCreateInput(e)

	changed := false
	if input.JustPressed(cfg.ActionDebug) {
		settings.DebugOverlay = !settings.DebugOverlay
		changed = true
	}
	if input.JustPressed(cfg.ActionFullscreen) {
		settings.Fullscreen = !settings.Fullscreen
		ebiten.SetFullscreen(settings.Fullscreen)
		changed = true
	}
	if changed {
		_ = SaveSettings(settings.Settings)
	}
}
