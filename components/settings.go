package components

import (
	"github.com/yohamta/donburi"

	cfg "github.com/automoto/ninja/config"
)

// SettingsData is the live copy of the persisted settings.
type SettingsData struct {
	cfg.Settings
}

var Settings = donburi.NewComponentType[SettingsData]()
