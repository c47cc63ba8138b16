package config

// Settings are the player choices kept between runs.
type Settings struct {
	Fullscreen   bool    `json:"fullscreen"`
	DebugOverlay bool    `json:"debug_overlay"`
	WindowScale  float64 `json:"window_scale"`
	LastLevel    string  `json:"last_level"`
}

// WindowScales are the scales a saved WindowScale snaps to.
var WindowScales = []float64{1, 1.5, 2}

// DefaultSettings mirrors the package defaults.
func DefaultSettings() Settings {
	return Settings{
		Fullscreen:   false,
		DebugOverlay: Debug.Overlay,
		WindowScale:  C.Scale,
		LastLevel:    Level.Default,
	}
}

// Sanitize snaps out of range values from an older or hand edited save back
// to something usable.
func (s Settings) Sanitize() Settings {
	best := WindowScales[0]
	for _, sc := range WindowScales {
		if abs(sc-s.WindowScale) < abs(best-s.WindowScale) {
			best = sc
		}
	}
	s.WindowScale = best
	return s
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
