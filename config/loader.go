package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the user and local directories.
const FileName = "ninja.yaml"

// File is the on-disk shape of the tunable config. Sections or fields left
// out of a file keep their defaults; unknown fields are ignored.
type File struct {
	Window  Config        `yaml:"window"`
	Player  PlayerConfig  `yaml:"player"`
	Physics PhysicsConfig `yaml:"physics"`
	Camera  CameraConfig  `yaml:"camera"`
	Level   LevelConfig   `yaml:"level"`
	Debug   DebugConfig   `yaml:"debug"`
	Input   InputConfig   `yaml:"input"`
}

// Defaults snapshots the current package level config.
func Defaults() File {
	return File{
		Window:  *C,
		Player:  Player,
		Physics: Physics,
		Camera:  Camera,
		Level:   Level,
		Debug:   Debug,
		Input:   Input,
	}.clone()
}

// Load reads the config.
// Search order: customPath -> ~/.ninja/ninja.yaml -> ./configs/ninja.yaml -> defaults.
// It returns the path that was used, or "" for the defaults. A custom path
// must exist; a fallback file that exists but does not parse is an error too.
func Load(customPath string) (File, string, error) {
	if customPath != "" {
		f, err := Read(customPath)
		return f, customPath, err
	}

	for _, p := range []string{userConfigPath(FileName), filepath.Join("configs", FileName)} {
		if p == "" {
			continue
		}
		f, err := Read(p)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		return f, p, err
	}
	return Defaults(), "", nil
}

// Read parses one config file over the defaults.
func Read(path string) (File, error) {
	return ReadOver(path, Defaults())
}

// ReadOver parses one config file over base. base is not modified.
func ReadOver(path string, base File) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base.clone(), fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := ParseOver(data, base)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (File, error) {
	return ParseOver(data, Defaults())
}

// ParseOver decodes YAML over base and validates the result. On error base
// is returned unchanged.
func ParseOver(data []byte, base File) (File, error) {
	cfg := base.clone()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base.clone(), err
	}
	if err := cfg.Validate(); err != nil {
		return base.clone(), err
	}
	return cfg, nil
}

// clone copies f so decoding into the copy leaves f's bindings alone.
func (f File) clone() File {
	bindings := make(map[ActionID]InputBinding, len(f.Input.Bindings))
	for id, b := range f.Input.Bindings {
		bindings[id] = b
	}
	f.Input.Bindings = bindings
	return f
}

func (f File) Validate() error {
	if f.Window.Width <= 0 || f.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", f.Window.Width, f.Window.Height)
	}
	if f.Window.TPS <= 0 {
		return fmt.Errorf("tps %d must be positive", f.Window.TPS)
	}
	if f.Player.CollisionWidth <= 0 || f.Player.CollisionHeight <= 0 {
		return fmt.Errorf("player collision size must be positive")
	}
	if f.Physics.SearchRadius < 1 {
		return fmt.Errorf("search radius %d must be at least 1", f.Physics.SearchRadius)
	}
	return f.Physics.Params().Validate()
}

// Apply installs f as the package level config.
func Apply(f File) {
	w := f.Window
	C = &w
	Player = f.Player
	Physics = f.Physics
	Camera = f.Camera
	Level = f.Level
	Debug = f.Debug
	Input = f.Input
}

// Marshal renders f as YAML.
func (f File) Marshal() ([]byte, error) {
	return yaml.Marshal(f)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ninja", filename)
}
