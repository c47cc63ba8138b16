package config

import (
	"image/color"

	"github.com/automoto/ninja/shared/kinematics"
)

// Config contains window and loop settings
type Config struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Scale  float64 `yaml:"scale"`
	TPS    int     `yaml:"tps"`
	Title  string  `yaml:"title"`
}

// PlayerConfig contains the actor's sheet and collision dimensions
type PlayerConfig struct {
	FrameWidth      int     `yaml:"frame_width"`
	FrameHeight     int     `yaml:"frame_height"`
	CollisionWidth  float64 `yaml:"collision_width"`
	CollisionHeight float64 `yaml:"collision_height"`
}

// PhysicsConfig contains the movement tunables. Units are px, seconds and
// px/s unless the name says otherwise.
type PhysicsConfig struct {
	Gravity         float64 `yaml:"gravity"`
	WalkSpeed       float64 `yaml:"walk_speed"`
	RunSpeed        float64 `yaml:"run_speed"`
	RunAccel        float64 `yaml:"run_accel"`
	StaticFriction  float64 `yaml:"static_friction"`
	DynamicFriction float64 `yaml:"dynamic_friction"`
	MaxFallSpeed    float64 `yaml:"max_fall_speed"`
	MaxFrameDelta   float64 `yaml:"max_frame_delta"`
	JumpLaunch      float64 `yaml:"jump_launch"`
	JumpPowerMs     float64 `yaml:"jump_power_ms"`
	FloorEpsilon    float64 `yaml:"floor_epsilon"`

	// Cells scanned around the body per sweep; widened automatically for
	// fast movers.
	SearchRadius int `yaml:"search_radius"`
}

// Params converts the tunables for the integrator.
func (p PhysicsConfig) Params() kinematics.Params {
	return kinematics.Params{
		Gravity:         p.Gravity,
		WalkSpeed:       p.WalkSpeed,
		RunSpeed:        p.RunSpeed,
		RunAccel:        p.RunAccel,
		StaticFriction:  p.StaticFriction,
		DynamicFriction: p.DynamicFriction,
		MaxFallSpeed:    p.MaxFallSpeed,
		MaxFrameDelta:   p.MaxFrameDelta,
		JumpLaunch:      p.JumpLaunch,
		JumpPowerMs:     p.JumpPowerMs,
		FloorEpsilon:    p.FloorEpsilon,
	}
}

// CameraConfig contains camera follow settings
type CameraConfig struct {
	// Fraction of the distance to the target covered per frame; 1 snaps.
	FollowSmoothing float64 `yaml:"follow_smoothing"`
}

// LevelConfig says where levels live and which one to start on
type LevelConfig struct {
	Dir     string `yaml:"dir"`
	Default string `yaml:"default"`
}

// DebugConfig contains debug overlay settings
type DebugConfig struct {
	Overlay  bool `yaml:"overlay"`
	FPSEvery int  `yaml:"fps_every"` // frames between FPS readout refreshes

	SolidColor   color.RGBA `yaml:"-"`
	ProbeColor   color.RGBA `yaml:"-"`
	NormalColor  color.RGBA `yaml:"-"`
	SurfaceColor color.RGBA `yaml:"-"`
}

// UIConfig contains HUD and level drawing settings
type UIConfig struct {
	HUDFontSize     float64
	HUDMargin       float64
	HUDTextColor    color.RGBA
	BackgroundColor color.RGBA
	TileColor       color.RGBA
	TileEdgeColor   color.RGBA
	DeadZoneColor   color.RGBA
	FinishColor     color.RGBA
}

// SquashStretchConfig contains the landing and jump squash settings
type SquashStretchConfig struct {
	JumpScaleX float64
	JumpScaleY float64
	LandScaleX float64
	LandScaleY float64
	Duration   float32 // seconds to tween back to 1:1
}

// DeathZoneConfig contains respawn settings
type DeathZoneConfig struct {
	RespawnDelayFrames int
	// Distance below the grid that counts as falling out of the level.
	FallMargin float64
}

// LevelCompleteConfig contains the level complete banner settings
type LevelCompleteConfig struct {
	OverlayColor color.RGBA
	TitleColor   color.RGBA
	HintColor    color.RGBA
	Title        string
	Hint         string
}

var C *Config
var Player PlayerConfig
var Physics PhysicsConfig
var Camera CameraConfig
var Level LevelConfig
var Debug DebugConfig
var UI UIConfig
var SquashStretch SquashStretchConfig
var DeathZone DeathZoneConfig
var LevelComplete LevelCompleteConfig

// Colors
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	BrightGreen  = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	LightRed     = color.RGBA{R: 255, G: 100, B: 100, A: 255}
	Orange       = color.RGBA{R: 255, G: 165, B: 0, A: 255}
	Cyan         = color.RGBA{R: 80, G: 220, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  800,
		Height: 600,
		Scale:  1,
		TPS:    60,
		Title:  "Ninja",
	}

	Player = PlayerConfig{
		FrameWidth:      42,
		FrameHeight:     50,
		CollisionWidth:  42,
		CollisionHeight: 50,
	}

	d := kinematics.DefaultParams()
	Physics = PhysicsConfig{
		Gravity:         d.Gravity,
		WalkSpeed:       d.WalkSpeed,
		RunSpeed:        d.RunSpeed,
		RunAccel:        d.RunAccel,
		StaticFriction:  d.StaticFriction,
		DynamicFriction: d.DynamicFriction,
		MaxFallSpeed:    d.MaxFallSpeed,
		MaxFrameDelta:   d.MaxFrameDelta,
		JumpLaunch:      d.JumpLaunch,
		JumpPowerMs:     d.JumpPowerMs,
		FloorEpsilon:    d.FloorEpsilon,
		SearchRadius:    3,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.2,
	}

	Level = LevelConfig{
		Dir:     "levels",
		Default: "level01",
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		Overlay:      false,
		FPSEvery:     10,
		SolidColor:   color.RGBA{R: 255, G: 0, B: 0, A: 90},
		ProbeColor:   Yellow,
		NormalColor:  Cyan,
		SurfaceColor: BrightGreen,
	}

	UI = UIConfig{
		HUDFontSize:     14,
		HUDMargin:       8,
		HUDTextColor:    White,
		BackgroundColor: color.RGBA{R: 20, G: 24, B: 38, A: 255},
		TileColor:       color.RGBA{R: 70, G: 80, B: 110, A: 255},
		TileEdgeColor:   color.RGBA{R: 110, G: 125, B: 165, A: 255},
		DeadZoneColor:   color.RGBA{R: 200, G: 40, B: 40, A: 120},
		FinishColor:     color.RGBA{R: 60, G: 200, B: 90, A: 140},
	}

	SquashStretch = SquashStretchConfig{
		JumpScaleX: 0.7,
		JumpScaleY: 1.5,
		LandScaleX: 1.5,
		LandScaleY: 0.6,
		Duration:   0.18,
	}

	DeathZone = DeathZoneConfig{
		RespawnDelayFrames: 15, // ~0.25s at 60fps
		FallMargin:         64,
	}

	LevelComplete = LevelCompleteConfig{
		OverlayColor: BlackOverlay,
		TitleColor:   BrightGreen,
		HintColor:    White,
		Title:        "Level Complete!",
		Hint:         "Press R to run it again",
	}
}
