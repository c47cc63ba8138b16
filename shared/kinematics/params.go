// Package kinematics integrates the actor's motion: input driven
// acceleration, friction, gravity, the jump state machine and the swept
// collision pass that keeps it out of the level.
package kinematics

import (
	"errors"
	"fmt"
)

// Params are the movement tunables. Speeds are in units/s, accelerations in
// units/s², times in seconds unless the name says otherwise.
type Params struct {
	Gravity         float64
	WalkSpeed       float64
	RunSpeed        float64
	RunAccel        float64
	StaticFriction  float64
	DynamicFriction float64
	MaxFallSpeed    float64
	MaxFrameDelta   float64
	JumpLaunch      float64
	JumpPowerMs     float64
	FloorEpsilon    float64
}

// DefaultParams returns the stock tuning.
func DefaultParams() Params {
	return Params{
		Gravity:         3000,
		WalkSpeed:       600,
		RunSpeed:        1200,
		RunAccel:        2000,
		StaticFriction:  12,
		DynamicFriction: 12,
		MaxFallSpeed:    1800,
		MaxFrameDelta:   0.05,
		JumpLaunch:      -600,
		JumpPowerMs:     250,
		FloorEpsilon:    1e-3,
	}
}

// ErrInvalidParams reports tunables the integrator cannot run with.
var ErrInvalidParams = errors.New("invalid movement params")

func (p Params) Validate() error {
	switch {
	case p.WalkSpeed <= 0 || p.RunSpeed <= 0:
		return fmt.Errorf("%w: top speeds must be positive", ErrInvalidParams)
	case p.MaxFrameDelta <= 0:
		return fmt.Errorf("%w: max frame delta must be positive", ErrInvalidParams)
	case p.JumpLaunch > 0:
		return fmt.Errorf("%w: jump launch must point up (negative)", ErrInvalidParams)
	case p.JumpPowerMs < 0 || p.FloorEpsilon < 0:
		return fmt.Errorf("%w: durations must not be negative", ErrInvalidParams)
	}
	return nil
}

// TopSpeed returns the horizontal speed cap for the run modifier.
func (p Params) TopSpeed(run bool) float64 {
	if run {
		return p.RunSpeed
	}
	return p.WalkSpeed
}
