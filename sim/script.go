package sim

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/automoto/ninja/config"
	"github.com/automoto/ninja/shared/kinematics"
)

// DefaultDt is the fixed step used when a script does not set one.
const DefaultDt = 1.0 / 60

var ErrEmptyScript = errors.New("script has no frames")

// Script is a recorded run: a level and the held inputs frame by frame.
//
//	level: level01
//	dt: 0.0166667
//	steps:
//	  - frames: 30
//	    hold: [move_right, run]
//	  - frames: 12
//	    hold: [move_right, run, jump]
//	  - frames: 60
type Script struct {
	Level string    `yaml:"level"`
	Dt    float64   `yaml:"dt"`
	Spawn *Point    `yaml:"spawn,omitempty"`
	Steps []Segment `yaml:"steps"`
}

type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Segment holds the same inputs for Frames frames. Inputs use the action
// names from the key bindings config.
type Segment struct {
	Frames int      `yaml:"frames"`
	Hold   []string `yaml:"hold,omitempty"`
}

func LoadScript(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("failed to read script %s: %w", path, err)
	}
	s, err := ParseScript(data)
	if err != nil {
		return Script{}, fmt.Errorf("failed to parse script %s: %w", path, err)
	}
	return s, nil
}

func ParseScript(data []byte) (Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Script{}, err
	}
	if s.Dt == 0 {
		s.Dt = DefaultDt
	}
	if s.Dt < 0 {
		return Script{}, fmt.Errorf("dt %v must be positive", s.Dt)
	}
	for i, seg := range s.Steps {
		if seg.Frames < 0 {
			return Script{}, fmt.Errorf("step %d: frames %d must not be negative", i, seg.Frames)
		}
		if _, err := ParseInput(seg.Hold); err != nil {
			return Script{}, fmt.Errorf("step %d: %w", i, err)
		}
	}
	if s.Frames() == 0 {
		return Script{}, ErrEmptyScript
	}
	return s, nil
}

// Frames is the total frame count of the script.
func (s Script) Frames() int {
	n := 0
	for _, seg := range s.Steps {
		n += seg.Frames
	}
	return n
}

// Inputs expands the script to one Input per frame.
func (s Script) Inputs() []kinematics.Input {
	out := make([]kinematics.Input, 0, s.Frames())
	for _, seg := range s.Steps {
		in, _ := ParseInput(seg.Hold)
		for i := 0; i < seg.Frames; i++ {
			out = append(out, in)
		}
	}
	return out
}

// ParseInput maps action names to the integrator's input. Actions that are
// not movement (debug, quit...) are rejected.
func ParseInput(names []string) (kinematics.Input, error) {
	var in kinematics.Input
	for _, n := range names {
		id, err := config.ParseAction(n)
		if err != nil {
			return in, err
		}
		switch id {
		case config.ActionMoveLeft:
			in.Left = true
		case config.ActionMoveRight:
			in.Right = true
		case config.ActionJump:
			in.Jump = true
		case config.ActionRun:
			in.Run = true
		default:
			return in, fmt.Errorf("action %q cannot be scripted", n)
		}
	}
	return in, nil
}
