package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionRun
	ActionRestart
	ActionDebug
	ActionFullscreen
	ActionQuit
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:       "none",
	ActionMoveLeft:   "move_left",
	ActionMoveRight:  "move_right",
	ActionJump:       "jump",
	ActionRun:        "run",
	ActionRestart:    "restart",
	ActionDebug:      "debug",
	ActionFullscreen: "fullscreen",
	ActionQuit:       "quit",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return fmt.Sprintf("action(%d)", int(a))
	}
	return actionNames[a]
}

// ParseAction maps a config name such as "move_left" to its action.
func ParseAction(name string) (ActionID, error) {
	for id, n := range actionNames {
		if n == name && ActionID(id) != ActionNone {
			return ActionID(id), nil
		}
	}
	return ActionNone, fmt.Errorf("unknown action %q", name)
}

func (a ActionID) MarshalYAML() (any, error) {
	return a.String(), nil
}

func (a *ActionID) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	id, err := ParseAction(name)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*a = id
	return nil
}

// InputBinding represents the keys and buttons bound to an action. Keys use
// ebiten key names ("ArrowLeft", "A", "ShiftLeft"), buttons use standard
// gamepad names ("a", "dpad_left").
type InputBinding struct {
	Keys    []string `yaml:"keys"`
	Buttons []string `yaml:"buttons,omitempty"`
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding `yaml:"bindings"`
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64 `yaml:"analog_deadzone"`
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = DefaultInput()
}

// DefaultInput returns the stock bindings.
func DefaultInput() InputConfig {
	return InputConfig{
		AnalogDeadzone: 0.25,
		Bindings: map[ActionID]InputBinding{
			ActionMoveLeft: {
				Keys:    []string{"ArrowLeft", "A"},
				Buttons: []string{"dpad_left"},
			},
			ActionMoveRight: {
				Keys:    []string{"ArrowRight", "D"},
				Buttons: []string{"dpad_right"},
			},
			ActionJump: {
				Keys:    []string{"ArrowUp", "X", "W"},
				Buttons: []string{"a"},
			},
			ActionRun: {
				Keys:    []string{"ShiftLeft", "ShiftRight", "Z"},
				Buttons: []string{"x", "right_trigger"},
			},
			ActionRestart: {
				Keys:    []string{"R"},
				Buttons: []string{"back"},
			},
			ActionDebug:      {Keys: []string{"F1"}},
			ActionFullscreen: {Keys: []string{"F11"}},
			ActionQuit: {
				Keys:    []string{"Escape"},
				Buttons: []string{"start"},
			},
		},
	}
}
