package components

import (
	"github.com/yohamta/donburi"

	cfg "github.com/automoto/ninja/config"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputGamepad
)

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed is computed on demand by comparing frames.
type InputData struct {
	Current         [cfg.ActionCount]bool
	Previous        [cfg.ActionCount]bool
	LastInputMethod InputMethod
}

func (d *InputData) Pressed(a cfg.ActionID) bool {
	return d.Current[a]
}

func (d *InputData) JustPressed(a cfg.ActionID) bool {
	return d.Current[a] && !d.Previous[a]
}

var Input = donburi.NewComponentType[InputData]()
