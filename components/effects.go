package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// SquashStretchData tracks sprite scale deformation for jump/land feel.
// The tweens run the scale back to 1:1.
type SquashStretchData struct {
	ScaleX, ScaleY float64
	TweenX, TweenY *gween.Tween
}

var SquashStretch = donburi.NewComponentType[SquashStretchData]()

// FlashData tracks the respawn flash
type FlashData struct {
	Duration int // frames remaining
	R, G, B  float32
}

var Flash = donburi.NewComponentType[FlashData]()
