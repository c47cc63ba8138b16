package components

import "github.com/yohamta/donburi"

// HUDData holds the HUD readouts that refresh slower than every frame.
type HUDData struct {
	FPS    float64
	TPS    float64
	Frames int // frames since the last refresh
	Deaths int
}

var HUD = donburi.NewComponentType[HUDData]()
