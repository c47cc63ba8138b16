package components

import (
	"image"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position math.Vec2       // smoothed point the view is centred on
	View     image.Rectangle // level area on screen this frame
}

var Camera = donburi.NewComponentType[CameraData]()
