package gamemath

import "image"

// Viewport returns the screen-sized window into a level of size levelW x levelH
// centred on (x, y). The window never leaves the level. A level narrower or
// shorter than the screen is centred on that axis instead, which yields a
// negative origin.
func Viewport(x, y, levelW, levelH, screenW, screenH int) image.Rectangle {
	ox := centreAxis(x, levelW, screenW)
	oy := centreAxis(y, levelH, screenH)
	return image.Rect(ox, oy, ox+screenW, oy+screenH)
}

func centreAxis(pos, level, screen int) int {
	if level < screen {
		return (level - screen) / 2
	}
	o := pos - screen/2
	if o < 0 {
		o = 0
	}
	if o+screen > level {
		o = level - screen
	}
	return o
}
