package animations

import (
	"image"
	"image/color"
	"image/draw"
	"math"
)

// Palette of the generated actor sheet.
var (
	SheetBody = color.RGBA{R: 30, G: 30, B: 40, A: 255}
	SheetBand = color.RGBA{R: 220, G: 40, B: 40, A: 255}
	SheetSkin = color.RGBA{R: 235, G: 200, B: 160, A: 255}
)

// GenerateSheet paints the actor sheet in the layout DefaultClips expects:
// one row per ClipID, RunFrames columns of FrameWidth x FrameHeight. Run
// frames swing the legs and arms through one stride; stand frames are the
// neutral pose. Left facing rows are mirrored.
func GenerateSheet() *image.RGBA {
	sheet := image.NewRGBA(image.Rect(0, 0, RunFrames*FrameWidth, 4*FrameHeight))
	clips := DefaultClips()
	for id, c := range clips {
		left := ClipID(id).FacingLeft()
		for i, f := range c.Frames {
			phase := 0.0
			if len(c.Frames) > 1 {
				phase = float64(i) / float64(len(c.Frames)) * 2 * math.Pi
			}
			paintPose(sheet, f.Rect, phase, len(c.Frames) > 1, left)
		}
	}
	return sheet
}

func paintPose(dst *image.RGBA, cell image.Rectangle, phase float64, running, left bool) {
	fill := func(x0, y0, x1, y1 int, c color.Color) {
		if left {
			x0, x1 = FrameWidth-x1, FrameWidth-x0
		}
		r := image.Rect(x0, y0, x1, y1).Add(cell.Min).Intersect(cell)
		draw.Draw(dst, r, image.NewUniform(c), image.Point{}, draw.Src)
	}

	stride, lean := 0, 0
	if running {
		stride = int(math.Round(6 * math.Sin(phase)))
		lean = 2
	}

	// legs
	fill(15+stride, 34, 20+stride, 50, SheetBody)
	fill(22-stride, 34, 27-stride, 50, SheetBody)
	// torso and arms
	fill(14+lean, 17, 28+lean, 35, SheetBody)
	fill(10+lean-stride/2, 19, 14+lean-stride/2, 31, SheetBody)
	fill(28+lean+stride/2, 19, 32+lean+stride/2, 31, SheetBody)
	// head, eyes slit and band tail
	fill(15+lean, 2, 27+lean, 16, SheetBody)
	fill(20+lean, 7, 27+lean, 10, SheetSkin)
	fill(15+lean, 4, 27+lean, 6, SheetBand)
	fill(9+lean, 4+stride/3, 15+lean, 6+stride/3, SheetBand)
}
