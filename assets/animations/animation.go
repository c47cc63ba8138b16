package animations

import (
	"image"
	"math"
)

// Frame is one cell of a sprite sheet, shown for Duration units of animation
// time before the next frame.
type Frame struct {
	Rect     image.Rectangle
	Duration float64
}

// Clip is an ordered run of frames.
type Clip struct {
	Name   string
	Frames []Frame
}

// Strip builds a clip of n frames laid out left to right on sheet row row.
func Strip(name string, row, n, w, h int, duration float64) Clip {
	c := Clip{Name: name, Frames: make([]Frame, n)}
	for i := range c.Frames {
		c.Frames[i] = Frame{
			Rect:     image.Rect(i*w, row*h, (i+1)*w, (row+1)*h),
			Duration: duration,
		}
	}
	return c
}

// Animation plays a clip. The zero value is not usable; use NewAnimation.
type Animation struct {
	Clip   Clip
	frame  int
	timer  float64
	Looped bool
}

func NewAnimation(c Clip) *Animation {
	return &Animation{Clip: c}
}

// Advance adds t to the frame timer. Once the timer reaches the current
// frame's duration it resets and the next frame is shown, wrapping at the
// end of the clip.
func (a *Animation) Advance(t float64) {
	if len(a.Clip.Frames) == 0 {
		return
	}
	a.timer += t
	if a.timer < a.Clip.Frames[a.frame].Duration {
		return
	}
	a.timer = 0
	a.frame++
	if a.frame >= len(a.Clip.Frames) {
		a.frame = 0
		a.Looped = true
	}
}

func (a *Animation) Index() int {
	return a.frame
}

// Frame returns the frame currently shown.
func (a *Animation) Frame() Frame {
	if len(a.Clip.Frames) == 0 {
		return Frame{}
	}
	return a.Clip.Frames[a.frame]
}

func (a *Animation) Restart() {
	a.frame = 0
	a.timer = 0
	a.Looped = false
}

// ClipID names the actor's clips.
type ClipID int

const (
	RunLeft ClipID = iota
	RunRight
	StandLeft
	StandRight
)

func (c ClipID) String() string {
	switch c {
	case RunLeft:
		return "run_left"
	case RunRight:
		return "run_right"
	case StandLeft:
		return "stand_left"
	case StandRight:
		return "stand_right"
	}
	return "unknown"
}

// FacingLeft reports whether the clip faces left.
func (c ClipID) FacingLeft() bool {
	return c == RunLeft || c == StandLeft
}

// MoveThreshold is the horizontal speed below which the actor counts as
// standing.
const MoveThreshold = 0.1

// Sheet layout of the actor sprite sheet.
const (
	FrameWidth  = 42
	FrameHeight = 50
	RunFrames   = 30
	FrameTime   = 0.01
)

// DefaultClips is the actor's sheet: one row per clip in ClipID order.
func DefaultClips() [4]Clip {
	return [4]Clip{
		RunLeft:    Strip(RunLeft.String(), int(RunLeft), RunFrames, FrameWidth, FrameHeight, FrameTime),
		RunRight:   Strip(RunRight.String(), int(RunRight), RunFrames, FrameWidth, FrameHeight, FrameTime),
		StandLeft:  Strip(StandLeft.String(), int(StandLeft), 1, FrameWidth, FrameHeight, FrameTime),
		StandRight: Strip(StandRight.String(), int(StandRight), 1, FrameWidth, FrameHeight, FrameTime),
	}
}

// Animator picks the actor's clip from its horizontal velocity and drives the
// frame timer at a rate that follows running speed.
type Animator struct {
	Clips   [4]Clip
	Current ClipID
	Anim    *Animation
}

func NewAnimator(clips [4]Clip) *Animator {
	return &Animator{
		Clips:   clips,
		Current: StandRight,
		Anim:    NewAnimation(clips[StandRight]),
	}
}

// Update selects the clip for dx and advances it by
// (|dx|/runSpeed)^0.9 * dt. Standing keeps the last facing.
func (a *Animator) Update(dx, runSpeed, dt float64) {
	next := a.Current
	switch {
	case dx > MoveThreshold:
		next = RunRight
	case dx < -MoveThreshold:
		next = RunLeft
	case a.Current == RunLeft:
		next = StandLeft
	case a.Current == RunRight:
		next = StandRight
	}
	if next != a.Current {
		a.Current = next
		a.Anim.Clip = a.Clips[next]
		a.Anim.Restart()
	}

	if runSpeed <= 0 {
		return
	}
	a.Anim.Advance(math.Pow(math.Abs(dx)/runSpeed, 0.9) * dt)
}

// Frame returns the sheet rectangle to draw.
func (a *Animator) Frame() image.Rectangle {
	return a.Anim.Frame().Rect
}
