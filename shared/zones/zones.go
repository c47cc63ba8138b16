// Package zones detects the actor entering the level's trigger areas: dead
// zones that send it back to the spawn and the finish line.
package zones

import (
	"math"

	"github.com/solarlune/resolv"

	"github.com/automoto/ninja/shared/collision"
	"github.com/automoto/ninja/shared/leveldata"
)

const (
	TagDeadZone = "deadzone"
	TagFinish   = "finish"
	TagActor    = "actor"
)

// Event is what the actor ran into this frame.
type Event int

const (
	None Event = iota
	Dead
	Finish
)

func (e Event) String() string {
	switch e {
	case Dead:
		return "dead"
	case Finish:
		return "finish"
	}
	return "none"
}

// Zones holds a level's trigger rectangles in a resolv space.
type Zones struct {
	Space *resolv.Space
	probe *resolv.Object
	// FallLimit is the y past which a falling actor counts as dead.
	FallLimit float64
}

// New builds the trigger space for l. Anything whose top passes fallMargin
// below the bottom of the grid is treated as having fallen out.
func New(l *leveldata.Level, fallMargin float64) *Zones {
	cw, ch := 32, 32
	w, h := 1, 1
	if g := l.Grid; g != nil {
		cw, ch = int(math.Max(1, g.CellWidth())), int(math.Max(1, g.CellHeight()))
		w, h = int(math.Ceil(g.PixelWidth())), int(math.Ceil(g.PixelHeight()+fallMargin))
	}

	space := resolv.NewSpace(w, h, cw, ch)
	for _, r := range l.DeadZones {
		space.Add(rectObject(r, TagDeadZone))
	}
	for _, r := range l.FinishLines {
		space.Add(rectObject(r, TagFinish))
	}

	probe := resolv.NewObject(0, 0, 1, 1, TagActor)
	space.Add(probe)

	fall := math.Inf(1)
	if l.Grid != nil {
		fall = l.Grid.PixelHeight() + fallMargin
	}
	return &Zones{Space: space, probe: probe, FallLimit: fall}
}

func rectObject(r leveldata.Rect, tag string) *resolv.Object {
	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tag)
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	return obj
}

// Check reports the zone b overlaps. Dead zones win over the finish line.
func (z *Zones) Check(b collision.Body) Event {
	if b.Top() > z.FallLimit {
		return Dead
	}

	z.probe.X, z.probe.Y = b.X, b.Y
	z.probe.W, z.probe.H = b.W, b.H
	z.probe.Update()

	check := z.probe.Check(0, 0, TagDeadZone, TagFinish)
	if check == nil {
		return None
	}

	// resolv's check is per cell; confirm the rectangles really overlap.
	if overlapsAny(b, check.ObjectsByTags(TagDeadZone)) {
		return Dead
	}
	if overlapsAny(b, check.ObjectsByTags(TagFinish)) {
		return Finish
	}
	return None
}

func overlapsAny(b collision.Body, objs []*resolv.Object) bool {
	for _, o := range objs {
		if b.Left() < o.X+o.W && o.X < b.Right() && b.Top() < o.Y+o.H && o.Y < b.Bottom() {
			return true
		}
	}
	return false
}

func (e Event) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}
