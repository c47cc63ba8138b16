package collision

import "math"

// Scanner gives coarse floor and ceiling estimates straight below and above
// a body. It does not sweep, so it is only a secondary signal next to
// Resolver: the debug overlay, the simulator trace and the embedded check
// use it.
type Scanner struct {
	Grid Grid
}

// FloorBelow returns the nearest floor under either bottom corner.
func (s Scanner) FloorBelow(b *Body) float64 {
	l, r := b.Left()+probeInset, b.Right()-probeInset
	return math.Min(s.Grid.SurfaceBelow(l, b.Bottom()), s.Grid.SurfaceBelow(r, b.Bottom()))
}

// CeilingAbove returns the nearest ceiling over either top corner.
func (s Scanner) CeilingAbove(b *Body) float64 {
	l, r := b.Left()+probeInset, b.Right()-probeInset
	return math.Max(s.Grid.SurfaceAbove(l, b.Top()), s.Grid.SurfaceAbove(r, b.Top()))
}

// Gap is the distance from the body's bottom to the floor below it.
func (s Scanner) Gap(b *Body) float64 {
	return s.FloorBelow(b) - b.Bottom()
}

// Embedded reports whether any inset corner of b lies inside a solid cell.
func (s Scanner) Embedded(b *Body) bool {
	cw, ch := s.Grid.CellWidth(), s.Grid.CellHeight()
	xs := [2]float64{b.Left() + probeInset, b.Right() - probeInset}
	ys := [2]float64{b.Top() + probeInset, b.Bottom() - probeInset}
	for _, x := range xs {
		for _, y := range ys {
			if s.Grid.IsSolid(cellIndex(x, cw), cellIndex(y, ch)) {
				return true
			}
		}
	}
	return false
}
