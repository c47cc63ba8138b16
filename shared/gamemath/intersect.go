package gamemath

import (
	"errors"
	"fmt"
	"math"
)

// NoHit is returned by the intersectors when the swept point does not cross
// the edge within the timestep.
const NoHit = -1.0

var (
	// ErrInvalidGeometry reports an edge whose endpoints are not aligned on
	// the axis the intersector expects. It is a caller bug, never bad input.
	ErrInvalidGeometry = errors.New("invalid geometry")
	// ErrZeroVelocity reports a call on an axis the point does not move on.
	ErrZeroVelocity = errors.New("zero velocity on tested axis")
)

// Edge is a line segment from (X0,Y0) to (X1,Y1).
type Edge struct {
	X0, Y0, X1, Y1 float64
}

// VerticalEdge builds the segment x, y0..y1.
func VerticalEdge(x, y0, y1 float64) Edge {
	return Edge{X0: x, Y0: y0, X1: x, Y1: y1}
}

// HorizontalEdge builds the segment y, x0..x1.
func HorizontalEdge(y, x0, x1 float64) Edge {
	return Edge{X0: x0, Y0: y, X1: x1, Y1: y}
}

func (e Edge) String() string {
	return fmt.Sprintf("(%g,%g)-(%g,%g)", e.X0, e.Y0, e.X1, e.Y1)
}

// IntersectVertical returns the fraction of the timestep at which the point p,
// moving at (dx, dy) for dt, crosses the vertical edge e. The crossing must be
// reachable this step and its y must lie strictly inside the edge span.
// Returns NoHit when there is no such crossing.
func IntersectVertical(p Point, dx, dy, dt float64, e Edge) (float64, error) {
	if e.X0 != e.X1 {
		return NoHit, fmt.Errorf("vertical intersect %s: %w", e, ErrInvalidGeometry)
	}
	if dx == 0 {
		return NoHit, fmt.Errorf("vertical intersect %s: %w", e, ErrZeroVelocity)
	}
	t, ok := crossing(p.X, dx*dt, e.X0)
	if !ok {
		return NoHit, nil
	}
	if !strictlyInside(p.Y+dy*dt*t, e.Y0, e.Y1) {
		return NoHit, nil
	}
	return t, nil
}

// IntersectHorizontal is the mirror of IntersectVertical for an edge at fixed y.
func IntersectHorizontal(p Point, dx, dy, dt float64, e Edge) (float64, error) {
	if e.Y0 != e.Y1 {
		return NoHit, fmt.Errorf("horizontal intersect %s: %w", e, ErrInvalidGeometry)
	}
	if dy == 0 {
		return NoHit, fmt.Errorf("horizontal intersect %s: %w", e, ErrZeroVelocity)
	}
	t, ok := crossing(p.Y, dy*dt, e.Y0)
	if !ok {
		return NoHit, nil
	}
	if !strictlyInside(p.X+dx*dt*t, e.X0, e.X1) {
		return NoHit, nil
	}
	return t, nil
}

// touchSlop lets a point that already sits a hair past the edge, from float
// rounding in earlier steps, still count as touching it.
const touchSlop = 1e-7

// crossing solves pos + travel*t = at for t in [0,1).
func crossing(pos, travel, at float64) (float64, bool) {
	switch {
	case travel > 0:
		if pos > at+touchSlop || at >= pos+travel {
			return 0, false
		}
	case travel < 0:
		if pos < at-touchSlop || at <= pos+travel {
			return 0, false
		}
	default:
		return 0, false
	}
	return math.Max(0, (at-pos)/travel), true
}

func strictlyInside(v, a, b float64) bool {
	if a > b {
		a, b = b, a
	}
	return v > a && v < b
}
