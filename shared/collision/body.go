// Package collision sweeps an axis-aligned body through a tile grid and
// resolves the earliest contact by truncating the body's velocity.
package collision

import "github.com/automoto/ninja/shared/gamemath"

// Body is an axis-aligned rectangle with a velocity in units per second.
// (X, Y) is the top-left corner; y grows downward.
type Body struct {
	X, Y   float64
	W, H   float64
	DX, DY float64
}

func (b *Body) Left() float64   { return b.X }
func (b *Body) Right() float64  { return b.X + b.W }
func (b *Body) Top() float64    { return b.Y }
func (b *Body) Bottom() float64 { return b.Y + b.H }

// SetBottom moves the body so its bottom edge sits at y.
func (b *Body) SetBottom(y float64) { b.Y = y - b.H }

// SetRight moves the body so its right edge sits at x.
func (b *Body) SetRight(x float64) { b.X = x - b.W }

// CenterX returns the horizontal centre.
func (b *Body) CenterX() float64 { return b.X + b.W/2 }

// Velocity returns (DX, DY) as a vector.
func (b *Body) Velocity() gamemath.Vec { return gamemath.Vec{X: b.DX, Y: b.DY} }

// Integrate advances the body by its velocity over dt (explicit Euler).
func (b *Body) Integrate(dt float64) {
	b.X += dt * b.DX
	b.Y += dt * b.DY
}
