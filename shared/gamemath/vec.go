package gamemath

// Vec is a 2D vector in distance units. Y grows downward.
type Vec struct {
	X, Y float64
}

// Point is a position in distance units.
type Point struct {
	X, Y float64
}

// Axis-aligned unit normals in screen space.
var (
	NormalUp    = Vec{X: 0, Y: -1}
	NormalDown  = Vec{X: 0, Y: 1}
	NormalLeft  = Vec{X: -1, Y: 0}
	NormalRight = Vec{X: 1, Y: 0}
)

// IsZero reports whether both components are zero.
func (v Vec) IsZero() bool {
	return v.X == 0 && v.Y == 0
}
