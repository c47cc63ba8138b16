package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntersectVertical(t *testing.T) {
	wall := VerticalEdge(320, 256, 288)

	tests := []struct {
		name     string
		p        Point
		dx, dy   float64
		dt       float64
		expected float64
	}{
		{"hits moving right", Point{X: 300, Y: 270}, 400, 0, 0.1, 0.5},
		{"touching counts as t=0", Point{X: 320, Y: 270}, 400, 0, 0.1, 0},
		{"rounding overlap counts as touching", Point{X: 320 + 1e-11, Y: 270}, 400, 0, 0.1, 0},
		{"real overlap is past the edge", Point{X: 321, Y: 270}, 400, 0, 0.1, NoHit},
		{"falls short", Point{X: 300, Y: 270}, 100, 0, 0.1, NoHit},
		{"exact reach is excluded", Point{X: 300, Y: 270}, 200, 0, 0.1, NoHit},
		{"moving away", Point{X: 300, Y: 270}, -400, 0, 0.1, NoHit},
		{"hits moving left", Point{X: 340, Y: 270}, -400, 0, 0.1, 0.5},
		{"crossing above span", Point{X: 300, Y: 250}, 400, 0, 0.1, NoHit},
		{"crossing on span endpoint", Point{X: 300, Y: 256}, 400, 0, 0.1, NoHit},
		{"diagonal inside span", Point{X: 300, Y: 260}, 400, 100, 0.1, 0.5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := IntersectVertical(tc.p, tc.dx, tc.dy, tc.dt, wall)
			require.NoError(t, err)
			assert.InDelta(t, tc.expected, got, 1e-12)
		})
	}
}

func TestIntersectHorizontal(t *testing.T) {
	floor := HorizontalEdge(288, 96, 128)

	got, err := IntersectHorizontal(Point{X: 100, Y: 250}, 0, 500, 0.1, floor)
	require.NoError(t, err)
	assert.InDelta(t, 0.76, got, 1e-12)

	got, err = IntersectHorizontal(Point{X: 100, Y: 288}, 0, 500, 0.1, floor)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)

	got, err = IntersectHorizontal(Point{X: 130, Y: 250}, 0, 500, 0.1, floor)
	require.NoError(t, err)
	assert.Equal(t, NoHit, got)

	ceiling := HorizontalEdge(64, 96, 128)
	got, err = IntersectHorizontal(Point{X: 100, Y: 80}, 0, -320, 0.1, ceiling)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, got, 1e-12)
}

func TestIntersectRejectsBadGeometry(t *testing.T) {
	slanted := Edge{X0: 0, Y0: 0, X1: 10, Y1: 10}

	_, err := IntersectVertical(Point{}, 1, 0, 1, slanted)
	assert.ErrorIs(t, err, ErrInvalidGeometry)

	_, err = IntersectHorizontal(Point{}, 0, 1, 1, slanted)
	assert.ErrorIs(t, err, ErrInvalidGeometry)
}

func TestIntersectRejectsZeroVelocity(t *testing.T) {
	_, err := IntersectVertical(Point{}, 0, 10, 1, VerticalEdge(5, 0, 10))
	assert.ErrorIs(t, err, ErrZeroVelocity)

	_, err = IntersectHorizontal(Point{}, 10, 0, 1, HorizontalEdge(5, 0, 10))
	assert.ErrorIs(t, err, ErrZeroVelocity)
}
