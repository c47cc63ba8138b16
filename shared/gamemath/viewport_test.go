package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewport(t *testing.T) {
	tests := []struct {
		name     string
		x, y     int
		expected [2]int
	}{
		{"centred", 1000, 800, [2]int{680, 560}},
		{"clamped top-left", 10, 10, [2]int{0, 0}},
		{"clamped bottom-right", 1990, 1590, [2]int{1360, 1120}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := Viewport(tc.x, tc.y, 2000, 1600, 640, 480)
			assert.Equal(t, tc.expected[0], r.Min.X)
			assert.Equal(t, tc.expected[1], r.Min.Y)
			assert.Equal(t, 640, r.Dx())
			assert.Equal(t, 480, r.Dy())
		})
	}

	small := Viewport(50, 50, 320, 240, 640, 480)
	assert.Equal(t, -160, small.Min.X)
	assert.Equal(t, -120, small.Min.Y)
}
