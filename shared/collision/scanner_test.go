package collision

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanner(t *testing.T) {
	s := Scanner{Grid: gridOf(t,
		"######",
		"......",
		"......",
		"......",
		"...###",
		"######",
	)}

	tests := []struct {
		name    string
		body    Body
		floor   float64
		ceiling float64
	}{
		{"over the low floor", Body{X: 10, Y: 50, W: 20, H: 40}, 160, 32},
		{"straddling a step takes the higher floor", Body{X: 80, Y: 50, W: 30, H: 40}, 128, 32},
		{"resting on the step", Body{X: 100, Y: 88, W: 20, H: 40}, 128, 32},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := tc.body
			assert.Equal(t, tc.floor, s.FloorBelow(&b))
			assert.Equal(t, tc.ceiling, s.CeilingAbove(&b))
			assert.Equal(t, tc.floor-b.Bottom(), s.Gap(&b))
		})
	}
}

func TestScannerEmbedded(t *testing.T) {
	s := Scanner{Grid: gridOf(t,
		"....",
		"....",
		"####",
	)}

	assert.False(t, s.Embedded(&Body{X: 10, Y: 24, W: 20, H: 40}), "touching the floor")
	assert.True(t, s.Embedded(&Body{X: 10, Y: 30, W: 20, H: 40}), "sunk into the floor")
	assert.False(t, s.Embedded(&Body{X: -50, Y: -50, W: 20, H: 20}), "outside the grid")
}
