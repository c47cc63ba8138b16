package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyFrictionNeverReversesSign(t *testing.T) {
	speeds := []float64{-2000, -600, -13, -0.5, 0.5, 13, 600, 2000}
	dts := []float64{0.001, 0.016, 0.1, 0.5, 3}

	for _, dx := range speeds {
		for _, dt := range dts {
			got := ApplyFriction(dx, dt, 12, 12)
			if got != 0 {
				assert.Equal(t, math.Signbit(dx), math.Signbit(got), "dx=%v dt=%v got=%v", dx, dt, got)
			}
			assert.LessOrEqual(t, math.Abs(got), math.Abs(dx), "friction must not speed up")
		}
	}
}

func TestApplyFriction(t *testing.T) {
	tests := []struct {
		name     string
		dx, dt   float64
		expected float64
	}{
		{"at rest", 0, 0.016, 0},
		{"decays right", 100, 0.01, 100 - 0.01*(12+100*12)},
		{"decays left", -100, 0.01, -100 + 0.01*(12+100*12)},
		{"overshoot clamps to zero", 5, 1, 0},
		{"overshoot clamps to zero left", -5, 1, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, ApplyFriction(tc.dx, tc.dt, 12, 12), 1e-9)
		})
	}
}

func TestClampSpeedIsPureClamp(t *testing.T) {
	for _, v := range []float64{-1e9, -601, -600, -1, 0, 1, 600, 601, 1e9} {
		got := ClampSpeed(v, 600)
		assert.LessOrEqual(t, math.Abs(got), 600.0)
		if math.Abs(v) <= 600 {
			assert.Equal(t, v, got)
		}
	}
}

func TestTruncateToward(t *testing.T) {
	tests := []struct {
		name     string
		v, frac  float64
		expected float64
	}{
		{"truncates down", 500, 0.759, 379},
		{"truncates negative toward zero", -500, 0.759, -379},
		{"snaps float noise", 500, 38.0 / 50.0, 380},
		{"zero fraction", 500, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, TruncateToward(tc.v, tc.frac))
		})
	}
}
