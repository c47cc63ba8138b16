package gamemath

import "math"

// ApplyFriction decays speedX toward zero by dt*(static + |speedX|*dynamic).
// The result never changes sign: overshooting zero lands exactly on zero.
func ApplyFriction(speedX, dt, static, dynamic float64) float64 {
	if speedX == 0 {
		return 0
	}
	dir := -1.0
	if speedX < 0 {
		dir = 1.0
	}
	next := speedX + dir*dt*(static+math.Abs(speedX)*dynamic)
	if next*speedX <= 0 {
		return 0
	}
	return next
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// Accelerate moves speedX by dir*dt*accel. dir is -1, 0 or 1.
func Accelerate(speedX float64, dir int, dt, accel float64) float64 {
	return speedX + float64(dir)*dt*accel
}

// TruncateToward scales v by frac and truncates toward zero. Products within
// truncSnap of a whole number snap to it first so 379.99999999999994 stays 380.
func TruncateToward(v, frac float64) float64 {
	scaled := v * frac
	if r := math.Round(scaled); math.Abs(scaled-r) < truncSnap {
		return r
	}
	return math.Trunc(scaled)
}

const truncSnap = 1e-9
