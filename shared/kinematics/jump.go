package kinematics

// Jump is the hold-to-jump-higher state machine. While Powering, dy follows a
// linear decay from Launch to zero over DurationMs; releasing the button or
// running out the window returns it to idle, where gravity takes over.
type Jump struct {
	Powering   bool
	StartMs    float64
	DurationMs float64
	Launch     float64
}

func NewJump(p Params) Jump {
	return Jump{DurationMs: p.JumpPowerMs, Launch: p.JumpLaunch}
}

// Update advances the machine. It returns the vertical velocity to apply and
// whether the caller must apply it. onFloor must come from the frame's
// collision contacts.
func (j *Jump) Update(nowMs float64, held, onFloor bool) (dy float64, changed bool) {
	if !held {
		j.Powering = false
		return 0, false
	}

	if j.Powering {
		elapsed := nowMs - j.StartMs
		if elapsed >= j.DurationMs {
			j.Powering = false
			return 0, false
		}
		return j.PowerVelocity(elapsed), true
	}

	if onFloor {
		j.Powering = true
		j.StartMs = nowMs
		return j.Launch, true
	}
	return 0, false
}

// PowerVelocity is dy at elapsedMs into the power window: Launch at the start,
// exactly zero at the end.
func (j *Jump) PowerVelocity(elapsedMs float64) float64 {
	switch {
	case elapsedMs <= 0:
		return j.Launch
	case elapsedMs >= j.DurationMs:
		return 0
	}
	return j.Launch * (1 - elapsedMs/j.DurationMs)
}

// Reset drops any powering phase.
func (j *Jump) Reset() {
	j.Powering = false
	j.StartMs = 0
}
