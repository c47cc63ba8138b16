package kinematics

import (
	"fmt"

	"github.com/automoto/ninja/assets/animations"
	"github.com/automoto/ninja/shared/collision"
	"github.com/automoto/ninja/shared/gamemath"
)

// Input is the control state sampled for one frame.
type Input struct {
	Left, Right bool
	Jump        bool
	Run         bool
}

// Frame reports what happened during one Step.
type Frame struct {
	Dt         float64
	Contacts   collision.Contacts
	OnFloor    bool
	Landed     bool
	LeftGround bool
	Jumped     bool
}

// Actor is the player character: a body, its jump machine and its animation.
type Actor struct {
	Body    collision.Body
	Jump    Jump
	Params  Params
	Anim    *animations.Animator
	OnFloor bool
}

// NewActor places an actor of size w x h with its top-left corner at (x, y).
func NewActor(p Params, x, y, w, h float64) *Actor {
	return &Actor{
		Body:   collision.Body{X: x, Y: y, W: w, H: h},
		Jump:   NewJump(p),
		Params: p,
		Anim:   animations.NewAnimator(animations.DefaultClips()),
	}
}

// SetParams swaps the tunables, keeping any jump in progress.
func (a *Actor) SetParams(p Params) {
	a.Params = p
	a.Jump.DurationMs = p.JumpPowerMs
	a.Jump.Launch = p.JumpLaunch
}

// Teleport moves the actor to (x, y) at rest.
func (a *Actor) Teleport(x, y float64) {
	a.Body.X, a.Body.Y = x, y
	a.Body.DX, a.Body.DY = 0, 0
	a.Jump.Reset()
	a.OnFloor = false
}

// Step advances the actor by dt seconds. nowMs is the frame's timestamp and
// drives the jump power window. dt is clamped to Params.MaxFrameDelta.
func (a *Actor) Step(r *collision.Resolver, in Input, nowMs, dt float64) (Frame, error) {
	if dt <= 0 {
		return Frame{OnFloor: a.OnFloor}, nil
	}
	if dt > a.Params.MaxFrameDelta {
		dt = a.Params.MaxFrameDelta
	}
	p := a.Params
	b := &a.Body

	switch {
	case in.Left:
		b.DX = gamemath.Accelerate(b.DX, -1, dt, p.RunAccel)
	case in.Right:
		b.DX = gamemath.Accelerate(b.DX, 1, dt, p.RunAccel)
	default:
		b.DX = gamemath.ApplyFriction(b.DX, dt, p.StaticFriction, p.DynamicFriction)
	}
	b.DX = gamemath.ClampSpeed(b.DX, p.TopSpeed(in.Run))

	b.DY += dt * p.Gravity
	if b.DY > p.MaxFallSpeed {
		b.DY = p.MaxFallSpeed
	}

	contacts, err := r.ResolveAll(b, dt)
	if err != nil {
		return Frame{}, fmt.Errorf("step: %w", err)
	}
	onFloor := contacts.OnFloor(p.FloorEpsilon)

	f := Frame{Dt: dt, OnFloor: onFloor}
	wasPowering := a.Jump.Powering
	if dy, changed := a.Jump.Update(nowMs, in.Jump, onFloor); changed {
		f.Jumped = !wasPowering && a.Jump.Powering
		b.DY = dy
		more, err := r.ResolveAll(b, dt)
		if err != nil {
			return Frame{}, fmt.Errorf("step after jump: %w", err)
		}
		contacts = append(contacts, more...)
	}
	f.Contacts = contacts

	b.Integrate(dt)

	f.Landed = onFloor && !a.OnFloor
	f.LeftGround = !onFloor && a.OnFloor
	a.OnFloor = onFloor

	if a.Anim != nil {
		a.Anim.Update(b.DX, p.RunSpeed, dt)
	}
	return f, nil
}
