// Package sim runs the movement core without a window: it replays scripted
// input against a level at a fixed step and records what the actor did.
package sim

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/automoto/ninja/shared/collision"
	"github.com/automoto/ninja/shared/kinematics"
	"github.com/automoto/ninja/shared/leveldata"
	"github.com/automoto/ninja/shared/zones"
)

// Runner owns one actor in one level.
type Runner struct {
	Level    *leveldata.Level
	Actor    *kinematics.Actor
	Resolver *collision.Resolver
	Scanner  collision.Scanner
	Zones    *zones.Zones

	// TickRate paces Run in real time when positive; zero runs flat out.
	TickRate int
	Logger   *log.Logger

	frame int
	nowMs float64
	spawn leveldata.SpawnPoint
}

// Options tune a Runner beyond the level and params.
type Options struct {
	W, H         float64
	SearchRadius int
	FallMargin   float64
	Spawn        *Point
}

func NewRunner(l *leveldata.Level, p kinematics.Params, o Options) (*Runner, error) {
	if l == nil || l.Grid == nil {
		return nil, fmt.Errorf("runner needs a level with a grid")
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if o.W <= 0 || o.H <= 0 {
		o.W, o.H = 42, 50
	}

	spawn := l.Spawn()
	if o.Spawn != nil {
		spawn = leveldata.SpawnPoint{X: o.Spawn.X, Y: o.Spawn.Y}
	}

	res := collision.NewResolver(l.Grid)
	if o.SearchRadius > 0 {
		res.Radius = o.SearchRadius
	}
	return &Runner{
		Level:    l,
		Actor:    kinematics.NewActor(p, spawn.X, spawn.Y, o.W, o.H),
		Resolver: res,
		Scanner:  collision.Scanner{Grid: l.Grid},
		Zones:    zones.New(l, o.FallMargin),
		Logger:   log.Default(),
		spawn:    spawn,
	}, nil
}

// Step advances one frame of dt seconds.
func (r *Runner) Step(in kinematics.Input, dt float64) (Sample, error) {
	r.nowMs += dt * 1000
	f, err := r.Actor.Step(r.Resolver, in, r.nowMs, dt)
	if err != nil {
		return Sample{}, fmt.Errorf("frame %d: %w", r.frame, err)
	}

	b := &r.Actor.Body
	s := Sample{
		Frame:   r.frame,
		TimeMs:  r.nowMs,
		X:       b.X,
		Y:       b.Y,
		DX:      b.DX,
		DY:      b.DY,
		OnFloor: f.OnFloor,
		Landed:  f.Landed,
		Jumped:  f.Jumped,
		Contact: f.Contacts.First().String(),
		Gap:     r.Scanner.Gap(b),
		Clip:    r.Actor.Anim.Current.String(),
		Event:   r.Zones.Check(*b),
	}
	if r.Scanner.Embedded(b) {
		r.Logger.Warn("actor embedded in level", "frame", r.frame, "x", b.X, "y", b.Y)
	}
	if s.Event == zones.Dead {
		r.Logger.Debug("respawn", "frame", r.frame, "x", b.X, "y", b.Y)
		r.Actor.Teleport(r.spawn.X, r.spawn.Y)
	}
	r.frame++
	return s, nil
}

// Run replays s. With a TickRate the frames are paced by a ticker and ctx
// can stop the run early; the trace so far is returned with ctx's error.
func (r *Runner) Run(ctx context.Context, s Script) (Trace, error) {
	inputs := s.Inputs()
	trace := make(Trace, 0, len(inputs))

	var tick <-chan time.Time
	if r.TickRate > 0 {
		ticker := time.NewTicker(time.Second / time.Duration(r.TickRate))
		defer ticker.Stop()
		tick = ticker.C
	}

	r.Logger.Info("sim started", "level", r.Level.Name, "frames", len(inputs), "dt", s.Dt)
	for _, in := range inputs {
		if tick != nil {
			select {
			case <-ctx.Done():
				return trace, ctx.Err()
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			return trace, err
		}

		sample, err := r.Step(in, s.Dt)
		if err != nil {
			return trace, err
		}
		trace = append(trace, sample)
	}

	sum := trace.Summary()
	r.Logger.Info("sim finished", "frames", sum.Frames, "landings", sum.Landings,
		"jumps", sum.Jumps, "deaths", sum.Deaths, "finished", sum.Finished)
	return trace, nil
}
