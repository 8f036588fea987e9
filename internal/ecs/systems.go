package ecs

import (
	"context"
	"runtime"

	"github.com/rotisserie/eris"
	"golang.org/x/sync/errgroup"

	"github.com/CodingC1402/Spider-game/internal/application/state"
	"github.com/CodingC1402/Spider-game/internal/domain/animation"
)

// Events collects the gameplay events of one tick per entity
type Events map[EntityID][]state.Event

// Add appends events for an entity
func (e Events) Add(id EntityID, events ...state.Event) {
	e[id] = append(e[id], events...)
}

// InputState represents the spider controls for one tick
type InputState struct {
	Left, Right bool
	Jump        bool
}

// Axis returns the horizontal input axis
func (in InputState) Axis() float64 {
	switch {
	case in.Left && !in.Right:
		return -1
	case in.Right && !in.Left:
		return 1
	default:
		return 0
	}
}

// MotionConfig holds the spider kinematics in pixels and seconds
type MotionConfig struct {
	WalkSpeed float64 // px/s
	JumpSpeed float64 // px/s, initial upward velocity
	Gravity   float64 // px/s²
	FloorY    int     // pixel row the spider stands on
}

// DefaultMotionConfig returns the kinematics used by the preview
func DefaultMotionConfig() MotionConfig {
	return MotionConfig{
		WalkSpeed: 90,
		JumpSpeed: 260,
		Gravity:   800,
		FloorY:    160,
	}
}

// UpdateMotion moves the player spider and reports what happened as events.
// Dead spiders do not move.
func UpdateMotion(w *World, input InputState, cfg MotionConfig, dt float64) Events {
	events := make(Events)
	id := w.PlayerID
	mov, ok := w.Motion[id]
	if !ok {
		return events
	}
	if h, ok := w.Health[id]; ok && !h.IsAlive() {
		return events
	}
	pos := w.Position[id]

	axis := input.Axis()
	switch {
	case axis != 0:
		events.Add(id, state.Moving{Axis: axis})
		mov.FacingRight = axis > 0
	case mov.Axis != 0:
		events.Add(id, state.Standing{})
	}
	mov.Axis = axis
	mov.VX = axis * cfg.WalkSpeed

	if input.Jump && mov.OnGround {
		mov.VY = -cfg.JumpSpeed
		mov.OnGround = false
		events.Add(id, state.Jumped{})
	}

	if !mov.OnGround {
		mov.VY += cfg.Gravity * dt
	}
	pos.X += int(mov.VX * dt * PositionScale)
	pos.Y += int(mov.VY * dt * PositionScale)

	floor := cfg.FloorY * PositionScale
	if !mov.OnGround && pos.Y >= floor {
		pos.Y = floor
		mov.VY = 0
		mov.OnGround = true
		events.Add(id, state.Grounded{})
	}

	w.Position[id] = pos
	w.Motion[id] = mov
	return events
}

// ApplyDamage hurts an entity and returns the resulting event.
// Returns nil if the entity has no health or is already dead.
func ApplyDamage(w *World, id EntityID, amount int) state.Event {
	h, ok := w.Health[id]
	if !ok || !h.IsAlive() {
		return nil
	}
	dead := h.TakeDamage(amount)
	w.Health[id] = h
	if dead {
		return state.Died{}
	}
	return state.Hurt{}
}

// ApplyEvents runs each entity's events through the machine and requests the resulting state.
// Pinned entities are skipped.
func ApplyEvents(w *World, m state.Machine, events Events) {
	for id, evs := range events {
		st, ok := w.Animation[id]
		if !ok || w.IsPinned(id) {
			continue
		}
		st.Request(m.ApplyAll(st.Requested, evs...))
	}
}

// PromoteIdle switches unpinned spiders that stood still long enough to Idle
func PromoteIdle(w *World, m state.Machine) {
	for id, st := range w.Animation {
		if w.IsPinned(id) {
			continue
		}
		st.Request(m.Promote(st.Requested, st.Held))
	}
}

// UpdateAnimations ticks every animated entity in id order.
// It stops at the first failure; entities ticked before it keep their update.
func UpdateAnimations(w *World, a *animation.Animator[state.Player], dt float64) error {
	for _, id := range w.AnimatedIDs() {
		if _, err := a.Tick(w.Animation[id], w.spriteOf(id), dt); err != nil {
			return eris.Wrapf(err, "failed to animate entity %d", id)
		}
	}
	return nil
}

type evaluation struct {
	res   animation.Result
	stack animation.LogicStack
}

// UpdateAnimationsParallel evaluates every animated entity concurrently with
// at most workers goroutines (GOMAXPROCS if workers <= 0), then commits all
// results. If any evaluation fails nothing is committed.
func UpdateAnimationsParallel(ctx context.Context, w *World, a *animation.Animator[state.Player], dt float64, workers int) error {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	ids := w.AnimatedIDs()
	out := make([]evaluation, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, id := range ids {
		st := *w.Animation[id]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, stack, err := a.Evaluate(st, dt)
			if err != nil {
				return eris.Wrapf(err, "failed to animate entity %d", id)
			}
			out[i] = evaluation{res: res, stack: stack}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, id := range ids {
		animation.Apply(w.Animation[id], w.spriteOf(id), out[i].res, out[i].stack, dt)
	}
	return nil
}

// spriteOf returns the entity's sprite or a nil FrameSetter
func (w *World) spriteOf(id EntityID) animation.FrameSetter {
	if s, ok := w.Sprite[id]; ok {
		return s
	}
	return nil
}
