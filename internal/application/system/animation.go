package system

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/CodingC1402/Spider-game/internal/application/state"
	"github.com/CodingC1402/Spider-game/internal/domain/animation"
	"github.com/CodingC1402/Spider-game/internal/ecs"
)

// AnimationSystem runs one simulation tick: motion, state requests and animation
type AnimationSystem struct {
	world    *ecs.World
	machine  state.Machine
	animator *animation.Animator[state.Player]
	motion   ecs.MotionConfig
	workers  int // > 0 evaluates entities in parallel
	logger   zerolog.Logger
}

// NewAnimationSystem creates an animation system over world
func NewAnimationSystem(world *ecs.World, m state.Machine, a *animation.Animator[state.Player], motion ecs.MotionConfig) *AnimationSystem {
	return &AnimationSystem{
		world:    world,
		machine:  m,
		animator: a,
		motion:   motion,
		logger:   zerolog.Nop(),
	}
}

// SetLogger sets the logger used for state change diagnostics
func (s *AnimationSystem) SetLogger(logger zerolog.Logger) {
	s.logger = logger
}

// SetParallel evaluates entities with up to workers goroutines; 0 runs sequentially
func (s *AnimationSystem) SetParallel(workers int) {
	s.workers = workers
}

// World returns the simulated world
func (s *AnimationSystem) World() *ecs.World {
	return s.world
}

// Drive moves the player from live controls, advances the tick and returns
// the player's events so they can be recorded
func (s *AnimationSystem) Drive(c Controls, dt float64) ([]state.Event, error) {
	pid := s.world.PlayerID
	events := ecs.UpdateMotion(s.world, c.Input, s.motion, dt)
	if c.Hurt {
		if e := ecs.ApplyDamage(s.world, pid, 1); e != nil {
			events.Add(pid, e)
		}
	}
	evs := events[pid]
	return evs, s.Step(evs, dt)
}

// Step applies the player's events and advances every animation by dt
func (s *AnimationSystem) Step(playerEvents []state.Event, dt float64) error {
	pid := s.world.PlayerID
	before := s.requested(pid)

	if len(playerEvents) > 0 {
		ecs.ApplyEvents(s.world, s.machine, ecs.Events{pid: playerEvents})
	}
	ecs.PromoteIdle(s.world, s.machine)

	if after := s.requested(pid); after != before {
		s.logger.Debug().Stringer("from", before).Stringer("to", after).Msg("player state changed")
	}

	if s.workers > 0 {
		return ecs.UpdateAnimationsParallel(context.Background(), s.world, s.animator, dt, s.workers)
	}
	return ecs.UpdateAnimations(s.world, s.animator, dt)
}

func (s *AnimationSystem) requested(id ecs.EntityID) state.Player {
	if st, ok := s.world.Animation[id]; ok {
		return st.Requested
	}
	return state.PlayerNone
}
