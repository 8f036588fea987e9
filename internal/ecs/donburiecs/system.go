// Package donburiecs runs animation trees inside a Donburi world.
// Entities carry the system's state component and, optionally, Sprite;
// finished animations are published as Donburi events.
package donburiecs

import (
	"github.com/rotisserie/eris"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"

	"github.com/CodingC1402/Spider-game/internal/domain/animation"
)

// Sprite is the displayed atlas frame of a Donburi entity
type Sprite struct {
	Frame int
}

// SetFrame switches the displayed atlas frame
func (s *Sprite) SetFrame(index int) { s.Frame = index }

// SpriteComponent is the Donburi component type for Sprite
var SpriteComponent = donburi.NewComponentType[Sprite]()

// FinishedEvent is published when an entity's tree reports Finished
type FinishedEvent[S comparable] struct {
	Entity    donburi.Entity
	Requested S
}

// System ticks every entity carrying its state component
type System[S comparable] struct {
	animator *animation.Animator[S]
	state    *donburi.ComponentType[animation.State[S]]
	finished *events.EventType[FinishedEvent[S]]
	query    *donburi.Query
}

// NewSystem creates a system with its own state component and finished event type
func NewSystem[S comparable](animator *animation.Animator[S]) *System[S] {
	ct := donburi.NewComponentType[animation.State[S]]()
	return &System[S]{
		animator: animator,
		state:    ct,
		finished: events.NewEventType[FinishedEvent[S]](),
		query:    donburi.NewQuery(filter.Contains(ct)),
	}
}

// Finished returns the event type carrying finished notifications.
// Subscribers run when events.ProcessAllEvents or ProcessEvents is called.
func (s *System[S]) Finished() *events.EventType[FinishedEvent[S]] {
	return s.finished
}

// Spawn creates an animated entity with a sprite
func (s *System[S]) Spawn(world donburi.World, initial S) donburi.Entity {
	e := world.Create(s.state, SpriteComponent)
	entry := world.Entry(e)
	s.state.SetValue(entry, *animation.NewState(initial))
	return e
}

// State returns the animation state of an entity, nil if it has none
func (s *System[S]) State(world donburi.World, e donburi.Entity) *animation.State[S] {
	if !world.Valid(e) {
		return nil
	}
	entry := world.Entry(e)
	if !entry.HasComponent(s.state) {
		return nil
	}
	return s.state.Get(entry)
}

// Update ticks every animated entity by dt.
// After the first failure the remaining entities are skipped and the error is returned.
func (s *System[S]) Update(world donburi.World, dt float64) error {
	var firstErr error
	s.query.Each(world, func(entry *donburi.Entry) {
		if firstErr != nil {
			return
		}
		st := s.state.Get(entry)

		var sprite animation.FrameSetter
		if entry.HasComponent(SpriteComponent) {
			sprite = SpriteComponent.Get(entry)
		}

		res, err := s.animator.Tick(st, sprite, dt)
		if err != nil {
			firstErr = eris.Wrapf(err, "failed to animate entity %v", entry.Entity())
			return
		}
		if res.Kind == animation.KindFinished {
			s.finished.Publish(world, FinishedEvent[S]{Entity: entry.Entity(), Requested: st.Requested})
		}
	})
	return firstErr
}
