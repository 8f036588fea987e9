package ecs

import (
	"slices"

	"github.com/CodingC1402/Spider-game/internal/application/state"
	"github.com/CodingC1402/Spider-game/internal/domain/animation"
)

// EntityID is a unique identifier for an entity (never recycled)
type EntityID uint64

// World holds all component maps and the next entity ID
type World struct {
	nextID EntityID

	// Components
	Position  map[EntityID]Position
	Motion    map[EntityID]Motion
	Health    map[EntityID]Health
	Sprite    map[EntityID]*Sprite
	Animation map[EntityID]*Animation

	// Tags
	IsSpider map[EntityID]struct{}
	Pinned   map[EntityID]struct{} // requested state never changes

	// Singleton references
	PlayerID EntityID
}

// NewWorld creates a new empty world
func NewWorld() *World {
	return &World{
		nextID:    1, // 0 is "nil"
		Position:  make(map[EntityID]Position),
		Motion:    make(map[EntityID]Motion),
		Health:    make(map[EntityID]Health),
		Sprite:    make(map[EntityID]*Sprite),
		Animation: make(map[EntityID]*Animation),
		IsSpider:  make(map[EntityID]struct{}),
		Pinned:    make(map[EntityID]struct{}),
	}
}

// NewEntity returns a new unique entity ID
func (w *World) NewEntity() EntityID {
	id := w.nextID
	w.nextID++
	return id
}

// DestroyEntity removes all components for an entity
func (w *World) DestroyEntity(id EntityID) {
	delete(w.Position, id)
	delete(w.Motion, id)
	delete(w.Health, id)
	delete(w.Sprite, id)
	delete(w.Animation, id)
	delete(w.IsSpider, id)
	delete(w.Pinned, id)
	if w.PlayerID == id {
		w.PlayerID = 0
	}
}

// Pin fixes the entity's requested state against events and idle promotion
func (w *World) Pin(id EntityID) {
	w.Pinned[id] = struct{}{}
}

// IsPinned reports whether the entity's requested state is fixed
func (w *World) IsPinned(id EntityID) bool {
	_, ok := w.Pinned[id]
	return ok
}

// Exists checks if an entity has Position component
func (w *World) Exists(id EntityID) bool {
	_, ok := w.Position[id]
	return ok
}

// CreateSpider creates an animated spider standing at the given pixel position.
// The first spider created becomes the player.
func (w *World) CreateSpider(pixelX, pixelY int, initial state.Player, maxHealth int) EntityID {
	id := w.NewEntity()

	w.Position[id] = Position{X: pixelX * PositionScale, Y: pixelY * PositionScale}
	w.Motion[id] = Motion{OnGround: true, FacingRight: true}
	w.Health[id] = Health{Current: maxHealth, Max: maxHealth}
	w.Sprite[id] = &Sprite{}
	w.Animation[id] = animation.NewState(initial)
	w.IsSpider[id] = struct{}{}

	if w.PlayerID == 0 {
		w.PlayerID = id
	}
	return id
}

// AnimatedIDs returns every entity with an animation state in ascending order
func (w *World) AnimatedIDs() []EntityID {
	ids := make([]EntityID, 0, len(w.Animation))
	for id := range w.Animation {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// CountSpiders returns the number of live spiders
func (w *World) CountSpiders() int {
	return len(w.IsSpider)
}
