package ecs

import (
	"github.com/CodingC1402/Spider-game/internal/application/state"
	"github.com/CodingC1402/Spider-game/internal/domain/animation"
)

// PositionScale is the internal position scale factor.
// 1 pixel = 256 internal units for sub-pixel precision.
const PositionScale = 256

// PositionShift is the bit shift amount for pixel conversion (log2(256) = 8)
const PositionShift = 8

// Position represents an entity's position (256x scaled)
type Position struct {
	X, Y int
}

// PixelX returns the pixel X coordinate
func (p Position) PixelX() int { return p.X >> PositionShift }

// PixelY returns the pixel Y coordinate
func (p Position) PixelY() int { return p.Y >> PositionShift }

// Motion is the spider's kinematic state in pixels per second
type Motion struct {
	VX, VY      float64
	Axis        float64 // last horizontal input, -1..1
	OnGround    bool
	FacingRight bool
}

// Health represents entity health
type Health struct {
	Current int
	Max     int
}

// TakeDamage applies damage, returns true if dead
func (h *Health) TakeDamage(amount int) bool {
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
	return h.Current <= 0
}

// IsAlive returns true if health > 0
func (h *Health) IsAlive() bool {
	return h.Current > 0
}

// Sprite is the displayed atlas frame.
// It implements animation.FrameSetter.
type Sprite struct {
	Frame   int
	Changes int // number of frame switches, for diagnostics
}

// SetFrame switches the displayed atlas frame
func (s *Sprite) SetFrame(index int) {
	s.Frame = index
	s.Changes++
}

// Animation is the per-entity animation state driven by the player tree
type Animation = animation.State[state.Player]
