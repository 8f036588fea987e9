package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/CodingC1402/Spider-game/internal/ecs"
)

// KeyMap binds preview actions to keys; any listed key triggers the action
type KeyMap struct {
	Left  []ebiten.Key
	Right []ebiten.Key
	Jump  []ebiten.Key
	Hurt  []ebiten.Key
}

// DefaultKeyMap returns A/D or arrows to walk, W/Space/Up to jump and H to take damage
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft},
		Right: []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight},
		Jump:  []ebiten.Key{ebiten.KeyW, ebiten.KeySpace, ebiten.KeyArrowUp},
		Hurt:  []ebiten.Key{ebiten.KeyH},
	}
}

// Controls is the input of one tick
type Controls struct {
	Input ecs.InputState
	Hurt  bool
}

// InputSystem handles player input
type InputSystem struct {
	keys        KeyMap
	pressed     func(ebiten.Key) bool
	justPressed func(ebiten.Key) bool
}

// NewInputSystem creates a new input system reading the keyboard through ebiten
func NewInputSystem(keys KeyMap) *InputSystem {
	return &InputSystem{
		keys:        keys,
		pressed:     ebiten.IsKeyPressed,
		justPressed: inpututil.IsKeyJustPressed,
	}
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() Controls {
	return Controls{
		Input: ecs.InputState{
			Left:  s.any(s.pressed, s.keys.Left),
			Right: s.any(s.pressed, s.keys.Right),
			Jump:  s.any(s.justPressed, s.keys.Jump),
		},
		Hurt: s.any(s.justPressed, s.keys.Hurt),
	}
}

func (s *InputSystem) any(check func(ebiten.Key) bool, keys []ebiten.Key) bool {
	for _, k := range keys {
		if check(k) {
			return true
		}
	}
	return false
}
