// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"github.com/CodingC1402/Spider-game/internal/application/scene"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64
	ticks   uint64
	logger  zerolog.Logger
}

// Option configures a Game
type Option func(*Game)

// WithDT sets the delta time passed to scenes
func WithDT(dt float64) Option {
	return func(g *Game) {
		if dt > 0 {
			g.dt = dt
		}
	}
}

// WithLogger sets the logger used for scene transitions
func WithLogger(logger zerolog.Logger) Option {
	return func(g *Game) {
		g.logger = logger
	}
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH int, opts ...Option) *Game {
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / 60.0, // Default to 60 TPS
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	g.ticks++
	next, err := g.current.Update(g.dt)
	if err != nil {
		g.current.OnExit()
		if eris.Is(err, scene.ErrQuit) {
			g.logger.Info().Uint64("ticks", g.ticks).Msg("quit")
			return ebiten.Termination
		}
		return eris.Wrapf(err, "scene failed at tick %d", g.ticks)
	}

	if next != nil {
		g.logger.Debug().
			Str("from", sceneName(g.current)).
			Str("to", sceneName(next)).
			Uint64("tick", g.ticks).
			Msg("scene transition")
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// Ticks returns the number of updates run so far
func (g *Game) Ticks() uint64 {
	return g.ticks
}

// Current returns the active scene
func (g *Game) Current() scene.Scene {
	return g.current
}

func sceneName(s scene.Scene) string {
	return fmt.Sprintf("%T", s)
}
